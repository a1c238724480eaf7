/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */


package db

import (
	"context"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/wiremaps/pkg/logger"
	"github.com/carverauto/wiremaps/pkg/models"
)

func TestBuildConnURL(t *testing.T) {
	tests := []struct {
		name    string
		cfg     models.DatabaseConfig
		want    string
		wantErr error
	}{
		{
			name: "defaults",
			cfg:  models.DatabaseConfig{Host: "db", Database: "wiremaps"},
			want: "postgres://db:5432/wiremaps?sslmode=disable",
		},
		{
			name: "credentials and application name",
			cfg: models.DatabaseConfig{
				Host: "db", Port: 6432, Database: "wiremaps",
				Username: "mapper", Password: "s3cret", ApplicationName: "wiremaps",
			},
			want: "postgres://mapper:s3cret@db:6432/wiremaps?application_name=wiremaps&sslmode=disable",
		},
		{
			name: "tls defaults to verify-full",
			cfg: models.DatabaseConfig{
				Host: "db", Database: "wiremaps",
				TLS: &models.TLSConfig{CertFile: "c", KeyFile: "k", CAFile: "ca"},
			},
			want: "postgres://db:5432/wiremaps?sslmode=verify-full",
		},
		{
			name: "tls with ssl disabled",
			cfg: models.DatabaseConfig{
				Host: "db", SSLMode: "disable",
				TLS: &models.TLSConfig{CertFile: "c", KeyFile: "k", CAFile: "ca"},
			},
			wantErr: ErrTLSDisabled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := buildConnURL(&tt.cfg)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, u.String())
		})
	}
}

func TestBuildTLSConfig(t *testing.T) {
	cfg, err := buildTLSConfig(&models.DatabaseConfig{})
	require.NoError(t, err)
	assert.Nil(t, cfg)

	_, err = buildTLSConfig(&models.DatabaseConfig{TLS: &models.TLSConfig{CertFile: "c"}})
	require.ErrorIs(t, err, ErrTLSIncomplete)

	_, err = buildTLSConfig(&models.DatabaseConfig{
		CertDir: t.TempDir(),
		TLS:     &models.TLSConfig{CertFile: "c", KeyFile: "k", CAFile: "ca"},
	})
	require.Error(t, err)
}

func TestNewPoolWithoutConfig(t *testing.T) {
	_, err := NewPool(context.Background(), nil, nil)
	require.ErrorIs(t, err, ErrConfigNil)
}

func TestStatementBuilders(t *testing.T) {
	assert.Equal(t,
		"UPDATE sonmp SET deleted = now() WHERE equipment = $1 AND port = $2 AND deleted = 'infinity' "+
			"AND (remoteip IS DISTINCT FROM $3 OR remoteport IS DISTINCT FROM $4)",
		retireChangedSQL(tableSonmp))

	assert.Equal(t,
		"UPDATE fdb SET updated = now() WHERE equipment = $1 AND port = $2 AND mac = $3 AND deleted = 'infinity'",
		refreshSQL(tableFDB))

	assert.Equal(t,
		"INSERT INTO vlan (equipment, port, vid, type, name) VALUES ($1, $2, $3, $4, $5) "+
			"ON CONFLICT (equipment, port, vid, type, deleted) DO NOTHING",
		insertSQL(tableVlan))

	assert.Equal(t,
		"UPDATE port SET deleted = now() WHERE equipment = $1 AND deleted = 'infinity' AND updated < now()",
		staleSQL(tablePort))

	assert.Equal(t,
		"UPDATE equipment SET deleted = now() WHERE deleted = 'infinity' AND updated < now() - make_interval(secs => $1)",
		expireSQL(tableEquipment))

	assert.Contains(t, orphanSQL(tableTrunk), "UPDATE trunk SET deleted = now() WHERE deleted = 'infinity' AND equipment NOT IN")
}

func TestFlatten(t *testing.T) {
	records, err := flatten(snapshot())
	require.NoError(t, err)

	perTable := map[string]int{}
	for _, r := range records {
		perTable[r.table.name]++
		assert.Len(t, r.values, len(r.table.columns()), r.table.name)
	}

	assert.Equal(t, map[string]int{
		"equipment": 1, "port": 2, "fdb": 1, "arp": 1, "cdp": 1, "lldp": 1, "vlan": 2, "trunk": 1,
	}, perTable)

	assert.Equal(t, tableEquipment, records[0].table)
	assert.Equal(t, netip.MustParseAddr("10.0.0.1"), records[0].values[0])
}

func TestFlattenSkipsUnparsableAddresses(t *testing.T) {
	eq := models.NewEquipment("10.0.0.1")
	eq.OID = ".1.3.6.1.4.1.9"
	eq.SetARP("not-an-ip", "00:11:22:33:44:55")
	eq.AddPort(1, &models.Port{Name: "1", State: models.PortUp, Sonmp: &models.Sonmp{IP: "", RemotePort: "1/1"}})

	records, err := flatten(eq)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestRecordKey(t *testing.T) {
	r := record{table: tableFDB, values: []any{netip.MustParseAddr("10.0.0.1"), 1, "00:00:00:00:00:01"}}
	assert.Equal(t, "10.0.0.1|1|00:00:00:00:00:01", r.key())
}

func TestSplitStatements(t *testing.T) {
	script := `-- leading; comment
CREATE TABLE a (x TEXT DEFAULT 'a;b');
-- between
CREATE INDEX i ON a (x);

`
	assert.Equal(t, []string{
		"CREATE TABLE a (x TEXT DEFAULT 'a;b')",
		"CREATE INDEX i ON a (x)",
	}, splitStatements(script))
}

func TestEmbeddedMigrations(t *testing.T) {
	names, err := migrationFiles()
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "0001_initial.up.sql", names[0])
	assert.Equal(t, "0001", migrationVersion(names[0]))

	content, err := migrationsFS.ReadFile("migrations/" + names[0])
	require.NoError(t, err)

	statements := splitStatements(string(content))
	for _, stmt := range statements {
		assert.NotContains(t, stmt, "--")
	}

	for _, def := range tables {
		found := false

		for _, stmt := range statements {
			if strings.HasPrefix(stmt, "CREATE TABLE IF NOT EXISTS "+def.name+" (") {
				found = true
			}
		}

		assert.True(t, found, "table %s", def.name)
	}
}

// TestPostgresRoundTrip runs against a real server when
// WIREMAPS_TEST_POSTGRES_HOST is set.
func TestPostgresRoundTrip(t *testing.T) {
	host := os.Getenv("WIREMAPS_TEST_POSTGRES_HOST")
	if host == "" {
		t.Skip("WIREMAPS_TEST_POSTGRES_HOST not set")
	}

	port, _ := strconv.Atoi(os.Getenv("WIREMAPS_TEST_POSTGRES_PORT"))

	cfg := &models.DatabaseConfig{
		Host:     host,
		Port:     port,
		Database: os.Getenv("WIREMAPS_TEST_POSTGRES_DATABASE"),
		Username: os.Getenv("WIREMAPS_TEST_POSTGRES_USER"),
		Password: os.Getenv("WIREMAPS_TEST_POSTGRES_PASSWORD"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := New(ctx, cfg, logger.NewTestLogger())
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Migrate(ctx))
	require.NoError(t, store.Migrate(ctx))

	require.NoError(t, store.Write(ctx, snapshot()))
	require.NoError(t, store.Write(ctx, snapshot()))

	var ports int
	require.NoError(t, store.pool.QueryRow(ctx,
		"SELECT count(*) FROM port WHERE equipment = '10.0.0.1' AND deleted = 'infinity'").Scan(&ports))
	assert.Equal(t, 2, ports)

	eq := snapshot()
	eq.RemovePort(2)
	require.NoError(t, store.Write(ctx, eq))

	require.NoError(t, store.pool.QueryRow(ctx,
		"SELECT count(*) FROM port WHERE equipment = '10.0.0.1' AND deleted = 'infinity'").Scan(&ports))
	assert.Equal(t, 1, ports)

	require.NoError(t, store.Expire(ctx, models.ExpirePolicy{Equipment: time.Hour, FDB: time.Hour, ARP: time.Hour}))
}

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
	"fmt"
	"net/netip"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carverauto/wiremaps/pkg/logger"
	"github.com/carverauto/wiremaps/pkg/models"
)

const lockSQL = `SELECT pg_advisory_xact_lock(hashtext($1))`

// Postgres stores snapshots in the temporal schema. Each row of a key
// has a current version (deleted = 'infinity') and the history of the
// versions it replaced.
type Postgres struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

// New connects to the configured database.
func New(ctx context.Context, cfg *models.DatabaseConfig, log logger.Logger) (*Postgres, error) {
	if log == nil {
		log = logger.NewTestLogger()
	}

	pool, err := NewPool(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return &Postgres{pool: pool, logger: log.WithComponent("db")}, nil
}

// Migrate brings the schema up to date.
func (p *Postgres) Migrate(ctx context.Context) error {
	return Migrate(ctx, p.pool, p.logger)
}

func (p *Postgres) Close() {
	p.pool.Close()
}

// Write replaces what is known about eq.IP in one transaction. Writes for
// the same equipment are serialised with an advisory lock.
func (p *Postgres) Write(ctx context.Context, eq *models.Equipment) error {
	records, err := flatten(eq)
	if err != nil {
		return err
	}

	ip := records[0].values[0].(netip.Addr)

	batch := &pgx.Batch{}

	for _, r := range records {
		queueRecord(batch, r)
	}

	for _, t := range tables {
		if t == tableEquipment || t.sticky {
			continue
		}

		batch.Queue(staleSQL(t), ip)
	}

	err = pgx.BeginFunc(ctx, p.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, lockSQL, eq.IP); err != nil {
			return fmt.Errorf("failed to lock equipment: %w", err)
		}

		return sendBatch(ctx, tx, batch, "write equipment")
	})
	if err != nil {
		return err
	}

	p.logger.Debug().Str("ip", eq.IP).Int("rows", len(records)).Msg("Stored equipment")

	return nil
}

// Expire retires equipment not refreshed within the policy, everything
// attached to retired equipment, and stale FDB and ARP entries. A zero
// age disables that part.
func (p *Postgres) Expire(ctx context.Context, policy models.ExpirePolicy) error {
	batch := &pgx.Batch{}

	if age := tableEquipment.age(policy); age > 0 {
		batch.Queue(expireSQL(tableEquipment), age.Seconds())
	}

	for _, t := range tables[1:] {
		batch.Queue(orphanSQL(t))
	}

	for _, t := range []*table{tableFDB, tableARP} {
		if age := t.age(policy); age > 0 {
			batch.Queue(expireSQL(t), age.Seconds())
		}
	}

	return pgx.BeginFunc(ctx, p.pool, func(tx pgx.Tx) error {
		return sendBatch(ctx, tx, batch, "expire")
	})
}

// queueRecord retires the current version when its attributes changed,
// refreshes it otherwise, and inserts a version when none is current.
func queueRecord(batch *pgx.Batch, r record) {
	if len(r.table.attrs) > 0 {
		batch.Queue(retireChangedSQL(r.table), r.values...)
	}

	batch.Queue(refreshSQL(r.table), r.keyValues()...)
	batch.Queue(insertSQL(r.table), r.values...)
}

func keyClause(t *table) string {
	parts := make([]string, len(t.keys))
	for i, k := range t.keys {
		parts[i] = fmt.Sprintf("%s = $%d", k, i+1)
	}

	return strings.Join(parts, " AND ")
}

func retireChangedSQL(t *table) string {
	changed := make([]string, len(t.attrs))
	for i, a := range t.attrs {
		changed[i] = fmt.Sprintf("%s IS DISTINCT FROM $%d", a, len(t.keys)+i+1)
	}

	return fmt.Sprintf(
		"UPDATE %s SET deleted = now() WHERE %s AND deleted = 'infinity' AND (%s)",
		t.name, keyClause(t), strings.Join(changed, " OR "),
	)
}

func refreshSQL(t *table) string {
	return fmt.Sprintf(
		"UPDATE %s SET updated = now() WHERE %s AND deleted = 'infinity'",
		t.name, keyClause(t),
	)
}

func insertSQL(t *table) string {
	cols := t.columns()

	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s, deleted) DO NOTHING",
		t.name, strings.Join(cols, ", "), strings.Join(placeholders, ", "), strings.Join(t.keys, ", "),
	)
}

// staleSQL retires rows of one equipment the current transaction did not
// touch. now() is the transaction start, so every row written by it has
// updated = now().
func staleSQL(t *table) string {
	return fmt.Sprintf(
		"UPDATE %s SET deleted = now() WHERE %s = $1 AND deleted = 'infinity' AND updated < now()",
		t.name, t.keys[0],
	)
}

func expireSQL(t *table) string {
	return fmt.Sprintf(
		"UPDATE %s SET deleted = now() WHERE deleted = 'infinity' AND updated < now() - make_interval(secs => $1)",
		t.name,
	)
}

func orphanSQL(t *table) string {
	return fmt.Sprintf(
		"UPDATE %s SET deleted = now() WHERE deleted = 'infinity' AND %s NOT IN "+
			"(SELECT ip FROM equipment WHERE deleted = 'infinity')",
		t.name, t.keys[0],
	)
}

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

package config

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/wiremaps/pkg/models"
)

type dbSection struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Password string `json:"password" sensitive:"true"`
}

type testConfig struct {
	Communities []string        `json:"communities"`
	Parallel    int             `json:"parallel"`
	Bulk        bool            `json:"bulk"`
	Interval    models.Duration `json:"interval"`
	Timeout     time.Duration   `json:"timeout"`
	Database    *dbSection      `json:"database,omitempty"`

	validated bool
}

func (c *testConfig) Validate() error {
	c.validated = true

	return nil
}

func writeFile(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "wiremaps.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "")

	path := writeFile(t, `{"communities": ["public", "private"], "parallel": 4, "interval": "30m"}`)

	var cfg testConfig
	require.NoError(t, NewConfig(nil).LoadAndValidate(context.Background(), path, &cfg))

	assert.Equal(t, []string{"public", "private"}, cfg.Communities)
	assert.Equal(t, 4, cfg.Parallel)
	assert.Equal(t, models.Duration(30*time.Minute), cfg.Interval)
	assert.True(t, cfg.validated)
}

func TestLoadFromFileRejectsUnknownKeys(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "file")

	path := writeFile(t, `{"paralel": 4}`)

	var cfg testConfig
	assert.Error(t, NewConfig(nil).LoadAndValidate(context.Background(), path, &cfg))
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "env")
	t.Setenv("WIREMAPS_COMMUNITIES", "public, private")
	t.Setenv("WIREMAPS_PARALLEL", "12")
	t.Setenv("WIREMAPS_BULK", "true")
	t.Setenv("WIREMAPS_INTERVAL", "5m")
	t.Setenv("WIREMAPS_TIMEOUT", "2s")
	t.Setenv("WIREMAPS_DATABASE_HOST", "db.example.net")
	t.Setenv("WIREMAPS_DATABASE_PORT", "5433")

	var cfg testConfig
	require.NoError(t, NewConfig(nil).LoadAndValidate(context.Background(), "", &cfg))

	assert.Equal(t, []string{"public", "private"}, cfg.Communities)
	assert.Equal(t, 12, cfg.Parallel)
	assert.True(t, cfg.Bulk)
	assert.Equal(t, models.Duration(5*time.Minute), cfg.Interval)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	require.NotNil(t, cfg.Database)
	assert.Equal(t, "db.example.net", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.True(t, cfg.validated)
}

func TestLoadFromEnvLeavesAbsentSectionsNil(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "env")
	t.Setenv("CONFIG_ENV_PREFIX", "WMTEST_")
	t.Setenv("WMTEST_PARALLEL", "3")

	var cfg testConfig
	require.NoError(t, NewConfig(nil).LoadAndValidate(context.Background(), "", &cfg))

	assert.Equal(t, 3, cfg.Parallel)
	assert.Nil(t, cfg.Database)
}

func TestLoadFromEnvDocument(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "env")
	t.Setenv("WIREMAPS_CONFIG_JSON", `{"parallel": 7}`)

	var cfg testConfig
	require.NoError(t, NewConfig(nil).LoadAndValidate(context.Background(), "", &cfg))

	assert.Equal(t, 7, cfg.Parallel)
}

func TestLoadFromEnvBadValue(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "env")
	t.Setenv("WIREMAPS_PARALLEL", "many")

	var cfg testConfig
	err := NewConfig(nil).LoadAndValidate(context.Background(), "", &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WIREMAPS_PARALLEL")
}

func TestInvalidSource(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "kv")

	var cfg testConfig
	assert.ErrorIs(t, NewConfig(nil).LoadAndValidate(context.Background(), "", &cfg), errInvalidConfigSource)
}

func TestRedact(t *testing.T) {
	cfg := testConfig{
		Parallel: 2,
		Interval: models.Duration(time.Minute),
		Database: &dbSection{Host: "db", Password: "hunter2"},
	}

	data, err := Redact(&cfg)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))

	db := out["database"].(map[string]interface{})
	assert.Equal(t, "db", db["host"])
	assert.NotContains(t, db, "password")
	assert.Equal(t, "1m0s", out["interval"])
	assert.NotContains(t, string(data), "hunter2")
}

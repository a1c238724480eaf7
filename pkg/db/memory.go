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
	"sort"
	"sync"
	"time"

	"github.com/carverauto/wiremaps/pkg/models"
)

// Row is one version of a stored row. Deleted is zero while the row is
// current.
type Row struct {
	Table   string
	Values  map[string]any
	Created time.Time
	Updated time.Time
	Deleted time.Time
}

type memRow struct {
	record  record
	created time.Time
	updated time.Time
	deleted time.Time
}

type memTable struct {
	current map[string]*memRow
	retired []*memRow
}

// Memory keeps the temporal schema in process memory. It is used when no
// database is configured.
type Memory struct {
	mu     sync.RWMutex
	now    func() time.Time
	tables map[string]*memTable
}

// NewMemory creates an empty store. A nil now uses wall time.
func NewMemory(now func() time.Time) *Memory {
	if now == nil {
		now = time.Now
	}

	m := &Memory{now: now, tables: make(map[string]*memTable, len(tables))}

	for _, t := range tables {
		m.tables[t.name] = &memTable{current: make(map[string]*memRow)}
	}

	return m
}

func (m *Memory) Write(_ context.Context, eq *models.Equipment) error {
	records, err := flatten(eq)
	if err != nil {
		return err
	}

	ip := records[0].values[0].(netip.Addr)

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	touched := make(map[*memRow]struct{}, len(records))

	for _, r := range records {
		t := m.tables[r.table.name]
		key := r.key()

		if cur, ok := t.current[key]; ok {
			if cur.record.sameAttrs(r) {
				cur.updated = now
				touched[cur] = struct{}{}

				continue
			}

			t.retire(key, now)
		}

		row := &memRow{record: r, created: now, updated: now}
		t.current[key] = row
		touched[row] = struct{}{}
	}

	for _, def := range tables {
		if def == tableEquipment || def.sticky {
			continue
		}

		t := m.tables[def.name]

		for key, row := range t.current {
			if _, ok := touched[row]; ok || row.equipment() != ip {
				continue
			}

			t.retire(key, now)
		}
	}

	return nil
}

func (m *Memory) Expire(_ context.Context, policy models.ExpirePolicy) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()

	m.expireTable(tableEquipment, policy, now)

	live := make(map[netip.Addr]struct{})
	for _, row := range m.tables[tableEquipment.name].current {
		live[row.equipment()] = struct{}{}
	}

	for _, def := range tables[1:] {
		t := m.tables[def.name]

		for key, row := range t.current {
			if _, ok := live[row.equipment()]; !ok {
				t.retire(key, now)
			}
		}
	}

	m.expireTable(tableFDB, policy, now)
	m.expireTable(tableARP, policy, now)

	return nil
}

func (m *Memory) expireTable(def *table, policy models.ExpirePolicy, now time.Time) {
	age := def.age(policy)
	if age <= 0 {
		return
	}

	t := m.tables[def.name]
	cutoff := now.Add(-age)

	for key, row := range t.current {
		if row.updated.Before(cutoff) {
			t.retire(key, now)
		}
	}
}

// Current returns the current rows of a table in key order.
func (m *Memory) Current(name string) []Row {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.tables[name]
	if !ok {
		return nil
	}

	rows := make([]*memRow, 0, len(t.current))
	for _, row := range t.current {
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].record.key() < rows[j].record.key()
	})

	return exportRows(rows)
}

// History returns the retired versions of a table in retirement order.
func (m *Memory) History(name string) []Row {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.tables[name]
	if !ok {
		return nil
	}

	return exportRows(t.retired)
}

// Equipment lists the addresses of the current equipment.
func (m *Memory) Equipment() []string {
	rows := m.Current(tableEquipment.name)

	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Values["ip"].(netip.Addr).String())
	}

	return out
}

func (t *memTable) retire(key string, now time.Time) {
	row := t.current[key]
	row.deleted = now

	delete(t.current, key)

	t.retired = append(t.retired, row)
}

func (r *memRow) equipment() netip.Addr {
	return r.record.values[0].(netip.Addr)
}

func exportRows(rows []*memRow) []Row {
	out := make([]Row, 0, len(rows))

	for _, row := range rows {
		values := make(map[string]any, len(row.record.values))
		for i, col := range row.record.table.columns() {
			values[col] = row.record.values[i]
		}

		out = append(out, Row{
			Table:   row.record.table.name,
			Values:  values,
			Created: row.created,
			Updated: row.updated,
			Deleted: row.deleted,
		})
	}

	return out
}

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

// Package collectors contains one collector per MIB area. Each collector
// walks its tables through a Proxy and writes what it finds straight into
// a shared models.Equipment. Collectors are composed by equipment plugins.
//
// A missing table is not an error: it only means the device does not
// expose the feature. Rows whose index a Normalizer rejects are dropped.
package collectors

import (
	"context"
	"sort"

	"github.com/gosnmp/gosnmp"
	"github.com/rs/zerolog"

	"github.com/carverauto/wiremaps/pkg/logger"
	"github.com/carverauto/wiremaps/pkg/snmp"
)

// Proxy is the SNMP session a collector works through.
type Proxy interface {
	Get(ctx context.Context, oids ...string) (snmp.Table, error)
	Walk(ctx context.Context, base string) (snmp.Table, error)
	Community() string
	SetCommunity(community string)
}

// Collector is one unit of collection.
type Collector interface {
	Collect(ctx context.Context) error
}

// CollectorFunc adapts a function to Collector.
type CollectorFunc func(ctx context.Context) error

func (f CollectorFunc) Collect(ctx context.Context) error {
	return f(ctx)
}

// TrunkMap maps an aggregate port to its physical members.
type TrunkMap map[int][]int

// Add records member under parent once.
func (t TrunkMap) Add(parent, member int) {
	for _, m := range t[parent] {
		if m == member {
			return
		}
	}

	t[parent] = append(t[parent], member)
	sort.Ints(t[parent])
}

// ParentOf returns the aggregate holding member.
func (t TrunkMap) ParentOf(member int) (int, bool) {
	for parent, members := range t {
		for _, m := range members {
			if m == member {
				return parent, true
			}
		}
	}

	return 0, false
}

// IsParent reports whether index is an aggregate with at least one member.
func (t TrunkMap) IsParent(index int) bool {
	return len(t[index]) > 0
}

func walkColumn(ctx context.Context, p Proxy, oid string) ([]snmp.Row, error) {
	t, err := p.Walk(ctx, oid)
	if err != nil {
		return nil, err
	}

	return t.Column(oid), nil
}

// walkIndexed walks a column indexed by a single integer.
func walkIndexed(ctx context.Context, p Proxy, oid string) (map[int]gosnmp.SnmpPDU, error) {
	rows, err := walkColumn(ctx, p, oid)
	if err != nil {
		return nil, err
	}

	out := make(map[int]gosnmp.SnmpPDU, len(rows))

	for _, r := range rows {
		if len(r.Index) != 1 {
			continue
		}

		out[r.Index[0]] = r.PDU
	}

	return out, nil
}

// walkInts walks a single-index integer column.
func walkInts(ctx context.Context, p Proxy, oid string) (map[int]int, error) {
	pdus, err := walkIndexed(ctx, p, oid)
	if err != nil {
		return nil, err
	}

	out := make(map[int]int, len(pdus))

	for idx, pdu := range pdus {
		if v, ok := snmp.AsInt(pdu); ok {
			out[idx] = v
		}
	}

	return out, nil
}

// walkStrings walks a single-index string column.
func walkStrings(ctx context.Context, p Proxy, oid string) (map[int]string, error) {
	pdus, err := walkIndexed(ctx, p, oid)
	if err != nil {
		return nil, err
	}

	out := make(map[int]string, len(pdus))

	for idx, pdu := range pdus {
		if v, ok := snmp.AsString(pdu); ok {
			out[idx] = v
		}
	}

	return out, nil
}

// walkBridgePorts maps bridge port numbers to interface indexes.
func walkBridgePorts(ctx context.Context, p Proxy) (map[int]int, error) {
	return walkInts(ctx, p, oidDot1dBasePortIfIndex)
}

func sortedKeys[V any](m map[int]V) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	sort.Ints(out)

	return out
}

func debug(log logger.Logger) *zerolog.Event {
	if log == nil {
		return nil
	}

	return log.Debug()
}

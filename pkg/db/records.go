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
	"fmt"
	"net/netip"
	"reflect"
	"strings"
	"time"

	"github.com/carverauto/wiremaps/pkg/models"
)

// table describes one temporal table. Key columns come first and the
// first key is always the equipment address.
type table struct {
	name  string
	keys  []string
	attrs []string
	// sticky rows survive their absence from a snapshot; only the
	// expiry age retires them.
	sticky bool
	age    func(models.ExpirePolicy) time.Duration
}

var (
	tableEquipment = &table{
		name:  "equipment",
		keys:  []string{"ip"},
		attrs: []string{"name", "oid", "description", "location"},
		age:   func(p models.ExpirePolicy) time.Duration { return p.Equipment },
	}
	tablePort = &table{
		name:  "port",
		keys:  []string{"equipment", "port"},
		attrs: []string{"name", "alias", "cstate", "mac", "speed", "duplex", "autoneg"},
	}
	tableFDB = &table{
		name:   "fdb",
		keys:   []string{"equipment", "port", "mac"},
		sticky: true,
		age:    func(p models.ExpirePolicy) time.Duration { return p.FDB },
	}
	tableARP = &table{
		name:   "arp",
		keys:   []string{"equipment", "ip", "mac"},
		sticky: true,
		age:    func(p models.ExpirePolicy) time.Duration { return p.ARP },
	}
	tableSonmp = &table{
		name:  "sonmp",
		keys:  []string{"equipment", "port"},
		attrs: []string{"remoteip", "remoteport"},
	}
	tableEdp = &table{
		name:  "edp",
		keys:  []string{"equipment", "port"},
		attrs: []string{"sysname", "remoteslot", "remoteport"},
	}
	tableCdp = &table{
		name:  "cdp",
		keys:  []string{"equipment", "port"},
		attrs: []string{"sysname", "portname", "platform", "mgmtip"},
	}
	tableLldp = &table{
		name:  "lldp",
		keys:  []string{"equipment", "port"},
		attrs: []string{"chassisid", "sysname", "sysdesc", "portid", "portdesc", "mgmtip"},
	}
	tableVlan = &table{
		name:  "vlan",
		keys:  []string{"equipment", "port", "vid", "type"},
		attrs: []string{"name"},
	}
	tableTrunk = &table{
		name: "trunk",
		keys: []string{"equipment", "port", "member"},
	}

	// tables in write order; equipment first.
	tables = []*table{
		tableEquipment, tablePort, tableFDB, tableARP, tableSonmp,
		tableEdp, tableCdp, tableLldp, tableVlan, tableTrunk,
	}
)

func (t *table) columns() []string {
	return append(append([]string(nil), t.keys...), t.attrs...)
}

// record is one row about to be written: key values then attribute
// values, in column order.
type record struct {
	table  *table
	values []any
}

func (r record) key() string {
	parts := make([]string, len(r.table.keys))
	for i, v := range r.keyValues() {
		parts[i] = fmt.Sprint(v)
	}

	return strings.Join(parts, "|")
}

func (r record) keyValues() []any {
	return r.values[:len(r.table.keys)]
}

func (r record) sameAttrs(other record) bool {
	k := len(r.table.keys)

	return reflect.DeepEqual(r.values[k:], other.values[k:])
}

// flatten turns a snapshot into the rows describing it.
func flatten(eq *models.Equipment) ([]record, error) {
	if eq == nil {
		return nil, ErrEquipmentNil
	}

	ip, err := netip.ParseAddr(eq.IP)
	if err != nil {
		return nil, fmt.Errorf("invalid equipment address %q: %w", eq.IP, err)
	}

	out := []record{{
		table:  tableEquipment,
		values: []any{ip, eq.Name, eq.OID, eq.Description, eq.Location},
	}}

	for _, idx := range eq.SortedPortIndexes() {
		p := eq.Ports[idx]

		out = append(out, record{
			table: tablePort,
			values: []any{
				ip, idx, p.Name, p.Alias, string(p.State), p.MAC, p.Speed, duplex(p.Duplex), p.Autoneg,
			},
		})

		for _, mac := range p.FDB {
			out = append(out, record{table: tableFDB, values: []any{ip, idx, mac}})
		}

		out = append(out, neighbours(ip, idx, p)...)

		for _, v := range p.Vlans {
			out = append(out, record{
				table:  tableVlan,
				values: []any{ip, idx, v.VlanID(), string(v.Kind()), v.VlanName()},
			})
		}

		if p.Trunk != nil {
			out = append(out, record{table: tableTrunk, values: []any{ip, p.Trunk.Parent, idx}})
		}
	}

	for host, mac := range eq.ARP {
		addr, err := netip.ParseAddr(host)
		if err != nil {
			continue
		}

		out = append(out, record{table: tableARP, values: []any{ip, addr, strings.ToLower(mac)}})
	}

	return out, nil
}

func neighbours(ip netip.Addr, idx int, p *models.Port) []record {
	var out []record

	if s := p.Sonmp; s != nil {
		if remote, err := netip.ParseAddr(s.IP); err == nil {
			out = append(out, record{table: tableSonmp, values: []any{ip, idx, remote, s.RemotePort}})
		}
	}

	if e := p.Edp; e != nil {
		out = append(out, record{table: tableEdp, values: []any{ip, idx, e.SysName, e.Slot, e.Port}})
	}

	if c := p.Cdp; c != nil {
		out = append(out, record{
			table:  tableCdp,
			values: []any{ip, idx, c.DeviceID, c.PortName, c.Platform, optionalAddr(c.MgmtIP)},
		})
	}

	if l := p.Lldp; l != nil {
		out = append(out, record{
			table:  tableLldp,
			values: []any{ip, idx, l.ChassisID, l.SysName, l.SysDesc, l.PortID, l.PortDesc, optionalAddr(l.MgmtIP)},
		})
	}

	return out
}

func duplex(d *models.Duplex) *string {
	if d == nil {
		return nil
	}

	s := string(*d)

	return &s
}

func optionalAddr(s string) *netip.Addr {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return nil
	}

	return &addr
}

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

// Package models holds the equipment snapshot assembled by one exploration
// and the shared configuration and event types.
package models

import (
	"sort"
	"time"
)

// PortState is the operational state of a port.
type PortState string

const (
	PortUp   PortState = "up"
	PortDown PortState = "down"
)

// Duplex is the negotiated duplex of a port.
type Duplex string

const (
	DuplexHalf Duplex = "half"
	DuplexFull Duplex = "full"
)

// Equipment is the snapshot of one device built during a single
// exploration. It is owned by one pipeline and never shared.
type Equipment struct {
	IP          string            `json:"ip"`
	Name        string            `json:"name"`
	OID         string            `json:"oid"`
	Description string            `json:"description"`
	Location    *string           `json:"location,omitempty"`
	Ports       map[int]*Port     `json:"ports"`
	ARP         map[string]string `json:"arp"`
	CollectedAt time.Time         `json:"collected_at"`
}

// Port is one front-panel or aggregate interface of an Equipment.
type Port struct {
	Name    string    `json:"name"`
	State   PortState `json:"state"`
	Alias   *string   `json:"alias,omitempty"`
	MAC     *string   `json:"mac,omitempty"`
	Speed   *int      `json:"speed,omitempty"`
	Duplex  *Duplex   `json:"duplex,omitempty"`
	Autoneg *bool     `json:"autoneg,omitempty"`
	FDB     []string  `json:"fdb,omitempty"`
	Sonmp   *Sonmp    `json:"sonmp,omitempty"`
	Edp     *Edp      `json:"edp,omitempty"`
	Cdp     *Cdp      `json:"cdp,omitempty"`
	Lldp    *Lldp     `json:"lldp,omitempty"`
	Vlans   []Vlan    `json:"vlans,omitempty"`
	Trunk   *Trunk    `json:"trunk,omitempty"`
}

func NewEquipment(ip string) *Equipment {
	return &Equipment{
		IP:    ip,
		Ports: make(map[int]*Port),
		ARP:   make(map[string]string),
	}
}

// Port returns the port stored under index.
func (e *Equipment) Port(index int) (*Port, bool) {
	p, ok := e.Ports[index]

	return p, ok
}

// AddPort stores p under index, replacing any previous port.
func (e *Equipment) AddPort(index int, p *Port) {
	e.Ports[index] = p
}

func (e *Equipment) RemovePort(index int) {
	delete(e.Ports, index)
}

// SortedPortIndexes lists port indexes in ascending order.
func (e *Equipment) SortedPortIndexes() []int {
	out := make([]int, 0, len(e.Ports))
	for i := range e.Ports {
		out = append(out, i)
	}

	sort.Ints(out)

	return out
}

// SetARP records that ip resolves to mac. Later entries win.
func (e *Equipment) SetARP(ip, mac string) {
	e.ARP[ip] = mac
}

// AddFDB appends mac to the forwarding table of the port, once.
func (p *Port) AddFDB(mac string) {
	for _, m := range p.FDB {
		if m == mac {
			return
		}
	}

	p.FDB = append(p.FDB, mac)
}

// AddVlan records a membership. The same VID may be held both as local and
// remote; an identical variant and VID is only kept once, the first
// non-empty name winning.
func (p *Port) AddVlan(v Vlan) {
	for i, existing := range p.Vlans {
		if existing.Kind() != v.Kind() || existing.VlanID() != v.VlanID() {
			continue
		}

		if existing.VlanName() == "" && v.VlanName() != "" {
			p.Vlans[i] = v
		}

		return
	}

	p.Vlans = append(p.Vlans, v)
}

// HasVlan reports whether the port holds vid with the given kind.
func (p *Port) HasVlan(kind VlanKind, vid int) bool {
	for _, v := range p.Vlans {
		if v.Kind() == kind && v.VlanID() == vid {
			return true
		}
	}

	return false
}

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T {
	return &v
}

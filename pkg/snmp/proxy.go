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

// Package snmp provides the per-equipment SNMP session used by collectors:
// single-shot GET and subtree walks that survive agents returning
// out-of-order or repeated OIDs.
package snmp

import (
	"context"
	"strings"

	"github.com/gosnmp/gosnmp"
)

const defaultMaxRepetitions = 16

// ProxyOptions controls how a Proxy walks tables.
type ProxyOptions struct {
	// NoBulk forces GETNEXT even on SNMPv2c, for agents with a broken GETBULK.
	NoBulk         bool
	MaxRepetitions uint32
}

// Proxy is a session to one SNMP agent. Community and version are mutable
// between calls; a Proxy must not be shared by concurrent explorations.
type Proxy struct {
	ip             string
	agent          Agent
	community      string
	version        gosnmp.SnmpVersion
	bulk           bool
	maxRepetitions uint32
}

// NewProxy wraps a connected agent.
func NewProxy(ip string, agent Agent, community string, version gosnmp.SnmpVersion, opts ProxyOptions) *Proxy {
	if opts.MaxRepetitions == 0 {
		opts.MaxRepetitions = defaultMaxRepetitions
	}

	p := &Proxy{
		ip:             ip,
		agent:          agent,
		bulk:           !opts.NoBulk,
		maxRepetitions: opts.MaxRepetitions,
	}

	p.SetCommunity(community)
	p.SetVersion(version)

	return p
}

func (p *Proxy) IP() string {
	return p.ip
}

func (p *Proxy) Community() string {
	return p.community
}

// SetCommunity changes the community used by subsequent requests.
func (p *Proxy) SetCommunity(community string) {
	p.community = community
	p.agent.SetCommunity(community)
}

func (p *Proxy) Version() gosnmp.SnmpVersion {
	return p.version
}

// SetVersion changes the protocol version used by subsequent requests.
func (p *Proxy) SetVersion(version gosnmp.SnmpVersion) {
	p.version = version
	p.agent.SetVersion(version)
}

// Close releases the underlying transport.
func (p *Proxy) Close() error {
	return p.agent.Close()
}

// Get fetches the given OIDs in a single request. Varbinds the agent
// reports as missing are left out of the result.
func (p *Proxy) Get(ctx context.Context, oids ...string) (Table, error) {
	if len(oids) == 0 {
		return nil, ErrEmptyOIDSet
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	requested := make([]string, len(oids))
	for i, oid := range oids {
		requested[i] = NormalizeOID(oid)
	}

	pkt, err := p.agent.Get(requested)
	if err != nil {
		return nil, &ProtocolError{Op: "get", OID: strings.Join(requested, ","), Err: err}
	}

	if pkt.Error != gosnmp.NoError {
		return nil, &ProtocolError{Op: "get", OID: strings.Join(requested, ","), Status: pkt.Error}
	}

	result := make(Table, len(pkt.Variables))

	for _, v := range pkt.Variables {
		if isException(v) {
			continue
		}

		result[NormalizeOID(v.Name)] = v
	}

	return result, nil
}

// Walk returns every OID strictly below base.
//
// The next request is anchored on the greatest OID of the previous batch
// that is strictly greater than the current anchor. The walk ends on the
// first OID outside the subtree, on an exception varbind, when a batch
// brings nothing new, or when no OID moved past the anchor.
func (p *Proxy) Walk(ctx context.Context, base string) (Table, error) {
	base = NormalizeOID(base)

	baseArcs, err := ParseOID(base)
	if err != nil {
		return nil, err
	}

	result := make(Table)
	anchor := baseArcs

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pkt, err := p.next(FormatOID(anchor))
		if err != nil {
			return nil, &ProtocolError{Op: "walk", OID: base, Err: err}
		}

		if pkt.Error != gosnmp.NoError {
			// SNMPv1 agents signal the end of the MIB view this way.
			if pkt.Error == gosnmp.NoSuchName {
				return result, nil
			}

			return nil, &ProtocolError{Op: "walk", OID: base, Status: pkt.Error}
		}

		next, fresh, done := absorb(result, pkt.Variables, baseArcs, anchor)
		if done || fresh == 0 || next == nil {
			return result, nil
		}

		anchor = next
	}
}

func (p *Proxy) next(oid string) (*gosnmp.SnmpPacket, error) {
	if p.bulk && p.version != gosnmp.Version1 {
		return p.agent.GetBulk([]string{oid}, 0, p.maxRepetitions)
	}

	return p.agent.GetNext([]string{oid})
}

func absorb(acc Table, vars []gosnmp.SnmpPDU, base, anchor []int) (next []int, fresh int, done bool) {
	for _, v := range vars {
		if isException(v) {
			done = true

			continue
		}

		arcs, err := ParseOID(v.Name)
		if err != nil || !InSubtree(arcs, base) {
			done = true

			continue
		}

		name := FormatOID(arcs)
		if _, seen := acc[name]; !seen {
			v.Name = name
			acc[name] = v
			fresh++
		}

		if CompareOIDs(arcs, anchor) > 0 && (next == nil || CompareOIDs(arcs, next) > 0) {
			next = arcs
		}
	}

	return next, fresh, done
}

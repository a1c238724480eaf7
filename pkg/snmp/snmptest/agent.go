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

// Package snmptest provides an in-memory SNMP agent for tests.
package snmptest

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/gosnmp/gosnmp"

	"github.com/carverauto/wiremaps/pkg/snmp"
)

// ErrTimeout is what the simulated agent returns for an unknown community
// or a disallowed version, mirroring a silent real agent.
var ErrTimeout = errors.New("request timeout (after 0 retries)")

var errBulkOnV1 = errors.New("GETBULK not supported in SNMPv1")

// Mode selects how batches are returned.
type Mode int

const (
	// Ordered returns successors in OID order.
	Ordered Mode = iota
	// Reversed returns each batch in reverse OID order.
	Reversed
	// Regress starts every batch with the requested OID itself when it exists.
	Regress
	// RepeatLast returns the last OID of the data forever once the data is
	// exhausted instead of signalling the end of the MIB view.
	RepeatLast
)

type access struct {
	versions map[gosnmp.SnmpVersion]bool
	data     *Dataset
}

type failure struct {
	prefix string
	err    error
	status gosnmp.SNMPError
}

// Agent is a simulated SNMP agent implementing snmp.Agent.
type Agent struct {
	mu          sync.Mutex
	primary     *Dataset
	communities map[string]*access
	failures    []failure
	community   string
	version     gosnmp.SnmpVersion
	mode        Mode
	requests    int
	closed      bool

	// OnRequest, when set, runs before every request outside the agent lock.
	OnRequest func(op string, oids []string)
}

var _ snmp.Agent = (*Agent)(nil)

// NewAgent creates an agent answering community with both SNMPv1 and
// SNMPv2c. The returned agent's Data is served to that community.
func NewAgent(community string) *Agent {
	a := &Agent{
		communities: make(map[string]*access),
		version:     gosnmp.Version2c,
	}

	a.primary = a.AddCommunity(community, gosnmp.Version1, gosnmp.Version2c)

	return a
}

// NewSilentAgent creates an agent that accepts no community at all.
func NewSilentAgent() *Agent {
	return &Agent{
		primary:     NewDataset(),
		communities: make(map[string]*access),
		version:     gosnmp.Version2c,
	}
}

// Data returns the dataset of the community given to NewAgent.
func (a *Agent) Data() *Dataset {
	return a.primary
}

// AddCommunity accepts community for the given versions and returns the
// dataset served to it. An empty versions list accepts every version.
func (a *Agent) AddCommunity(community string, versions ...gosnmp.SnmpVersion) *Dataset {
	a.mu.Lock()
	defer a.mu.Unlock()

	if acc, ok := a.communities[community]; ok {
		return acc.data
	}

	acc := &access{data: NewDataset()}

	if len(versions) > 0 {
		acc.versions = make(map[gosnmp.SnmpVersion]bool, len(versions))
		for _, v := range versions {
			acc.versions[v] = true
		}
	}

	a.communities[community] = acc

	return acc.data
}

// ShareCommunity serves the primary dataset to another community.
func (a *Agent) ShareCommunity(community string, versions ...gosnmp.SnmpVersion) {
	a.AddCommunity(community, versions...)

	a.mu.Lock()
	a.communities[community].data = a.primary
	a.mu.Unlock()
}

// SetMode changes how batches are returned.
func (a *Agent) SetMode(m Mode) {
	a.mu.Lock()
	a.mode = m
	a.mu.Unlock()
}

// FailOn makes every request starting under prefix fail with a transport error.
func (a *Agent) FailOn(prefix string, err error) {
	a.mu.Lock()
	a.failures = append(a.failures, failure{prefix: snmp.NormalizeOID(prefix), err: err})
	a.mu.Unlock()
}

// StatusOn makes every request starting under prefix answer with an SNMP
// error status.
func (a *Agent) StatusOn(prefix string, status gosnmp.SNMPError) {
	a.mu.Lock()
	a.failures = append(a.failures, failure{prefix: snmp.NormalizeOID(prefix), status: status})
	a.mu.Unlock()
}

// Requests counts the requests served so far.
func (a *Agent) Requests() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.requests
}

// Closed reports whether Close was called.
func (a *Agent) Closed() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.closed
}

func (*Agent) Connect() error {
	return nil
}

func (a *Agent) Close() error {
	a.mu.Lock()
	a.closed = true
	a.mu.Unlock()

	return nil
}

func (a *Agent) SetCommunity(community string) {
	a.mu.Lock()
	a.community = community
	a.mu.Unlock()
}

func (a *Agent) SetVersion(version gosnmp.SnmpVersion) {
	a.mu.Lock()
	a.version = version
	a.mu.Unlock()
}

func (a *Agent) Get(oids []string) (*gosnmp.SnmpPacket, error) {
	data, pkt, err := a.begin("get", oids)
	if err != nil || pkt.Error != gosnmp.NoError {
		return pkt, err
	}

	for i, oid := range oids {
		pdu, ok := data.lookup(oid)
		if ok {
			pkt.Variables = append(pkt.Variables, pdu)

			continue
		}

		if pkt.Version == gosnmp.Version1 {
			pkt.Error = gosnmp.NoSuchName
			pkt.ErrorIndex = uint8(i + 1)
			pkt.Variables = nil

			return pkt, nil
		}

		pkt.Variables = append(pkt.Variables, gosnmp.SnmpPDU{Name: snmp.NormalizeOID(oid), Type: gosnmp.NoSuchObject})
	}

	return pkt, nil
}

func (a *Agent) GetNext(oids []string) (*gosnmp.SnmpPacket, error) {
	data, pkt, err := a.begin("getnext", oids)
	if err != nil || pkt.Error != gosnmp.NoError {
		return pkt, err
	}

	for _, oid := range oids {
		batch := a.successors(data, oid, 1)
		if len(batch) > 0 {
			pkt.Variables = append(pkt.Variables, batch[0])

			continue
		}

		if pkt.Version == gosnmp.Version1 {
			pkt.Error = gosnmp.NoSuchName
			pkt.ErrorIndex = 1
			pkt.Variables = nil

			return pkt, nil
		}

		pkt.Variables = append(pkt.Variables, gosnmp.SnmpPDU{Name: snmp.NormalizeOID(oid), Type: gosnmp.EndOfMibView})
	}

	return pkt, nil
}

func (a *Agent) GetBulk(oids []string, _ uint8, maxRepetitions uint32) (*gosnmp.SnmpPacket, error) {
	if a.currentVersion() == gosnmp.Version1 {
		return nil, errBulkOnV1
	}

	data, pkt, err := a.begin("getbulk", oids)
	if err != nil || pkt.Error != gosnmp.NoError {
		return pkt, err
	}

	for _, oid := range oids {
		batch := a.successors(data, oid, int(maxRepetitions))
		if len(batch) < int(maxRepetitions) && a.currentMode() != RepeatLast {
			batch = append(batch, gosnmp.SnmpPDU{Name: snmp.NormalizeOID(oid), Type: gosnmp.EndOfMibView})
		}

		pkt.Variables = append(pkt.Variables, batch...)
	}

	return pkt, nil
}

func (a *Agent) currentVersion() gosnmp.SnmpVersion {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.version
}

func (a *Agent) currentMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.mode
}

// begin authenticates the request and applies injected failures.
func (a *Agent) begin(op string, oids []string) (*Dataset, *gosnmp.SnmpPacket, error) {
	if a.OnRequest != nil {
		a.OnRequest(op, oids)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.requests++

	acc, ok := a.communities[a.community]
	if !ok || (acc.versions != nil && !acc.versions[a.version]) {
		return nil, nil, ErrTimeout
	}

	pkt := &gosnmp.SnmpPacket{Version: a.version, Community: a.community, Error: gosnmp.NoError}

	if len(oids) > 0 {
		first := snmp.NormalizeOID(oids[0])

		for _, f := range a.failures {
			if first != f.prefix && !strings.HasPrefix(first, f.prefix+".") {
				continue
			}

			if f.err != nil {
				return nil, nil, f.err
			}

			pkt.Error = f.status
			pkt.ErrorIndex = 1

			return acc.data, pkt, nil
		}
	}

	return acc.data, pkt, nil
}

func (a *Agent) successors(data *Dataset, oid string, n int) []gosnmp.SnmpPDU {
	start, err := snmp.ParseOID(oid)
	if err != nil {
		return nil
	}

	mode := a.currentMode()
	sorted := data.sorted()

	var batch []gosnmp.SnmpPDU

	for _, e := range sorted {
		if len(batch) >= n {
			break
		}

		c := snmp.CompareOIDs(e.arcs, start)
		if c > 0 || (mode == Regress && c == 0) {
			batch = append(batch, e.pdu)
		}
	}

	switch mode {
	case Reversed:
		for i, j := 0, len(batch)-1; i < j; i, j = i+1, j-1 {
			batch[i], batch[j] = batch[j], batch[i]
		}
	case RepeatLast:
		if len(batch) == 0 && len(sorted) > 0 {
			batch = append(batch, sorted[len(sorted)-1].pdu)
		}
	case Ordered, Regress:
	}

	return batch
}

type entry struct {
	arcs []int
	pdu  gosnmp.SnmpPDU
}

// Dataset is the MIB view served to one community.
type Dataset struct {
	mu   sync.Mutex
	pdus map[string]gosnmp.SnmpPDU
}

func NewDataset() *Dataset {
	return &Dataset{pdus: make(map[string]gosnmp.SnmpPDU)}
}

// Set stores a raw varbind.
func (d *Dataset) Set(oid string, typ gosnmp.Asn1BER, value interface{}) *Dataset {
	oid = snmp.NormalizeOID(oid)

	d.mu.Lock()
	d.pdus[oid] = gosnmp.SnmpPDU{Name: oid, Type: typ, Value: value}
	d.mu.Unlock()

	return d
}

func (d *Dataset) Int(oid string, v int) *Dataset {
	return d.Set(oid, gosnmp.Integer, v)
}

func (d *Dataset) Gauge(oid string, v uint) *Dataset {
	return d.Set(oid, gosnmp.Gauge32, v)
}

func (d *Dataset) Str(oid, v string) *Dataset {
	return d.Set(oid, gosnmp.OctetString, []byte(v))
}

func (d *Dataset) Octets(oid string, v []byte) *Dataset {
	return d.Set(oid, gosnmp.OctetString, v)
}

func (d *Dataset) OID(oid, v string) *Dataset {
	return d.Set(oid, gosnmp.ObjectIdentifier, snmp.NormalizeOID(v))
}

func (d *Dataset) IP(oid, v string) *Dataset {
	return d.Set(oid, gosnmp.IPAddress, v)
}

// System fills the MIB-II system group.
func (d *Dataset) System(descr, objectID, name, location string) *Dataset {
	return d.Str(".1.3.6.1.2.1.1.1.0", descr).
		OID(".1.3.6.1.2.1.1.2.0", objectID).
		Str(".1.3.6.1.2.1.1.5.0", name).
		Str(".1.3.6.1.2.1.1.6.0", location)
}

// Len returns the number of stored varbinds.
func (d *Dataset) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.pdus)
}

func (d *Dataset) lookup(oid string) (gosnmp.SnmpPDU, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	pdu, ok := d.pdus[snmp.NormalizeOID(oid)]

	return pdu, ok
}

func (d *Dataset) sorted() []entry {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]entry, 0, len(d.pdus))

	for name, pdu := range d.pdus {
		arcs, err := snmp.ParseOID(name)
		if err != nil {
			continue
		}

		out = append(out, entry{arcs: arcs, pdu: pdu})
	}

	sort.Slice(out, func(i, j int) bool {
		return snmp.CompareOIDs(out[i].arcs, out[j].arcs) < 0
	})

	return out
}

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

package snmp

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/gosnmp/gosnmp"
)

const macLength = 6

// Table maps a full OID (leading-dot form) to the varbind the agent
// returned for it.
type Table map[string]gosnmp.SnmpPDU

// Row is one varbind of a column, with the index arcs that follow the
// column OID.
type Row struct {
	Index []int
	PDU   gosnmp.SnmpPDU
}

// Column returns the rows under base sorted in OID order.
func (t Table) Column(base string) []Row {
	b, err := ParseOID(base)
	if err != nil {
		return nil
	}

	rows := make([]Row, 0)

	for name, pdu := range t {
		o, err := ParseOID(name)
		if err != nil || !InSubtree(o, b) {
			continue
		}

		rows = append(rows, Row{Index: o[len(b):], PDU: pdu})
	}

	sort.Slice(rows, func(i, j int) bool {
		return CompareOIDs(rows[i].Index, rows[j].Index) < 0
	})

	return rows
}

// Lookup fetches the varbind stored under oid.
func (t Table) Lookup(oid string) (gosnmp.SnmpPDU, bool) {
	pdu, ok := t[NormalizeOID(oid)]

	return pdu, ok
}

// Merge copies other into t.
func (t Table) Merge(other Table) {
	for k, v := range other {
		t[k] = v
	}
}

// Last returns the final index arc, or -1 for an empty index.
func (r Row) Last() int {
	if len(r.Index) == 0 {
		return -1
	}

	return r.Index[len(r.Index)-1]
}

// First returns the leading index arc, or -1 for an empty index.
func (r Row) First() int {
	if len(r.Index) == 0 {
		return -1
	}

	return r.Index[0]
}

func (r Row) Int() (int, bool)      { return AsInt(r.PDU) }
func (r Row) Text() (string, bool)  { return AsString(r.PDU) }
func (r Row) Bytes() ([]byte, bool) { return AsBytes(r.PDU) }
func (r Row) MAC() (string, bool)   { return AsMAC(r.PDU) }

// AsInt converts numeric varbinds. Counters above the int range saturate.
func AsInt(pdu gosnmp.SnmpPDU) (int, bool) {
	switch pdu.Type {
	case gosnmp.Integer:
		v, ok := pdu.Value.(int)

		return v, ok
	case gosnmp.Counter32, gosnmp.Gauge32, gosnmp.TimeTicks, gosnmp.Uinteger32, gosnmp.Counter64:
		u := gosnmp.ToBigInt(pdu.Value).Uint64()
		if u > math.MaxInt {
			return math.MaxInt, true
		}

		return int(u), true
	default:
		return 0, false
	}
}

// AsUint64 converts unsigned counters and gauges.
func AsUint64(pdu gosnmp.SnmpPDU) (uint64, bool) {
	switch pdu.Type {
	case gosnmp.Counter32, gosnmp.Gauge32, gosnmp.TimeTicks, gosnmp.Uinteger32, gosnmp.Counter64:
		return gosnmp.ToBigInt(pdu.Value).Uint64(), true
	case gosnmp.Integer:
		v, ok := pdu.Value.(int)
		if !ok || v < 0 {
			return 0, false
		}

		return uint64(v), true
	default:
		return 0, false
	}
}

// AsString renders octet strings, OIDs and IP addresses. Trailing NUL bytes
// sent by some agents are dropped.
func AsString(pdu gosnmp.SnmpPDU) (string, bool) {
	switch pdu.Type {
	case gosnmp.OctetString:
		b, ok := pdu.Value.([]byte)
		if !ok {
			return "", false
		}

		return strings.TrimRight(string(b), "\x00"), true
	case gosnmp.ObjectIdentifier, gosnmp.IPAddress:
		s, ok := pdu.Value.(string)

		return s, ok
	default:
		return "", false
	}
}

// AsBytes returns the raw value of an octet string.
func AsBytes(pdu gosnmp.SnmpPDU) ([]byte, bool) {
	if pdu.Type != gosnmp.OctetString {
		return nil, false
	}

	b, ok := pdu.Value.([]byte)

	return b, ok
}

// AsMAC renders a six octet string as lowercase colon-hex.
func AsMAC(pdu gosnmp.SnmpPDU) (string, bool) {
	b, ok := AsBytes(pdu)
	if !ok || len(b) != macLength {
		return "", false
	}

	return FormatMAC(b), true
}

// FormatMAC renders octets as lowercase colon-hex.
func FormatMAC(b []byte) string {
	parts := make([]string, len(b))
	for i, octet := range b {
		parts[i] = fmt.Sprintf("%02x", octet)
	}

	return strings.Join(parts, ":")
}

// MACFromArcs renders six OID arcs (each 0-255) as a MAC address.
func MACFromArcs(arcs []int) (string, bool) {
	if len(arcs) != macLength {
		return "", false
	}

	b := make([]byte, macLength)

	for i, a := range arcs {
		if a < 0 || a > math.MaxUint8 {
			return "", false
		}

		b[i] = byte(a)
	}

	return FormatMAC(b), true
}

// IPv4FromArcs renders four OID arcs as a dotted quad.
func IPv4FromArcs(arcs []int) (string, bool) {
	if len(arcs) != 4 {
		return "", false
	}

	for _, a := range arcs {
		if a < 0 || a > math.MaxUint8 {
			return "", false
		}
	}

	return fmt.Sprintf("%d.%d.%d.%d", arcs[0], arcs[1], arcs[2], arcs[3]), true
}

func isException(pdu gosnmp.SnmpPDU) bool {
	switch pdu.Type {
	case gosnmp.NoSuchObject, gosnmp.NoSuchInstance, gosnmp.EndOfMibView:
		return true
	default:
		return false
	}
}

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
	"testing"

	"github.com/gosnmp/gosnmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareOIDs(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{a: ".1.3.6.1.2.1.2.2.1.2.10", b: ".1.3.6.1.2.1.2.2.1.2.9", want: 1},
		{a: ".1.3.6.1.2.1.2.2.1.2", b: ".1.3.6.1.2.1.2.2.1.2.1", want: -1},
		{a: "1.3.6.1", b: ".1.3.6.1", want: 0},
		{a: ".1.3.6.1.2.1.2.2.1.3.1", b: ".1.3.6.1.2.1.2.2.1.2.99", want: 1},
	}

	for _, tt := range tests {
		a, err := ParseOID(tt.a)
		require.NoError(t, err)

		b, err := ParseOID(tt.b)
		require.NoError(t, err)

		assert.Equal(t, tt.want, CompareOIDs(a, b), "%s vs %s", tt.a, tt.b)
	}
}

func TestParseOIDRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", ".", "1.3.x", "1..3", "1.-3"} {
		_, err := ParseOID(in)
		assert.ErrorIs(t, err, ErrInvalidOID, in)
	}
}

func TestNormalizeOID(t *testing.T) {
	assert.Equal(t, ".1.3.6.1", NormalizeOID("1.3.6.1"))
	assert.Equal(t, ".1.3.6.1", NormalizeOID(" .1.3.6.1. "))
	assert.Empty(t, NormalizeOID(""))
}

func TestSuffixAndSubtree(t *testing.T) {
	assert.Equal(t, []int{5, 0, 17, 1}, Suffix(".1.3.6.1.2.1.17.7.1.5.0.17.1", ".1.3.6.1.2.1.17.7.1"))
	assert.Nil(t, Suffix(".1.3.6.1.2.1.17", ".1.3.6.1.2.1.17"))
	assert.Nil(t, Suffix(".1.3.6.1.2.1.18.1", ".1.3.6.1.2.1.17"))
}

func TestTableColumnIsSorted(t *testing.T) {
	table := Table{
		".1.3.6.1.2.1.2.2.1.8.10": {Name: ".1.3.6.1.2.1.2.2.1.8.10", Type: gosnmp.Integer, Value: 2},
		".1.3.6.1.2.1.2.2.1.8.2":  {Name: ".1.3.6.1.2.1.2.2.1.8.2", Type: gosnmp.Integer, Value: 1},
		".1.3.6.1.2.1.2.2.1.7.2":  {Name: ".1.3.6.1.2.1.2.2.1.7.2", Type: gosnmp.Integer, Value: 1},
	}

	rows := table.Column(".1.3.6.1.2.1.2.2.1.8")
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].Last())
	assert.Equal(t, 10, rows[1].Last())

	v, ok := rows[1].Int()
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestValueConversions(t *testing.T) {
	mac, ok := AsMAC(gosnmp.SnmpPDU{Type: gosnmp.OctetString, Value: []byte{0x00, 0x1B, 0x21, 0xAA, 0xbb, 0x0c}})
	require.True(t, ok)
	assert.Equal(t, "00:1b:21:aa:bb:0c", mac)

	_, ok = AsMAC(gosnmp.SnmpPDU{Type: gosnmp.OctetString, Value: []byte{1, 2, 3}})
	assert.False(t, ok)

	s, ok := AsString(gosnmp.SnmpPDU{Type: gosnmp.OctetString, Value: []byte("sw1\x00")})
	require.True(t, ok)
	assert.Equal(t, "sw1", s)

	speed, ok := AsInt(gosnmp.SnmpPDU{Type: gosnmp.Gauge32, Value: uint(4294967295)})
	require.True(t, ok)
	assert.Equal(t, 4294967295, speed)

	_, ok = AsInt(gosnmp.SnmpPDU{Type: gosnmp.OctetString, Value: []byte("1")})
	assert.False(t, ok)

	m, ok := MACFromArcs([]int{0, 17, 34, 51, 68, 85})
	require.True(t, ok)
	assert.Equal(t, "00:11:22:33:44:55", m)

	ip, ok := IPv4FromArcs([]int{10, 0, 0, 254})
	require.True(t, ok)
	assert.Equal(t, "10.0.0.254", ip)

	_, ok = IPv4FromArcs([]int{10, 0, 256, 1})
	assert.False(t, ok)
}

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

package collectors

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/wiremaps/pkg/models"
	"github.com/carverauto/wiremaps/pkg/snmp"
)

func TestPortAndFdbEndToEnd(t *testing.T) {
	f := newFixture()
	f.iface(1, ifTypeEthernetCsmacd, "Gi0/1")
	f.data.Int(oid(oidDot1dBasePortIfIndex, 5), 1)
	f.data.Int(oid(OidDot1dTpFdbPort, 0x00, 0x11, 0x22, 0x33, 0x44, 0x55), 5)

	ctx := context.Background()

	require.NoError(t, (&PortCollector{Equipment: f.eq, Proxy: f.proxy}).Collect(ctx))
	require.NoError(t, (&FdbCollector{Equipment: f.eq, Proxy: f.proxy}).Collect(ctx))

	p, ok := f.eq.Port(1)
	require.True(t, ok)
	assert.Equal(t, "Gi0/1", p.Name)
	assert.Equal(t, models.PortUp, p.State)
	assert.Equal(t, []string{"00:11:22:33:44:55"}, p.FDB)
}

func TestPortCollectorTables(t *testing.T) {
	f := newFixture()
	f.iface(1, ifTypeEthernetCsmacd, "eth0")
	f.iface(2, ifTypeGigabitEthernet, "ge1")
	f.iface(3, 24, "lo")
	f.iface(10, ifTypeIEEE8023adLag, "bond0")

	f.data.Str(oid(OidIfName, 1), "Eth0")
	f.data.Str(oid(OidIfAlias, 1), "uplink")
	f.data.Str(oid(OidIfAlias, 2), "")
	f.data.Int(oid(OidIfOperStatus, 2), 2)
	f.data.Octets(oid(OidIfPhysAddress, 1), []byte{0, 0x1b, 0x21, 0xaa, 0xbb, 0xcc})
	f.data.Octets(oid(OidIfPhysAddress, 2), make([]byte, 6))
	f.data.Gauge(oid(OidIfSpeed, 1), 100000000)
	f.data.Gauge(oid(OidIfSpeed, 2), ifSpeedSaturated)
	f.data.Gauge(oid(OidIfSpeed, 10), ifSpeedSaturated)
	f.data.Gauge(oid(OidIfHighSpeed, 10), 20000)

	trunks := TrunkMap{10: {1, 2}}

	c := &PortCollector{Equipment: f.eq, Proxy: f.proxy, Trunks: trunks, NameOID: OidIfName}
	require.NoError(t, c.Collect(context.Background()))

	assert.Equal(t, []int{1, 2, 10}, f.eq.SortedPortIndexes())

	p1, _ := f.eq.Port(1)
	assert.Equal(t, "Eth0", p1.Name)
	assert.Equal(t, "uplink", *p1.Alias)
	assert.Equal(t, "00:1b:21:aa:bb:cc", *p1.MAC)
	assert.Equal(t, 100, *p1.Speed)

	p2, _ := f.eq.Port(2)
	assert.Equal(t, "ge1", p2.Name, "falls back to ifDescr")
	assert.Equal(t, models.PortDown, p2.State)
	assert.Nil(t, p2.Alias)
	assert.Nil(t, p2.MAC)
	assert.Equal(t, 10000, *p2.Speed)

	p10, _ := f.eq.Port(10)
	assert.Equal(t, 20000, *p10.Speed)
}

func TestPortSpeed(t *testing.T) {
	tests := []struct {
		name      string
		ifSpeed   int
		highSpeed int
		want      int
		wantOK    bool
	}{
		{"legacy counter", 1000000000, 0, 1000, true},
		{"high speed wins", 1000000000, 2500, 2500, true},
		{"saturated with high speed", ifSpeedSaturated, 40000, 40000, true},
		{"saturated alone", ifSpeedSaturated, 0, 10000, true},
		{"unknown", 0, 0, 0, false},
		{"below one megabit", 64000, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := portSpeed(tt.ifSpeed, tt.highSpeed)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModuloNormalizationIsSharedAcrossCollectors(t *testing.T) {
	f := newFixture()
	f.iface(145, ifTypeEthernetCsmacd, "port 17")
	f.iface(128, ifTypeEthernetCsmacd, "management")
	f.data.Int(oid(OidDot1dTpFdbPort, 0, 1, 2, 3, 4, 5), 145)
	f.data.Int(oid(OidDot1dTpFdbPort, 0, 1, 2, 3, 4, 6), 128)

	n := Modulo(128)
	ctx := context.Background()

	require.NoError(t, (&PortCollector{Equipment: f.eq, Proxy: f.proxy, Normalize: n}).Collect(ctx))
	require.NoError(t, (&FdbCollector{Equipment: f.eq, Proxy: f.proxy, Normalize: n}).Collect(ctx))

	assert.Equal(t, []int{17}, f.eq.SortedPortIndexes())

	p, _ := f.eq.Port(17)
	assert.Equal(t, "port 17", p.Name)
	assert.Equal(t, []string{"00:01:02:03:04:05"}, p.FDB)
}

func TestPortCollectorPropagatesProtocolErrors(t *testing.T) {
	f := newFixture()
	f.iface(1, ifTypeEthernetCsmacd, "eth0")
	f.agent.FailOn(OidIfOperStatus, errors.New("connection refused"))

	err := (&PortCollector{Equipment: f.eq, Proxy: f.proxy}).Collect(context.Background())
	require.Error(t, err)
	assert.True(t, snmp.IsProtocolError(err))
}

func TestEmptyDeviceContributesNothing(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	collectors := []Collector{
		&PortCollector{Equipment: f.eq, Proxy: f.proxy},
		&FdbCollector{Equipment: f.eq, Proxy: f.proxy},
		&ArpCollector{Equipment: f.eq, Proxy: f.proxy},
		&TrunkCollector{Proxy: f.proxy, Trunks: TrunkMap{}},
		NewRFC2674VlanCollector(f.eq, f.proxy, nil),
		&LldpCollector{Equipment: f.eq, Proxy: f.proxy, Clean: true},
		&CdpCollector{Equipment: f.eq, Proxy: f.proxy},
		&MauSpeedCollector{Equipment: f.eq, Proxy: f.proxy},
	}

	for _, c := range collectors {
		require.NoError(t, c.Collect(ctx))
	}

	assert.Empty(t, f.eq.Ports)
	assert.Empty(t, f.eq.ARP)
}

func TestArpCollector(t *testing.T) {
	f := newFixture()
	f.data.Octets(oid(oidIPNetToMediaPhysAddress, 3, 10, 0, 0, 1), []byte{0xde, 0xad, 0xbe, 0xef, 0, 1})
	f.data.Octets(oid(oidIPNetToMediaPhysAddress, 3, 10, 0, 0, 2), []byte{1, 2, 3})

	require.NoError(t, (&ArpCollector{Equipment: f.eq, Proxy: f.proxy}).Collect(context.Background()))

	assert.Equal(t, map[string]string{"10.0.0.1": "de:ad:be:ef:00:01"}, f.eq.ARP)
}

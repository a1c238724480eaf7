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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/wiremaps/pkg/models"
)

func TestMauType(t *testing.T) {
	tests := []struct {
		code   int
		speed  int
		duplex models.Duplex
	}{
		{2, 10, ""},
		{14, 100, ""},
		{10, 10, models.DuplexHalf},
		{11, 10, models.DuplexFull},
		{15, 100, models.DuplexHalf},
		{16, 100, models.DuplexFull},
		{29, 1000, models.DuplexHalf},
		{30, 1000, models.DuplexFull},
		{35, 10000, models.DuplexFull},
		{40, 10000, models.DuplexFull},
	}

	for _, tt := range tests {
		speed, duplex, ok := MauType(tt.code)
		require.True(t, ok, "code %d", tt.code)
		assert.Equal(t, tt.speed, speed, "code %d", tt.code)
		assert.Equal(t, tt.duplex, duplex, "code %d", tt.code)
	}

	for _, code := range []int{0, 1, 41} {
		_, _, ok := MauType(code)
		assert.False(t, ok, "code %d", code)
	}
}

func TestMauSpeedCollector(t *testing.T) {
	f := newFixture()
	f.port(1, "eth0")
	f.port(2, "eth1")

	f.data.OID(oid(oidIfMauType, 1, 1), ".1.3.6.1.2.1.26.4.16")
	f.data.OID(oid(oidIfMauType, 2, 1), ".1.3.6.1.2.1.26.4.29")
	f.data.Int(oid(oidIfMauAutoNegAdminStatus, 1, 1), 1)
	f.data.Int(oid(oidIfMauAutoNegAdminStatus, 2, 1), 2)

	require.NoError(t, (&MauSpeedCollector{Equipment: f.eq, Proxy: f.proxy}).Collect(context.Background()))

	p1, _ := f.eq.Port(1)
	assert.Equal(t, 100, *p1.Speed)
	assert.Equal(t, models.DuplexFull, *p1.Duplex)
	assert.True(t, *p1.Autoneg)

	p2, _ := f.eq.Port(2)
	assert.Equal(t, 1000, *p2.Speed)
	assert.Equal(t, models.DuplexHalf, *p2.Duplex)
	assert.False(t, *p2.Autoneg)
}

func TestLldpSpeedCollector(t *testing.T) {
	f := newFixture()
	f.port(1, "eth0")
	f.data.Int(oid(oidLldpXdot3LocOperMauType, 1), 30)
	f.data.Int(oid(oidLldpXdot3LocAutoNegEnable, 1), 1)
	f.data.Int(oid(oidLldpXdot3LocOperMauType, 9), 30)

	require.NoError(t, (&LldpSpeedCollector{Equipment: f.eq, Proxy: f.proxy}).Collect(context.Background()))

	p, _ := f.eq.Port(1)
	assert.Equal(t, 1000, *p.Speed)
	assert.Equal(t, models.DuplexFull, *p.Duplex)
	assert.True(t, *p.Autoneg)
}

func TestCiscoSpeedCollector(t *testing.T) {
	f := newFixture()
	f.port(3, "Fa1/1")
	f.port(4, "Fa1/2")

	f.data.Int(oid(oidCiscoPortIfIndex, 1, 1), 3)
	f.data.Int(oid(oidCiscoPortDuplex, 1, 1), 2)
	f.data.Int(oid(oidCiscoPortAdminSpeed, 1, 1), 10000000)
	f.data.Int(oid(oidCiscoPortIfIndex, 1, 2), 4)
	f.data.Int(oid(oidCiscoPortDuplex, 1, 2), 4)

	require.NoError(t, (&CiscoSpeedCollector{Equipment: f.eq, Proxy: f.proxy}).Collect(context.Background()))

	p3, _ := f.eq.Port(3)
	assert.Equal(t, models.DuplexFull, *p3.Duplex)
	assert.False(t, *p3.Autoneg)

	p4, _ := f.eq.Port(4)
	assert.Nil(t, p4.Duplex)
	assert.True(t, *p4.Autoneg)
}

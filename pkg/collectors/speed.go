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

	"github.com/carverauto/wiremaps/pkg/models"
	"github.com/carverauto/wiremaps/pkg/snmp"
)

const (
	autonegEnabled  = 1
	autonegDisabled = 2
)

// CISCO-STACK-MIB portDuplex and portAdminSpeed values
const (
	ciscoDuplexHalf     = 1
	ciscoDuplexFull     = 2
	ciscoDuplexAuto     = 4
	ciscoSpeedAuto      = 1
	ciscoSpeedAuto10100 = 2
)

const (
	mauTypeFirst     = 2
	mauType10BaseTHD = 10
	mauType100BaseT4 = 14
	mauTypeLast      = 40
)

type mauEntry struct {
	speed  int
	duplex models.Duplex
}

// mauTypes is dot3MauType 2..40 (RFC 3636). An empty duplex means the
// type does not tell.
var mauTypes = buildMauTypes()

func buildMauTypes() map[int]mauEntry {
	m := make(map[int]mauEntry, mauTypeLast-mauTypeFirst+1)

	for code := mauTypeFirst; code < mauType10BaseTHD; code++ {
		m[code] = mauEntry{speed: 10}
	}

	m[mauType100BaseT4] = mauEntry{speed: 100}

	halfFull := []struct {
		from, to, speed int
	}{
		{10, 13, 10},
		{15, 20, 100},
		{21, 30, 1000},
	}

	for _, r := range halfFull {
		for code := r.from; code <= r.to; code++ {
			d := models.DuplexFull
			if (code-r.from)%2 == 0 {
				d = models.DuplexHalf
			}

			m[code] = mauEntry{speed: r.speed, duplex: d}
		}
	}

	for code := 31; code <= mauTypeLast; code++ {
		m[code] = mauEntry{speed: 10000, duplex: models.DuplexFull}
	}

	return m
}

// MauType decodes a dot3MauType code into Mbit/s and duplex.
func MauType(code int) (int, models.Duplex, bool) {
	e, ok := mauTypes[code]

	return e.speed, e.duplex, ok
}

func applyMau(p *models.Port, code int) {
	speed, duplex, ok := MauType(code)
	if !ok {
		return
	}

	p.Speed = models.Ptr(speed)

	if duplex != "" {
		p.Duplex = models.Ptr(duplex)
	}
}

func applyAutoneg(p *models.Port, status int) {
	switch status {
	case autonegEnabled:
		p.Autoneg = models.Ptr(true)
	case autonegDisabled:
		p.Autoneg = models.Ptr(false)
	}
}

// MauSpeedCollector reads MAU-MIB: ifMauType, indexed by interface and
// MAU index, holds an OID whose last arc is the dot3MauType code.
type MauSpeedCollector struct {
	Equipment *models.Equipment
	Proxy     Proxy
	Normalize Normalizer
}

func (c *MauSpeedCollector) Collect(ctx context.Context) error {
	types, err := walkColumn(ctx, c.Proxy, oidIfMauType)
	if err != nil {
		return err
	}

	for _, r := range types {
		p, ok := c.port(r)
		if !ok {
			continue
		}

		if code, ok := mauCode(r); ok {
			applyMau(p, code)
		}
	}

	autoneg, err := walkColumn(ctx, c.Proxy, oidIfMauAutoNegAdminStatus)
	if err != nil {
		return err
	}

	for _, r := range autoneg {
		p, ok := c.port(r)
		if !ok {
			continue
		}

		if status, ok := r.Int(); ok {
			applyAutoneg(p, status)
		}
	}

	return nil
}

func (c *MauSpeedCollector) port(r snmp.Row) (*models.Port, bool) {
	if len(r.Index) != 2 {
		return nil, false
	}

	idx, ok := c.Normalize.Apply(r.First())
	if !ok {
		return nil, false
	}

	return c.Equipment.Port(idx)
}

func mauCode(r snmp.Row) (int, bool) {
	if code, ok := r.Int(); ok {
		return code, true
	}

	s, ok := r.Text()
	if !ok {
		return 0, false
	}

	arcs, err := snmp.ParseOID(s)
	if err != nil {
		return 0, false
	}

	return arcs[len(arcs)-1], true
}

// LldpSpeedCollector reads the LLDP 802.3 extension, which reports the
// operational MAU type and autonegotiation per local port.
type LldpSpeedCollector struct {
	Equipment *models.Equipment
	Proxy     Proxy
	Normalize Normalizer
}

func (c *LldpSpeedCollector) Collect(ctx context.Context) error {
	types, err := walkInts(ctx, c.Proxy, oidLldpXdot3LocOperMauType)
	if err != nil {
		return err
	}

	for raw, code := range types {
		if p, ok := c.port(raw); ok {
			applyMau(p, code)
		}
	}

	autoneg, err := walkInts(ctx, c.Proxy, oidLldpXdot3LocAutoNegEnable)
	if err != nil {
		return err
	}

	for raw, status := range autoneg {
		if p, ok := c.port(raw); ok {
			applyAutoneg(p, status)
		}
	}

	return nil
}

func (c *LldpSpeedCollector) port(raw int) (*models.Port, bool) {
	idx, ok := c.Normalize.Apply(raw)
	if !ok {
		return nil, false
	}

	return c.Equipment.Port(idx)
}

// CiscoSpeedCollector reads duplex and autonegotiation from the
// CISCO-STACK-MIB portTable, indexed by module and port.
type CiscoSpeedCollector struct {
	Equipment *models.Equipment
	Proxy     Proxy
	Normalize Normalizer
}

func (c *CiscoSpeedCollector) Collect(ctx context.Context) error {
	ifIndexes, err := walkColumn(ctx, c.Proxy, oidCiscoPortIfIndex)
	if err != nil {
		return err
	}

	if len(ifIndexes) == 0 {
		return nil
	}

	table := snmp.Table{}

	for _, oid := range []string{oidCiscoPortDuplex, oidCiscoPortAdminSpeed} {
		t, err := c.Proxy.Walk(ctx, oid)
		if err != nil {
			return err
		}

		table.Merge(t)
	}

	for _, r := range ifIndexes {
		ifIndex, ok := r.Int()
		if !ok {
			continue
		}

		idx, ok := c.Normalize.Apply(ifIndex)
		if !ok {
			continue
		}

		p, ok := c.Equipment.Port(idx)
		if !ok {
			continue
		}

		suffix := snmp.FormatOID(r.Index)
		duplex, hasDuplex := lookupInt(table, oidCiscoPortDuplex+suffix)
		speed, hasSpeed := lookupInt(table, oidCiscoPortAdminSpeed+suffix)

		switch duplex {
		case ciscoDuplexHalf:
			p.Duplex = models.Ptr(models.DuplexHalf)
		case ciscoDuplexFull:
			p.Duplex = models.Ptr(models.DuplexFull)
		}

		if hasDuplex || hasSpeed {
			auto := duplex == ciscoDuplexAuto || speed == ciscoSpeedAuto || speed == ciscoSpeedAuto10100
			p.Autoneg = models.Ptr(auto)
		}
	}

	return nil
}

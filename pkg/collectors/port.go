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

// EthernetTypes are the ifType values treated as physical ports.
var EthernetTypes = []int{ifTypeEthernetCsmacd, ifTypeFastEther, ifTypeGigabitEthernet}

// PortCollector creates one port per ethernet-like interface, plus every
// aggregate listed in Trunks.
type PortCollector struct {
	Equipment *models.Equipment
	Proxy     Proxy
	Normalize Normalizer
	Trunks    TrunkMap

	// NameOID overrides the port name column. Defaults to ifDescr; rows
	// missing from an override fall back to ifDescr.
	NameOID string
	// AliasOID overrides the alias column. Defaults to ifAlias.
	AliasOID string
	// Types overrides EthernetTypes.
	Types []int
}

type portTables struct {
	types  map[int]int
	names  map[int]string
	descrs map[int]string
	alias  map[int]string
	oper   map[int]int
	mac    map[int]string
	speed  map[int]int
	high   map[int]int
}

func (c *PortCollector) Collect(ctx context.Context) error {
	t, err := c.walk(ctx)
	if err != nil {
		return err
	}

	accepted := make(map[int]bool)
	for _, ty := range c.types() {
		accepted[ty] = true
	}

	for _, raw := range sortedKeys(t.types) {
		idx, ok := c.Normalize.Apply(raw)
		if !ok {
			continue
		}

		if !accepted[t.types[raw]] && !c.Trunks.IsParent(idx) {
			continue
		}

		if _, exists := c.Equipment.Port(idx); exists {
			continue
		}

		c.Equipment.AddPort(idx, buildPort(raw, t))
	}

	return nil
}

func (c *PortCollector) types() []int {
	if len(c.Types) > 0 {
		return c.Types
	}

	return EthernetTypes
}

func (c *PortCollector) walk(ctx context.Context) (*portTables, error) {
	var (
		t   portTables
		err error
	)

	if t.types, err = walkInts(ctx, c.Proxy, OidIfType); err != nil {
		return nil, err
	}

	if t.descrs, err = walkStrings(ctx, c.Proxy, OidIfDescr); err != nil {
		return nil, err
	}

	t.names = t.descrs
	if c.NameOID != "" && c.NameOID != OidIfDescr {
		if t.names, err = walkStrings(ctx, c.Proxy, c.NameOID); err != nil {
			return nil, err
		}
	}

	aliasOID := c.AliasOID
	if aliasOID == "" {
		aliasOID = OidIfAlias
	}

	if t.alias, err = walkStrings(ctx, c.Proxy, aliasOID); err != nil {
		return nil, err
	}

	if t.oper, err = walkInts(ctx, c.Proxy, OidIfOperStatus); err != nil {
		return nil, err
	}

	macs, err := walkIndexed(ctx, c.Proxy, OidIfPhysAddress)
	if err != nil {
		return nil, err
	}

	t.mac = make(map[int]string, len(macs))

	for idx, pdu := range macs {
		if m, ok := snmp.AsMAC(pdu); ok && m != "00:00:00:00:00:00" {
			t.mac[idx] = m
		}
	}

	if t.speed, err = walkInts(ctx, c.Proxy, OidIfSpeed); err != nil {
		return nil, err
	}

	if t.high, err = walkInts(ctx, c.Proxy, OidIfHighSpeed); err != nil {
		return nil, err
	}

	return &t, nil
}

func buildPort(raw int, t *portTables) *models.Port {
	p := &models.Port{
		Name:  t.names[raw],
		State: models.PortDown,
	}

	if p.Name == "" {
		p.Name = t.descrs[raw]
	}

	if t.oper[raw] == ifOperStatusUp {
		p.State = models.PortUp
	}

	if a := t.alias[raw]; a != "" {
		p.Alias = models.Ptr(a)
	}

	if m, ok := t.mac[raw]; ok {
		p.MAC = models.Ptr(m)
	}

	if s, ok := portSpeed(t.speed[raw], t.high[raw]); ok {
		p.Speed = models.Ptr(s)
	}

	return p
}

// portSpeed returns Mbit/s. ifSpeed saturates on 10G+ media, where
// ifHighSpeed is preferred and a fixed 10 Gbit/s is assumed without it.
func portSpeed(ifSpeed, ifHighSpeed int) (int, bool) {
	if ifHighSpeed > 0 {
		return ifHighSpeed, true
	}

	if ifSpeed == ifSpeedSaturated {
		return saturatedFallbackMbps, true
	}

	mbps := ifSpeed / bitsPerMbit

	return mbps, mbps > 0
}

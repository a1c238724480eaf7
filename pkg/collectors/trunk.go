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

// TrunkCollector finds link aggregates through IF-MIB: interfaces typed
// propMultiplexor or ieee8023adLag, with members from ifStackTable.
// Aggregates without any member are ignored.
type TrunkCollector struct {
	Proxy     Proxy
	Normalize Normalizer
	Trunks    TrunkMap
}

func (c *TrunkCollector) Collect(ctx context.Context) error {
	types, err := walkInts(ctx, c.Proxy, OidIfType)
	if err != nil {
		return err
	}

	aggregates := make(map[int]bool)

	for idx, ty := range types {
		if ty == ifTypePropMultiplexor || ty == ifTypeIEEE8023adLag {
			aggregates[idx] = true
		}
	}

	if len(aggregates) == 0 {
		return nil
	}

	stack, err := walkStack(ctx, c.Proxy)
	if err != nil {
		return err
	}

	for _, link := range stack {
		if !aggregates[link.higher] {
			continue
		}

		parent, ok := c.Normalize.Apply(link.higher)
		if !ok {
			continue
		}

		member, ok := c.Normalize.Apply(link.lower)
		if !ok || member == parent {
			continue
		}

		c.Trunks.Add(parent, member)
	}

	return nil
}

type stackLink struct {
	higher int
	lower  int
}

// walkStack returns the ifStackTable relations, skipping the top and
// bottom markers (index 0).
func walkStack(ctx context.Context, p Proxy) ([]stackLink, error) {
	rows, err := walkColumn(ctx, p, OidIfStackStatus)
	if err != nil {
		return nil, err
	}

	links := make([]stackLink, 0, len(rows))

	for _, r := range rows {
		if len(r.Index) != 2 || r.Index[0] == 0 || r.Index[1] == 0 {
			continue
		}

		links = append(links, stackLink{higher: r.Index[0], lower: r.Index[1]})
	}

	return links, nil
}

// CiscoTrunkCollector reads PAgP/LACP channel membership from
// pagpGroupIfIndex.
type CiscoTrunkCollector struct {
	Proxy     Proxy
	Normalize Normalizer
	Trunks    TrunkMap
}

func (c *CiscoTrunkCollector) Collect(ctx context.Context) error {
	groups, err := walkInts(ctx, c.Proxy, oidPagpGroupIfIndex)
	if err != nil {
		return err
	}

	for _, raw := range sortedKeys(groups) {
		group := groups[raw]
		if group == 0 || group == raw {
			continue
		}

		parent, ok := c.Normalize.Apply(group)
		if !ok {
			continue
		}

		member, ok := c.Normalize.Apply(raw)
		if !ok {
			continue
		}

		c.Trunks.Add(parent, member)
	}

	return nil
}

// NortelTrunkCollector reads MultiLink Trunking groups: a port bitmask and
// the interface index of each MLT.
type NortelTrunkCollector struct {
	Proxy     Proxy
	Normalize Normalizer
	Trunks    TrunkMap
	// Offset is the port index of the first bit of the member bitmask.
	Offset int
}

func (c *NortelTrunkCollector) Collect(ctx context.Context) error {
	members, err := walkIndexed(ctx, c.Proxy, oidRcMltPortMembers)
	if err != nil {
		return err
	}

	if len(members) == 0 {
		return nil
	}

	ifIndexes, err := walkInts(ctx, c.Proxy, oidRcMltIfIndex)
	if err != nil {
		return err
	}

	for _, mlt := range sortedKeys(members) {
		bits, ok := snmp.AsBytes(members[mlt])
		if !ok {
			continue
		}

		ifIndex, ok := ifIndexes[mlt]
		if !ok || ifIndex == 0 {
			continue
		}

		parent, ok := c.Normalize.Apply(ifIndex)
		if !ok {
			continue
		}

		for _, raw := range DecodeBitmask(bits, c.Offset) {
			if member, ok := c.Normalize.Apply(raw); ok && member != parent {
				c.Trunks.Add(parent, member)
			}
		}
	}

	return nil
}

// AssignTrunks marks every known member port with its aggregate.
func AssignTrunks(eq *models.Equipment, trunks TrunkMap) {
	for parent, members := range trunks {
		for _, m := range members {
			if p, ok := eq.Port(m); ok {
				p.Trunk = &models.Trunk{Parent: parent}
			}
		}
	}
}

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
	"fmt"
	"strings"

	"github.com/carverauto/wiremaps/pkg/logger"
	"github.com/carverauto/wiremaps/pkg/models"
	"github.com/carverauto/wiremaps/pkg/snmp"
)

// DefaultExcludedVlans are VLAN names that never carry a bridge table.
var DefaultExcludedVlans = []string{"fddi-default", "token-ring-default", "fddinet-default", "trnet-default"}

// FdbCollector reads the bridge forwarding table. Bridge ports are
// translated to interface indexes with dot1dBasePortIfIndex; when that
// table is empty the bridge port is used as the interface index.
type FdbCollector struct {
	Equipment *models.Equipment
	Proxy     Proxy
	Normalize Normalizer
	// Trunks, when set, moves addresses learned on a member to its aggregate.
	Trunks TrunkMap
	// FdbOID is dot1dTpFdbPort by default, or dot1qTpFdbPort. The MAC
	// address is always the last six index arcs.
	FdbOID string
}

func (c *FdbCollector) Collect(ctx context.Context) error {
	oid := c.FdbOID
	if oid == "" {
		oid = OidDot1dTpFdbPort
	}

	entries, err := walkColumn(ctx, c.Proxy, oid)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		return nil
	}

	bridgePorts, err := walkBridgePorts(ctx, c.Proxy)
	if err != nil {
		return err
	}

	for _, row := range entries {
		if len(row.Index) < 6 {
			continue
		}

		mac, ok := snmp.MACFromArcs(row.Index[len(row.Index)-6:])
		if !ok {
			continue
		}

		bridgePort, ok := row.Int()
		if !ok || bridgePort == 0 {
			continue
		}

		port := c.portFor(bridgePort, bridgePorts)
		if port == nil {
			continue
		}

		port.AddFDB(mac)
	}

	return nil
}

func (c *FdbCollector) portFor(bridgePort int, bridgePorts map[int]int) *models.Port {
	ifIndex := bridgePort

	if len(bridgePorts) > 0 {
		var ok bool

		if ifIndex, ok = bridgePorts[bridgePort]; !ok {
			return nil
		}
	}

	idx, ok := c.Normalize.Apply(ifIndex)
	if !ok {
		return nil
	}

	if c.Trunks != nil {
		if parent, ok := c.Trunks.ParentOf(idx); ok {
			idx = parent
		}
	}

	p, ok := c.Equipment.Port(idx)
	if !ok {
		return nil
	}

	return p
}

// CommunityFdbCollector reads one bridge table per VLAN using community
// string indexing (community@vlan). A VLAN whose walk fails contributes
// nothing. The original community is restored afterwards.
type CommunityFdbCollector struct {
	Equipment *models.Equipment
	Proxy     Proxy
	Normalize Normalizer
	Trunks    TrunkMap
	Log       logger.Logger

	// VlanOID lists VLANs, the VLAN ID being the last index arc.
	// Defaults to vtpVlanName.
	VlanOID string
	// Exclude overrides DefaultExcludedVlans.
	Exclude []string
}

func (c *CommunityFdbCollector) Collect(ctx context.Context) error {
	oid := c.VlanOID
	if oid == "" {
		oid = OidVtpVlanName
	}

	rows, err := walkColumn(ctx, c.Proxy, oid)
	if err != nil {
		return err
	}

	vids := c.vlans(rows)
	if len(vids) == 0 {
		return nil
	}

	community := c.Proxy.Community()
	defer c.Proxy.SetCommunity(community)

	for _, vid := range vids {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.Proxy.SetCommunity(fmt.Sprintf("%s@%d", community, vid))

		inner := &FdbCollector{
			Equipment: c.Equipment,
			Proxy:     c.Proxy,
			Normalize: c.Normalize,
			Trunks:    c.Trunks,
		}

		if err := inner.Collect(ctx); err != nil {
			debug(c.Log).Err(err).Int("vlan", vid).Msg("skipping VLAN bridge table")
		}
	}

	return nil
}

func (c *CommunityFdbCollector) vlans(rows []snmp.Row) []int {
	exclude := c.Exclude
	if exclude == nil {
		exclude = DefaultExcludedVlans
	}

	skip := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		skip[strings.ToLower(name)] = true
	}

	seen := make(map[int]bool)
	vids := make([]int, 0, len(rows))

	for _, r := range rows {
		name, _ := r.Text()
		if skip[strings.ToLower(name)] {
			continue
		}

		vid := r.Last()
		if vid <= 0 || seen[vid] {
			continue
		}

		seen[vid] = true
		vids = append(vids, vid)
	}

	return vids
}

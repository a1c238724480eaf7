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
	"strconv"
	"strings"
	"unicode"

	"github.com/carverauto/wiremaps/pkg/models"
	"github.com/carverauto/wiremaps/pkg/snmp"
)

// DecodeBitmask returns the port indexes encoded in a membership octet
// string. The most significant bit of the first octet is offset; each
// following bit adds one.
func DecodeBitmask(b []byte, offset int) []int {
	var ports []int

	for i, octet := range b {
		if octet == 0 {
			continue
		}

		for j := 7; j >= 0; j-- {
			if octet&(1<<uint(j)) != 0 {
				ports = append(ports, (7-j)+8*i+offset)
			}
		}
	}

	return ports
}

// VlanCollector implements the common "name table + membership bitmask"
// layout, both tables being indexed by VLAN ID.
type VlanCollector struct {
	Equipment *models.Equipment
	Proxy     Proxy
	Normalize Normalizer
	// Trunks, when set, also gives the VLAN to the aggregate of a member.
	Trunks TrunkMap

	NamesOID string
	PortsOID string
	// Offset is the port number of the first bit.
	Offset int
	// BridgePorts translates decoded bits through dot1dBasePortIfIndex.
	BridgePorts bool
}

// NewRFC2674VlanCollector reads Q-BRIDGE-MIB static VLANs. Egress bits are
// bridge ports numbered from 1.
func NewRFC2674VlanCollector(eq *models.Equipment, proxy Proxy, normalize Normalizer) *VlanCollector {
	return &VlanCollector{
		Equipment:   eq,
		Proxy:       proxy,
		Normalize:   normalize,
		NamesOID:    OidDot1qVlanStaticName,
		PortsOID:    OidDot1qVlanStaticEgress,
		Offset:      1,
		BridgePorts: true,
	}
}

// NewNortelVlanCollector reads RAPID-CITY rcVlanTable, whose member bits
// are interface indexes numbered from 0.
func NewNortelVlanCollector(eq *models.Equipment, proxy Proxy, normalize Normalizer) *VlanCollector {
	return &VlanCollector{
		Equipment: eq,
		Proxy:     proxy,
		Normalize: normalize,
		NamesOID:  OidRcVlanName,
		PortsOID:  OidRcVlanPortMembers,
	}
}

func (c *VlanCollector) Collect(ctx context.Context) error {
	members, err := walkIndexed(ctx, c.Proxy, c.PortsOID)
	if err != nil {
		return err
	}

	if len(members) == 0 {
		return nil
	}

	names, err := walkStrings(ctx, c.Proxy, c.NamesOID)
	if err != nil {
		return err
	}

	var bridgePorts map[int]int

	if c.BridgePorts {
		if bridgePorts, err = walkBridgePorts(ctx, c.Proxy); err != nil {
			return err
		}
	}

	for _, vid := range sortedKeys(members) {
		bits, ok := snmp.AsBytes(members[vid])
		if !ok {
			continue
		}

		vlan := models.LocalVlan{VID: vid, Name: names[vid]}

		for _, raw := range DecodeBitmask(bits, c.Offset) {
			ifIndex := raw

			if len(bridgePorts) > 0 {
				if ifIndex, ok = bridgePorts[raw]; !ok {
					continue
				}
			}

			assignVlan(c.Equipment, c.Normalize, c.Trunks, ifIndex, vlan)
		}
	}

	return nil
}

// assignVlan adds vlan to the port behind ifIndex and, when the port is a
// trunk member, to the aggregate too.
func assignVlan(eq *models.Equipment, normalize Normalizer, trunks TrunkMap, ifIndex int, vlan models.Vlan) {
	idx, ok := normalize.Apply(ifIndex)
	if !ok {
		return
	}

	if p, ok := eq.Port(idx); ok {
		p.AddVlan(vlan)
	}

	if trunks == nil {
		return
	}

	if parent, ok := trunks.ParentOf(idx); ok {
		if p, ok := eq.Port(parent); ok {
			p.AddVlan(vlan)
		}
	}
}

// IfStackVlanCollector derives VLANs from l2vlan interfaces stacked on top
// of a port, as Linux hosts expose "eth0.100". The VLAN ID is the trailing
// number of the upper interface description.
type IfStackVlanCollector struct {
	Equipment *models.Equipment
	Proxy     Proxy
	Normalize Normalizer
}

func (c *IfStackVlanCollector) Collect(ctx context.Context) error {
	types, err := walkInts(ctx, c.Proxy, OidIfType)
	if err != nil {
		return err
	}

	vlanIfs := make(map[int]bool)

	for idx, ty := range types {
		if ty == ifTypeL2Vlan {
			vlanIfs[idx] = true
		}
	}

	if len(vlanIfs) == 0 {
		return nil
	}

	descrs, err := walkStrings(ctx, c.Proxy, OidIfDescr)
	if err != nil {
		return err
	}

	stack, err := walkStack(ctx, c.Proxy)
	if err != nil {
		return err
	}

	for _, link := range stack {
		if !vlanIfs[link.higher] || vlanIfs[link.lower] {
			continue
		}

		name := descrs[link.higher]

		vid, ok := trailingNumber(name)
		if !ok {
			continue
		}

		assignVlan(c.Equipment, c.Normalize, nil, link.lower, models.LocalVlan{VID: vid, Name: name})
	}

	return nil
}

func trailingNumber(s string) (int, bool) {
	i := strings.LastIndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) })

	digits := s[i+1:]
	if digits == "" {
		return 0, false
	}

	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return 0, false
	}

	return n, true
}

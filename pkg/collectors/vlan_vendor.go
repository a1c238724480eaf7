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
	vlanTrunkTrunking   = 1
	extremeSlotStride   = 1000
	jnxVlanPortTagged   = 1
	jnxVlanPortUntagged = 2
)

// ciscoTrunkBitmaps holds the four vlanTrunkPortVlansEnabled columns and
// the VLAN ID of their first bit.
var ciscoTrunkBitmaps = []struct {
	oid    string
	offset int
}{
	{oidVlanTrunkPortEnabled, 0},
	{oidVlanTrunkPortEnabled2k, 1024},
	{oidVlanTrunkPortEnabled3k, 2048},
	{oidVlanTrunkPortEnabled4k, 3072},
}

// CiscoVlanCollector reads access VLANs from CISCO-VLAN-MEMBERSHIP-MIB and
// allowed VLANs of trunking ports from CISCO-VTP-MIB. Only VLANs known to
// VTP are reported.
type CiscoVlanCollector struct {
	Equipment *models.Equipment
	Proxy     Proxy
	Normalize Normalizer
	Trunks    TrunkMap
}

func (c *CiscoVlanCollector) Collect(ctx context.Context) error {
	rows, err := walkColumn(ctx, c.Proxy, OidVtpVlanName)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		return nil
	}

	names := make(map[int]string, len(rows))

	for _, r := range rows {
		name, _ := r.Text()
		names[r.Last()] = name
	}

	access, err := walkInts(ctx, c.Proxy, oidVMVlan)
	if err != nil {
		return err
	}

	for _, ifIndex := range sortedKeys(access) {
		c.add(names, ifIndex, access[ifIndex])
	}

	status, err := walkInts(ctx, c.Proxy, oidVlanTrunkPortDynStatus)
	if err != nil {
		return err
	}

	trunking := make(map[int]bool)

	for ifIndex, s := range status {
		if s == vlanTrunkTrunking {
			trunking[ifIndex] = true
		}
	}

	if len(trunking) == 0 {
		return nil
	}

	for _, bitmap := range ciscoTrunkBitmaps {
		enabled, err := walkIndexed(ctx, c.Proxy, bitmap.oid)
		if err != nil {
			return err
		}

		for _, ifIndex := range sortedKeys(enabled) {
			if !trunking[ifIndex] {
				continue
			}

			bits, ok := snmp.AsBytes(enabled[ifIndex])
			if !ok {
				continue
			}

			for _, vid := range DecodeBitmask(bits, bitmap.offset) {
				c.add(names, ifIndex, vid)
			}
		}
	}

	return nil
}

func (c *CiscoVlanCollector) add(names map[int]string, ifIndex, vid int) {
	name, ok := names[vid]
	if !ok {
		return
	}

	assignVlan(c.Equipment, c.Normalize, c.Trunks, ifIndex, models.LocalVlan{VID: vid, Name: name})
}

// ExtremeVlanCollector reads EXTREME-VLAN-MIB. Membership bitmasks are
// indexed by (vlanIfIndex, slot); bit n of slot s is interface s*1000+n+1.
type ExtremeVlanCollector struct {
	Equipment *models.Equipment
	Proxy     Proxy
	Normalize Normalizer
	Trunks    TrunkMap
}

func (c *ExtremeVlanCollector) Collect(ctx context.Context) error {
	vids, err := walkInts(ctx, c.Proxy, oidExtremeVlanIfVlanID)
	if err != nil {
		return err
	}

	if len(vids) == 0 {
		return nil
	}

	names, err := walkStrings(ctx, c.Proxy, oidExtremeVlanIfDescr)
	if err != nil {
		return err
	}

	for _, oid := range []string{oidExtremeVlanTaggedPorts, oidExtremeVlanUntaggedPorts} {
		rows, err := walkColumn(ctx, c.Proxy, oid)
		if err != nil {
			return err
		}

		for _, r := range rows {
			if len(r.Index) != 2 {
				continue
			}

			vlanIf, slot := r.Index[0], r.Index[1]

			vid, ok := vids[vlanIf]
			if !ok {
				continue
			}

			bits, ok := r.Bytes()
			if !ok {
				continue
			}

			vlan := models.LocalVlan{VID: vid, Name: names[vlanIf]}

			for _, pos := range DecodeBitmask(bits, 1) {
				assignVlan(c.Equipment, c.Normalize, c.Trunks, slot*extremeSlotStride+pos, vlan)
			}
		}
	}

	return nil
}

// JuniperVlanCollector reads JUNIPER-VLAN-MIB (EX series). Port membership
// is indexed by (vlan, bridge port).
type JuniperVlanCollector struct {
	Equipment *models.Equipment
	Proxy     Proxy
	Normalize Normalizer
	Trunks    TrunkMap
}

func (c *JuniperVlanCollector) Collect(ctx context.Context) error {
	tags, err := walkInts(ctx, c.Proxy, oidJnxExVlanTag)
	if err != nil {
		return err
	}

	if len(tags) == 0 {
		return nil
	}

	names, err := walkStrings(ctx, c.Proxy, oidJnxExVlanName)
	if err != nil {
		return err
	}

	rows, err := walkColumn(ctx, c.Proxy, oidJnxExVlanPortStatus)
	if err != nil {
		return err
	}

	bridgePorts, err := walkBridgePorts(ctx, c.Proxy)
	if err != nil {
		return err
	}

	for _, r := range rows {
		if len(r.Index) != 2 {
			continue
		}

		status, ok := r.Int()
		if !ok || (status != jnxVlanPortTagged && status != jnxVlanPortUntagged) {
			continue
		}

		vid, ok := tags[r.Index[0]]
		if !ok {
			continue
		}

		ifIndex, ok := bridgePorts[r.Index[1]]
		if !ok {
			continue
		}

		assignVlan(c.Equipment, c.Normalize, c.Trunks, ifIndex, models.LocalVlan{VID: vid, Name: names[r.Index[0]]})
	}

	return nil
}

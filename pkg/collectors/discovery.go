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
	"strconv"

	"github.com/carverauto/wiremaps/pkg/models"
	"github.com/carverauto/wiremaps/pkg/snmp"
)

const (
	sonmpSegIDPlain = 0x100
	sonmpSegIDMax   = 0x10000
	edpNeighborArcs = 8
)

// SonmpCollector reads the Nortel topology table (s5EnMsTopNmmTable),
// indexed by local slot, local port, neighbour IPv4 address and segment ID.
type SonmpCollector struct {
	Equipment *models.Equipment
	Proxy     Proxy
	// SlotPort maps the local (slot, port) to a port index. When nil the
	// port number is used as is.
	SlotPort SlotPortNormalizer
}

func (c *SonmpCollector) Collect(ctx context.Context) error {
	rows, err := walkColumn(ctx, c.Proxy, oidS5EnMsTopNmmSegID)
	if err != nil {
		return err
	}

	for _, r := range rows {
		if len(r.Index) != 7 {
			continue
		}

		slot, port := r.Index[0], r.Index[1]
		if slot == 0 || port == 0 {
			// The local switch itself.
			continue
		}

		idx, ok := c.localPort(slot, port)
		if !ok {
			continue
		}

		p, ok := c.Equipment.Port(idx)
		if !ok {
			continue
		}

		ip, ok := snmp.IPv4FromArcs(r.Index[2:6])
		if !ok {
			continue
		}

		segID, ok := r.Int()
		if !ok {
			segID = r.Index[6]
		}

		remote, ok := DecodeSegID(segID)
		if !ok {
			continue
		}

		p.Sonmp = &models.Sonmp{IP: ip, RemotePort: remote}
	}

	return nil
}

func (c *SonmpCollector) localPort(slot, port int) (int, bool) {
	if c.SlotPort == nil {
		return port, port > 0
	}

	return c.SlotPort(slot, port)
}

// DecodeSegID turns a SONMP segment identifier into the remote port name.
// Values up to 256 are a plain port number; larger values up to 0x10000
// pack the slot in the high byte. Anything above is unusable.
func DecodeSegID(segID int) (string, bool) {
	switch {
	case segID <= 0:
		return "", false
	case segID <= sonmpSegIDPlain:
		return strconv.Itoa(segID), true
	case segID <= sonmpSegIDMax:
		return fmt.Sprintf("%d/%d", segID>>8, segID&0xff), true
	default:
		return "", false
	}
}

// EdpCollector reads extremeEdpNeighborTable, indexed by local interface
// and the 8-octet neighbour ID, plus the VLANs each neighbour announces.
type EdpCollector struct {
	Equipment *models.Equipment
	Proxy     Proxy
	Normalize Normalizer
}

func (c *EdpCollector) Collect(ctx context.Context) error {
	names, err := walkColumn(ctx, c.Proxy, oidExtremeEdpNeighborName)
	if err != nil {
		return err
	}

	if len(names) == 0 {
		return nil
	}

	table, err := c.Proxy.Walk(ctx, oidExtremeEdpNeighborSlot)
	if err != nil {
		return err
	}

	ports, err := c.Proxy.Walk(ctx, oidExtremeEdpNeighborPort)
	if err != nil {
		return err
	}

	table.Merge(ports)

	for _, r := range names {
		if len(r.Index) != 1+edpNeighborArcs {
			continue
		}

		p, ok := c.port(r.First())
		if !ok {
			continue
		}

		suffix := snmp.FormatOID(r.Index)
		name, _ := r.Text()
		slot, _ := lookupInt(table, oidExtremeEdpNeighborSlot+suffix)
		port, _ := lookupInt(table, oidExtremeEdpNeighborPort+suffix)

		p.Edp = &models.Edp{SysName: name, Slot: slot, Port: port}
	}

	return c.collectVlans(ctx)
}

// collectVlans decodes extremeEdpNeighborVlanTable, whose index ends with
// the length-prefixed VLAN name.
func (c *EdpCollector) collectVlans(ctx context.Context) error {
	rows, err := walkColumn(ctx, c.Proxy, oidExtremeEdpNeighborVlanID)
	if err != nil {
		return err
	}

	for _, r := range rows {
		if len(r.Index) < 2+edpNeighborArcs {
			continue
		}

		vid, ok := r.Int()
		if !ok {
			continue
		}

		name, ok := arcsString(r.Index[1+edpNeighborArcs:])
		if !ok {
			continue
		}

		if p, ok := c.port(r.First()); ok {
			p.AddVlan(models.RemoteVlan{VID: vid, Name: name})
		}
	}

	return nil
}

func (c *EdpCollector) port(ifIndex int) (*models.Port, bool) {
	idx, ok := c.Normalize.Apply(ifIndex)
	if !ok {
		return nil, false
	}

	return c.Equipment.Port(idx)
}

// CdpCollector reads cdpCacheTable, indexed by local interface and device
// index.
type CdpCollector struct {
	Equipment *models.Equipment
	Proxy     Proxy
	Normalize Normalizer
}

func (c *CdpCollector) Collect(ctx context.Context) error {
	ids, err := walkColumn(ctx, c.Proxy, oidCdpCacheDeviceID)
	if err != nil {
		return err
	}

	if len(ids) == 0 {
		return nil
	}

	table := snmp.Table{}

	for _, oid := range []string{oidCdpCacheDevicePort, oidCdpCachePlatform, oidCdpCacheAddress} {
		t, err := c.Proxy.Walk(ctx, oid)
		if err != nil {
			return err
		}

		table.Merge(t)
	}

	for _, r := range ids {
		if len(r.Index) != 2 {
			continue
		}

		idx, ok := c.Normalize.Apply(r.First())
		if !ok {
			continue
		}

		p, ok := c.Equipment.Port(idx)
		if !ok {
			continue
		}

		suffix := snmp.FormatOID(r.Index)
		id, _ := r.Text()

		cdp := &models.Cdp{
			DeviceID: id,
			PortName: lookupString(table, oidCdpCacheDevicePort+suffix),
			Platform: lookupString(table, oidCdpCachePlatform+suffix),
		}

		if pdu, ok := table.Lookup(oidCdpCacheAddress + suffix); ok {
			if b, ok := snmp.AsBytes(pdu); ok && len(b) == 4 {
				cdp.MgmtIP = fmt.Sprintf("%d.%d.%d.%d", b[0], b[1], b[2], b[3])
			}
		}

		p.Cdp = cdp
	}

	return nil
}

func lookupString(t snmp.Table, oid string) string {
	pdu, ok := t.Lookup(oid)
	if !ok {
		return ""
	}

	s, _ := snmp.AsString(pdu)

	return s
}

func lookupInt(t snmp.Table, oid string) (int, bool) {
	pdu, ok := t.Lookup(oid)
	if !ok {
		return 0, false
	}

	return snmp.AsInt(pdu)
}

// arcsString decodes an OID-encoded string: a length arc followed by one
// arc per byte.
func arcsString(arcs []int) (string, bool) {
	if len(arcs) == 0 || arcs[0] != len(arcs)-1 {
		return "", false
	}

	b := make([]byte, 0, arcs[0])

	for _, a := range arcs[1:] {
		if a < 0 || a > 255 {
			return "", false
		}

		b = append(b, byte(a))
	}

	return string(b), true
}

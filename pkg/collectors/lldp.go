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
	"net"

	"github.com/carverauto/wiremaps/pkg/models"
	"github.com/carverauto/wiremaps/pkg/snmp"
)

const (
	lldpChassisSubtypeMAC = 4
	lldpPortSubtypeMAC    = 3
	ianaAddressIPv4       = 1
	ianaAddressIPv6       = 2
)

// LldpCollector reads the LLDP remote systems table, indexed by time mark,
// local port number and remote index, together with management addresses
// and 802.1 VLAN announcements.
type LldpCollector struct {
	Equipment *models.Equipment
	Proxy     Proxy
	Normalize Normalizer

	// Clean removes every port the LLDP agent does not know about, when it
	// lists any port at all.
	Clean bool
}

type lldpKey struct {
	timeMark  int
	localPort int
	remIndex  int
}

func (c *LldpCollector) Collect(ctx context.Context) error {
	if c.Clean {
		if err := c.clean(ctx); err != nil {
			return err
		}
	}

	if err := c.collectNeighbours(ctx); err != nil {
		return err
	}

	return c.collectVlans(ctx)
}

func (c *LldpCollector) clean(ctx context.Context) error {
	known, err := walkIndexed(ctx, c.Proxy, oidLldpPortConfigAdminStatus)
	if err != nil {
		return err
	}

	if len(known) == 0 {
		return nil
	}

	keep := make(map[int]bool, len(known))

	for raw := range known {
		if idx, ok := c.Normalize.Apply(raw); ok {
			keep[idx] = true
		}
	}

	for _, idx := range c.Equipment.SortedPortIndexes() {
		if !keep[idx] {
			c.Equipment.RemovePort(idx)
		}
	}

	return nil
}

func (c *LldpCollector) collectNeighbours(ctx context.Context) error {
	sysNames, err := walkColumn(ctx, c.Proxy, oidLldpRemSysName)
	if err != nil {
		return err
	}

	if len(sysNames) == 0 {
		return nil
	}

	table := snmp.Table{}

	for _, oid := range []string{
		oidLldpRemChassisIDSubtype,
		oidLldpRemChassisID,
		oidLldpRemPortIDSubtype,
		oidLldpRemPortID,
		oidLldpRemPortDesc,
		oidLldpRemSysDesc,
	} {
		t, err := c.Proxy.Walk(ctx, oid)
		if err != nil {
			return err
		}

		table.Merge(t)
	}

	addrs, err := c.managementAddresses(ctx)
	if err != nil {
		return err
	}

	for _, r := range sysNames {
		if len(r.Index) != 3 {
			continue
		}

		key := lldpKey{timeMark: r.Index[0], localPort: r.Index[1], remIndex: r.Index[2]}

		p, ok := c.port(key.localPort)
		if !ok {
			continue
		}

		suffix := snmp.FormatOID(r.Index)
		name, _ := r.Text()

		p.Lldp = &models.Lldp{
			ChassisID: lldpID(table, oidLldpRemChassisIDSubtype+suffix, oidLldpRemChassisID+suffix, lldpChassisSubtypeMAC),
			SysName:   name,
			SysDesc:   lookupString(table, oidLldpRemSysDesc+suffix),
			PortID:    lldpID(table, oidLldpRemPortIDSubtype+suffix, oidLldpRemPortID+suffix, lldpPortSubtypeMAC),
			PortDesc:  lookupString(table, oidLldpRemPortDesc+suffix),
			MgmtIP:    addrs[key],
		}
	}

	return nil
}

// lldpID renders a chassis or port ID, as a MAC address when its subtype
// says so and it has the right length.
func lldpID(t snmp.Table, subtypeOID, idOID string, macSubtype int) string {
	pdu, ok := t.Lookup(idOID)
	if !ok {
		return ""
	}

	if subtype, _ := lookupInt(t, subtypeOID); subtype == macSubtype {
		if mac, ok := snmp.AsMAC(pdu); ok {
			return mac
		}
	}

	s, _ := snmp.AsString(pdu)

	return s
}

// managementAddresses decodes lldpRemManAddrTable. The address is only
// present in the index: subtype, then either the raw address arcs or a
// length arc followed by the address.
func (c *LldpCollector) managementAddresses(ctx context.Context) (map[lldpKey]string, error) {
	rows, err := walkColumn(ctx, c.Proxy, oidLldpRemManAddrIfID)
	if err != nil {
		return nil, err
	}

	out := make(map[lldpKey]string)

	for _, r := range rows {
		if len(r.Index) < 5 {
			continue
		}

		key := lldpKey{timeMark: r.Index[0], localPort: r.Index[1], remIndex: r.Index[2]}
		if _, seen := out[key]; seen {
			continue
		}

		if ip, ok := DecodeManagementAddress(r.Index[3:]); ok {
			out[key] = ip
		}
	}

	return out, nil
}

// DecodeManagementAddress decodes the address family and address arcs of
// an LLDP management address index.
func DecodeManagementAddress(arcs []int) (string, bool) {
	if len(arcs) < 2 {
		return "", false
	}

	var size int

	switch arcs[0] {
	case ianaAddressIPv4:
		size = net.IPv4len
	case ianaAddressIPv6:
		size = net.IPv6len
	default:
		return "", false
	}

	addr := arcs[1:]

	switch {
	case len(addr) == size:
	case len(addr) == size+1 && addr[0] == size:
		addr = addr[1:]
	default:
		return "", false
	}

	ip := make(net.IP, size)

	for i, a := range addr {
		if a < 0 || a > 255 {
			return "", false
		}

		ip[i] = byte(a)
	}

	return ip.String(), true
}

func (c *LldpCollector) collectVlans(ctx context.Context) error {
	local, err := walkColumn(ctx, c.Proxy, oidLldpXdot1LocVlanName)
	if err != nil {
		return err
	}

	for _, r := range local {
		if len(r.Index) != 2 {
			continue
		}

		name, _ := r.Text()

		if p, ok := c.port(r.Index[0]); ok {
			p.AddVlan(models.LocalVlan{VID: r.Index[1], Name: name})
		}
	}

	remote, err := walkColumn(ctx, c.Proxy, oidLldpXdot1RemVlanName)
	if err != nil {
		return err
	}

	for _, r := range remote {
		if len(r.Index) != 4 {
			continue
		}

		name, _ := r.Text()

		if p, ok := c.port(r.Index[1]); ok {
			p.AddVlan(models.RemoteVlan{VID: r.Index[3], Name: name})
		}
	}

	return nil
}

func (c *LldpCollector) port(localPort int) (*models.Port, bool) {
	idx, ok := c.Normalize.Apply(localPort)
	if !ok {
		return nil, false
	}

	return c.Equipment.Port(idx)
}

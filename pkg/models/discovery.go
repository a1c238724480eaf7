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

package models

import "encoding/json"

// Sonmp is what a Nortel/Avaya neighbour announced over SONMP.
type Sonmp struct {
	IP         string `json:"ip"`
	RemotePort string `json:"remote_port"`
}

// Edp is what an Extreme neighbour announced over EDP.
type Edp struct {
	SysName string `json:"sys_name"`
	Slot    int    `json:"slot"`
	Port    int    `json:"port"`
}

// Cdp is what a Cisco neighbour announced over CDP.
type Cdp struct {
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
	PortName string `json:"port_name"`
	MgmtIP   string `json:"mgmt_ip,omitempty"`
}

// Lldp is what a neighbour announced over LLDP.
type Lldp struct {
	ChassisID string `json:"chassis_id,omitempty"`
	SysName   string `json:"sys_name"`
	SysDesc   string `json:"sys_desc"`
	PortID    string `json:"port_id"`
	PortDesc  string `json:"port_desc"`
	MgmtIP    string `json:"mgmt_ip,omitempty"`
}

// Trunk links a physical member to its aggregate port.
type Trunk struct {
	Parent int `json:"parent"`
}

// VlanKind tells a locally configured VLAN from one learned from a neighbour.
type VlanKind string

const (
	VlanLocal  VlanKind = "local"
	VlanRemote VlanKind = "remote"
)

// Vlan is implemented by LocalVlan and RemoteVlan only.
type Vlan interface {
	VlanID() int
	VlanName() string
	Kind() VlanKind
	isVlan()
}

// LocalVlan is a VLAN configured on the equipment itself.
type LocalVlan struct {
	VID  int    `json:"vid"`
	Name string `json:"name,omitempty"`
}

// RemoteVlan is a VLAN the neighbour on the port says it carries.
type RemoteVlan struct {
	VID  int    `json:"vid"`
	Name string `json:"name,omitempty"`
}

func (v LocalVlan) VlanID() int      { return v.VID }
func (v LocalVlan) VlanName() string { return v.Name }
func (LocalVlan) Kind() VlanKind     { return VlanLocal }
func (LocalVlan) isVlan()            {}

func (v RemoteVlan) VlanID() int      { return v.VID }
func (v RemoteVlan) VlanName() string { return v.Name }
func (RemoteVlan) Kind() VlanKind     { return VlanRemote }
func (RemoteVlan) isVlan()            {}

type vlanJSON struct {
	Kind VlanKind `json:"kind"`
	VID  int      `json:"vid"`
	Name string   `json:"name,omitempty"`
}

func (v LocalVlan) MarshalJSON() ([]byte, error) {
	return json.Marshal(vlanJSON{Kind: VlanLocal, VID: v.VID, Name: v.Name})
}

func (v RemoteVlan) MarshalJSON() ([]byte, error) {
	return json.Marshal(vlanJSON{Kind: VlanRemote, VID: v.VID, Name: v.Name})
}

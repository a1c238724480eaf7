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

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalAndRemoteVlansAreKeptApart(t *testing.T) {
	p := &Port{}

	p.AddVlan(LocalVlan{VID: 10, Name: "users"})
	p.AddVlan(RemoteVlan{VID: 10, Name: "USERS"})
	p.AddVlan(LocalVlan{VID: 10, Name: "other"})
	p.AddVlan(RemoteVlan{VID: 20})
	p.AddVlan(RemoteVlan{VID: 20, Name: "voice"})

	require.Len(t, p.Vlans, 3)
	assert.Equal(t, LocalVlan{VID: 10, Name: "users"}, p.Vlans[0])
	assert.Equal(t, RemoteVlan{VID: 10, Name: "USERS"}, p.Vlans[1])
	assert.Equal(t, RemoteVlan{VID: 20, Name: "voice"}, p.Vlans[2])
	assert.True(t, p.HasVlan(VlanLocal, 10))
	assert.False(t, p.HasVlan(VlanLocal, 20))
}

func TestAddFDBDeduplicates(t *testing.T) {
	p := &Port{}
	p.AddFDB("00:11:22:33:44:55")
	p.AddFDB("00:11:22:33:44:55")
	p.AddFDB("00:11:22:33:44:56")

	assert.Equal(t, []string{"00:11:22:33:44:55", "00:11:22:33:44:56"}, p.FDB)
}

func TestEquipmentPorts(t *testing.T) {
	eq := NewEquipment("10.0.0.1")
	eq.AddPort(12, &Port{Name: "ge-0/0/11"})
	eq.AddPort(3, &Port{Name: "ge-0/0/2"})
	eq.AddPort(7, &Port{Name: "ge-0/0/6"})
	eq.RemovePort(7)

	assert.Equal(t, []int{3, 12}, eq.SortedPortIndexes())

	_, ok := eq.Port(7)
	assert.False(t, ok)
}

func TestEquipmentJSON(t *testing.T) {
	eq := NewEquipment("10.0.0.1")
	eq.AddPort(1, &Port{
		Name:   "Gi0/1",
		State:  PortUp,
		Speed:  Ptr(1000),
		Duplex: Ptr(DuplexFull),
		Vlans:  []Vlan{LocalVlan{VID: 1, Name: "default"}, RemoteVlan{VID: 1}},
		Trunk:  &Trunk{Parent: 49},
	})

	b, err := json.Marshal(eq)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &decoded))

	port := decoded["ports"].(map[string]interface{})["1"].(map[string]interface{})
	vlans := port["vlans"].([]interface{})
	assert.Equal(t, "local", vlans[0].(map[string]interface{})["kind"])
	assert.Equal(t, "remote", vlans[1].(map[string]interface{})["kind"])
	assert.Equal(t, "full", port["duplex"])
	assert.NotContains(t, port, "alias")
}

func TestSummarize(t *testing.T) {
	eq := NewEquipment("10.0.0.1")
	eq.AddPort(1, &Port{FDB: []string{"a", "b"}, Lldp: &Lldp{SysName: "x"}, Cdp: &Cdp{DeviceID: "x"}})
	eq.AddPort(2, &Port{FDB: []string{"c"}})
	eq.SetARP("10.0.0.2", "00:00:00:00:00:02")

	s := Summarize(eq)
	assert.Equal(t, 2, s.Ports)
	assert.Equal(t, 3, s.FDBEntries)
	assert.Equal(t, 1, s.ARPEntries)
	assert.Equal(t, 2, s.Neighbors)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Duration
		wantErr  bool
	}{
		{name: "string duration", input: `"30m"`, expected: Duration(30 * time.Minute)},
		{name: "numeric duration", input: `5000000000`, expected: Duration(5 * time.Second)},
		{name: "invalid string", input: `"soon"`, wantErr: true},
		{name: "invalid type", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration

			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, d)
		})
	}
}

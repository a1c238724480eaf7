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

//go:generate mockgen -destination=mock_snmp.go -package=snmp github.com/carverauto/wiremaps/pkg/snmp Agent

package snmp

import "github.com/gosnmp/gosnmp"

// Agent is the request/response exchange with one SNMP agent. It is the
// seam between the Proxy walk logic and the gosnmp transport.
type Agent interface {
	Connect() error
	Close() error
	Get(oids []string) (*gosnmp.SnmpPacket, error)
	GetNext(oids []string) (*gosnmp.SnmpPacket, error)
	GetBulk(oids []string, nonRepeaters uint8, maxRepetitions uint32) (*gosnmp.SnmpPacket, error)
	SetCommunity(community string)
	SetVersion(version gosnmp.SnmpVersion)
}

// AgentFactory opens an Agent for a target IP.
type AgentFactory func(ip string) Agent

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

package snmp

import (
	"time"

	"github.com/gosnmp/gosnmp"
)

const (
	defaultPort    = 161
	defaultTimeout = 2 * time.Second
	defaultRetries = 1
)

// AgentOptions tunes the UDP transport used by NewGoSNMPAgent.
type AgentOptions struct {
	Port    uint16
	Timeout time.Duration
	Retries int
}

type goSNMPAgent struct {
	client *gosnmp.GoSNMP
}

// NewGoSNMPAgent returns an Agent backed by a gosnmp UDP session.
func NewGoSNMPAgent(ip string, opts AgentOptions) Agent {
	if opts.Port == 0 {
		opts.Port = defaultPort
	}

	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}

	if opts.Retries < 0 {
		opts.Retries = defaultRetries
	}

	return &goSNMPAgent{
		client: &gosnmp.GoSNMP{
			Target:    ip,
			Port:      opts.Port,
			Transport: "udp",
			Community: "public",
			Version:   gosnmp.Version2c,
			Timeout:   opts.Timeout,
			Retries:   opts.Retries,
			MaxOids:   gosnmp.MaxOids,
		},
	}
}

// NewAgentFactory binds AgentOptions into an AgentFactory.
func NewAgentFactory(opts AgentOptions) AgentFactory {
	return func(ip string) Agent {
		return NewGoSNMPAgent(ip, opts)
	}
}

func (a *goSNMPAgent) Connect() error {
	return a.client.Connect()
}

func (a *goSNMPAgent) Close() error {
	if a.client.Conn == nil {
		return nil
	}

	return a.client.Conn.Close()
}

func (a *goSNMPAgent) Get(oids []string) (*gosnmp.SnmpPacket, error) {
	return a.client.Get(oids)
}

func (a *goSNMPAgent) GetNext(oids []string) (*gosnmp.SnmpPacket, error) {
	return a.client.GetNext(oids)
}

func (a *goSNMPAgent) GetBulk(oids []string, nonRepeaters uint8, maxRepetitions uint32) (*gosnmp.SnmpPacket, error) {
	return a.client.GetBulk(oids, nonRepeaters, maxRepetitions)
}

func (a *goSNMPAgent) SetCommunity(community string) {
	a.client.Community = community
}

func (a *goSNMPAgent) SetVersion(version gosnmp.SnmpVersion) {
	a.client.Version = version
}

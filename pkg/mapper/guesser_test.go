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


package mapper

import (
	"context"
	"testing"

	"github.com/gosnmp/gosnmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/wiremaps/pkg/logger"
	"github.com/carverauto/wiremaps/pkg/snmp"
	"github.com/carverauto/wiremaps/pkg/snmp/snmptest"
)

func fixedAgent(a *snmptest.Agent) snmp.AgentFactory {
	return func(string) snmp.Agent { return a }
}

func TestGuessPrefersV2c(t *testing.T) {
	agent := snmptest.NewAgent("public")
	agent.Data().System("Linux host", ".1.3.6.1.4.1.8072.3.2.10", "host", "")

	g := NewGuesser(fixedAgent(agent), snmp.ProxyOptions{}, logger.NewTestLogger())

	proxy, err := g.Guess(context.Background(), "10.0.0.1", []string{"public"})
	require.NoError(t, err)

	assert.Equal(t, "public", proxy.Community())
	assert.Equal(t, gosnmp.Version2c, proxy.Version())
	assert.Equal(t, 1, agent.Requests())
	assert.False(t, agent.Closed())
}

func TestGuessFallsBackToV1AndNextCommunity(t *testing.T) {
	agent := snmptest.NewSilentAgent()
	agent.AddCommunity("private", gosnmp.Version1).System("old switch", ".1.3.6.1.4.1.45.3.1", "sw", "")

	g := NewGuesser(fixedAgent(agent), snmp.ProxyOptions{}, logger.NewTestLogger())

	proxy, err := g.Guess(context.Background(), "10.0.0.1", []string{"public", "private"})
	require.NoError(t, err)

	assert.Equal(t, "private", proxy.Community())
	assert.Equal(t, gosnmp.Version1, proxy.Version())
	// public v2c, public v1, private v2c, private v1
	assert.Equal(t, 4, agent.Requests())
}

func TestGuessExhaustsCandidates(t *testing.T) {
	agent := snmptest.NewSilentAgent()

	g := NewGuesser(fixedAgent(agent), snmp.ProxyOptions{}, logger.NewTestLogger())

	_, err := g.Guess(context.Background(), "10.0.0.1", []string{"public", "private"})
	require.ErrorIs(t, err, ErrNoCommunity)
	require.ErrorIs(t, err, snmptest.ErrTimeout)
	assert.True(t, agent.Closed())

	_, err = g.Guess(context.Background(), "10.0.0.1", nil)
	require.ErrorIs(t, err, ErrNoCommunity)
}

func TestGuessStopsOnCancel(t *testing.T) {
	agent := snmptest.NewSilentAgent()
	g := NewGuesser(fixedAgent(agent), snmp.ProxyOptions{}, logger.NewTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Guess(ctx, "10.0.0.1", []string{"public"})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, agent.Requests())
	assert.True(t, agent.Closed())
}

func TestCandidates(t *testing.T) {
	assert.Equal(t, []string{"secret", "public"}, Candidates("secret", []string{"public", "secret", ""}))
	assert.Equal(t, []string{"public", "private"}, Candidates("", []string{"public", "private", "public"}))
	assert.Empty(t, Candidates("", nil))
}

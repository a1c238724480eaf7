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
	"fmt"

	"github.com/gosnmp/gosnmp"

	"github.com/carverauto/wiremaps/pkg/logger"
	"github.com/carverauto/wiremaps/pkg/snmp"
)

const oidSysDescr = ".1.3.6.1.2.1.1.1.0"

// guessVersions is the order versions are tried for each community.
var guessVersions = []gosnmp.SnmpVersion{gosnmp.Version2c, gosnmp.Version1}

// Guesser finds a community and version an equipment answers to.
type Guesser struct {
	agents  snmp.AgentFactory
	options snmp.ProxyOptions
	logger  logger.Logger
}

// NewGuesser creates a guesser opening sessions through agents.
func NewGuesser(agents snmp.AgentFactory, options snmp.ProxyOptions, log logger.Logger) *Guesser {
	return &Guesser{agents: agents, options: options, logger: log}
}

// Guess tries every candidate community, SNMPv2c first then SNMPv1, and
// returns a proxy configured with the first pair that answers sysDescr.
// The caller owns the returned proxy.
func (g *Guesser) Guess(ctx context.Context, ip string, candidates []string) (*snmp.Proxy, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no candidate for %s", ErrNoCommunity, ip)
	}

	agent := g.agents(ip)
	if err := agent.Connect(); err != nil {
		return nil, fmt.Errorf("failed to open SNMP session to %s: %w", ip, err)
	}

	proxy := snmp.NewProxy(ip, agent, candidates[0], guessVersions[0], g.options)

	var lastErr error

	for _, community := range candidates {
		for _, version := range guessVersions {
			if err := ctx.Err(); err != nil {
				_ = proxy.Close()

				return nil, err
			}

			proxy.SetCommunity(community)
			proxy.SetVersion(version)

			if _, err := proxy.Get(ctx, oidSysDescr); err != nil {
				lastErr = err

				continue
			}

			g.logger.Debug().
				Str("ip", ip).
				Str("community_version", version.String()).
				Msg("Found working community")

			return proxy, nil
		}
	}

	_ = proxy.Close()

	return nil, fmt.Errorf("%w for %s: %w", ErrNoCommunity, ip, lastErr)
}

// Candidates returns first followed by defaults, without duplicates or
// empty entries.
func Candidates(first string, defaults []string) []string {
	out := make([]string, 0, len(defaults)+1)
	seen := make(map[string]struct{}, len(defaults)+1)

	for _, c := range append([]string{first}, defaults...) {
		if c == "" {
			continue
		}

		if _, dup := seen[c]; dup {
			continue
		}

		seen[c] = struct{}{}

		out = append(out, c)
	}

	return out
}

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
	"fmt"
	"time"

	"github.com/carverauto/wiremaps/pkg/models"
	"github.com/carverauto/wiremaps/pkg/snmp"
)

const (
	defaultParallel       = 10
	defaultInterval       = 30 * time.Minute
	defaultTimeout        = 2 * time.Second
	defaultRetries        = 1
	defaultMaxRepetitions = 16
	defaultCommunity      = "public"
)

// TargetSpec is one configured target: an address or a CIDR range, with
// the community to try first.
type TargetSpec struct {
	Range     string `json:"range"`
	Community string `json:"community,omitempty"`
}

// ExpireConfig holds how long records survive without a refresh.
type ExpireConfig struct {
	Equipment models.Duration `json:"equipment"`
	FDB       models.Duration `json:"fdb"`
	ARP       models.Duration `json:"arp"`
}

// Policy converts the configuration for the store.
func (c ExpireConfig) Policy() models.ExpirePolicy {
	return models.ExpirePolicy{
		Equipment: time.Duration(c.Equipment),
		FDB:       time.Duration(c.FDB),
		ARP:       time.Duration(c.ARP),
	}
}

// Config is the collector section of the configuration.
type Config struct {
	Communities    []string        `json:"communities"`
	Targets        []TargetSpec    `json:"targets"`
	TargetFile     string          `json:"target_file,omitempty"`
	Parallel       int             `json:"parallel"`
	Rate           float64         `json:"rate"`
	Interval       models.Duration `json:"interval"`
	Timeout        models.Duration `json:"timeout"`
	Retries        int             `json:"retries"`
	Port           uint16          `json:"port,omitempty"`
	Bulk           *bool           `json:"bulk,omitempty"`
	MaxRepetitions uint32          `json:"max_repetitions"`
	Expire         ExpireConfig    `json:"expire"`
}

// Validate checks the configuration and fills defaults.
func (c *Config) Validate() error {
	if c.Parallel < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidParallel, c.Parallel)
	}

	if c.Rate < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidRate, c.Rate)
	}

	for _, spec := range c.Targets {
		if _, err := parseRange(spec.Range); err != nil {
			return err
		}
	}

	if c.Parallel == 0 {
		c.Parallel = defaultParallel
	}

	if c.Interval <= 0 {
		c.Interval = models.Duration(defaultInterval)
	}

	if c.Timeout <= 0 {
		c.Timeout = models.Duration(defaultTimeout)
	}

	if c.Retries < 0 {
		c.Retries = defaultRetries
	}

	if c.MaxRepetitions == 0 {
		c.MaxRepetitions = defaultMaxRepetitions
	}

	if len(c.Communities) == 0 {
		c.Communities = []string{defaultCommunity}
	}

	return nil
}

// AgentOptions returns the transport settings for NewAgentFactory.
func (c *Config) AgentOptions() snmp.AgentOptions {
	return snmp.AgentOptions{
		Port:    c.Port,
		Timeout: time.Duration(c.Timeout),
		Retries: c.Retries,
	}
}

// ProxyOptions returns the walk settings for every session.
func (c *Config) ProxyOptions() snmp.ProxyOptions {
	return snmp.ProxyOptions{
		NoBulk:         c.Bulk != nil && !*c.Bulk,
		MaxRepetitions: c.MaxRepetitions,
	}
}

// Target is one IP to explore and the community to try first, if any.
type Target struct {
	IP        string
	Community string
}

// Report is the outcome of one batch. Failed maps an IP to its error.
type Report struct {
	RunID     string
	StartedAt time.Time
	Duration  time.Duration
	Succeeded []string
	Failed    map[string]error
}

// Summary converts the report for events and logs.
func (r *Report) Summary() models.ExplorationSummary {
	s := models.ExplorationSummary{
		RunID:     r.RunID,
		StartedAt: r.StartedAt,
		Duration:  models.Duration(r.Duration),
		Succeeded: append([]string(nil), r.Succeeded...),
	}

	if len(r.Failed) > 0 {
		s.Failed = make(map[string]string, len(r.Failed))
		for ip, err := range r.Failed {
			s.Failed[ip] = err.Error()
		}
	}

	return s
}

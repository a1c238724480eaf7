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

// Package equipment maps a sysObjectID to the vendor plugin that knows how
// to collect that device. A plugin is an ordered list of collector steps
// sharing intermediate state such as the trunk map or the index resolver.
package equipment

import (
	"context"
	"fmt"

	"github.com/carverauto/wiremaps/pkg/collectors"
	"github.com/carverauto/wiremaps/pkg/logger"
	"github.com/carverauto/wiremaps/pkg/models"
)

//go:generate mockgen -destination=mock_equipment.go -package=equipment github.com/carverauto/wiremaps/pkg/equipment Plugin

// Plugin collects one equipment through its SNMP session.
type Plugin interface {
	Name() string
	Collect(ctx context.Context, eq *models.Equipment, proxy collectors.Proxy) error
}

// step is one collector run by a plugin. A failing optional step is logged
// and skipped; a failing required step aborts the equipment.
type step struct {
	name      string
	collector collectors.Collector
	optional  bool
}

func required(name string, c collectors.Collector) step {
	return step{name: name, collector: c}
}

func optional(name string, c collectors.Collector) step {
	return step{name: name, collector: c, optional: true}
}

// buildFunc wires the steps for one exploration. It runs once per
// equipment so shared state never leaks between explorations.
type buildFunc func(eq *models.Equipment, proxy collectors.Proxy, log logger.Logger) []step

type plugin struct {
	name  string
	build buildFunc
	log   logger.Logger
}

func newPlugin(name string, log logger.Logger, build buildFunc) *plugin {
	return &plugin{name: name, build: build, log: log}
}

func (p *plugin) Name() string {
	return p.name
}

func (p *plugin) Collect(ctx context.Context, eq *models.Equipment, proxy collectors.Proxy) error {
	for _, s := range p.build(eq, proxy, p.log) {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := s.collector.Collect(ctx)
		if err == nil {
			continue
		}

		if !s.optional {
			return fmt.Errorf("%s: %s: %w", p.name, s.name, err)
		}

		p.log.Debug().
			Err(err).
			Str("plugin", p.name).
			Str("step", s.name).
			Str("ip", eq.IP).
			Msg("Optional collection step failed")
	}

	return nil
}

func assignTrunks(eq *models.Equipment, trunks collectors.TrunkMap) collectors.Collector {
	return collectors.CollectorFunc(func(context.Context) error {
		collectors.AssignTrunks(eq, trunks)

		return nil
	})
}

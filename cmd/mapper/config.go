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


package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/carverauto/wiremaps/pkg/config"
	"github.com/carverauto/wiremaps/pkg/logger"
	"github.com/carverauto/wiremaps/pkg/mapper"
	"github.com/carverauto/wiremaps/pkg/models"
)

const defaultConfigPath = "/etc/wiremaps/mapper.json"

var errFailedToLoadConfig = errors.New("failed to load mapper configuration")

// appConfig is the whole configuration file of the command.
type appConfig struct {
	Collector     mapper.Config          `json:"collector"`
	Database      *models.DatabaseConfig `json:"database,omitempty"`
	NATS          *models.NATSConfig     `json:"nats,omitempty"`
	MetricsListen string                 `json:"metrics_listen,omitempty"`
	Logging       *logger.Config         `json:"logging,omitempty"`
}

// Validate checks every section and fills their defaults.
func (c *appConfig) Validate() error {
	if err := c.Collector.Validate(); err != nil {
		return fmt.Errorf("collector: %w", err)
	}

	if c.Database != nil {
		if err := c.Database.Validate(); err != nil {
			return fmt.Errorf("database: %w", err)
		}
	}

	if c.NATS != nil {
		if err := c.NATS.Validate(); err != nil {
			return fmt.Errorf("nats: %w", err)
		}
	}

	return nil
}

func loadConfig(ctx context.Context, path string) (*appConfig, error) {
	var cfg appConfig

	if err := config.NewConfig(nil).LoadAndValidate(ctx, path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", errFailedToLoadConfig, err)
	}

	return &cfg, nil
}

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
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/carverauto/wiremaps/pkg/config"
	"github.com/carverauto/wiremaps/pkg/lifecycle"
	"github.com/carverauto/wiremaps/pkg/logger"
	"github.com/carverauto/wiremaps/pkg/mapper"
	"github.com/carverauto/wiremaps/pkg/snmp"
	"github.com/carverauto/wiremaps/pkg/version"
)

// options are shared by every subcommand. agents is nil outside tests.
type options struct {
	configPath string
	agents     snmp.AgentFactory

	cfg *appConfig
	log logger.Logger
}

func newRootCommand() *cobra.Command {
	return newRootCommandWith(&options{})
}

func newRootCommandWith(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "wiremaps-mapper",
		Short:        "SNMP network topology collector",
		Version:      version.GetFullVersion(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd.Context(), opts.configPath)
			if err != nil {
				return err
			}

			log, err := lifecycle.CreateComponentLogger("wiremaps-mapper", cfg.Logging)
			if err != nil {
				return err
			}

			if redacted, err := config.Redact(cfg); err == nil {
				log.Debug().RawJSON("config", redacted).Msg("Loaded configuration")
			}

			opts.cfg, opts.log = cfg, log

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", defaultConfigPath, "path to the mapper configuration file")

	cmd.AddCommand(
		newRunCommand(opts),
		newExploreCommand(opts),
		newExploreIPCommand(opts),
		newTargetsCommand(opts),
	)

	return cmd
}

func newRunCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Explore every target on the configured interval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := lifecycle.SignalContext(cmd.Context())
			defer cancel()

			a, err := newApp(ctx, opts.cfg, opts.agents, opts.log)
			if err != nil {
				return err
			}
			defer a.Close()

			g, ctx := errgroup.WithContext(ctx)

			g.Go(func() error {
				return a.engine.Run(ctx)
			})

			if opts.cfg.MetricsListen != "" {
				g.Go(func() error {
					return serveMetrics(ctx, opts.cfg.MetricsListen, opts.log)
				})
			}

			if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}

			opts.log.Info().Msg("Mapper stopped")

			return nil
		},
	}
}

func newExploreCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "explore",
		Short: "Explore every target once and print the batch summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := lifecycle.SignalContext(cmd.Context())
			defer cancel()

			a, err := newApp(ctx, opts.cfg, opts.agents, opts.log)
			if err != nil {
				return err
			}
			defer a.Close()

			report, err := a.engine.Explore(ctx)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			return enc.Encode(report.Summary())
		},
	}
}

func newExploreIPCommand(opts *options) *cobra.Command {
	var community string

	cmd := &cobra.Command{
		Use:   "explore-ip <ip>",
		Short: "Refresh a single equipment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := lifecycle.SignalContext(cmd.Context())
			defer cancel()

			a, err := newApp(ctx, opts.cfg, opts.agents, opts.log)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.engine.ExploreIP(ctx, args[0], community); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s explored\n", args[0])

			return err
		},
	}

	cmd.Flags().StringVar(&community, "community", "", "community to try before the configured ones")

	return cmd
}

func newTargetsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "Print the expanded target list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targets, err := mapper.ExpandTargets(opts.cfg.Collector.Targets, opts.cfg.Collector.TargetFile)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			for _, t := range targets {
				line := t.IP
				if t.Community != "" {
					line += " " + t.Community
				}

				if _, err := fmt.Fprintln(out, line); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

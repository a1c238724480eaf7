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
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/carverauto/wiremaps/pkg/db"
	"github.com/carverauto/wiremaps/pkg/logger"
	"github.com/carverauto/wiremaps/pkg/mapper"
	"github.com/carverauto/wiremaps/pkg/natsutil"
	"github.com/carverauto/wiremaps/pkg/snmp"
)

const shutdownTimeout = 5 * time.Second

// app owns the store, the event connection and the engine built from one
// configuration.
type app struct {
	cfg     *appConfig
	log     logger.Logger
	engine  *mapper.Engine
	closers []func()
}

func newApp(ctx context.Context, cfg *appConfig, agents snmp.AgentFactory, log logger.Logger) (*app, error) {
	a := &app{cfg: cfg, log: log}

	store, err := a.openStore(ctx)
	if err != nil {
		a.Close()

		return nil, err
	}

	a.engine, err = mapper.New(&cfg.Collector, agents, nil, store, nil, log)
	if err != nil {
		a.Close()

		return nil, err
	}

	return a, nil
}

func (a *app) openStore(ctx context.Context) (natsutil.Store, error) {
	var store natsutil.Store

	if a.cfg.Database != nil {
		pg, err := db.New(ctx, a.cfg.Database, a.log)
		if err != nil {
			return nil, err
		}

		a.closers = append(a.closers, pg.Close)

		if err := pg.Migrate(ctx); err != nil {
			return nil, err
		}

		store = pg
	} else {
		a.log.Warn().Msg("No database configured, collected data is kept in memory only")

		store = db.NewMemory(nil)
	}

	if a.cfg.NATS == nil {
		return store, nil
	}

	publisher, nc, err := natsutil.Connect(ctx, a.cfg.NATS, a.log)
	if err != nil {
		return nil, err
	}

	a.closers = append(a.closers, nc.Close)

	return natsutil.NewNotifyingStore(store, publisher, a.log), nil
}

// Close releases connections in reverse order of opening.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}

	a.closers = nil
}

// serveMetrics exposes the Prometheus registry until ctx ends.
func serveMetrics(ctx context.Context, addr string, log logger.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		log.Info().Str("addr", addr).Msg("Serving metrics")

		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("metrics server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server shutdown: %w", err)
	}

	return nil
}

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


// Package mapper drives explorations: it expands the configured targets,
// explores each one through the community guesser and the matching vendor
// plugin, and hands every snapshot to the store.
package mapper

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/carverauto/wiremaps/pkg/equipment"
	"github.com/carverauto/wiremaps/pkg/logger"
	"github.com/carverauto/wiremaps/pkg/models"
	"github.com/carverauto/wiremaps/pkg/snmp"
)

const (
	oidSysObjectID = ".1.3.6.1.2.1.1.2.0"
	oidSysName     = ".1.3.6.1.2.1.1.5.0"
	oidSysLocation = ".1.3.6.1.2.1.1.6.0"
)

// Engine is the collector service.
type Engine struct {
	config   *Config
	guesser  *Guesser
	registry *equipment.Registry
	store    Store
	clock    Clock
	limiter  *rate.Limiter
	logger   logger.Logger
	tracer   trace.Tracer

	running atomic.Bool

	mu       sync.Mutex
	inflight map[string]struct{}
}

// New creates an engine. A nil agent factory dials real UDP sessions, a
// nil registry uses every known plugin and a nil clock uses wall time.
func New(
	config *Config,
	agents snmp.AgentFactory,
	registry *equipment.Registry,
	store Store,
	clock Clock,
	log logger.Logger,
) (*Engine, error) {
	if config == nil {
		return nil, ErrConfigNil
	}

	if store == nil {
		return nil, ErrStoreNil
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid collector config: %w", err)
	}

	if log == nil {
		log = logger.NewTestLogger()
	}

	log = log.WithComponent("mapper")

	if agents == nil {
		agents = snmp.NewAgentFactory(config.AgentOptions())
	}

	if registry == nil {
		registry = equipment.DefaultRegistry(log)
	}

	if clock == nil {
		clock = realClock{}
	}

	e := &Engine{
		config:   config,
		guesser:  NewGuesser(agents, config.ProxyOptions(), log),
		registry: registry,
		store:    store,
		clock:    clock,
		logger:   log,
		tracer:   logger.GetTracer("wiremaps/mapper"),
		inflight: make(map[string]struct{}),
	}

	if config.Rate > 0 {
		e.limiter = rate.NewLimiter(rate.Limit(config.Rate), 1)
	}

	return e, nil
}

// Targets expands the configured ranges and target file.
func (e *Engine) Targets() ([]Target, error) {
	return ExpandTargets(e.config.Targets, e.config.TargetFile)
}

// Running reports whether a batch is in progress.
func (e *Engine) Running() bool {
	return e.running.Load()
}

// Explore runs one batch over every target. Failures of individual
// targets are recorded in the report and never stop the others.
func (e *Engine) Explore(ctx context.Context) (*Report, error) {
	if !e.running.CompareAndSwap(false, true) {
		return nil, ErrCollectorAlreadyRunning
	}
	defer e.running.Store(false)

	batchRunning.Set(1)
	defer batchRunning.Set(0)

	targets, err := e.Targets()
	if err != nil {
		return nil, err
	}

	if len(targets) == 0 {
		return nil, ErrNoTargets
	}

	report := &Report{
		RunID:     uuid.NewString(),
		StartedAt: e.clock.Now(),
		Failed:    make(map[string]error),
	}

	ctx, span := e.tracer.Start(ctx, "Explore")
	defer span.End()

	span.SetAttributes(
		attribute.String("run_id", report.RunID),
		attribute.Int("targets", len(targets)),
	)

	log := e.logger.WithFields(map[string]interface{}{"run_id": report.RunID})
	log.Info().Int("targets", len(targets)).Int("parallel", e.config.Parallel).Msg("Starting exploration batch")

	var mu sync.Mutex

	record := func(ip string, err error) {
		mu.Lock()
		defer mu.Unlock()

		if err != nil {
			report.Failed[ip] = err

			return
		}

		report.Succeeded = append(report.Succeeded, ip)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.config.Parallel)

	for i, target := range targets {
		if e.limiter != nil {
			if err := e.limiter.Wait(ctx); err != nil {
				for _, skipped := range targets[i:] {
					record(skipped.IP, err)
				}

				break
			}
		}

		g.Go(func() error {
			record(target.IP, e.exploreTarget(gctx, target))

			return nil
		})
	}

	_ = g.Wait()

	sort.Strings(report.Succeeded)
	report.Duration = e.clock.Now().Sub(report.StartedAt)

	if err := e.store.Expire(ctx, e.config.Expire.Policy()); err != nil {
		log.Warn().Err(err).Msg("Failed to expire stale records")
	}

	if l, ok := e.store.(BatchListener); ok {
		l.BatchCompleted(ctx, report.Summary())
	}

	span.SetAttributes(
		attribute.Int("succeeded", len(report.Succeeded)),
		attribute.Int("failed", len(report.Failed)),
	)

	log.Info().
		Int("succeeded", len(report.Succeeded)).
		Int("failed", len(report.Failed)).
		Dur("duration", report.Duration).
		Msg("Exploration batch completed")

	return report, nil
}

// ExploreIP refreshes a single equipment. It may run alongside a batch
// but never alongside another exploration of the same IP.
func (e *Engine) ExploreIP(ctx context.Context, ip, community string) error {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTarget, err)
	}

	return e.exploreTarget(ctx, Target{IP: addr.Unmap().String(), Community: community})
}

// Run explores immediately and then on every interval until ctx ends.
// A tick arriving while a batch is still running is skipped.
func (e *Engine) Run(ctx context.Context) error {
	interval := time.Duration(e.config.Interval)

	ticker := e.clock.Ticker(interval)
	defer ticker.Stop()

	e.logger.Info().Dur("interval", interval).Msg("Starting collector")

	var wg sync.WaitGroup
	defer wg.Wait()

	e.startBatch(ctx, &wg)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.Chan():
			e.startBatch(ctx, &wg)
		}
	}
}

func (e *Engine) startBatch(ctx context.Context, wg *sync.WaitGroup) {
	if e.running.Load() {
		e.logger.Info().Msg("Exploration still running, skipping this interval")

		return
	}

	wg.Add(1)

	go func() {
		defer wg.Done()

		_, err := e.Explore(ctx)

		switch {
		case err == nil:
		case errors.Is(err, ErrCollectorAlreadyRunning):
			e.logger.Info().Msg("Exploration still running, skipping this interval")
		default:
			e.logger.Error().Err(err).Msg("Exploration batch failed")
		}
	}()
}

func (e *Engine) acquire(ip string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, busy := e.inflight[ip]; busy {
		return false
	}

	e.inflight[ip] = struct{}{}

	return true
}

func (e *Engine) release(ip string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	delete(e.inflight, ip)
}

// exploreTarget collects one equipment and stores it exactly once.
func (e *Engine) exploreTarget(ctx context.Context, target Target) error {
	if !e.acquire(target.IP) {
		return fmt.Errorf("%w: %s", ErrTargetBusy, target.IP)
	}
	defer e.release(target.IP)

	ctx, span := e.tracer.Start(ctx, "ExploreTarget", trace.WithAttributes(attribute.String("ip", target.IP)))
	defer span.End()

	start := e.clock.Now()

	eq, err := e.collect(ctx, target)
	if err == nil {
		if werr := e.store.Write(ctx, eq); werr != nil {
			err = fmt.Errorf("failed to store equipment: %w", werr)
		}
	}

	explorationDuration.Observe(e.clock.Now().Sub(start).Seconds())

	if err != nil {
		explorationsTotal.WithLabelValues(resultFailure).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "exploration failed")

		e.logger.Warn().Err(err).Str("ip", target.IP).Msg("Exploration failed")

		return err
	}

	explorationsTotal.WithLabelValues(resultSuccess).Inc()
	span.SetStatus(codes.Ok, "equipment stored")

	e.logger.Info().
		Str("ip", target.IP).
		Str("name", eq.Name).
		Int("ports", len(eq.Ports)).
		Msg("Equipment explored")

	return nil
}

func (e *Engine) collect(ctx context.Context, target Target) (*models.Equipment, error) {
	proxy, err := e.guesser.Guess(ctx, target.IP, Candidates(target.Community, e.config.Communities))
	if err != nil {
		return nil, err
	}
	defer func() { _ = proxy.Close() }()

	eq := models.NewEquipment(target.IP)

	if err := e.basicInfo(ctx, proxy, eq); err != nil {
		return nil, err
	}

	plugin, err := e.registry.Identify(eq.OID)
	if err != nil {
		return nil, err
	}

	trace.SpanFromContext(ctx).SetAttributes(attribute.String("plugin", plugin.Name()))

	e.logger.Debug().
		Str("ip", target.IP).
		Str("oid", eq.OID).
		Str("plugin", plugin.Name()).
		Msg("Identified equipment")

	if err := plugin.Collect(ctx, eq, proxy); err != nil {
		return nil, err
	}

	eq.CollectedAt = e.clock.Now()

	return eq, nil
}

// basicInfo reads the system group. Each object is fetched on its own so
// an SNMPv1 agent missing sysLocation does not fail the others.
func (e *Engine) basicInfo(ctx context.Context, proxy *snmp.Proxy, eq *models.Equipment) error {
	descr, err := e.systemString(ctx, proxy, oidSysDescr)
	if err != nil {
		return err
	}

	objectID, err := e.systemString(ctx, proxy, oidSysObjectID)
	if err != nil {
		return err
	}

	if objectID == "" {
		return fmt.Errorf("%w: %s", ErrNoSysObjectID, eq.IP)
	}

	eq.Description = descr
	eq.OID = snmp.NormalizeOID(objectID)

	if name, err := e.systemString(ctx, proxy, oidSysName); err == nil {
		eq.Name = name
	}

	if location, err := e.systemString(ctx, proxy, oidSysLocation); err == nil && location != "" {
		eq.Location = &location
	}

	return nil
}

func (*Engine) systemString(ctx context.Context, proxy *snmp.Proxy, oid string) (string, error) {
	table, err := proxy.Get(ctx, oid)
	if err != nil {
		return "", err
	}

	pdu, ok := table.Lookup(oid)
	if !ok {
		return "", nil
	}

	s, _ := snmp.AsString(pdu)

	return s, nil
}

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


// Package natsutil publishes collector events as CloudEvents on NATS
// JetStream.
package natsutil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/carverauto/wiremaps/pkg/logger"
	"github.com/carverauto/wiremaps/pkg/models"
)

const (
	eventSource     = "wiremaps/mapper"
	subjectUpdated  = "equipment.updated"
	subjectFinished = "exploration.completed"
)

var errConfigNil = errors.New("nats config is nil")

// EventPublisher provides methods for publishing CloudEvents to NATS JetStream.
type EventPublisher struct {
	js     jetstream.JetStream
	stream string
	prefix string
	now    func() time.Time
}

// NewEventPublisher creates a publisher sending on <prefix>.<event>.
func NewEventPublisher(js jetstream.JetStream, stream, prefix string) *EventPublisher {
	return &EventPublisher{js: js, stream: stream, prefix: prefix, now: time.Now}
}

// Subjects lists the subjects the publisher sends on.
func (p *EventPublisher) Subjects() []string {
	return []string{p.subject(subjectUpdated), p.subject(subjectFinished)}
}

func (p *EventPublisher) subject(event string) string {
	return p.prefix + "." + event
}

// PublishEquipmentUpdated announces that a snapshot of eq was stored.
func (p *EventPublisher) PublishEquipmentUpdated(ctx context.Context, eq *models.Equipment) error {
	ts := eq.CollectedAt
	if ts.IsZero() {
		ts = p.now()
	}

	return p.publish(ctx, p.subject(subjectUpdated), models.EventTypeEquipmentUpdated, eq.IP, ts, models.Summarize(eq))
}

// PublishExplorationCompleted announces the end of a batch.
func (p *EventPublisher) PublishExplorationCompleted(ctx context.Context, summary models.ExplorationSummary) error {
	return p.publish(ctx, p.subject(subjectFinished), models.EventTypeExplorationCompleted, summary.RunID, p.now(), summary)
}

func (p *EventPublisher) publish(ctx context.Context, subject, eventType, about string, ts time.Time, data interface{}) error {
	event := models.CloudEvent{
		SpecVersion:     "1.0",
		ID:              uuid.New().String(),
		Source:          eventSource,
		Type:            eventType,
		DataContentType: "application/json",
		Subject:         about,
		Time:            &ts,
		Data:            data,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}

	if _, err := p.js.Publish(ctx, subject, payload, jetstream.WithMsgID(event.ID), jetstream.WithExpectStream(p.stream)); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", eventType, err)
	}

	return nil
}

// Connect dials NATS, makes sure the stream accepts the event subjects and
// returns a publisher. The caller closes the connection.
func Connect(ctx context.Context, cfg *models.NATSConfig, log logger.Logger) (*EventPublisher, *nats.Conn, error) {
	if cfg == nil {
		return nil, nil, errConfigNil
	}

	opts := []nats.Option{
		nats.Name("wiremaps"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warn().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
	}

	if cfg.CredsFile != "" {
		opts = append(opts, nats.UserCredentials(cfg.CredsFile))
	}

	tlsConfig, err := TLSConfig(cfg)
	if err != nil {
		return nil, nil, err
	}

	if tlsConfig != nil {
		opts = append(opts, nats.Secure(tlsConfig))
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()

		return nil, nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	publisher := NewEventPublisher(js, cfg.Stream, cfg.SubjectPrefix)

	if err := EnsureStream(ctx, js, cfg.Stream, publisher.Subjects()); err != nil {
		nc.Close()

		return nil, nil, err
	}

	log.Info().Str("url", cfg.URL).Str("stream", cfg.Stream).Msg("Connected to NATS JetStream")

	return publisher, nc, nil
}

// EnsureStream creates the stream, or adds the subjects it misses.
func EnsureStream(ctx context.Context, js jetstream.JetStream, name string, subjects []string) error {
	stream, err := js.Stream(ctx, name)
	if err != nil {
		if !isStreamMissingErr(err) {
			return fmt.Errorf("failed to look up stream %s: %w", name, err)
		}

		if _, err := js.CreateStream(ctx, jetstream.StreamConfig{Name: name, Subjects: subjects}); err != nil {
			return fmt.Errorf("failed to create stream %s: %w", name, err)
		}

		return nil
	}

	cfg := stream.CachedInfo().Config

	merged := append([]string(nil), cfg.Subjects...)
	for _, s := range subjects {
		merged = ensureSubjectList(merged, s)
	}

	if len(merged) == len(cfg.Subjects) {
		return nil
	}

	cfg.Subjects = merged

	if _, err := js.UpdateStream(ctx, cfg); err != nil {
		return fmt.Errorf("failed to update stream %s: %w", name, err)
	}

	return nil
}

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


package natsutil

import (
	"context"

	"github.com/carverauto/wiremaps/pkg/logger"
	"github.com/carverauto/wiremaps/pkg/models"
)

//go:generate mockgen -destination=mock_natsutil.go -package=natsutil github.com/carverauto/wiremaps/pkg/natsutil Publisher,Store

// Publisher sends collector events.
type Publisher interface {
	PublishEquipmentUpdated(ctx context.Context, eq *models.Equipment) error
	PublishExplorationCompleted(ctx context.Context, summary models.ExplorationSummary) error
}

// Store is the persistence contract NotifyingStore decorates.
type Store interface {
	Write(ctx context.Context, eq *models.Equipment) error
	Expire(ctx context.Context, policy models.ExpirePolicy) error
}

// NotifyingStore publishes an event after every successful write and at
// the end of every batch. Publish failures are logged, never returned.
type NotifyingStore struct {
	Store

	publisher Publisher
	logger    logger.Logger
}

func NewNotifyingStore(next Store, publisher Publisher, log logger.Logger) *NotifyingStore {
	if log == nil {
		log = logger.NewTestLogger()
	}

	return &NotifyingStore{Store: next, publisher: publisher, logger: log.WithComponent("events")}
}

func (s *NotifyingStore) Write(ctx context.Context, eq *models.Equipment) error {
	if err := s.Store.Write(ctx, eq); err != nil {
		return err
	}

	if err := s.publisher.PublishEquipmentUpdated(ctx, eq); err != nil {
		s.logger.Warn().Err(err).Str("ip", eq.IP).Msg("Failed to publish equipment update")
	}

	return nil
}

// BatchCompleted publishes the batch summary.
func (s *NotifyingStore) BatchCompleted(ctx context.Context, summary models.ExplorationSummary) {
	if err := s.publisher.PublishExplorationCompleted(ctx, summary); err != nil {
		s.logger.Warn().Err(err).Str("run_id", summary.RunID).Msg("Failed to publish exploration summary")
	}
}

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
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carverauto/wiremaps/pkg/logger"
	"github.com/carverauto/wiremaps/pkg/models"
)

func TestNotifyingStorePublishesAfterWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	eq := models.NewEquipment("10.0.0.1")

	next := NewMockStore(ctrl)
	pub := NewMockPublisher(ctrl)

	gomock.InOrder(
		next.EXPECT().Write(ctx, eq).Return(nil),
		pub.EXPECT().PublishEquipmentUpdated(ctx, eq).Return(nil),
	)

	s := NewNotifyingStore(next, pub, logger.NewTestLogger())
	require.NoError(t, s.Write(ctx, eq))
}

func TestNotifyingStoreSkipsFailedWrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	eq := models.NewEquipment("10.0.0.1")

	next := NewMockStore(ctrl)
	next.EXPECT().Write(ctx, eq).Return(errTestFixture)

	s := NewNotifyingStore(next, NewMockPublisher(ctrl), nil)
	require.ErrorIs(t, s.Write(ctx, eq), errTestFixture)
}

func TestNotifyingStoreSwallowsPublishErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	eq := models.NewEquipment("10.0.0.1")
	summary := models.ExplorationSummary{RunID: "run-1"}

	next := NewMockStore(ctrl)
	next.EXPECT().Write(ctx, eq).Return(nil)
	next.EXPECT().Expire(ctx, models.ExpirePolicy{}).Return(nil)

	pub := NewMockPublisher(ctrl)
	pub.EXPECT().PublishEquipmentUpdated(ctx, eq).Return(errTestFixture)
	pub.EXPECT().PublishExplorationCompleted(ctx, summary).Return(errTestFixture)

	s := NewNotifyingStore(next, pub, nil)
	require.NoError(t, s.Write(ctx, eq))
	require.NoError(t, s.Expire(ctx, models.ExpirePolicy{}))
	s.BatchCompleted(ctx, summary)
}

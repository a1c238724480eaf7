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

//go:generate mockgen -destination=mock_mapper.go -package=mapper github.com/carverauto/wiremaps/pkg/mapper Store,Clock,Ticker

package mapper

import (
	"context"
	"time"

	"github.com/carverauto/wiremaps/pkg/models"
)

// Store persists equipment snapshots. Implementations must be safe for
// concurrent use; each Write replaces everything known about eq.IP.
type Store interface {
	Write(ctx context.Context, eq *models.Equipment) error
	Expire(ctx context.Context, policy models.ExpirePolicy) error
}

// BatchListener is implemented by stores that want to know when a batch
// has finished, after expiry ran.
type BatchListener interface {
	BatchCompleted(ctx context.Context, summary models.ExplorationSummary)
}

// Clock abstracts time-related operations.
type Clock interface {
	Now() time.Time
	Ticker(d time.Duration) Ticker
}

// Ticker abstracts the ticker behavior.
type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}

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
	"errors"

	"github.com/carverauto/wiremaps/pkg/equipment"
)

var (
	// ErrNoCommunity is returned when no candidate community gets an answer.
	ErrNoCommunity = errors.New("no valid SNMP community")
	// ErrUnknownEquipment is returned when no plugin handles an equipment.
	ErrUnknownEquipment = equipment.ErrUnknownEquipment
	// ErrCollectorAlreadyRunning refuses a batch while another one runs.
	ErrCollectorAlreadyRunning = errors.New("collector already running")
	// ErrTargetBusy refuses a refresh of an IP that is being explored.
	ErrTargetBusy = errors.New("target is already being explored")

	ErrConfigNil         = errors.New("config cannot be nil")
	ErrStoreNil          = errors.New("store cannot be nil")
	ErrNoTargets         = errors.New("no targets configured")
	ErrInvalidTarget     = errors.New("invalid target")
	ErrTargetRangeTooBig = errors.New("target range too large")
	ErrInvalidParallel   = errors.New("parallel must be greater than 0")
	ErrInvalidRate       = errors.New("rate cannot be negative")
	ErrNoSysObjectID     = errors.New("equipment did not report sysObjectID")
)

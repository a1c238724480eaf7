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

package equipment

import (
	"github.com/carverauto/wiremaps/pkg/collectors"
	"github.com/carverauto/wiremaps/pkg/logger"
	"github.com/carverauto/wiremaps/pkg/models"
)

// NewGeneric returns the fallback plugin. It only uses standard MIBs and
// drops rows whose port index does not resolve.
func NewGeneric(log logger.Logger) Plugin {
	return newPlugin("generic", log, func(eq *models.Equipment, proxy collectors.Proxy, _ logger.Logger) []step {
		return []step{
			required("ports", &collectors.PortCollector{Equipment: eq, Proxy: proxy}),
			required("dot1d fdb", &collectors.FdbCollector{Equipment: eq, Proxy: proxy}),
			required("dot1q fdb", &collectors.FdbCollector{
				Equipment: eq,
				Proxy:     proxy,
				FdbOID:    collectors.OidDot1qTpFdbPort,
			}),
			required("arp", &collectors.ArpCollector{Equipment: eq, Proxy: proxy}),
			required("lldp", &collectors.LldpCollector{Equipment: eq, Proxy: proxy}),
			optional("lldp speed", &collectors.LldpSpeedCollector{Equipment: eq, Proxy: proxy}),
			required("vlans", collectors.NewRFC2674VlanCollector(eq, proxy, nil)),
			required("stacked vlans", &collectors.IfStackVlanCollector{Equipment: eq, Proxy: proxy}),
		}
	})
}

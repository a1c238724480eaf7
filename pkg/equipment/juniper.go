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

// NewJuniperEX handles Juniper EX switches. Bridge and LLDP tables refer to
// logical units (ge-0/0/0.0), which the stack resolver folds back onto the
// physical interface.
func NewJuniperEX(log logger.Logger) Plugin {
	return newPlugin("juniper-ex", log, func(eq *models.Equipment, proxy collectors.Proxy, _ logger.Logger) []step {
		resolver := &collectors.StackResolver{Proxy: proxy}
		normalize := collectors.Normalizer(resolver.Normalize)
		trunks := collectors.TrunkMap{}

		return []step{
			required("stack", resolver),
			required("trunks", &collectors.TrunkCollector{Proxy: proxy, Normalize: normalize, Trunks: trunks}),
			required("ports", &collectors.PortCollector{
				Equipment: eq,
				Proxy:     proxy,
				Normalize: normalize,
				Trunks:    trunks,
			}),
			required("assign trunks", assignTrunks(eq, trunks)),
			required("fdb", &collectors.FdbCollector{
				Equipment: eq,
				Proxy:     proxy,
				Normalize: normalize,
				Trunks:    trunks,
				FdbOID:    collectors.OidDot1qTpFdbPort,
			}),
			required("arp", &collectors.ArpCollector{Equipment: eq, Proxy: proxy}),
			required("lldp", &collectors.LldpCollector{Equipment: eq, Proxy: proxy, Normalize: normalize}),
			required("vlans", &collectors.JuniperVlanCollector{
				Equipment: eq,
				Proxy:     proxy,
				Normalize: normalize,
				Trunks:    trunks,
			}),
			optional("mau", &collectors.MauSpeedCollector{Equipment: eq, Proxy: proxy, Normalize: normalize}),
		}
	})
}

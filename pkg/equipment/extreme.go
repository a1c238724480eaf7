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

// NewExtreme handles ExtremeXOS switches. Ports are named by ifName
// ("slot:port") since ifDescr only carries the model string.
func NewExtreme(log logger.Logger) Plugin {
	return newPlugin("extreme", log, func(eq *models.Equipment, proxy collectors.Proxy, _ logger.Logger) []step {
		trunks := collectors.TrunkMap{}

		return []step{
			required("trunks", &collectors.TrunkCollector{Proxy: proxy, Trunks: trunks}),
			required("ports", &collectors.PortCollector{
				Equipment: eq,
				Proxy:     proxy,
				Trunks:    trunks,
				NameOID:   collectors.OidIfName,
			}),
			required("assign trunks", assignTrunks(eq, trunks)),
			required("fdb", &collectors.FdbCollector{Equipment: eq, Proxy: proxy, Trunks: trunks}),
			required("arp", &collectors.ArpCollector{Equipment: eq, Proxy: proxy}),
			required("edp", &collectors.EdpCollector{Equipment: eq, Proxy: proxy}),
			required("lldp", &collectors.LldpCollector{Equipment: eq, Proxy: proxy}),
			required("vlans", &collectors.ExtremeVlanCollector{Equipment: eq, Proxy: proxy, Trunks: trunks}),
			optional("mau", &collectors.MauSpeedCollector{Equipment: eq, Proxy: proxy}),
		}
	})
}

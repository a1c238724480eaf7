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

// NewCisco handles IOS switches. Bridge tables are per-VLAN, reached with
// community@vlan, and VLAN membership comes from VTP.
func NewCisco(log logger.Logger) Plugin {
	return newPlugin("cisco", log, func(eq *models.Equipment, proxy collectors.Proxy, log logger.Logger) []step {
		trunks := collectors.TrunkMap{}

		return []step{
			required("pagp trunks", &collectors.CiscoTrunkCollector{Proxy: proxy, Trunks: trunks}),
			required("ports", &collectors.PortCollector{Equipment: eq, Proxy: proxy, Trunks: trunks}),
			required("assign trunks", assignTrunks(eq, trunks)),
			required("fdb", &collectors.CommunityFdbCollector{
				Equipment: eq,
				Proxy:     proxy,
				Trunks:    trunks,
				Log:       log,
			}),
			required("arp", &collectors.ArpCollector{Equipment: eq, Proxy: proxy}),
			required("cdp", &collectors.CdpCollector{Equipment: eq, Proxy: proxy}),
			required("lldp", &collectors.LldpCollector{Equipment: eq, Proxy: proxy}),
			required("vlans", &collectors.CiscoVlanCollector{Equipment: eq, Proxy: proxy, Trunks: trunks}),
			optional("speed", &collectors.CiscoSpeedCollector{Equipment: eq, Proxy: proxy}),
			optional("mau", &collectors.MauSpeedCollector{Equipment: eq, Proxy: proxy}),
		}
	})
}

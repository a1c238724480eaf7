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

// NewNortelERS handles Ethernet Routing Switch and BayStack stacks, where
// SONMP reports (unit, port) and units are numbered from 1.
func NewNortelERS(log logger.Logger) Plugin {
	return newPlugin("nortel-ers", log, nortelSteps(collectors.SlotPort(64, 1)))
}

// NewNortelPassport handles Passport and VSP chassis, where SONMP reports
// (slot, port) and the ifIndex is slot*64+port.
func NewNortelPassport(log logger.Logger) Plugin {
	return newPlugin("nortel-passport", log, nortelSteps(collectors.SlotPort(64, 0)))
}

func nortelSteps(slotPort collectors.SlotPortNormalizer) buildFunc {
	return func(eq *models.Equipment, proxy collectors.Proxy, _ logger.Logger) []step {
		trunks := collectors.TrunkMap{}

		return []step{
			required("mlt trunks", &collectors.NortelTrunkCollector{Proxy: proxy, Trunks: trunks}),
			required("ports", &collectors.PortCollector{Equipment: eq, Proxy: proxy, Trunks: trunks}),
			required("assign trunks", assignTrunks(eq, trunks)),
			required("fdb", &collectors.FdbCollector{Equipment: eq, Proxy: proxy, Trunks: trunks}),
			required("arp", &collectors.ArpCollector{Equipment: eq, Proxy: proxy}),
			required("sonmp", &collectors.SonmpCollector{Equipment: eq, Proxy: proxy, SlotPort: slotPort}),
			required("lldp", &collectors.LldpCollector{Equipment: eq, Proxy: proxy}),
			required("vlans", nortelVlans(eq, proxy, trunks)),
			optional("mau", &collectors.MauSpeedCollector{Equipment: eq, Proxy: proxy}),
		}
	}
}

func nortelVlans(eq *models.Equipment, proxy collectors.Proxy, trunks collectors.TrunkMap) collectors.Collector {
	c := collectors.NewNortelVlanCollector(eq, proxy, nil)
	c.Trunks = trunks

	return c
}

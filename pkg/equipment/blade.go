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

// bladePortModulo folds the management and external ifIndex ranges of
// Nortel/BNT blade switch modules onto the front panel numbering.
const bladePortModulo = 128

// NewBlade handles blade chassis switch modules.
func NewBlade(log logger.Logger) Plugin {
	return newPlugin("blade", log, func(eq *models.Equipment, proxy collectors.Proxy, _ logger.Logger) []step {
		normalize := collectors.Modulo(bladePortModulo)

		return []step{
			required("ports", &collectors.PortCollector{Equipment: eq, Proxy: proxy, Normalize: normalize}),
			required("fdb", &collectors.FdbCollector{Equipment: eq, Proxy: proxy, Normalize: normalize}),
			required("arp", &collectors.ArpCollector{Equipment: eq, Proxy: proxy}),
			required("lldp", &collectors.LldpCollector{Equipment: eq, Proxy: proxy, Normalize: normalize}),
			required("vlans", collectors.NewRFC2674VlanCollector(eq, proxy, normalize)),
		}
	})
}

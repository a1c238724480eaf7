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

// NewLinux handles net-snmp hosts. lldpd decides which interfaces are real
// ports, so the LLDP step prunes everything it does not know about.
func NewLinux(log logger.Logger) Plugin {
	return newPlugin("linux", log, func(eq *models.Equipment, proxy collectors.Proxy, _ logger.Logger) []step {
		return []step{
			required("ports", &collectors.PortCollector{Equipment: eq, Proxy: proxy, NameOID: collectors.OidIfName}),
			required("arp", &collectors.ArpCollector{Equipment: eq, Proxy: proxy}),
			required("lldp", &collectors.LldpCollector{Equipment: eq, Proxy: proxy, Clean: true}),
			required("vlans", &collectors.IfStackVlanCollector{Equipment: eq, Proxy: proxy}),
			optional("lldp speed", &collectors.LldpSpeedCollector{Equipment: eq, Proxy: proxy}),
		}
	})
}

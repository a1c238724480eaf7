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

package collectors

import (
	"context"

	"github.com/carverauto/wiremaps/pkg/models"
	"github.com/carverauto/wiremaps/pkg/snmp"
)

// ArpCollector fills the equipment ARP table from ipNetToMediaPhysAddress.
type ArpCollector struct {
	Equipment *models.Equipment
	Proxy     Proxy
}

func (c *ArpCollector) Collect(ctx context.Context) error {
	rows, err := walkColumn(ctx, c.Proxy, oidIPNetToMediaPhysAddress)
	if err != nil {
		return err
	}

	for _, r := range rows {
		if len(r.Index) < 5 {
			continue
		}

		ip, ok := snmp.IPv4FromArcs(r.Index[len(r.Index)-4:])
		if !ok {
			continue
		}

		mac, ok := r.MAC()
		if !ok {
			continue
		}

		c.Equipment.SetARP(ip, mac)
	}

	return nil
}

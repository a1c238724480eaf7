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

package models

import "time"

const (
	EventTypeEquipmentUpdated     = "com.wiremaps.equipment.updated"
	EventTypeExplorationCompleted = "com.wiremaps.exploration.completed"
)

// CloudEvent represents a CloudEvents v1.0 compliant event.
type CloudEvent struct {
	SpecVersion     string      `json:"specversion"`
	ID              string      `json:"id"`
	Source          string      `json:"source"`
	Type            string      `json:"type"`
	DataContentType string      `json:"datacontenttype"`
	Subject         string      `json:"subject,omitempty"`
	Time            *time.Time  `json:"time,omitempty"`
	Data            interface{} `json:"data,omitempty"`
}

// EquipmentSummary is the event payload sent when an equipment snapshot
// has been stored.
type EquipmentSummary struct {
	IP          string    `json:"ip"`
	Name        string    `json:"name"`
	OID         string    `json:"oid"`
	Ports       int       `json:"ports"`
	FDBEntries  int       `json:"fdb_entries"`
	ARPEntries  int       `json:"arp_entries"`
	Neighbors   int       `json:"neighbors"`
	CollectedAt time.Time `json:"collected_at"`
}

// Summarize counts what an equipment snapshot carries.
func Summarize(eq *Equipment) EquipmentSummary {
	s := EquipmentSummary{
		IP:          eq.IP,
		Name:        eq.Name,
		OID:         eq.OID,
		Ports:       len(eq.Ports),
		ARPEntries:  len(eq.ARP),
		CollectedAt: eq.CollectedAt,
	}

	for _, p := range eq.Ports {
		s.FDBEntries += len(p.FDB)

		for _, present := range []bool{p.Sonmp != nil, p.Edp != nil, p.Cdp != nil, p.Lldp != nil} {
			if present {
				s.Neighbors++
			}
		}
	}

	return s
}

// ExplorationSummary is the event payload sent when a batch finishes.
type ExplorationSummary struct {
	RunID     string            `json:"run_id"`
	StartedAt time.Time         `json:"started_at"`
	Duration  Duration          `json:"duration"`
	Succeeded []string          `json:"succeeded"`
	Failed    map[string]string `json:"failed,omitempty"`
}

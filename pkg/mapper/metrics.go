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

import "github.com/prometheus/client_golang/prometheus"

const (
	resultSuccess = "success"
	resultFailure = "failure"
)

// Prometheus exploration metrics.
var (
	explorationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wiremaps_explorations_total",
			Help: "Total number of equipment explorations by result.",
		},
		[]string{"result"},
	)
	explorationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wiremaps_exploration_duration_seconds",
			Help:    "Duration of one equipment exploration in seconds.",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		},
	)
	batchRunning = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "wiremaps_batch_running",
			Help: "1 while an exploration batch is running.",
		},
	)
)

func init() {
	prometheus.MustRegister(explorationsTotal)
	prometheus.MustRegister(explorationDuration)
	prometheus.MustRegister(batchRunning)
}

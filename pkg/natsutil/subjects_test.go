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


package natsutil

import (
	"testing"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/wiremaps/pkg/models"
)

func TestEnsureSubjectList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		subjects []string
		subject  string
		want     []string
	}{
		{
			name:    "adds subject when list empty",
			subject: "wiremaps.equipment.updated",
			want:    []string{"wiremaps.equipment.updated"},
		},
		{
			name:     "keeps list when wildcard matches",
			subjects: []string{"wiremaps.*.updated"},
			subject:  "wiremaps.equipment.updated",
			want:     []string{"wiremaps.*.updated"},
		},
		{
			name:     "keeps list when greater wildcard matches",
			subjects: []string{"wiremaps.>"},
			subject:  "wiremaps.equipment.updated",
			want:     []string{"wiremaps.>"},
		},
		{
			name:     "appends when unmatched",
			subjects: []string{"logs.syslog.*"},
			subject:  "wiremaps.equipment.updated",
			want:     []string{"logs.syslog.*", "wiremaps.equipment.updated"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := ensureSubjectList(append([]string(nil), tc.subjects...), tc.subject)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMatchesSubject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pattern  string
		subject  string
		expected bool
	}{
		{"exact match", "wiremaps.equipment.updated", "wiremaps.equipment.updated", true},
		{"single wildcard", "wiremaps.*.updated", "wiremaps.equipment.updated", true},
		{"greater wildcard", "wiremaps.>", "wiremaps.equipment.updated", true},
		{"greater wildcard needs a token", "wiremaps.>", "wiremaps", false},
		{"no match length", "wiremaps.*", "wiremaps.equipment.updated", false},
		{"no match tokens", "logs.syslog.*", "wiremaps.equipment.updated", false},
		{"pattern longer than subject", "wiremaps.equipment.updated.x", "wiremaps.equipment.updated", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, matchesSubject(tc.pattern, tc.subject))
		})
	}
}

func TestIsStreamMissingErr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"jetstream no stream response", jetstream.ErrNoStreamResponse, true},
		{"jetstream stream not found", jetstream.ErrStreamNotFound, true},
		{"nats no stream response", nats.ErrNoStreamResponse, true},
		{"nats stream not found", nats.ErrStreamNotFound, true},
		{"nats no responders", nats.ErrNoResponders, true},
		{"other error", errTestFixture, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, isStreamMissingErr(tc.err))
		})
	}
}

func TestTLSConfig(t *testing.T) {
	cfg, err := TLSConfig(&models.NATSConfig{URL: "nats://localhost:4222"})
	require.NoError(t, err)
	assert.Nil(t, cfg)

	_, err = TLSConfig(&models.NATSConfig{TLS: &models.TLSConfig{CertFile: "client.pem"}})
	require.ErrorIs(t, err, ErrTLSIncomplete)

	_, err = TLSConfig(&models.NATSConfig{
		CertDir: t.TempDir(),
		TLS:     &models.TLSConfig{CertFile: "client.pem", KeyFile: "client-key.pem", CAFile: "root.pem"},
	})
	require.Error(t, err)
}

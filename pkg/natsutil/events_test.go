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
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/wiremaps/pkg/models"
)

var errTestFixture = errors.New("fixture error")

type published struct {
	subject string
	payload []byte
}

// fakeJetStream records publications and serves one stream. Methods not
// overridden panic through the nil embedded interface.
type fakeJetStream struct {
	jetstream.JetStream

	published  []published
	publishErr error
	stream     *jetstream.StreamConfig
	created    *jetstream.StreamConfig
	updated    *jetstream.StreamConfig
}

func (f *fakeJetStream) Publish(_ context.Context, subject string, payload []byte, _ ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
	if f.publishErr != nil {
		return nil, f.publishErr
	}

	f.published = append(f.published, published{subject: subject, payload: payload})

	return &jetstream.PubAck{Stream: "wiremaps", Sequence: uint64(len(f.published))}, nil
}

func (f *fakeJetStream) Stream(_ context.Context, _ string) (jetstream.Stream, error) {
	if f.stream == nil {
		return nil, jetstream.ErrStreamNotFound
	}

	return &fakeStream{info: &jetstream.StreamInfo{Config: *f.stream}}, nil
}

func (f *fakeJetStream) CreateStream(_ context.Context, cfg jetstream.StreamConfig) (jetstream.Stream, error) {
	f.created = &cfg

	return &fakeStream{info: &jetstream.StreamInfo{Config: cfg}}, nil
}

func (f *fakeJetStream) UpdateStream(_ context.Context, cfg jetstream.StreamConfig) (jetstream.Stream, error) {
	f.updated = &cfg

	return &fakeStream{info: &jetstream.StreamInfo{Config: cfg}}, nil
}

type fakeStream struct {
	jetstream.Stream

	info *jetstream.StreamInfo
}

func (s *fakeStream) CachedInfo() *jetstream.StreamInfo {
	return s.info
}

func decode(t *testing.T, payload []byte) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &out))

	return out
}

func TestPublishEquipmentUpdated(t *testing.T) {
	js := &fakeJetStream{}
	p := NewEventPublisher(js, "wiremaps", "wiremaps")

	eq := models.NewEquipment("10.0.0.1")
	eq.Name = "sw1"
	eq.CollectedAt = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	port := &models.Port{Name: "1", State: models.PortUp, Lldp: &models.Lldp{SysName: "core"}}
	port.AddFDB("00:11:22:33:44:55")
	eq.AddPort(1, port)

	require.NoError(t, p.PublishEquipmentUpdated(context.Background(), eq))
	require.Len(t, js.published, 1)
	assert.Equal(t, "wiremaps.equipment.updated", js.published[0].subject)

	event := decode(t, js.published[0].payload)
	assert.Equal(t, "1.0", event["specversion"])
	assert.Equal(t, models.EventTypeEquipmentUpdated, event["type"])
	assert.Equal(t, "10.0.0.1", event["subject"])
	assert.Equal(t, "2025-01-02T03:04:05Z", event["time"])
	assert.NotEmpty(t, event["id"])

	data := event["data"].(map[string]interface{})
	assert.Equal(t, "sw1", data["name"])
	assert.EqualValues(t, 1, data["ports"])
	assert.EqualValues(t, 1, data["fdb_entries"])
	assert.EqualValues(t, 1, data["neighbors"])
}

func TestPublishExplorationCompleted(t *testing.T) {
	js := &fakeJetStream{}
	p := NewEventPublisher(js, "wiremaps", "lab")

	summary := models.ExplorationSummary{
		RunID:     "run-1",
		Succeeded: []string{"10.0.0.1"},
		Failed:    map[string]string{"10.0.0.2": "no valid SNMP community"},
	}

	require.NoError(t, p.PublishExplorationCompleted(context.Background(), summary))
	require.Len(t, js.published, 1)
	assert.Equal(t, "lab.exploration.completed", js.published[0].subject)

	event := decode(t, js.published[0].payload)
	assert.Equal(t, models.EventTypeExplorationCompleted, event["type"])
	assert.Equal(t, "run-1", event["subject"])
}

func TestPublishFailure(t *testing.T) {
	js := &fakeJetStream{publishErr: nats.ErrTimeout}
	p := NewEventPublisher(js, "wiremaps", "wiremaps")

	err := p.PublishExplorationCompleted(context.Background(), models.ExplorationSummary{RunID: "r"})
	require.ErrorIs(t, err, nats.ErrTimeout)
}

func TestEnsureStreamCreatesMissingStream(t *testing.T) {
	js := &fakeJetStream{}
	subjects := NewEventPublisher(js, "wiremaps", "wiremaps").Subjects()

	require.NoError(t, EnsureStream(context.Background(), js, "wiremaps", subjects))
	require.NotNil(t, js.created)
	assert.Equal(t, "wiremaps", js.created.Name)
	assert.Equal(t, []string{"wiremaps.equipment.updated", "wiremaps.exploration.completed"}, js.created.Subjects)
}

func TestEnsureStreamAddsMissingSubjects(t *testing.T) {
	js := &fakeJetStream{stream: &jetstream.StreamConfig{Name: "wiremaps", Subjects: []string{"logs.>"}}}

	require.NoError(t, EnsureStream(context.Background(), js, "wiremaps", []string{"wiremaps.equipment.updated"}))
	require.NotNil(t, js.updated)
	assert.Equal(t, []string{"logs.>", "wiremaps.equipment.updated"}, js.updated.Subjects)
}

func TestEnsureStreamKeepsCoveringStream(t *testing.T) {
	js := &fakeJetStream{stream: &jetstream.StreamConfig{Name: "wiremaps", Subjects: []string{"wiremaps.>"}}}

	require.NoError(t, EnsureStream(context.Background(), js, "wiremaps", []string{"wiremaps.equipment.updated"}))
	assert.Nil(t, js.updated)
	assert.Nil(t, js.created)
}

func TestConnectWithoutConfig(t *testing.T) {
	_, _, err := Connect(context.Background(), nil, nil)
	require.ErrorIs(t, err, errConfigNil)
}

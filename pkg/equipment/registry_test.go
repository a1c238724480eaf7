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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carverauto/wiremaps/pkg/logger"
)

func TestDefaultRegistryIdentify(t *testing.T) {
	r := DefaultRegistry(logger.NewTestLogger())

	tests := []struct {
		oid  string
		want string
	}{
		{".1.3.6.1.4.1.9.1.516", "cisco"},
		{"1.3.6.1.4.1.9.1.516", "cisco"},
		{".1.3.6.1.4.1.90.1", "generic"},
		{".1.3.6.1.4.1.45.3.74.1", "nortel-ers"},
		{".1.3.6.1.4.1.2272.30", "nortel-passport"},
		{".1.3.6.1.4.1.1916.2.154", "extreme"},
		{".1.3.6.1.4.1.11.2.3.7.11.87", "procurve"},
		{".1.3.6.1.4.1.2636.1.1.1.2.31", "juniper-ex"},
		{".1.3.6.1.4.1.2636.1.1.1.1.9", "generic"},
		{".1.3.6.1.4.1.1872.1.18.1", "blade"},
		{".1.3.6.1.4.1.26543.1.18.11", "blade"},
		{".1.3.6.1.4.1.8072.3.2.10", "linux"},
		{".1.3.6.1.4.1.311.1.1.3.1.2", "generic"},
	}

	for _, tt := range tests {
		p, err := r.Identify(tt.oid)
		require.NoError(t, err, tt.oid)
		assert.Equal(t, tt.want, p.Name(), tt.oid)
	}
}

func TestRegistryOrderAndFallback(t *testing.T) {
	ctrl := gomock.NewController(t)

	first := NewMockPlugin(ctrl)
	second := NewMockPlugin(ctrl)

	r := NewRegistry(nil)
	r.Register("first", Exact(".1.3.6.1.4.1.9.1.1"), first)
	r.Register("second", Prefix(".1.3.6.1.4.1.9"), second)

	p, err := r.Identify("1.3.6.1.4.1.9.1.1")
	require.NoError(t, err)
	assert.Same(t, first, p)

	p, err = r.Identify(".1.3.6.1.4.1.9.1.2")
	require.NoError(t, err)
	assert.Same(t, second, p)

	_, err = r.Identify(".1.3.6.1.4.1.99")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownEquipment))

	assert.Len(t, r.Entries(), 2)
}

func TestMatchers(t *testing.T) {
	m := AnyOf(Exact(".1.2.3"), Prefix(".1.2.4."))

	assert.True(t, m(".1.2.3"))
	assert.False(t, m(".1.2.3.1"))
	assert.True(t, m(".1.2.4"))
	assert.True(t, m(".1.2.4.7"))
	assert.False(t, m(".1.2.40"))
}

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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/wiremaps/pkg/logger"
)

func TestFdbCollectorDot1q(t *testing.T) {
	f := newFixture()
	f.port(3, "ge-0/0/3")
	f.data.Int(oid(oidDot1dBasePortIfIndex, 7), 3)
	f.data.Int(oid(OidDot1qTpFdbPort, 100, 0xa, 0xb, 0xc, 0xd, 0xe, 0xf), 7)
	f.data.Int(oid(OidDot1qTpFdbPort, 200, 0xa, 0xb, 0xc, 0xd, 0xe, 0xf), 7)
	f.data.Int(oid(OidDot1qTpFdbPort, 200, 1, 1, 1, 1, 1, 1), 9)
	f.data.Int(oid(OidDot1qTpFdbPort, 200, 2, 2, 2, 2, 2, 2), 0)

	c := &FdbCollector{Equipment: f.eq, Proxy: f.proxy, FdbOID: OidDot1qTpFdbPort}
	require.NoError(t, c.Collect(context.Background()))

	p, _ := f.eq.Port(3)
	assert.Equal(t, []string{"0a:0b:0c:0d:0e:0f"}, p.FDB)
}

func TestFdbCollectorMovesTrunkMembersToAggregate(t *testing.T) {
	f := newFixture()
	f.port(2, "member")
	f.port(100, "Po1")
	f.data.Int(oid(OidDot1dTpFdbPort, 0, 0, 0, 0, 0, 1), 2)

	c := &FdbCollector{Equipment: f.eq, Proxy: f.proxy, Trunks: TrunkMap{100: {2}}}
	require.NoError(t, c.Collect(context.Background()))

	member, _ := f.eq.Port(2)
	aggregate, _ := f.eq.Port(100)
	assert.Empty(t, member.FDB)
	assert.Equal(t, []string{"00:00:00:00:00:01"}, aggregate.FDB)
}

func TestCommunityFdbCollector(t *testing.T) {
	f := newFixture()
	f.port(1, "Fa0/1")
	f.port(2, "Fa0/2")

	f.data.Str(oid(OidVtpVlanName, 1, 1), "default")
	f.data.Str(oid(OidVtpVlanName, 1, 10), "users")
	f.data.Str(oid(OidVtpVlanName, 1, 20), "unreachable")
	f.data.Str(oid(OidVtpVlanName, 1, 1002), "fddi-default")

	vlan1 := f.agent.AddCommunity("public@1")
	vlan1.Int(oid(oidDot1dBasePortIfIndex, 1), 1)
	vlan1.Int(oid(OidDot1dTpFdbPort, 0, 0, 0xc, 0, 0, 1), 1)

	vlan10 := f.agent.AddCommunity("public@10")
	vlan10.Int(oid(oidDot1dBasePortIfIndex, 2), 2)
	vlan10.Int(oid(OidDot1dTpFdbPort, 0, 0, 0xc, 0, 0, 10), 2)

	fddi := f.agent.AddCommunity("public@1002")
	fddi.Int(oid(OidDot1dTpFdbPort, 0, 0, 0xc, 0, 0x10, 2), 1)

	c := &CommunityFdbCollector{
		Equipment: f.eq,
		Proxy:     f.proxy,
		Log:       logger.NewTestLogger(),
	}
	require.NoError(t, c.Collect(context.Background()))

	p1, _ := f.eq.Port(1)
	p2, _ := f.eq.Port(2)
	assert.Equal(t, []string{"00:00:0c:00:00:01"}, p1.FDB)
	assert.Equal(t, []string{"00:00:0c:00:00:0a"}, p2.FDB)
	assert.Equal(t, "public", f.proxy.Community())
}

func TestCommunityFdbCollectorWithoutVlans(t *testing.T) {
	f := newFixture()
	f.port(1, "Fa0/1")

	c := &CommunityFdbCollector{Equipment: f.eq, Proxy: f.proxy}
	require.NoError(t, c.Collect(context.Background()))

	p, _ := f.eq.Port(1)
	assert.Empty(t, p.FDB)
	assert.Equal(t, "public", f.proxy.Community())
}

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
	"fmt"
	"strings"

	"github.com/carverauto/wiremaps/pkg/logger"
	"github.com/carverauto/wiremaps/pkg/snmp"
)

var (
	// ErrUnknownEquipment is returned when no plugin accepts an OID and the
	// registry has no fallback.
	ErrUnknownEquipment = errors.New("unknown equipment")
)

// Matcher decides whether a plugin handles a sysObjectID. OIDs are given
// in leading-dot form.
type Matcher func(oid string) bool

// Exact matches one OID.
func Exact(oid string) Matcher {
	want := snmp.NormalizeOID(oid)

	return func(got string) bool {
		return got == want
	}
}

// Prefix matches every OID starting with prefix.
func Prefix(prefix string) Matcher {
	want := snmp.NormalizeOID(prefix)
	if !strings.HasSuffix(want, ".") {
		want += "."
	}

	return func(got string) bool {
		return strings.HasPrefix(got+".", want)
	}
}

// AnyOf matches when one of ms does.
func AnyOf(ms ...Matcher) Matcher {
	return func(oid string) bool {
		for _, m := range ms {
			if m(oid) {
				return true
			}
		}

		return false
	}
}

// Entry is one registered plugin.
type Entry struct {
	Name   string
	Match  Matcher
	Plugin Plugin
}

// Registry dispatches on sysObjectID in registration order.
type Registry struct {
	entries  []Entry
	fallback Plugin
}

// NewRegistry creates a registry using fallback when nothing matches.
// A nil fallback makes Identify fail with ErrUnknownEquipment instead.
func NewRegistry(fallback Plugin) *Registry {
	return &Registry{fallback: fallback}
}

// Register appends a plugin. Earlier registrations win.
func (r *Registry) Register(name string, match Matcher, p Plugin) {
	r.entries = append(r.entries, Entry{Name: name, Match: match, Plugin: p})
}

// Entries returns the registered plugins in order.
func (r *Registry) Entries() []Entry {
	return append([]Entry(nil), r.entries...)
}

// Identify returns the plugin for oid.
func (r *Registry) Identify(oid string) (Plugin, error) {
	normalized := snmp.NormalizeOID(oid)

	for _, e := range r.entries {
		if e.Match(normalized) {
			return e.Plugin, nil
		}
	}

	if r.fallback == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEquipment, oid)
	}

	return r.fallback, nil
}

// DefaultRegistry registers every vendor plugin, with Generic as fallback.
func DefaultRegistry(log logger.Logger) *Registry {
	r := NewRegistry(NewGeneric(log))

	r.Register("cisco", Prefix(".1.3.6.1.4.1.9"), NewCisco(log))
	r.Register("nortel-ers", Prefix(".1.3.6.1.4.1.45.3"), NewNortelERS(log))
	r.Register("nortel-passport", Prefix(".1.3.6.1.4.1.2272"), NewNortelPassport(log))
	r.Register("extreme", Prefix(".1.3.6.1.4.1.1916.2"), NewExtreme(log))
	r.Register("procurve", Prefix(".1.3.6.1.4.1.11.2.3.7.11"), NewProCurve(log))
	r.Register("juniper-ex", Prefix(".1.3.6.1.4.1.2636.1.1.1.2"), NewJuniperEX(log))
	r.Register("blade", AnyOf(
		Prefix(".1.3.6.1.4.1.1872.1.18"),
		Prefix(".1.3.6.1.4.1.26543.1.18"),
	), NewBlade(log))
	r.Register("linux", Prefix(".1.3.6.1.4.1.8072.3.2.10"), NewLinux(log))

	return r
}

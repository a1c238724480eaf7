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

// Normalizer maps a raw SNMP index to a port index. Returning false drops
// the row. A nil Normalizer keeps every positive index unchanged.
type Normalizer func(raw int) (int, bool)

// Apply runs the normalizer, treating nil as identity.
func (n Normalizer) Apply(raw int) (int, bool) {
	if n == nil {
		return raw, raw > 0
	}

	return n(raw)
}

// SlotPortNormalizer maps a (slot, port) pair to a port index.
type SlotPortNormalizer func(slot, port int) (int, bool)

// Offset adds delta to every index; results below 1 are dropped.
func Offset(delta int) Normalizer {
	return func(raw int) (int, bool) {
		idx := raw + delta

		return idx, idx > 0
	}
}

// Modulo keeps raw mod m, dropping indexes that land on 0. Blade switch
// modules number their ports this way.
func Modulo(m int) Normalizer {
	return func(raw int) (int, bool) {
		if m <= 0 || raw <= 0 {
			return 0, false
		}

		idx := raw % m

		return idx, idx != 0
	}
}

// Only accepts the listed indexes.
func Only(indexes ...int) Normalizer {
	allowed := make(map[int]struct{}, len(indexes))
	for _, i := range indexes {
		allowed[i] = struct{}{}
	}

	return func(raw int) (int, bool) {
		_, ok := allowed[raw]

		return raw, ok
	}
}

// Chain applies normalizers left to right, stopping at the first rejection.
func Chain(ns ...Normalizer) Normalizer {
	return func(raw int) (int, bool) {
		idx := raw

		for _, n := range ns {
			var ok bool

			idx, ok = n.Apply(idx)
			if !ok {
				return 0, false
			}
		}

		return idx, true
	}
}

// SlotPort packs (slot, port) as (slot-base)*width+port. Slot or port 0
// and slots below base are rejected.
func SlotPort(width, base int) SlotPortNormalizer {
	return func(slot, port int) (int, bool) {
		if slot <= 0 || port <= 0 || slot < base {
			return 0, false
		}

		return (slot-base)*width + port, true
	}
}

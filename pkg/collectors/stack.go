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

import "context"

// maxStackDepth bounds parent chasing on a looping ifStackTable.
const maxStackDepth = 8

// StackResolver maps logical interfaces (propVirtual units stacked on a
// port, as Juniper reports "ge-0/0/1.0") to the physical interface below
// them. Collect must run before any collector using Normalize.
type StackResolver struct {
	Proxy Proxy
	// Base is applied to the resolved physical index.
	Base Normalizer

	Parents map[int]int
}

func (s *StackResolver) Collect(ctx context.Context) error {
	types, err := walkInts(ctx, s.Proxy, OidIfType)
	if err != nil {
		return err
	}

	stack, err := walkStack(ctx, s.Proxy)
	if err != nil {
		return err
	}

	s.Parents = make(map[int]int)

	for _, link := range stack {
		if types[link.higher] != ifTypePropVirtual {
			continue
		}

		if _, dup := s.Parents[link.higher]; dup {
			continue
		}

		s.Parents[link.higher] = link.lower
	}

	return nil
}

// Normalize follows the parent chain of raw down to a physical interface.
func (s *StackResolver) Normalize(raw int) (int, bool) {
	idx := raw

	for range maxStackDepth {
		parent, ok := s.Parents[idx]
		if !ok {
			break
		}

		idx = parent
	}

	return s.Base.Apply(idx)
}

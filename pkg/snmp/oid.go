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

package snmp

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizeOID returns oid in dotted form with a leading dot and no
// trailing dot.
func NormalizeOID(oid string) string {
	oid = strings.TrimSpace(oid)
	oid = strings.TrimRight(oid, ".")

	if oid == "" {
		return ""
	}

	if !strings.HasPrefix(oid, ".") {
		oid = "." + oid
	}

	return oid
}

// ParseOID splits a dotted OID into its numeric arcs.
func ParseOID(oid string) ([]int, error) {
	oid = strings.Trim(strings.TrimSpace(oid), ".")
	if oid == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidOID)
	}

	fields := strings.Split(oid, ".")
	arcs := make([]int, len(fields))

	for i, f := range fields {
		n, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidOID, oid)
		}

		arcs[i] = int(n)
	}

	return arcs, nil
}

// FormatOID renders arcs in the leading-dot dotted form.
func FormatOID(arcs []int) string {
	var b strings.Builder

	for _, a := range arcs {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(a))
	}

	return b.String()
}

// CompareOIDs orders two OIDs arc by arc, a shorter OID sorting before its
// own descendants.
func CompareOIDs(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}

	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}

	return 0
}

// InSubtree reports whether oid is a strict descendant of base.
func InSubtree(oid, base []int) bool {
	if len(oid) <= len(base) {
		return false
	}

	for i := range base {
		if oid[i] != base[i] {
			return false
		}
	}

	return true
}

// Suffix returns the arcs of oid after base, or nil when oid is not under
// base.
func Suffix(oid, base string) []int {
	o, err := ParseOID(oid)
	if err != nil {
		return nil
	}

	b, err := ParseOID(base)
	if err != nil {
		return nil
	}

	if !InSubtree(o, b) {
		return nil
	}

	return o[len(b):]
}

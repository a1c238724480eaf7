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

import (
	"bufio"
	"fmt"
	"net/netip"
	"os"
	"strings"
)

const (
	minIPv4Bits = 16
	minIPv6Bits = 112
)

// parseRange accepts a single address or a CIDR prefix.
func parseRange(s string) (netip.Prefix, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return netip.Prefix{}, fmt.Errorf("%w: empty range", ErrInvalidTarget)
	}

	if !strings.Contains(s, "/") {
		addr, err := netip.ParseAddr(s)
		if err != nil {
			return netip.Prefix{}, fmt.Errorf("%w: %w", ErrInvalidTarget, err)
		}

		addr = addr.Unmap()

		return netip.PrefixFrom(addr, addr.BitLen()), nil
	}

	prefix, err := netip.ParsePrefix(s)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("%w: %w", ErrInvalidTarget, err)
	}

	prefix = prefix.Masked()

	limit := minIPv4Bits
	if prefix.Addr().Is6() {
		limit = minIPv6Bits
	}

	if prefix.Bits() < limit {
		return netip.Prefix{}, fmt.Errorf("%w: %s (smallest prefix is /%d)", ErrTargetRangeTooBig, s, limit)
	}

	return prefix, nil
}

// hosts lists the usable addresses of prefix. The IPv4 network and
// broadcast addresses are skipped below /31; IPv6 only skips the
// subnet-router anycast address below /127.
func hosts(prefix netip.Prefix) []netip.Addr {
	bits := prefix.Addr().BitLen()
	if prefix.Bits() == bits {
		return []netip.Addr{prefix.Addr()}
	}

	var out []netip.Addr

	for addr := prefix.Addr(); addr.IsValid() && prefix.Contains(addr); addr = addr.Next() {
		out = append(out, addr)
	}

	if prefix.Bits() >= bits-1 {
		return out
	}

	if prefix.Addr().Is4() {
		return out[1 : len(out)-1]
	}

	return out[1:]
}

// ExpandTargets turns configured ranges and the optional target file into
// the list of IPs to explore. An IP listed twice keeps its first community.
func ExpandTargets(specs []TargetSpec, filePath string) ([]Target, error) {
	all := append([]TargetSpec(nil), specs...)

	if filePath != "" {
		fromFile, err := ReadTargetFile(filePath)
		if err != nil {
			return nil, err
		}

		all = append(all, fromFile...)
	}

	seen := make(map[netip.Addr]struct{})

	var targets []Target

	for _, spec := range all {
		prefix, err := parseRange(spec.Range)
		if err != nil {
			return nil, err
		}

		for _, addr := range hosts(prefix) {
			if _, dup := seen[addr]; dup {
				continue
			}

			seen[addr] = struct{}{}

			targets = append(targets, Target{IP: addr.String(), Community: spec.Community})
		}
	}

	return targets, nil
}

// ReadTargetFile parses a target file: one "address-or-range [community]"
// per line. Blank lines and lines starting with # are ignored.
func ReadTargetFile(path string) ([]TargetSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open target file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var specs []TargetSpec

	scanner := bufio.NewScanner(f)
	line := 0

	for scanner.Scan() {
		line++

		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) > 2 {
			return nil, fmt.Errorf("%w: %s:%d: expected \"range [community]\"", ErrInvalidTarget, path, line)
		}

		if _, err := parseRange(fields[0]); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}

		spec := TargetSpec{Range: fields[0]}
		if len(fields) == 2 {
			spec.Community = fields[1]
		}

		specs = append(specs, spec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read target file: %w", err)
	}

	return specs, nil
}

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
	"errors"
	"fmt"

	"github.com/gosnmp/gosnmp"
)

var (
	// ErrProtocol matches every ProtocolError through errors.Is.
	ErrProtocol    = errors.New("snmp protocol error")
	ErrInvalidOID  = errors.New("invalid OID")
	ErrEmptyOIDSet = errors.New("no OID requested")
)

// ProtocolError reports an unreachable agent, a malformed exchange or an
// SNMP error status returned by the agent.
type ProtocolError struct {
	Op     string
	OID    string
	Status gosnmp.SNMPError
	Err    error
}

func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("snmp %s %s: %v", e.Op, e.OID, e.Err)
	}

	return fmt.Sprintf("snmp %s %s: agent returned error status %v", e.Op, e.OID, e.Status)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

func (*ProtocolError) Is(target error) bool {
	return target == ErrProtocol
}

// IsProtocolError reports whether err carries a ProtocolError.
func IsProtocolError(err error) bool {
	var pe *ProtocolError

	return errors.As(err, &pe)
}

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

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	errInvalidDuration = errors.New("invalid duration")
	errNATSURLRequired = errors.New("nats url is required")
	errDBHostRequired  = errors.New("database host is required")
)

// Duration accepts either a Go duration string or a number of nanoseconds
// in JSON.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))

		return nil
	case string:
		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%w: %w", errInvalidDuration, err)
		}

		*d = Duration(dur)

		return nil
	default:
		return errInvalidDuration
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// ExpirePolicy gives how long a record may go unrefreshed before it is
// retired. A zero age never retires that kind of record.
type ExpirePolicy struct {
	Equipment time.Duration
	FDB       time.Duration
	ARP       time.Duration
}

// TLSConfig lists client certificate material.
type TLSConfig struct {
	CertFile string `json:"cert_file"`
	KeyFile  string `json:"key_file"`
	CAFile   string `json:"ca_file"`
}

// DatabaseConfig describes the PostgreSQL cluster holding collected data.
type DatabaseConfig struct {
	Host               string            `json:"host"`
	Port               int               `json:"port"`
	Database           string            `json:"database"`
	Username           string            `json:"username"`
	Password           string            `json:"password" sensitive:"true"`
	SSLMode            string            `json:"ssl_mode"`
	ApplicationName    string            `json:"application_name,omitempty"`
	CertDir            string            `json:"cert_dir,omitempty"`
	TLS                *TLSConfig        `json:"tls,omitempty"`
	MaxConnections     int32             `json:"max_connections"`
	MinConnections     int32             `json:"min_connections"`
	MaxConnLifetime    Duration          `json:"max_conn_lifetime"`
	HealthCheckPeriod  Duration          `json:"health_check_period"`
	StatementTimeout   Duration          `json:"statement_timeout"`
	ExtraRuntimeParams map[string]string `json:"extra_runtime_params,omitempty"`
}

func (c *DatabaseConfig) Validate() error {
	if c.Host == "" {
		return errDBHostRequired
	}

	return nil
}

// NATSConfig configures NATS connectivity and the JetStream stream events
// are published on.
type NATSConfig struct {
	URL           string     `json:"url"`
	CredsFile     string     `json:"creds_file,omitempty"`
	CertDir       string     `json:"cert_dir,omitempty"`
	TLS           *TLSConfig `json:"tls,omitempty"`
	ServerName    string     `json:"server_name,omitempty"`
	Stream        string     `json:"stream"`
	SubjectPrefix string     `json:"subject_prefix"`
}

// Validate ensures the NATS configuration is valid and fills defaults.
func (c *NATSConfig) Validate() error {
	if c.URL == "" {
		return errNATSURLRequired
	}

	if c.Stream == "" {
		c.Stream = "wiremaps"
	}

	if c.SubjectPrefix == "" {
		c.SubjectPrefix = "wiremaps"
	}

	return nil
}

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


package db

import "errors"

var (
	ErrConfigNil       = errors.New("database config is nil")
	ErrEquipmentNil    = errors.New("equipment is nil")
	ErrTLSDisabled     = errors.New("tls material configured but ssl_mode is disable")
	ErrTLSIncomplete   = errors.New("tls requires cert_file, key_file and ca_file")
	ErrTLSCAInvalid    = errors.New("unable to append CA certificate")
	ErrFailedMigration = errors.New("failed to migrate schema")
)

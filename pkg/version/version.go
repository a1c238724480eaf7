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


// Package version reports the build the binary came from. The values are
// set at link time:
//
//	go build -ldflags "-X github.com/carverauto/wiremaps/pkg/version.version=1.2.0 -X github.com/carverauto/wiremaps/pkg/version.buildID=abc123"
package version

var (
	version = "dev"
	buildID = "unknown"
)

// GetVersion returns the release version.
func GetVersion() string {
	return version
}

// GetFullVersion returns version with build ID.
func GetFullVersion() string {
	return version + " (build: " + buildID + ")"
}

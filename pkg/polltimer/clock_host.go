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

package polltimer

import "time"

// hostEpoch anchors host readings. time.Since uses the monotonic reading
// carried by time.Now, so wall-clock steps do not affect deltas.
//
//nolint:gochecknoglobals // process-wide monotonic reference
var hostEpoch = time.Now()

// hostClock implements Clock using the Go runtime's monotonic clock.
type hostClock struct{}

// HostClock returns the clock for generic hosted environments.
// Readings are nanoseconds since process start.
func HostClock() Clock {
	return hostClock{}
}

func (hostClock) Now() Reading {
	return Reading(time.Since(hostEpoch))
}

func (hostClock) Sub(a, b Reading) time.Duration {
	if a < b {
		return 0
	}

	return time.Duration(a - b)
}

func (hostClock) Resolution() time.Duration {
	return time.Nanosecond
}

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

//go:generate mockgen -destination=mock_polltimer.go -package=polltimer github.com/carverauto/polltimer/pkg/polltimer Clock,HardwareTimer,Ticker

import "time"

// Reading is a raw clock value in the producing clock's native ticks.
// Two readings only mean something when subtracted by the same Clock.
type Reading uint64

// Clock abstracts the platform time source a Timer measures against.
type Clock interface {
	// Now returns the current reading. It must never move backward.
	Now() Reading
	// Sub returns a - b. Counters that wrap handle the overflow here.
	Sub(a, b Reading) time.Duration
	// Resolution is the length of one native tick.
	Resolution() time.Duration
}

// HardwareTimer is a peripheral timer with an explicit start/elapsed/reset
// lifecycle, as exposed by RTOS board support packages.
type HardwareTimer interface {
	Start()
	Elapsed() time.Duration
	Reset()
}

// Ticker abstracts the ticker that paces a Watcher.
type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}

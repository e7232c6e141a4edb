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

import "sync"

// Board support code registers its time source once during init, before
// any Timer picks up the default clock.
//
//nolint:gochecknoglobals // platform registration
var (
	platformMu    sync.RWMutex
	platformTicks TickFunc
	platformHW    HardwareTimer
)

// SetTickFunc registers the microcontroller's millisecond counter.
func SetTickFunc(f TickFunc) {
	platformMu.Lock()
	defer platformMu.Unlock()

	platformTicks = f
}

// SetHardwareTimer registers the RTOS peripheral timer.
func SetHardwareTimer(hw HardwareTimer) {
	platformMu.Lock()
	defer platformMu.Unlock()

	platformHW = hw
}

func registeredTicks() TickFunc {
	platformMu.RLock()
	defer platformMu.RUnlock()

	return platformTicks
}

func registeredHardwareTimer() HardwareTimer {
	platformMu.RLock()
	defer platformMu.RUnlock()

	return platformHW
}

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

// TickFunc reads a free-running 32-bit millisecond counter, such as the
// one a microcontroller's SysTick handler increments.
type TickFunc func() uint32

// TickClock implements Clock over a TickFunc. The counter wraps after
// about 49.7 days; deltas stay correct across one wrap.
type TickClock struct {
	ticks TickFunc
}

// NewTickClock returns a millisecond Clock reading from ticks.
// A nil ticks falls back to a counter derived from the Go clock.
func NewTickClock(ticks TickFunc) *TickClock {
	if ticks == nil {
		ticks = runtimeTicks
	}

	return &TickClock{ticks: ticks}
}

func (c *TickClock) Now() Reading {
	return Reading(c.ticks())
}

// Sub subtracts in 32-bit modular arithmetic so a counter that wrapped
// between a and b still yields the forward distance.
func (*TickClock) Sub(a, b Reading) time.Duration {
	return time.Duration(uint32(a)-uint32(b)) * time.Millisecond
}

func (*TickClock) Resolution() time.Duration {
	return time.Millisecond
}

func runtimeTicks() uint32 {
	return uint32(time.Since(hostEpoch) / time.Millisecond)
}

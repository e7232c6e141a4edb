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

// HardwareClock implements Clock over a HardwareTimer at microsecond
// resolution. The timer is started once and never reset, so it acts as a
// free-running counter and any number of Timers can share it.
type HardwareClock struct {
	timer HardwareTimer
}

// NewHardwareClock starts hw and returns a Clock reading from it.
// A nil hw falls back to NewSoftwareTimer.
func NewHardwareClock(hw HardwareTimer) *HardwareClock {
	if hw == nil {
		hw = NewSoftwareTimer()
	}

	hw.Start()

	return &HardwareClock{timer: hw}
}

func (c *HardwareClock) Now() Reading {
	return Reading(c.timer.Elapsed() / time.Microsecond)
}

func (*HardwareClock) Sub(a, b Reading) time.Duration {
	if a < b {
		return 0
	}

	return time.Duration(a-b) * time.Microsecond
}

func (*HardwareClock) Resolution() time.Duration {
	return time.Microsecond
}

// SoftwareTimer is a HardwareTimer backed by the Go monotonic clock, for
// boards without a registered peripheral and for tests.
type SoftwareTimer struct {
	started time.Time
	running bool
	stored  time.Duration
}

// NewSoftwareTimer returns a stopped SoftwareTimer.
func NewSoftwareTimer() *SoftwareTimer {
	return &SoftwareTimer{}
}

// Start begins counting. Starting a running timer has no effect.
func (s *SoftwareTimer) Start() {
	if s.running {
		return
	}

	s.started = time.Now()
	s.running = true
}

// Elapsed returns the time counted since the last Reset.
func (s *SoftwareTimer) Elapsed() time.Duration {
	if !s.running {
		return s.stored
	}

	return s.stored + time.Since(s.started)
}

// Reset zeroes the count and keeps the running state.
func (s *SoftwareTimer) Reset() {
	s.stored = 0
	s.started = time.Now()
}

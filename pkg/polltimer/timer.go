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

// Package polltimer answers one question without blocking: has more than a
// given duration passed since the last reset?
package polltimer

import (
	"time"

	"github.com/carverauto/polltimer/pkg/logger"
)

// Timer measures time between polls against an injected Clock.
//
// A Timer is not safe for concurrent use.
type Timer struct {
	clock     Clock
	log       logger.Logger
	lastReset Reading
	lastDelta time.Duration
}

// Option configures a Timer.
type Option func(*Timer)

// WithLogger sets the logger used for trace events when a poll trips.
func WithLogger(log logger.Logger) Option {
	return func(t *Timer) {
		if log != nil {
			t.log = log
		}
	}
}

// New creates a Timer whose measurement window starts now.
// A nil clock selects the clock compiled in for the build target.
func New(clock Clock, opts ...Option) *Timer {
	if clock == nil {
		clock = defaultClock()
	}

	t := &Timer{
		clock: clock,
		log:   logger.NewNopLogger(),
	}

	for _, opt := range opts {
		opt(t)
	}

	t.lastReset = clock.Now()

	return t
}

// Poll reports whether strictly more than threshold has elapsed since the
// last reset, then restarts the window from the same clock reading.
// The window restarts whether or not the threshold was exceeded.
func (t *Timer) Poll(threshold time.Duration) bool {
	current := t.clock.Now()

	t.lastDelta = t.clock.Sub(current, t.lastReset)
	t.lastReset = current

	// a negative threshold behaves like zero: a zero delta never trips
	threshold = max(threshold, 0)

	if t.lastDelta <= threshold {
		return false
	}

	t.log.Trace().
		Dur("delta", t.lastDelta).
		Dur("threshold", threshold).
		Msg("Poll threshold exceeded")

	return true
}

// DeltaTime returns the duration measured by the most recent Poll or Elapsed.
func (t *Timer) DeltaTime() time.Duration {
	return t.lastDelta
}

// Elapsed measures the time since the last reset without restarting the
// window. The result is also what DeltaTime reports afterward.
func (t *Timer) Elapsed() time.Duration {
	t.lastDelta = t.clock.Sub(t.clock.Now(), t.lastReset)

	return t.lastDelta
}

// Reset restarts the measurement window. DeltaTime is left unchanged.
func (t *Timer) Reset() {
	t.lastReset = t.clock.Now()
}

// Clock returns the clock the timer measures against.
func (t *Timer) Clock() Clock {
	return t.clock
}

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

import (
	"fmt"
	"strings"
)

// Source names a clock implementation.
type Source string

const (
	SourceDefault  Source = "default"
	SourceHost     Source = "host"
	SourceTick     Source = "tick"
	SourceHardware Source = "hardware"
)

func (s Source) String() string {
	return string(s)
}

// ParseSource maps a configuration value to a Source. Empty means default.
func ParseSource(s string) (Source, error) {
	switch src := Source(strings.ToLower(strings.TrimSpace(s))); src {
	case "":
		return SourceDefault, nil
	case SourceDefault, SourceHost, SourceTick, SourceHardware:
		return src, nil
	default:
		return "", fmt.Errorf("%w: %q (expected %q, %q, %q or %q)",
			ErrUnknownClockSource, s, SourceDefault, SourceHost, SourceTick, SourceHardware)
	}
}

// ClockFor builds the clock for src. Tick and hardware clocks use the
// sources registered with SetTickFunc and SetHardwareTimer when present.
func ClockFor(src Source) (Clock, error) {
	switch src {
	case SourceDefault, "":
		return defaultClock(), nil
	case SourceHost:
		return HostClock(), nil
	case SourceTick:
		return NewTickClock(registeredTicks()), nil
	case SourceHardware:
		return NewHardwareClock(registeredHardwareTimer()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownClockSource, src)
	}
}

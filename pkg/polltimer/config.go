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
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/carverauto/polltimer/pkg/logger"
)

// Duration is a time.Duration that unmarshals from "150ms" style strings
// or from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return err
	}

	switch value := v.(type) {
	case json.Number:
		// Int64 rejects fractions and anything outside the int64 range
		n, err := value.Int64()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDuration, err)
		}

		*d = Duration(time.Duration(n))

		return nil
	case string:
		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDuration, err)
		}

		*d = Duration(dur)

		return nil
	default:
		return ErrInvalidDuration
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// WatchConfig configures a Watcher.
type WatchConfig struct {
	Clock        string         `json:"clock"`
	Threshold    Duration       `json:"threshold"`
	PollInterval Duration       `json:"poll_interval"`
	MaxTriggers  int            `json:"max_triggers"`
	MaxPolls     int            `json:"max_polls"`
	Logging      *logger.Config `json:"logging"`
}

// Validate implements config.Validator.
func (c *WatchConfig) Validate() error {
	if _, err := ParseSource(c.Clock); err != nil {
		return err
	}

	if c.Threshold < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeThreshold, time.Duration(c.Threshold))
	}

	if c.PollInterval <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidPollInterval, time.Duration(c.PollInterval))
	}

	return nil
}

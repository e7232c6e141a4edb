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
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Duration
		wantErr  bool
	}{
		{name: "string duration", input: `"150ms"`, expected: Duration(150 * time.Millisecond)},
		{name: "microseconds", input: `"250us"`, expected: Duration(250 * time.Microsecond)},
		{name: "numeric nanoseconds", input: `5000000`, expected: Duration(5 * time.Millisecond)},
		{name: "nanoseconds beyond float64 precision", input: `9007199254740993`, expected: Duration(9007199254740993)},
		{name: "max int64 nanoseconds", input: `9223372036854775807`, expected: Duration(time.Duration(1<<63 - 1))},
		{name: "nanoseconds overflow int64", input: `9223372036854775808`, wantErr: true},
		{name: "fractional nanoseconds", input: `1.5`, wantErr: true},
		{name: "invalid duration string", input: `"soon"`, wantErr: true},
		{name: "invalid type", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration

			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidDuration)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, d)
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(1500 * time.Millisecond))
	require.NoError(t, err)
	assert.JSONEq(t, `"1.5s"`, string(b))
}

func TestWatchConfigValidate(t *testing.T) {
	valid := func() WatchConfig {
		return WatchConfig{
			Clock:        "host",
			Threshold:    Duration(100 * time.Millisecond),
			PollInterval: Duration(10 * time.Millisecond),
		}
	}

	tests := []struct {
		name   string
		mutate func(*WatchConfig)
		err    error
	}{
		{name: "valid", mutate: func(*WatchConfig) {}},
		{name: "empty clock selects default", mutate: func(c *WatchConfig) { c.Clock = "" }},
		{name: "zero threshold", mutate: func(c *WatchConfig) { c.Threshold = 0 }},
		{name: "unknown clock", mutate: func(c *WatchConfig) { c.Clock = "sundial" }, err: ErrUnknownClockSource},
		{name: "negative threshold", mutate: func(c *WatchConfig) { c.Threshold = -1 }, err: ErrNegativeThreshold},
		{name: "zero interval", mutate: func(c *WatchConfig) { c.PollInterval = 0 }, err: ErrInvalidPollInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestWatchConfigFromJSON(t *testing.T) {
	raw := `{
		"clock": "tick",
		"threshold": "150ms",
		"poll_interval": "20ms",
		"max_triggers": 3,
		"logging": {"level": "debug"}
	}`

	var cfg WatchConfig
	require.NoError(t, json.Unmarshal([]byte(raw), &cfg))
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "tick", cfg.Clock)
	assert.Equal(t, Duration(150*time.Millisecond), cfg.Threshold)
	assert.Equal(t, Duration(20*time.Millisecond), cfg.PollInterval)
	assert.Equal(t, 3, cfg.MaxTriggers)
	require.NotNil(t, cfg.Logging)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

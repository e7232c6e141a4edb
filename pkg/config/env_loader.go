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

package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/carverauto/polltimer/pkg/logger"
)

var errConfigJSONNotSet = errors.New("config JSON environment variable not set")

// EnvConfigLoader loads configuration from a JSON document held in the
// <prefix>CONFIG_JSON environment variable.
type EnvConfigLoader struct {
	logger logger.Logger
	prefix string
}

// NewEnvConfigLoader creates a new environment variable config loader.
func NewEnvConfigLoader(log logger.Logger, prefix string) *EnvConfigLoader {
	return &EnvConfigLoader{
		logger: log,
		prefix: prefix,
	}
}

// Load implements ConfigLoader. The path argument is ignored.
func (e *EnvConfigLoader) Load(_ context.Context, _ string, dst interface{}) error {
	name := e.prefix + "CONFIG_JSON"

	jsonConfig := os.Getenv(name)
	if jsonConfig == "" {
		return fmt.Errorf("%w: %s", errConfigJSONNotSet, name)
	}

	if err := json.Unmarshal([]byte(jsonConfig), dst); err != nil {
		e.logger.Error().Err(err).Str("env", name).Msg("Failed to unmarshal config JSON")

		return fmt.Errorf("failed to unmarshal %s: %w", name, err)
	}

	e.logger.Info().Str("env", name).Msg("Loaded configuration from environment")

	return nil
}

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
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTestInvalid = errors.New("name is required")

type testConfig struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func (c *testConfig) Validate() error {
	if c.Name == "" {
		return errTestInvalid
	}

	return nil
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadAndValidate_File(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "")

	path := writeConfigFile(t, `{"name": "watcher", "count": 3}`)

	var cfg testConfig

	err := NewConfig(nil).LoadAndValidate(context.Background(), path, &cfg)
	require.NoError(t, err)
	assert.Equal(t, "watcher", cfg.Name)
	assert.Equal(t, 3, cfg.Count)
}

func TestLoadAndValidate_ValidationFailure(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "file")

	path := writeConfigFile(t, `{"count": 3}`)

	var cfg testConfig

	err := NewConfig(nil).LoadAndValidate(context.Background(), path, &cfg)
	require.ErrorIs(t, err, errTestInvalid)
}

func TestLoadAndValidate_MissingFile(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "")

	var cfg testConfig

	err := NewConfig(nil).LoadAndValidate(context.Background(), filepath.Join(t.TempDir(), "nope.json"), &cfg)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadAndValidate_Env(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "env")
	t.Setenv("CONFIG_ENV_PREFIX", "")
	t.Setenv("POLLTIMER_CONFIG_JSON", `{"name": "from-env"}`)

	var cfg testConfig

	err := NewConfig(nil).LoadAndValidate(context.Background(), "ignored", &cfg)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Name)
}

func TestLoadAndValidate_EnvCustomPrefix(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "env")
	t.Setenv("CONFIG_ENV_PREFIX", "BOARD_")
	t.Setenv("BOARD_CONFIG_JSON", `{"name": "board"}`)

	var cfg testConfig

	require.NoError(t, NewConfig(nil).LoadAndValidate(context.Background(), "", &cfg))
	assert.Equal(t, "board", cfg.Name)
}

func TestLoadAndValidate_EnvUnset(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "env")
	t.Setenv("CONFIG_ENV_PREFIX", "UNSET_PREFIX_")

	var cfg testConfig

	err := NewConfig(nil).LoadAndValidate(context.Background(), "", &cfg)
	require.ErrorIs(t, err, errConfigJSONNotSet)
}

func TestLoadAndValidate_InvalidSource(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "kv")

	var cfg testConfig

	err := NewConfig(nil).LoadAndValidate(context.Background(), "", &cfg)
	require.ErrorIs(t, err, errInvalidConfigSource)
}

func TestLoadAndValidate_NonPointer(t *testing.T) {
	err := NewConfig(nil).LoadAndValidate(context.Background(), "", testConfig{})
	require.ErrorIs(t, err, errInvalidConfigPtr)
}

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

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/carverauto/polltimer/pkg/config"
	"github.com/carverauto/polltimer/pkg/logger"
	"github.com/carverauto/polltimer/pkg/polltimer"
	"github.com/carverauto/polltimer/pkg/version"
)

var (
	errFailedToLoadConfig = fmt.Errorf("failed to load config")
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := flag.String("config", "/etc/polltimer/polltimer.json", "Path to watcher config file")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String(polltimer.BuildTarget))

		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgLoader := config.NewConfig(nil)

	var cfg polltimer.WatchConfig

	if err := cfgLoader.LoadAndValidate(ctx, *configPath, &cfg); err != nil {
		return fmt.Errorf("%w: %w", errFailedToLoadConfig, err)
	}

	watcherLogger, err := logger.CreateComponentLogger("polltimer", loggingConfig(&cfg))
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	w, err := polltimer.NewWatcher(&cfg, nil, watcherLogger)
	if err != nil {
		return err
	}

	_, err = w.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}

// loggingConfig falls back to the environment-driven logger defaults when
// the config file has no logging section.
func loggingConfig(cfg *polltimer.WatchConfig) *logger.Config {
	if cfg.Logging != nil {
		return cfg.Logging
	}

	return logger.DefaultConfig()
}

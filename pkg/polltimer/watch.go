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
	"context"
	"fmt"
	"time"

	"github.com/carverauto/polltimer/pkg/logger"
	"github.com/google/uuid"
)

// Watcher polls a Timer on a fixed pace and reports every gap between
// consecutive polls that exceeds the threshold. A stalled scheduler, a
// suspended process or a long GC pause all show up as trips.
//
// Like Timer, a Watcher is not safe for concurrent use. Stats must not be
// called while Run is in progress.
type Watcher struct {
	id        string
	config    *WatchConfig
	timer     *Timer
	logger    logger.Logger
	newTicker func(time.Duration) Ticker
	stats     WatchStats
}

// WatchStats summarizes a Watcher run.
type WatchStats struct {
	Polls    int           `json:"polls"`
	Triggers int           `json:"triggers"`
	MaxDelta time.Duration `json:"max_delta"`
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithTicker replaces the ticker factory that paces the polls.
func WithTicker(newTicker func(time.Duration) Ticker) WatcherOption {
	return func(w *Watcher) {
		if newTicker != nil {
			w.newTicker = newTicker
		}
	}
}

// NewWatcher validates cfg and builds a Watcher. A nil clock is resolved
// from cfg.Clock.
func NewWatcher(cfg *WatchConfig, clock Clock, log logger.Logger, opts ...WatcherOption) (*Watcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if log == nil {
		log = logger.NewNopLogger()
	}

	if clock == nil {
		src, err := ParseSource(cfg.Clock)
		if err != nil {
			return nil, err
		}

		clock, err = ClockFor(src)
		if err != nil {
			return nil, fmt.Errorf("failed to build clock: %w", err)
		}
	}

	id := uuid.NewString()
	log = log.WithFields(map[string]interface{}{"watch_id": id})

	w := &Watcher{
		id:        id,
		config:    cfg,
		timer:     New(clock, WithLogger(log)),
		logger:    log,
		newTicker: newRealTicker,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w, nil
}

// Run polls until MaxTriggers trips or MaxPolls polls have happened, or
// until ctx is done. A zero limit means no limit.
func (w *Watcher) Run(ctx context.Context) (WatchStats, error) {
	interval := time.Duration(w.config.PollInterval)
	threshold := time.Duration(w.config.Threshold)

	ticker := w.newTicker(interval)
	defer ticker.Stop()

	w.logger.Info().
		Dur("interval", interval).
		Dur("threshold", threshold).
		Str("resolution", w.timer.Clock().Resolution().String()).
		Msg("Starting watcher")

	w.timer.Reset()

	for {
		select {
		case <-ctx.Done():
			w.logStopped(ctx.Err())

			return w.stats, ctx.Err()
		case <-ticker.Chan():
			if w.pollOnce(threshold) {
				w.logStopped(nil)

				return w.stats, nil
			}
		}
	}
}

func (w *Watcher) logStopped(err error) {
	w.logger.Info().
		Err(err).
		Int("polls", w.stats.Polls).
		Int("triggers", w.stats.Triggers).
		Dur("max_delta", w.stats.MaxDelta).
		Msg("Watcher stopped")
}

// pollOnce records one poll and reports whether a limit has been reached.
func (w *Watcher) pollOnce(threshold time.Duration) bool {
	w.stats.Polls++

	tripped := w.timer.Poll(threshold)
	delta := w.timer.DeltaTime()

	if delta > w.stats.MaxDelta {
		w.stats.MaxDelta = delta
	}

	if tripped {
		w.stats.Triggers++

		w.logger.Warn().
			Dur("delta", delta).
			Dur("threshold", threshold).
			Int("triggers", w.stats.Triggers).
			Msg("Poll gap exceeded threshold")
	}

	if w.config.MaxTriggers > 0 && w.stats.Triggers >= w.config.MaxTriggers {
		return true
	}

	return w.config.MaxPolls > 0 && w.stats.Polls >= w.config.MaxPolls
}

// ID returns the run ID attached to every log event of this Watcher.
func (w *Watcher) ID() string {
	return w.id
}

// Stats returns the counters collected so far.
func (w *Watcher) Stats() WatchStats {
	return w.stats
}

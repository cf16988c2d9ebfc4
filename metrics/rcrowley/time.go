// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package rcrowley

import (
	"sort"
	"sync"
	"time"

	"github.com/rcrowley/go-metrics"
	"github.com/rs/zerolog"
)

// Time keeps one timer per named operation.
type Time struct {
	sync.Mutex
	title  string
	timers map[string]metrics.Timer
}

func NewTime(title string) *Time {
	t := Time{
		title:  title,
		timers: make(map[string]metrics.Timer),
	}
	return &t
}

// Duration starts timing the named operation and returns the function that
// stops it.
func (t *Time) Duration(name string) func() {
	t.Lock()
	timer, ok := t.timers[name]
	if !ok {
		timer = metrics.NewTimer()
		t.timers[name] = timer
	}
	t.Unlock()
	now := time.Now()
	return func() {
		timer.UpdateSince(now)
	}
}

// Output logs one line per timed operation, in name order.
func (t *Time) Output(log zerolog.Logger) {
	t.Lock()
	defer t.Unlock()

	log = log.With().Str("metrics", t.title).Str("type", "time").Logger()

	names := make([]string, 0, len(t.timers))
	for name := range t.timers {
		names = append(names, name)
	}
	sort.Strings(names)

	total := time.Duration(0)
	for _, name := range names {
		timer := t.timers[name].Snapshot()
		total += time.Duration(timer.Sum())
		log.Info().
			Str("name", name).
			Int64("count", timer.Count()).
			Dur("mean", time.Duration(timer.Mean())).
			Dur("max", time.Duration(timer.Max())).
			Msg("time metrics for operation")
	}

	log.Info().
		Int("operations", len(names)).
		Dur("total", total).
		Msg("time metrics for all operations")
}

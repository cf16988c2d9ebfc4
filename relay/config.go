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

package relay

import (
	"time"
)

// DefaultConfig is the default configuration for a relay.
var DefaultConfig = Config{
	PollInterval: 100 * time.Millisecond,
}

// Config is the configuration for a relay.
type Config struct {
	PollInterval time.Duration
}

type Option func(*Config)

// WithPollInterval sets the interval at which the relay asks the node for the
// receipt of a submitted transaction.
func WithPollInterval(interval time.Duration) Option {
	return func(cfg *Config) {
		cfg.PollInterval = interval
	}
}

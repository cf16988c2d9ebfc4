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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/optakt/tuichain-seed/testing/mocks"
)

func TestNew(t *testing.T) {
	node := mocks.BaselineNode(t)

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		r := New(mocks.NoopLogger, node)

		assert.Equal(t, node, r.node)
		assert.Equal(t, DefaultConfig, r.cfg)
	})

	t.Run("with poll interval", func(t *testing.T) {
		t.Parallel()

		r := New(mocks.NoopLogger, node, WithPollInterval(time.Second))

		assert.Equal(t, time.Second, r.cfg.PollInterval)
	})

	t.Run("non-positive poll interval falls back to default", func(t *testing.T) {
		t.Parallel()

		zero := New(mocks.NoopLogger, node, WithPollInterval(0))
		negative := New(mocks.NoopLogger, node, WithPollInterval(-time.Second))

		assert.Equal(t, DefaultConfig.PollInterval, zero.cfg.PollInterval)
		assert.Equal(t, DefaultConfig.PollInterval, negative.cfg.PollInterval)
	})
}

func BaselineRelay(t *testing.T, opts ...func(*Relay)) *Relay {
	t.Helper()

	r := Relay{
		log:  mocks.NoopLogger,
		node: mocks.BaselineNode(t),
		cfg:  Config{PollInterval: time.Millisecond},
	}

	for _, opt := range opts {
		opt(&r)
	}

	return &r
}

func WithNode(node Node) func(*Relay) {
	return func(relay *Relay) {
		relay.node = node
	}
}

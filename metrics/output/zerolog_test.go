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

package output_test

import (
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/optakt/tuichain-seed/metrics/output"
	"github.com/optakt/tuichain-seed/testing/mocks"
)

type collector struct {
	sync.Mutex
	calls int
}

func (c *collector) Output(zerolog.Logger) {
	c.Lock()
	defer c.Unlock()
	c.calls++
}

func (c *collector) count() int {
	c.Lock()
	defer c.Unlock()
	return c.calls
}

func TestOutput(t *testing.T) {
	t.Run("outputs once on stop without interval", func(t *testing.T) {
		t.Parallel()

		c := &collector{}
		out := output.New(mocks.NoopLogger, 0)
		out.Register(c)
		out.Run()
		out.Stop()

		assert.Equal(t, 1, c.count())
	})

	t.Run("outputs periodically", func(t *testing.T) {
		t.Parallel()

		c := &collector{}
		out := output.New(mocks.NoopLogger, time.Millisecond)
		out.Register(c)
		out.Run()

		assert.Eventually(t, func() bool {
			return c.count() >= 2
		}, time.Second, time.Millisecond)

		out.Stop()
	})
}

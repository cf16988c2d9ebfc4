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

package mocks

import (
	"context"
	"crypto/ecdsa"
	"testing"

	"github.com/optakt/tuichain-seed/models/tuichain"
)

type Relay struct {
	ExecuteFunc func(ctx context.Context, key *ecdsa.PrivateKey, descriptors []tuichain.Descriptor) error
}

func BaselineRelay(t *testing.T) *Relay {
	t.Helper()

	r := Relay{
		ExecuteFunc: func(context.Context, *ecdsa.PrivateKey, []tuichain.Descriptor) error {
			return nil
		},
	}

	return &r
}

func (r *Relay) Execute(ctx context.Context, key *ecdsa.PrivateKey, descriptors []tuichain.Descriptor) error {
	return r.ExecuteFunc(ctx, key, descriptors)
}

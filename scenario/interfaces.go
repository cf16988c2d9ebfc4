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

package scenario

import (
	"context"
	"crypto/ecdsa"

	"github.com/optakt/tuichain-seed/client"
	"github.com/optakt/tuichain-seed/models/tuichain"
)

// API acquires the actors that play the scenario.
type API interface {
	Login(ctx context.Context, credentials tuichain.Credentials) (*client.Actor, error)
	Acquire(ctx context.Context, signup tuichain.Signup, key *ecdsa.PrivateKey) (*client.Actor, error)
}

// Journal keeps track of the steps that already completed.
type Journal interface {
	Save(step string, record interface{}) error
	Retrieve(step string, record interface{}) error
}

type Timer interface {
	Duration(name string) func()
}

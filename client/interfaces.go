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

package client

import (
	"context"
	"crypto/ecdsa"
	"net/http"

	"github.com/optakt/tuichain-seed/models/tuichain"
)

// HTTP is the transport used to reach the marketplace API.
type HTTP interface {
	Do(req *http.Request) (*http.Response, error)
}

// Relay executes the transactions the marketplace asks an actor to sign.
type Relay interface {
	Execute(ctx context.Context, key *ecdsa.PrivateKey, descriptors []tuichain.Descriptor) error
}

// Validator validates request and response records at the API boundary.
type Validator interface {
	Payload(payload interface{}) error
}

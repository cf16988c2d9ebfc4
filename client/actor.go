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
	"fmt"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/optakt/tuichain-seed/failure"
	"github.com/optakt/tuichain-seed/models/tuichain"
)

// Actor is a single authenticated user of the marketplace API. Actors that
// hold a signing key can also execute the transactions the API prepares for
// them. An actor never changes after it was acquired.
type Actor struct {
	client   *Client
	username string
	token    string
	key      *ecdsa.PrivateKey
}

// Username returns the name the actor logged in with.
func (a *Actor) Username() string {
	return a.username
}

// Address returns the Ethereum address of the actor's signing key, and false
// if the actor has no key.
func (a *Actor) Address() (common.Address, bool) {
	if a.key == nil {
		return common.Address{}, false
	}
	return crypto.PubkeyToAddress(a.key.PublicKey), true
}

// Get sends an authenticated GET request and decodes the response into the
// given value, if it is not nil.
func (a *Actor) Get(ctx context.Context, path string, request interface{}, response interface{}) error {
	return a.client.call(ctx, http.MethodGet, path, a.token, request, response)
}

// Post sends an authenticated POST request and decodes the response into the
// given value, if it is not nil.
func (a *Actor) Post(ctx context.Context, path string, request interface{}, response interface{}) error {
	return a.client.call(ctx, http.MethodPost, path, a.token, request, response)
}

// Put sends an authenticated PUT request and decodes the response into the
// given value, if it is not nil.
func (a *Actor) Put(ctx context.Context, path string, request interface{}, response interface{}) error {
	return a.client.call(ctx, http.MethodPut, path, a.token, request, response)
}

// Transact asks the API for the transactions that implement the given
// request, then signs, submits and confirms them one by one with the actor's
// key. The API does not require authentication to build the transactions.
func (a *Actor) Transact(ctx context.Context, path string, request interface{}) error {

	if a.key == nil {
		return failure.MissingKey{
			Description: failure.NewDescription("actor can not sign transactions",
				failure.WithString("username", a.username),
			),
			Path: path,
		}
	}

	var txs tuichain.Transactions
	err := a.client.call(ctx, http.MethodPost, path, "", request, &txs)
	if err != nil {
		return fmt.Errorf("could not get transactions: %w", err)
	}

	a.client.log.Info().
		Str("username", a.username).
		Str("path", path).
		Int("transactions", len(txs.Transactions)).
		Msg("relaying transactions")

	err = a.client.relay.Execute(ctx, a.key, txs.Transactions)
	if err != nil {
		return fmt.Errorf("could not relay transactions: %w", err)
	}

	return nil
}

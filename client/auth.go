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
	"errors"
	"fmt"
	"net/http"

	"github.com/optakt/tuichain-seed/failure"
	"github.com/optakt/tuichain-seed/models/tuichain"
)

// Login logs into an existing account and returns an actor without signing
// key, which is how administrators use the API.
func (c *Client) Login(ctx context.Context, credentials tuichain.Credentials) (*Actor, error) {

	var token tuichain.Token
	err := c.call(ctx, http.MethodPost, tuichain.PathLogin, "", credentials, &token)
	if err != nil {
		return nil, fmt.Errorf("could not log in (username: %s): %w", credentials.Username, err)
	}

	a := Actor{
		client:   c,
		username: credentials.Username,
		token:    token.Token,
	}

	return &a, nil
}

// Acquire returns an actor for the given user, holding the given signing key.
// It logs into the account if it exists and only signs up when the API reports
// that it does not, so acquiring the same user twice is harmless.
func (c *Client) Acquire(ctx context.Context, signup tuichain.Signup, key *ecdsa.PrivateKey) (*Actor, error) {

	var token tuichain.Token
	err := c.call(ctx, http.MethodPost, tuichain.PathLogin, "", signup.Credentials, &token)

	var status failure.HTTPStatus
	if errors.As(err, &status) && status.StatusCode == http.StatusNotFound {
		c.log.Info().Str("username", signup.Username).Msg("user not found, signing up")
		err = c.call(ctx, http.MethodPost, tuichain.PathSignup, "", signup, &token)
	}
	if err != nil {
		return nil, fmt.Errorf("could not acquire user (username: %s): %w", signup.Username, err)
	}

	a := Actor{
		client:   c,
		username: signup.Username,
		token:    token.Token,
		key:      key,
	}

	return &a, nil
}

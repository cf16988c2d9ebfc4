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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/optakt/tuichain-seed/failure"
)

// Client holds everything the actors of a run share: where the marketplace
// API lives, how to reach it, and the relay used to execute the transactions
// it hands out. It replaces any process-wide state; its lifetime is the run.
type Client struct {
	log      zerolog.Logger
	http     HTTP
	base     string
	relay    Relay
	validate Validator
}

// New creates a new client for the marketplace API at the given base URL.
func New(log zerolog.Logger, transport HTTP, base string, relay Relay, options ...Option) *Client {

	cfg := defaultConfig()
	for _, option := range options {
		option(&cfg)
	}

	c := Client{
		log:      log.With().Str("component", "client").Logger(),
		http:     transport,
		base:     strings.TrimSuffix(base, "/"),
		relay:    relay,
		validate: cfg.Validator,
	}

	return &c
}

// call performs a single JSON request against the API. An empty token means
// no authorization header is sent. A nil request sends no body, and a nil
// response discards the response body after checking the status code.
func (c *Client) call(ctx context.Context, method string, path string, token string, request interface{}, response interface{}) error {

	err := c.validate.Payload(request)
	if err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}

	var body io.Reader
	if request != nil {
		data, err := json.Marshal(request)
		if err != nil {
			return fmt.Errorf("could not encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	url := c.base + path
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("could not execute request (method: %s, url: %s): %w", method, url, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("could not read response (method: %s, url: %s): %w", method, url, err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", res.StatusCode).
		Int("size", len(data)).
		Msg("request completed")

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return failure.HTTPStatus{
			Description: failure.NewDescription("request rejected by API"),
			Method:      method,
			URL:         url,
			StatusCode:  res.StatusCode,
			Body:        string(data),
		}
	}

	if response == nil {
		return nil
	}

	err = json.Unmarshal(data, response)
	if err != nil {
		return fmt.Errorf("could not decode response (method: %s, url: %s): %w", method, url, err)
	}

	err = c.validate.Payload(response)
	if err != nil {
		return fmt.Errorf("invalid response: %w", err)
	}

	return nil
}

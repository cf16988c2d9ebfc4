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
	"io"
	"net/http"
	"strings"
	"testing"
)

type HTTP struct {
	DoFunc func(req *http.Request) (*http.Response, error)
}

func BaselineHTTP(t *testing.T) *HTTP {
	t.Helper()

	h := HTTP{
		DoFunc: func(*http.Request) (*http.Response, error) {
			return GenericResponse(http.StatusOK, `{}`), nil
		},
	}

	return &h
}

func (h *HTTP) Do(req *http.Request) (*http.Response, error) {
	return h.DoFunc(req)
}

// GenericResponse returns an HTTP response with the given status and body.
func GenericResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

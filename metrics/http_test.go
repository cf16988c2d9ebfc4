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

package metrics_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/tuichain-seed/metrics"
	"github.com/optakt/tuichain-seed/testing/mocks"
)

func TestHTTP(t *testing.T) {
	transport := mocks.BaselineHTTP(t)
	registry := prometheus.NewRegistry()
	instrumented, err := metrics.NewHTTP(transport, registry)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, "http://localhost/api/auth/login/", nil)
	require.NoError(t, err)

	res, err := instrumented.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	transport.DoFunc = func(*http.Request) (*http.Response, error) {
		return mocks.GenericResponse(http.StatusNotFound, `{}`), nil
	}
	_, err = instrumented.Do(req)
	require.NoError(t, err)

	transport.DoFunc = func(*http.Request) (*http.Response, error) {
		return nil, mocks.GenericError
	}
	_, err = instrumented.Do(req)
	assert.ErrorIs(t, err, mocks.GenericError)

	expected := `
# HELP tuichain_seed_api_requests_total number of requests made to the marketplace API
# TYPE tuichain_seed_api_requests_total counter
tuichain_seed_api_requests_total{method="POST",status="200"} 1
tuichain_seed_api_requests_total{method="POST",status="404"} 1
tuichain_seed_api_requests_total{method="POST",status="error"} 1
`
	err = testutil.GatherAndCompare(registry, strings.NewReader(expected), "tuichain_seed_api_requests_total")
	assert.NoError(t, err)
}

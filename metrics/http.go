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

package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/optakt/tuichain-seed/client"
)

// HTTP wraps the transport to the marketplace API and counts requests by
// method and response status.
type HTTP struct {
	http     client.HTTP
	requests *prometheus.CounterVec
}

// NewHTTP decorates the given transport with metrics registered on the given
// registerer.
func NewHTTP(transport client.HTTP, registerer prometheus.Registerer) (*HTTP, error) {

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespaceSeed,
		Subsystem: "api",
		Name:      "requests_total",
		Help:      "number of requests made to the marketplace API",
	}, []string{"method", "status"})

	err := registerer.Register(requests)
	if err != nil {
		return nil, err
	}

	h := HTTP{
		http:     transport,
		requests: requests,
	}

	return &h, nil
}

func (h *HTTP) Do(req *http.Request) (*http.Response, error) {
	res, err := h.http.Do(req)
	status := "error"
	if err == nil {
		status = strconv.Itoa(res.StatusCode)
	}
	h.requests.WithLabelValues(req.Method, status).Inc()
	return res, err
}

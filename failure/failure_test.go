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

package failure_test

import (
	"net/http"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"

	"github.com/optakt/tuichain-seed/failure"
)

func TestErrors(t *testing.T) {
	desc := failure.NewDescription("dummy", failure.WithString("username", "alice"))

	t.Run("http status", func(t *testing.T) {
		t.Parallel()

		err := failure.HTTPStatus{
			Description: desc,
			Method:      http.MethodPost,
			URL:         "http://localhost/api/auth/login/",
			StatusCode:  http.StatusNotFound,
			Body:        `{"detail":"not found"}`,
		}

		assert.Contains(t, err.Error(), "POST")
		assert.Contains(t, err.Error(), "/api/auth/login/")
		assert.Contains(t, err.Error(), "404 Not Found")
		assert.Contains(t, err.Error(), `not found`)
		assert.Contains(t, err.Error(), desc.String())
	})

	t.Run("transaction failed", func(t *testing.T) {
		t.Parallel()

		hash := common.HexToHash("0x2a")
		err := failure.TransactionFailed{
			Description: desc,
			Hash:        hash,
			Index:       1,
			Status:      0,
		}

		assert.Contains(t, err.Error(), hash.Hex())
		assert.Contains(t, err.Error(), "index: 1")
		assert.Contains(t, err.Error(), desc.String())
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()

		err := failure.MissingKey{
			Description: desc,
			Path:        "/api/loans/provide_funds/",
		}

		assert.Contains(t, err.Error(), "/api/loans/provide_funds/")
		assert.Contains(t, err.Error(), desc.String())
	})

	t.Run("invalid payload", func(t *testing.T) {
		t.Parallel()

		err := failure.InvalidPayload{
			Description: desc,
			Type:        "Funding",
		}

		assert.Contains(t, err.Error(), "Funding")
		assert.Contains(t, err.Error(), desc.String())
	})
}

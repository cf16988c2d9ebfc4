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
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"

	"github.com/optakt/tuichain-seed/failure"
	"github.com/optakt/tuichain-seed/testing/mocks"
)

func TestDescription(t *testing.T) {
	descBody := "test"
	loanID := mocks.GenericLoanID
	index := 84
	username := mocks.GenericCredentials.Username
	steps := []string{"loan/alice/new", "loan/alice/validate"}

	t.Run("full description with fields", func(t *testing.T) {
		t.Parallel()

		desc := failure.NewDescription(
			descBody,
			failure.WithErr(mocks.GenericError),
			failure.WithString("loan", loanID.String()),
			failure.WithInt("index", index),
			failure.WithString("username", username),
			failure.WithStrings("steps", steps...),
		)

		assert.Equal(t, desc.Text, descBody)
		assert.NotEqual(t, desc.String(), descBody)
		assert.Contains(t, desc.Fields.String(), mocks.GenericError.Error())
		assert.Contains(t, desc.Fields.String(), fmt.Sprintf("loan: %v", loanID))
		assert.Contains(t, desc.Fields.String(), fmt.Sprintf("index: %v", index))
		assert.Contains(t, desc.Fields.String(), fmt.Sprintf("username: %v", username))
		assert.Contains(t, desc.Fields.String(), fmt.Sprintf("steps: %v", steps))
	})

	t.Run("transaction fields", func(t *testing.T) {
		t.Parallel()

		address := mocks.GenericAddress(0)
		hash := common.HexToHash("0x2a")

		desc := failure.NewDescription(
			descBody,
			failure.WithAddress("from", address),
			failure.WithHash("hash", hash),
			failure.WithBig("value", mocks.GenericGasPrice),
			failure.WithBig("missing", nil),
		)

		assert.Contains(t, desc.Fields.String(), fmt.Sprintf("from: %s", address.Hex()))
		assert.Contains(t, desc.Fields.String(), fmt.Sprintf("hash: %s", hash.Hex()))
		assert.Contains(t, desc.Fields.String(), fmt.Sprintf("value: %s", mocks.GenericGasPrice.String()))
		assert.Contains(t, desc.Fields.String(), "missing: <nil>")
	})

	t.Run("no fields", func(t *testing.T) {
		t.Parallel()

		desc := failure.NewDescription(descBody)

		assert.Equal(t, desc.Text, descBody)
		assert.Equal(t, desc.String(), descBody)
	})

	t.Run("iterate over fields", func(t *testing.T) {
		t.Parallel()

		desc := failure.NewDescription(
			descBody,
			failure.WithInt("index", index),
			failure.WithString("username", username),
		)

		var keys []string
		desc.Fields.Iterate(func(key string, _ interface{}) {
			keys = append(keys, key)
		})

		assert.Equal(t, []string{"index", "username"}, keys)
	})
}

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

package tuichain_test

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/tuichain-seed/models/tuichain"
)

func TestDai(t *testing.T) {
	assert.Equal(t, "1000000000000000000", tuichain.OneDai.String())
	assert.Equal(t, "10000000000000000000000", tuichain.Dai(10000).Big().String())
	assert.Equal(t, "30000000000000000", tuichain.DaiFraction(3, 100).Big().String())
	assert.Equal(t, "1500000000000000000", tuichain.DaiFraction(15, 10).Big().String())
}

func TestAmount_Big(t *testing.T) {
	amount := tuichain.Dai(1)

	b := amount.Big()
	b.SetInt64(0)

	assert.Zero(t, amount.Cmp(tuichain.OneDai))
}

func TestAmount_JSON(t *testing.T) {
	t.Run("encodes as decimal string", func(t *testing.T) {
		t.Parallel()

		funding := tuichain.Funding{LoanID: tuichain.NewLoanID(3), Value: tuichain.Dai(5000)}

		data, err := json.Marshal(funding)

		require.NoError(t, err)
		assert.JSONEq(t, `{"loan_id":3,"value_atto_dai":"5000000000000000000000"}`, string(data))
	})

	t.Run("encodes days as string", func(t *testing.T) {
		t.Parallel()

		validation := tuichain.Validation{
			DaysToExpiration: 30,
			FundingFee:       tuichain.DaiFraction(3, 100),
			PaymentFee:       tuichain.DaiFraction(5, 100),
		}

		data, err := json.Marshal(validation)

		require.NoError(t, err)
		assert.JSONEq(t, `{
			"days_to_expiration": "30",
			"funding_fee_atto_dai_per_dai": "30000000000000000",
			"payment_fee_atto_dai_per_dai": "50000000000000000"
		}`, string(data))
	})

	t.Run("decodes strings and numbers", func(t *testing.T) {
		t.Parallel()

		var quoted tuichain.Amount
		err := json.Unmarshal([]byte(`"123456789012345678901234567890"`), &quoted)
		require.NoError(t, err)

		expected, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
		assert.Zero(t, quoted.Cmp(expected))

		var bare tuichain.Amount
		err = json.Unmarshal([]byte(`42`), &bare)
		require.NoError(t, err)
		assert.Equal(t, int64(42), bare.Int64())
	})

	t.Run("handles invalid amount", func(t *testing.T) {
		t.Parallel()

		var amount tuichain.Amount
		err := json.Unmarshal([]byte(`"forty-two"`), &amount)

		assert.Error(t, err)
	})

	t.Run("handles unbalanced quotes", func(t *testing.T) {
		t.Parallel()

		var funding tuichain.Funding
		assert.Error(t, funding.Value.UnmarshalJSON([]byte(`"12`)))
		assert.Error(t, funding.Value.UnmarshalJSON([]byte(`12"`)))
		assert.Error(t, funding.Value.UnmarshalJSON([]byte(`""`)))
	})

	t.Run("optional amounts are omitted", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(tuichain.Descriptor{Data: []byte{0x01}})

		require.NoError(t, err)
		assert.NotContains(t, string(data), "value")
	})
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "/api/loans/validate/7/", tuichain.PathLoanValidate(tuichain.NewLoanID(7)))
	assert.Equal(t, "/api/loans/finalize/7/", tuichain.PathLoanFinalize(tuichain.NewLoanID(7)))
	assert.Equal(t, "/api/loans/get/7/", tuichain.PathLoanGet(tuichain.NewLoanID(7)))
}

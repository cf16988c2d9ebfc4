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
	"context"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/tuichain-seed/metrics"
	"github.com/optakt/tuichain-seed/testing/mocks"
)

func TestNode(t *testing.T) {
	t.Run("counts calls by result", func(t *testing.T) {
		t.Parallel()

		node := mocks.BaselineNode(t)
		registry := prometheus.NewRegistry()
		instrumented, err := metrics.NewNode(node, registry)
		require.NoError(t, err)

		_, err = instrumented.ChainID(context.Background())
		require.NoError(t, err)
		_, err = instrumented.PendingNonceAt(context.Background(), mocks.GenericAddress(0))
		require.NoError(t, err)

		node.SuggestGasPriceFunc = func(context.Context) (*big.Int, error) {
			return nil, mocks.GenericError
		}
		_, err = instrumented.SuggestGasPrice(context.Background())
		assert.ErrorIs(t, err, mocks.GenericError)

		expected := `
# HELP tuichain_seed_node_calls_total number of RPC calls made to the node
# TYPE tuichain_seed_node_calls_total counter
tuichain_seed_node_calls_total{method="chain_id",result="success"} 1
tuichain_seed_node_calls_total{method="pending_nonce_at",result="success"} 1
tuichain_seed_node_calls_total{method="suggest_gas_price",result="error"} 1
`
		err = testutil.GatherAndCompare(registry, strings.NewReader(expected), "tuichain_seed_node_calls_total")
		assert.NoError(t, err)
	})

	t.Run("counts sent transactions", func(t *testing.T) {
		t.Parallel()

		node := mocks.BaselineNode(t)
		registry := prometheus.NewRegistry()
		instrumented, err := metrics.NewNode(node, registry)
		require.NoError(t, err)

		tx := types.NewTx(&types.LegacyTx{Nonce: mocks.GenericNonce})
		err = instrumented.SendTransaction(context.Background(), tx)
		require.NoError(t, err)

		node.SendTransactionFunc = func(context.Context, *types.Transaction) error {
			return mocks.GenericError
		}
		err = instrumented.SendTransaction(context.Background(), tx)
		assert.ErrorIs(t, err, mocks.GenericError)

		receipt, err := instrumented.TransactionReceipt(context.Background(), common.Hash{})
		require.NoError(t, err)
		assert.NotNil(t, receipt)

		expected := `
# HELP tuichain_seed_node_transactions_sent_total number of signed transactions submitted to the node
# TYPE tuichain_seed_node_transactions_sent_total counter
tuichain_seed_node_transactions_sent_total 1
`
		err = testutil.GatherAndCompare(registry, strings.NewReader(expected), "tuichain_seed_node_transactions_sent_total")
		assert.NoError(t, err)
	})

	t.Run("handles duplicate registration", func(t *testing.T) {
		t.Parallel()

		registry := prometheus.NewRegistry()
		_, err := metrics.NewNode(mocks.BaselineNode(t), registry)
		require.NoError(t, err)

		_, err = metrics.NewNode(mocks.BaselineNode(t), registry)
		assert.Error(t, err)
	})
}

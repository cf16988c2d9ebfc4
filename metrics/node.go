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
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/optakt/tuichain-seed/relay"
)

// Node wraps an Ethereum node client and records the number, outcome and
// duration of the RPC calls made through it.
type Node struct {
	node     relay.Node
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	sent     prometheus.Counter
}

// NewNode decorates the given node client with metrics registered on the
// given registerer.
func NewNode(node relay.Node, registerer prometheus.Registerer) (*Node, error) {

	calls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespaceSeed,
		Subsystem: "node",
		Name:      "calls_total",
		Help:      "number of RPC calls made to the node",
	}, []string{"method", "result"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespaceSeed,
		Subsystem: "node",
		Name:      "call_duration_seconds",
		Help:      "duration of RPC calls made to the node",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})

	sent := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespaceSeed,
		Subsystem: "node",
		Name:      "transactions_sent_total",
		Help:      "number of signed transactions submitted to the node",
	})

	for _, collector := range []prometheus.Collector{calls, duration, sent} {
		err := registerer.Register(collector)
		if err != nil {
			return nil, err
		}
	}

	n := Node{
		node:     node,
		calls:    calls,
		duration: duration,
		sent:     sent,
	}

	return &n, nil
}

func (n *Node) ChainID(ctx context.Context) (*big.Int, error) {
	defer n.observe("chain_id", time.Now())
	id, err := n.node.ChainID(ctx)
	n.count("chain_id", err)
	return id, err
}

func (n *Node) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	defer n.observe("pending_nonce_at", time.Now())
	nonce, err := n.node.PendingNonceAt(ctx, account)
	n.count("pending_nonce_at", err)
	return nonce, err
}

func (n *Node) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	defer n.observe("suggest_gas_price", time.Now())
	price, err := n.node.SuggestGasPrice(ctx)
	n.count("suggest_gas_price", err)
	return price, err
}

func (n *Node) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	defer n.observe("estimate_gas", time.Now())
	gas, err := n.node.EstimateGas(ctx, msg)
	n.count("estimate_gas", err)
	return gas, err
}

func (n *Node) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	defer n.observe("send_transaction", time.Now())
	err := n.node.SendTransaction(ctx, tx)
	n.count("send_transaction", err)
	if err == nil {
		n.sent.Inc()
	}
	return err
}

func (n *Node) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	defer n.observe("transaction_receipt", time.Now())
	receipt, err := n.node.TransactionReceipt(ctx, txHash)
	n.count("transaction_receipt", err)
	return receipt, err
}

func (n *Node) observe(method string, start time.Time) {
	n.duration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}

func (n *Node) count(method string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	n.calls.WithLabelValues(method, result).Inc()
}

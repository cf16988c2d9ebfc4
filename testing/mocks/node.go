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
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type Node struct {
	ChainIDFunc            func(ctx context.Context) (*big.Int, error)
	PendingNonceAtFunc     func(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPriceFunc    func(ctx context.Context) (*big.Int, error)
	EstimateGasFunc        func(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransactionFunc    func(ctx context.Context, tx *types.Transaction) error
	TransactionReceiptFunc func(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

func BaselineNode(t *testing.T) *Node {
	t.Helper()

	n := Node{
		ChainIDFunc: func(context.Context) (*big.Int, error) {
			return GenericChainID, nil
		},
		PendingNonceAtFunc: func(context.Context, common.Address) (uint64, error) {
			return GenericNonce, nil
		},
		SuggestGasPriceFunc: func(context.Context) (*big.Int, error) {
			return GenericGasPrice, nil
		},
		EstimateGasFunc: func(context.Context, ethereum.CallMsg) (uint64, error) {
			return GenericGas, nil
		},
		SendTransactionFunc: func(context.Context, *types.Transaction) error {
			return nil
		},
		TransactionReceiptFunc: func(_ context.Context, hash common.Hash) (*types.Receipt, error) {
			return GenericReceipt(hash, types.ReceiptStatusSuccessful), nil
		},
	}

	return &n
}

func (n *Node) ChainID(ctx context.Context) (*big.Int, error) {
	return n.ChainIDFunc(ctx)
}

func (n *Node) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	return n.PendingNonceAtFunc(ctx, account)
}

func (n *Node) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return n.SuggestGasPriceFunc(ctx)
}

func (n *Node) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	return n.EstimateGasFunc(ctx, msg)
}

func (n *Node) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	return n.SendTransactionFunc(ctx, tx)
}

func (n *Node) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	return n.TransactionReceiptFunc(ctx, txHash)
}

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

package fakeapi

import (
	"context"
	"encoding/binary"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/optakt/tuichain-seed/models/tuichain"
)

// Operations encoded in the call data of marketplace transactions.
const (
	opApprove byte = iota + 1
	opFund
	opPay
	opSell
)

// ChainID is the chain ID of the fake chain.
var ChainID = big.NewInt(1337)

// Chain is a fake Ethereum node. Transactions are mined on the second receipt
// query, at which point their effect is applied to the marketplace.
type Chain struct {
	sync.Mutex
	market   *Marketplace
	signer   types.Signer
	nonces   map[common.Address]uint64
	pending  map[common.Hash]*types.Transaction
	polled   map[common.Hash]bool
	receipts map[common.Hash]*types.Receipt
	lookups  []uint64
	sent     []*types.Transaction
	block    uint64
}

func newChain(market *Marketplace) *Chain {
	c := Chain{
		market:   market,
		signer:   types.LatestSignerForChainID(ChainID),
		nonces:   make(map[common.Address]uint64),
		pending:  make(map[common.Hash]*types.Transaction),
		polled:   make(map[common.Hash]bool),
		receipts: make(map[common.Hash]*types.Receipt),
	}
	return &c
}

// Lookups returns every nonce handed out by PendingNonceAt, in order.
func (c *Chain) Lookups() []uint64 {
	c.Lock()
	defer c.Unlock()
	return append([]uint64(nil), c.lookups...)
}

// Sent returns every transaction submitted so far, in order.
func (c *Chain) Sent() []*types.Transaction {
	c.Lock()
	defer c.Unlock()
	return append([]*types.Transaction(nil), c.sent...)
}

func (c *Chain) ChainID(context.Context) (*big.Int, error) {
	return new(big.Int).Set(ChainID), nil
}

func (c *Chain) PendingNonceAt(_ context.Context, account common.Address) (uint64, error) {
	c.Lock()
	defer c.Unlock()
	nonce := c.nonces[account]
	c.lookups = append(c.lookups, nonce)
	return nonce, nil
}

func (c *Chain) SuggestGasPrice(context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000_000), nil
}

func (c *Chain) EstimateGas(context.Context, ethereum.CallMsg) (uint64, error) {
	return 100_000, nil
}

func (c *Chain) SendTransaction(_ context.Context, tx *types.Transaction) error {
	c.Lock()
	defer c.Unlock()

	from, err := types.Sender(c.signer, tx)
	if err != nil {
		return fmt.Errorf("invalid sender: %w", err)
	}
	if tx.Nonce() != c.nonces[from] {
		return fmt.Errorf("invalid nonce (have: %d, want: %d)", tx.Nonce(), c.nonces[from])
	}

	c.nonces[from]++
	c.pending[tx.Hash()] = tx
	c.sent = append(c.sent, tx)

	return nil
}

func (c *Chain) TransactionReceipt(_ context.Context, hash common.Hash) (*types.Receipt, error) {
	c.Lock()
	defer c.Unlock()

	receipt, ok := c.receipts[hash]
	if ok {
		return receipt, nil
	}
	tx, ok := c.pending[hash]
	if !ok || !c.polled[hash] {
		c.polled[hash] = true
		return nil, ethereum.NotFound
	}

	from, _ := types.Sender(c.signer, tx)
	status := types.ReceiptStatusSuccessful
	err := c.market.apply(from, tx.Data())
	if err != nil {
		status = types.ReceiptStatusFailed
	}

	c.block++
	receipt = &types.Receipt{
		Status:      status,
		TxHash:      hash,
		BlockNumber: new(big.Int).SetUint64(c.block),
		GasUsed:     21_000,
	}
	c.receipts[hash] = receipt
	delete(c.pending, hash)

	return receipt, nil
}

func encodeCall(op byte, loanID uint64, value *big.Int) []byte {
	data := make([]byte, 1+8+32)
	data[0] = op
	binary.BigEndian.PutUint64(data[1:9], loanID)
	value.FillBytes(data[9:])
	return data
}

// apply executes a mined transaction against the marketplace state.
func (m *Marketplace) apply(from common.Address, data []byte) error {
	if len(data) != 1+8+32 {
		return fmt.Errorf("invalid call data length (%d)", len(data))
	}
	op := data[0]
	loanID := binary.BigEndian.Uint64(data[1:9])
	value := new(big.Int).SetBytes(data[9:])

	m.Lock()
	defer m.Unlock()

	l, ok := m.loans[loanID]
	if !ok {
		return fmt.Errorf("unknown loan (%d)", loanID)
	}

	switch op {
	case opApprove:
		return nil
	case opFund:
		if l.State != tuichain.StateFunding {
			return fmt.Errorf("loan not in funding state")
		}
		l.FundedValue.Add(&l.FundedValue.Int, value)
		if l.FundedValue.Cmp(&l.RequestedValue.Int) >= 0 {
			l.State = tuichain.StateActive
		}
		return nil
	case opPay:
		if l.State != tuichain.StateActive {
			return fmt.Errorf("loan not active")
		}
		l.paid.Add(&l.paid, value)
		return nil
	case opSell:
		m.positions[loanID] += value.Uint64()
		return nil
	default:
		return fmt.Errorf("unknown operation (%d)", op)
	}
}

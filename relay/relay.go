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

package relay

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog"

	"github.com/optakt/tuichain-seed/failure"
	"github.com/optakt/tuichain-seed/models/tuichain"
)

// Relay signs transaction descriptors with a local key, submits them to an
// Ethereum node and waits for each of them to be mined.
//
// Descriptors are executed strictly one after the other. The next transaction
// is only built once the previous one has a successful receipt, so the pending
// nonce reported by the node always includes the earlier ones.
type Relay struct {
	log  zerolog.Logger
	node Node
	cfg  Config
}

// New creates a new relay submitting transactions to the given node.
func New(log zerolog.Logger, node Node, options ...Option) *Relay {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultConfig.PollInterval
	}

	r := Relay{
		log:  log.With().Str("component", "relay").Logger(),
		node: node,
		cfg:  cfg,
	}

	return &r
}

// Execute signs, submits and confirms the given descriptors in order, on
// behalf of the owner of the given key. It stops at the first failure; any
// descriptor after the failed one is never submitted.
func (r *Relay) Execute(ctx context.Context, key *ecdsa.PrivateKey, descriptors []tuichain.Descriptor) error {

	if key == nil {
		return failure.MissingKey{
			Description: failure.NewDescription("relay needs a key to sign transactions",
				failure.WithInt("descriptors", len(descriptors)),
			),
		}
	}

	if len(descriptors) == 0 {
		r.log.Debug().Msg("no transactions to relay")
		return nil
	}

	chainID, err := r.node.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("could not get chain ID: %w", err)
	}

	for index, descriptor := range descriptors {
		err := r.execute(ctx, chainID, key, index, descriptor)
		if err != nil {
			return fmt.Errorf("could not execute transaction (index: %d): %w", index, err)
		}
	}

	return nil
}

func (r *Relay) execute(ctx context.Context, chainID *big.Int, key *ecdsa.PrivateKey, index int, descriptor tuichain.Descriptor) error {

	from := crypto.PubkeyToAddress(key.PublicKey)

	nonce, err := r.node.PendingNonceAt(ctx, from)
	if err != nil {
		return fmt.Errorf("could not get pending nonce (address: %s): %w", from.Hex(), err)
	}

	value := big.NewInt(0)
	if descriptor.Value != nil {
		value = descriptor.Value.Big()
	}

	gasPrice, err := r.node.SuggestGasPrice(ctx)
	if err != nil {
		return fmt.Errorf("could not get gas price: %w", err)
	}

	to := descriptor.To
	gasLimit, err := r.node.EstimateGas(ctx, ethereum.CallMsg{
		From:  from,
		To:    &to,
		Value: value,
		Data:  descriptor.Data,
	})
	if err != nil {
		return fmt.Errorf("could not estimate gas: %w", err)
	}

	unsigned := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gasLimit,
		To:       &to,
		Value:    value,
		Data:     descriptor.Data,
	})
	tx, err := types.SignTx(unsigned, types.LatestSignerForChainID(chainID), key)
	if err != nil {
		return fmt.Errorf("could not sign transaction: %w", err)
	}

	err = r.node.SendTransaction(ctx, tx)
	if err != nil {
		return fmt.Errorf("could not send transaction (hash: %s): %w", tx.Hash().Hex(), err)
	}

	log := r.log.With().
		Int("index", index).
		Str("from", from.Hex()).
		Str("to", to.Hex()).
		Uint64("nonce", nonce).
		Str("hash", tx.Hash().Hex()).
		Logger()
	log.Debug().Uint64("gas", gasLimit).Str("gas_price", gasPrice.String()).Msg("transaction submitted")

	receipt, err := r.wait(ctx, tx.Hash())
	if err != nil {
		return fmt.Errorf("could not get receipt (hash: %s): %w", tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return failure.TransactionFailed{
			Description: failure.NewDescription("transaction receipt reports failure",
				failure.WithAddress("from", from),
				failure.WithAddress("to", to),
				failure.WithBig("value", value),
				failure.WithUint64("nonce", nonce),
				failure.WithUint64("block", receiptBlock(receipt)),
				failure.WithUint64("gas_used", receipt.GasUsed),
			),
			Hash:   tx.Hash(),
			Index:  index,
			Status: receipt.Status,
		}
	}

	log.Info().Uint64("block", receiptBlock(receipt)).Uint64("gas_used", receipt.GasUsed).Msg("transaction confirmed")

	return nil
}

// wait blocks until the node has a receipt for the given transaction hash.
func (r *Relay) wait(ctx context.Context, hash common.Hash) (*types.Receipt, error) {

	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	for {
		receipt, err := r.node.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			return nil, err
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func receiptBlock(receipt *types.Receipt) uint64 {
	if receipt.BlockNumber == nil {
		return 0
	}
	return receipt.BlockNumber.Uint64()
}

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
	"crypto/ecdsa"
	"encoding/hex"
	"errors"
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog"

	"github.com/optakt/tuichain-seed/models/tuichain"
)

var (
	NoopLogger = zerolog.New(io.Discard)

	GenericError = errors.New("dummy error")

	GenericChainID = big.NewInt(1337)

	GenericGasPrice = big.NewInt(20_000_000_000)

	GenericGas = uint64(84_000)

	GenericNonce = uint64(42)

	GenericLoanID = tuichain.NewLoanID(7)

	GenericToken = "9944b09199c62bcf9418ad846dd0e4bbdfc6ee4b"

	GenericBlock = big.NewInt(1024)

	GenericCredentials = tuichain.Credentials{
		Username: "alice",
		Password: "alice",
	}

	GenericSignup = tuichain.Signup{
		Credentials: GenericCredentials,
		Email:       "alice@example.com",
		FirstName:   "Alice",
		LastName:    "Smith",
	}
)

// GenericKey returns a deterministic private key for the given index.
func GenericKey(index int) *ecdsa.PrivateKey {
	seed := make([]byte, 32)
	seed[0] = 0x2a
	seed[31] = byte(index + 1)
	key, err := crypto.ToECDSA(seed)
	if err != nil {
		panic(err)
	}
	return key
}

// GenericKeyHex returns the hex encoding of the key for the given index.
func GenericKeyHex(index int) string {
	return hex.EncodeToString(crypto.FromECDSA(GenericKey(index)))
}

// GenericAddress returns the address of the key for the given index.
func GenericAddress(index int) common.Address {
	return crypto.PubkeyToAddress(GenericKey(index).PublicKey)
}

// GenericContract returns a deterministic contract address for the given index.
func GenericContract(index int) common.Address {
	return common.BigToAddress(big.NewInt(int64(0xc0de00 + index)))
}

// GenericDescriptors returns the given number of transaction descriptors,
// each calling a different contract.
func GenericDescriptors(number int) []tuichain.Descriptor {
	descriptors := make([]tuichain.Descriptor, 0, number)
	for i := 0; i < number; i++ {
		descriptor := tuichain.Descriptor{
			To:   GenericContract(i),
			Data: []byte{0xde, 0xad, 0xbe, 0xef, byte(i)},
		}
		descriptors = append(descriptors, descriptor)
	}
	return descriptors
}

// GenericReceipt returns a receipt with the given status for the transaction.
func GenericReceipt(hash common.Hash, status uint64) *types.Receipt {
	return &types.Receipt{
		Status:      status,
		TxHash:      hash,
		BlockNumber: GenericBlock,
		GasUsed:     GenericGas / 2,
	}
}

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

package tuichain

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Loan states as reported by the marketplace.
const (
	StatePending   = "pending"
	StateFunding   = "funding"
	StateActive    = "active"
	StateFinalized = "finalized"
	StateCanceled  = "canceled"
)

// Token is the response to a login or signup request.
type Token struct {
	Token string `json:"token" validate:"required"`
}

// LoanCreated is the response to a loan creation request.
type LoanCreated struct {
	LoanID LoanID `json:"loan" validate:"required"`
}

// Transactions is the response of every endpoint that needs the caller to
// sign and execute transactions on its own behalf.
type Transactions struct {
	Transactions []Descriptor `json:"transactions" validate:"required,dive"`
}

// Descriptor describes an unsigned transaction. The remaining fields of the
// transaction are filled in by the signer.
type Descriptor struct {
	To    common.Address `json:"to"`
	Data  hexutil.Bytes  `json:"data"`
	Value *Amount        `json:"value,omitempty"`
}

// LoanDetails is the response to a loan lookup.
type LoanDetails struct {
	Loan Loan `json:"loan"`
}

// Loan is the marketplace's view of a single loan.
type Loan struct {
	ID               LoanID         `json:"id"`
	State            string         `json:"state"`
	School           string         `json:"school"`
	Course           string         `json:"course"`
	RequestedValue   Amount         `json:"requested_value_atto_dai"`
	FundedValue      Amount         `json:"funded_value_atto_dai"`
	RecipientAddress common.Address `json:"recipient_address"`
}

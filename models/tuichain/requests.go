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
)

// Credentials is the body of a login request.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Signup is the body of a signup request.
type Signup struct {
	Credentials
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
}

// LoanRequest is the body of a loan creation request.
type LoanRequest struct {
	School           string         `json:"school" validate:"required"`
	Course           string         `json:"course" validate:"required"`
	RequestedValue   Amount         `json:"requested_value_atto_dai"`
	Destination      string         `json:"destination" validate:"required"`
	Description      string         `json:"description"`
	RecipientAddress common.Address `json:"recipient_address"`
}

// Validation is the body of a loan validation request. Fees are given in
// atto-DAI per DAI, so 3% is 0.03 DAI.
type Validation struct {
	DaysToExpiration uint   `json:"days_to_expiration,string" validate:"required"`
	FundingFee       Amount `json:"funding_fee_atto_dai_per_dai"`
	PaymentFee       Amount `json:"payment_fee_atto_dai_per_dai"`
}

// Funding is the body of a fund provision request.
type Funding struct {
	LoanID LoanID `json:"loan_id" validate:"required"`
	Value  Amount `json:"value_atto_dai"`
}

// Payment is the body of a loan payment request.
type Payment struct {
	LoanID LoanID `json:"loan_id" validate:"required"`
	Value  Amount `json:"value_atto_dai"`
}

// SellPosition is the body of a request to put loan tokens up for sale.
type SellPosition struct {
	LoanID       LoanID `json:"loan_id" validate:"required"`
	AmountTokens uint64 `json:"amount_tokens" validate:"required"`
	Price        Amount `json:"price_atto_dai_per_token"`
}

// Finalization is the empty body of a loan finalization request.
type Finalization struct{}

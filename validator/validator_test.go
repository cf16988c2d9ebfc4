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

package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/tuichain-seed/failure"
	"github.com/optakt/tuichain-seed/models/tuichain"
	"github.com/optakt/tuichain-seed/testing/mocks"
	"github.com/optakt/tuichain-seed/validator"
)

func TestValidator_Payload(t *testing.T) {
	validLoan := tuichain.LoanRequest{
		School:           "University of Alice",
		Course:           "Alice Engineering",
		RequestedValue:   tuichain.Dai(10000),
		Destination:      "Portugal",
		Description:      "Hi, I am Alice.",
		RecipientAddress: mocks.GenericAddress(0),
	}
	negative := tuichain.Dai(-1)

	valid := []interface{}{
		nil,
		map[string]string{},
		"free-form",
		mocks.GenericCredentials,
		&mocks.GenericSignup,
		validLoan,
		tuichain.Validation{DaysToExpiration: 30, FundingFee: tuichain.DaiFraction(3, 100)},
		tuichain.Funding{LoanID: tuichain.NewLoanID(1), Value: tuichain.Dai(1)},
		tuichain.Payment{LoanID: tuichain.NewLoanID(1), Value: tuichain.Dai(1)},
		tuichain.SellPosition{LoanID: tuichain.NewLoanID(1), AmountTokens: 2500, Price: tuichain.DaiFraction(15, 10)},
		tuichain.Finalization{},
		&tuichain.Token{Token: mocks.GenericToken},
		&tuichain.LoanCreated{LoanID: mocks.GenericLoanID},
		&tuichain.Transactions{Transactions: mocks.GenericDescriptors(3)},
		&tuichain.Transactions{Transactions: []tuichain.Descriptor{}},
	}

	invalid := map[string]interface{}{
		"missing password":        tuichain.Credentials{Username: "alice"},
		"invalid email":           tuichain.Signup{Credentials: mocks.GenericCredentials, Email: "alice", FirstName: "Alice", LastName: "Smith"},
		"missing school":          func() tuichain.LoanRequest { l := validLoan; l.School = ""; return l }(),
		"zero requested value":    func() tuichain.LoanRequest { l := validLoan; l.RequestedValue = tuichain.Amount{}; return l }(),
		"missing recipient":       func() tuichain.LoanRequest { l := validLoan; l.RecipientAddress = [20]byte{}; return l }(),
		"zero expiration":         tuichain.Validation{},
		"negative fee":            tuichain.Validation{DaysToExpiration: 30, PaymentFee: negative},
		"missing loan":            tuichain.Funding{Value: tuichain.Dai(1)},
		"missing transactions":    &tuichain.Transactions{},
		"zero funding":            tuichain.Funding{LoanID: tuichain.NewLoanID(1)},
		"negative payment":        tuichain.Payment{LoanID: tuichain.NewLoanID(1), Value: negative},
		"zero tokens":             tuichain.SellPosition{LoanID: tuichain.NewLoanID(1), Price: tuichain.Dai(1)},
		"zero price":              tuichain.SellPosition{LoanID: tuichain.NewLoanID(1), AmountTokens: 1},
		"empty token":             &tuichain.Token{},
		"zero loan":               &tuichain.LoanCreated{},
		"descriptor without dest": &tuichain.Transactions{Transactions: []tuichain.Descriptor{{Data: []byte{0x01}}}},
		"negative descriptor":     &tuichain.Transactions{Transactions: []tuichain.Descriptor{{To: mocks.GenericContract(0), Value: &negative}}},
	}

	t.Run("valid payloads", func(t *testing.T) {
		t.Parallel()

		validate := validator.New()
		for _, payload := range valid {
			assert.NoError(t, validate.Payload(payload), "%T", payload)
		}
	})

	for name, payload := range invalid {
		name, payload := name, payload
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			validate := validator.New()
			err := validate.Payload(payload)

			var invalid failure.InvalidPayload
			require.ErrorAs(t, err, &invalid)
			assert.NotEmpty(t, invalid.Type)
		})
	}
}

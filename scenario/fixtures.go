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

package scenario

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/optakt/tuichain-seed/models/tuichain"
)

// Terms every loan of the scenario is validated with: 30 days to expiration,
// 3% funding fee and 5% payment fee.
const (
	daysToExpiration = 30
	fundingFeeNum    = 3
	paymentFeeNum    = 5
	feeDen           = 100
)

func signup(username string) tuichain.Signup {
	name := strings.ToUpper(username[:1]) + username[1:]
	return tuichain.Signup{
		Credentials: tuichain.Credentials{
			Username: username,
			Password: username,
		},
		Email:     username + "@example.com",
		FirstName: name,
		LastName:  "Smith",
	}
}

func loanRequest(username string, recipient common.Address) tuichain.LoanRequest {
	name := strings.ToUpper(username[:1]) + username[1:]
	return tuichain.LoanRequest{
		School:           "University of " + name,
		Course:           name + " Engineering",
		RequestedValue:   tuichain.Dai(10000),
		Destination:      "Portugal",
		Description:      "Hi, I am " + name + ".",
		RecipientAddress: recipient,
	}
}

func validation() tuichain.Validation {
	return tuichain.Validation{
		DaysToExpiration: daysToExpiration,
		FundingFee:       tuichain.DaiFraction(fundingFeeNum, feeDen),
		PaymentFee:       tuichain.DaiFraction(paymentFeeNum, feeDen),
	}
}

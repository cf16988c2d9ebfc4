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
	"fmt"
	"net/url"
)

// Paths of the marketplace REST API.
const (
	PathLogin        = "/api/auth/login/"
	PathSignup       = "/api/auth/signup/"
	PathLoanNew      = "/api/loans/new/"
	PathProvideFunds = "/api/loans/transactions/provide_funds/"
	PathMakePayment  = "/api/loans/transactions/make_payment/"
	PathSellPosition = "/api/market/transactions/create_sell_position/"
)

func PathLoanValidate(loanID LoanID) string {
	return fmt.Sprintf("/api/loans/validate/%s/", url.PathEscape(loanID.String()))
}

func PathLoanFinalize(loanID LoanID) string {
	return fmt.Sprintf("/api/loans/finalize/%s/", url.PathEscape(loanID.String()))
}

func PathLoanGet(loanID LoanID) string {
	return fmt.Sprintf("/api/loans/get/%s/", url.PathEscape(loanID.String()))
}

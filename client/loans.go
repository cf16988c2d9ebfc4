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

package client

import (
	"context"
	"fmt"

	"github.com/optakt/tuichain-seed/models/tuichain"
)

// CreateLoan requests a new loan and returns its identifier.
func (a *Actor) CreateLoan(ctx context.Context, request tuichain.LoanRequest) (tuichain.LoanID, error) {
	var created tuichain.LoanCreated
	err := a.Post(ctx, tuichain.PathLoanNew, request, &created)
	if err != nil {
		return "", fmt.Errorf("could not create loan: %w", err)
	}
	return created.LoanID, nil
}

// ValidateLoan approves a loan request; only administrators may do so.
func (a *Actor) ValidateLoan(ctx context.Context, loanID tuichain.LoanID, validation tuichain.Validation) error {
	err := a.Put(ctx, tuichain.PathLoanValidate(loanID), validation, nil)
	if err != nil {
		return fmt.Errorf("could not validate loan (loan: %s): %w", loanID, err)
	}
	return nil
}

// FinalizeLoan closes a fully paid loan; only administrators may do so.
func (a *Actor) FinalizeLoan(ctx context.Context, loanID tuichain.LoanID) error {
	err := a.Put(ctx, tuichain.PathLoanFinalize(loanID), tuichain.Finalization{}, nil)
	if err != nil {
		return fmt.Errorf("could not finalize loan (loan: %s): %w", loanID, err)
	}
	return nil
}

// ProvideFunds funds a loan from the actor's account.
func (a *Actor) ProvideFunds(ctx context.Context, funding tuichain.Funding) error {
	err := a.Transact(ctx, tuichain.PathProvideFunds, funding)
	if err != nil {
		return fmt.Errorf("could not provide funds (loan: %s): %w", funding.LoanID, err)
	}
	return nil
}

// MakePayment pays back part of a loan from the actor's account.
func (a *Actor) MakePayment(ctx context.Context, payment tuichain.Payment) error {
	err := a.Transact(ctx, tuichain.PathMakePayment, payment)
	if err != nil {
		return fmt.Errorf("could not make payment (loan: %s): %w", payment.LoanID, err)
	}
	return nil
}

// Loan looks up the current state of a loan.
func (a *Actor) Loan(ctx context.Context, loanID tuichain.LoanID) (*tuichain.Loan, error) {
	var details tuichain.LoanDetails
	err := a.Get(ctx, tuichain.PathLoanGet(loanID), nil, &details)
	if err != nil {
		return nil, fmt.Errorf("could not get loan (loan: %s): %w", loanID, err)
	}
	return &details.Loan, nil
}

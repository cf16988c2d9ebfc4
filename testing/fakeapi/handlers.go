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
	"encoding/json"
	"math/big"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/optakt/tuichain-seed/models/tuichain"
)

func (m *Marketplace) Login(ctx echo.Context) error {
	var req tuichain.Credentials
	err := bind(ctx, &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	m.Lock()
	defer m.Unlock()

	u, ok := m.users[req.Username]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "user does not exist")
	}
	if u.signup.Password != req.Password {
		return echo.NewHTTPError(http.StatusUnauthorized, "wrong password")
	}

	return ctx.JSON(http.StatusOK, tuichain.Token{Token: m.issue(req.Username)})
}

func (m *Marketplace) Signup(ctx echo.Context) error {
	var req tuichain.Signup
	err := bind(ctx, &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	m.Lock()
	defer m.Unlock()

	_, ok := m.users[req.Username]
	if ok {
		return echo.NewHTTPError(http.StatusConflict, "user already exists")
	}
	m.users[req.Username] = &user{signup: req}

	return ctx.JSON(http.StatusCreated, tuichain.Token{Token: m.issue(req.Username)})
}

func (m *Marketplace) CreateLoan(ctx echo.Context) error {
	var req tuichain.LoanRequest
	err := bind(ctx, &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	m.Lock()
	defer m.Unlock()

	u, err := m.authenticate(ctx)
	if err != nil {
		return err
	}

	id := m.next
	m.next++
	m.loans[id] = &loan{
		Loan: tuichain.Loan{
			ID:               tuichain.NewLoanID(id),
			State:            tuichain.StatePending,
			School:           req.School,
			Course:           req.Course,
			RequestedValue:   req.RequestedValue,
			RecipientAddress: req.RecipientAddress,
		},
		owner: u.signup.Username,
	}

	return ctx.JSON(http.StatusCreated, tuichain.LoanCreated{LoanID: tuichain.NewLoanID(id)})
}

func (m *Marketplace) ValidateLoan(ctx echo.Context) error {
	var req tuichain.Validation
	err := bind(ctx, &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	m.Lock()
	defer m.Unlock()

	l, err := m.adminLoan(ctx)
	if err != nil {
		return err
	}
	if l.State != tuichain.StatePending {
		return echo.NewHTTPError(http.StatusConflict, "loan is not pending")
	}
	l.State = tuichain.StateFunding

	return ctx.JSON(http.StatusOK, map[string]string{})
}

func (m *Marketplace) FinalizeLoan(ctx echo.Context) error {
	m.Lock()
	defer m.Unlock()

	l, err := m.adminLoan(ctx)
	if err != nil {
		return err
	}
	if l.State != tuichain.StateActive || l.paid.Sign() == 0 {
		return echo.NewHTTPError(http.StatusConflict, "loan is not paid")
	}
	l.State = tuichain.StateFinalized

	return ctx.JSON(http.StatusOK, map[string]string{})
}

func (m *Marketplace) GetLoan(ctx echo.Context) error {
	m.Lock()
	defer m.Unlock()

	_, err := m.authenticate(ctx)
	if err != nil {
		return err
	}
	l, err := m.loan(ctx)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, tuichain.LoanDetails{Loan: l.Loan})
}

func (m *Marketplace) ProvideFunds(ctx echo.Context) error {
	var req tuichain.Funding
	err := bind(ctx, &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id, err := strconv.ParseUint(req.LoanID.String(), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid loan ID")
	}

	m.Lock()
	defer m.Unlock()

	l, ok := m.loans[id]
	if !ok || l.State != tuichain.StateFunding {
		return echo.NewHTTPError(http.StatusConflict, "loan is not open for funding")
	}

	txs := tuichain.Transactions{
		Transactions: []tuichain.Descriptor{
			{To: DaiContract, Data: encodeCall(opApprove, id, req.Value.Big())},
			{To: LoansContract, Data: encodeCall(opFund, id, req.Value.Big())},
		},
	}

	return ctx.JSON(http.StatusOK, txs)
}

func (m *Marketplace) MakePayment(ctx echo.Context) error {
	var req tuichain.Payment
	err := bind(ctx, &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id, err := strconv.ParseUint(req.LoanID.String(), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid loan ID")
	}

	m.Lock()
	defer m.Unlock()

	l, ok := m.loans[id]
	if !ok || l.State != tuichain.StateActive {
		return echo.NewHTTPError(http.StatusConflict, "loan is not active")
	}

	txs := tuichain.Transactions{
		Transactions: []tuichain.Descriptor{
			{To: DaiContract, Data: encodeCall(opApprove, id, req.Value.Big())},
			{To: LoansContract, Data: encodeCall(opPay, id, req.Value.Big())},
		},
	}

	return ctx.JSON(http.StatusOK, txs)
}

func (m *Marketplace) CreateSellPosition(ctx echo.Context) error {
	var req tuichain.SellPosition
	err := bind(ctx, &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id, err := strconv.ParseUint(req.LoanID.String(), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid loan ID")
	}

	m.Lock()
	defer m.Unlock()

	_, ok := m.loans[id]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "loan does not exist")
	}

	tokens := new(big.Int).SetUint64(req.AmountTokens)
	txs := tuichain.Transactions{
		Transactions: []tuichain.Descriptor{
			{To: MarketContract, Data: encodeCall(opSell, id, tokens)},
		},
	}

	return ctx.JSON(http.StatusOK, txs)
}

func (m *Marketplace) adminLoan(ctx echo.Context) (*loan, error) {
	u, err := m.authenticate(ctx)
	if err != nil {
		return nil, err
	}
	if !u.admin {
		return nil, echo.NewHTTPError(http.StatusForbidden, "admin only")
	}
	return m.loan(ctx)
}

func (m *Marketplace) loan(ctx echo.Context) (*loan, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid loan ID")
	}
	l, ok := m.loans[id]
	if !ok {
		return nil, echo.NewHTTPError(http.StatusNotFound, "loan does not exist")
	}
	return l, nil
}

func bind(ctx echo.Context, value interface{}) error {
	return json.NewDecoder(ctx.Request().Body).Decode(value)
}

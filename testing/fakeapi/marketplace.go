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
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/ziflex/lecho/v2"

	"github.com/optakt/tuichain-seed/models/tuichain"
)

// Contracts the marketplace hands out transactions for.
var (
	DaiContract    = common.HexToAddress("0x00000000000000000000000000000000000da1da")
	LoansContract  = common.HexToAddress("0x000000000000000000000000000000000010a45e")
	MarketContract = common.HexToAddress("0x0000000000000000000000000000000000ba2aa2")
)

type user struct {
	signup tuichain.Signup
	admin  bool
}

type loan struct {
	tuichain.Loan
	owner string
	paid  big.Int
}

// Marketplace is an in-memory stand-in for the lending marketplace REST API,
// backed by a fake chain on which the transactions it hands out take effect.
type Marketplace struct {
	sync.Mutex
	users     map[string]*user
	tokens    map[string]string
	loans     map[uint64]*loan
	positions map[uint64]uint64
	next      uint64
	calls     map[string]int
	chain     *Chain
	server    *echo.Echo
}

// New creates a marketplace with a single administrator account.
func New(log zerolog.Logger, admin tuichain.Credentials) *Marketplace {

	m := Marketplace{
		users:     make(map[string]*user),
		tokens:    make(map[string]string),
		loans:     make(map[uint64]*loan),
		positions: make(map[uint64]uint64),
		next:      1,
		calls:     make(map[string]int),
	}
	m.users[admin.Username] = &user{
		signup: tuichain.Signup{Credentials: admin},
		admin:  true,
	}
	m.chain = newChain(&m)

	server := echo.New()
	server.HideBanner = true
	server.HidePort = true
	server.Logger = lecho.From(log)
	server.Use(m.count)
	server.POST(tuichain.PathLogin, m.Login)
	server.POST(tuichain.PathSignup, m.Signup)
	server.POST(tuichain.PathLoanNew, m.CreateLoan)
	server.PUT("/api/loans/validate/:id/", m.ValidateLoan)
	server.PUT("/api/loans/finalize/:id/", m.FinalizeLoan)
	server.GET("/api/loans/get/:id/", m.GetLoan)
	server.POST(tuichain.PathProvideFunds, m.ProvideFunds)
	server.POST(tuichain.PathMakePayment, m.MakePayment)
	server.POST(tuichain.PathSellPosition, m.CreateSellPosition)
	m.server = server

	return &m
}

// Handler returns the HTTP handler serving the API.
func (m *Marketplace) Handler() http.Handler {
	return m.server
}

// Chain returns the fake chain the marketplace contracts live on.
func (m *Marketplace) Chain() *Chain {
	return m.chain
}

// Calls returns how many requests were made to the given path.
func (m *Marketplace) Calls(path string) int {
	m.Lock()
	defer m.Unlock()
	return m.calls[path]
}

// Loans returns the number of loans created so far.
func (m *Marketplace) Loans() int {
	m.Lock()
	defer m.Unlock()
	return len(m.loans)
}

// Position returns the number of tokens of the given loan put up for sale.
func (m *Marketplace) Position(loanID tuichain.LoanID) uint64 {
	id, err := strconv.ParseUint(loanID.String(), 10, 64)
	if err != nil {
		return 0
	}
	m.Lock()
	defer m.Unlock()
	return m.positions[id]
}

func (m *Marketplace) count(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		m.Lock()
		m.calls[ctx.Request().URL.Path]++
		m.Unlock()
		return next(ctx)
	}
}

// authenticate returns the user behind the request's token.
func (m *Marketplace) authenticate(ctx echo.Context) (*user, error) {
	header := ctx.Request().Header.Get("Authorization")
	token := strings.TrimPrefix(header, "Token ")
	username, ok := m.tokens[token]
	if header == "" || !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return m.users[username], nil
}

func (m *Marketplace) issue(username string) string {
	data := make([]byte, 20)
	_, _ = rand.Read(data)
	token := hex.EncodeToString(data)
	m.tokens[token] = username
	return token
}

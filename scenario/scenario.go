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
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/optakt/tuichain-seed/client"
	"github.com/optakt/tuichain-seed/journal"
	"github.com/optakt/tuichain-seed/models/tuichain"
)

// Config is the configuration of a scenario run.
type Config struct {
	Admin tuichain.Credentials
	Keys  Keys
	Timer Timer
}

// Result holds the identifiers of the loans the scenario created.
type Result struct {
	Alice   tuichain.LoanID
	Bob     tuichain.LoanID
	Charlie tuichain.LoanID
}

// record is what the journal keeps for a completed step.
type record struct {
	LoanID    tuichain.LoanID
	Completed time.Time
}

// Scenario populates the marketplace with a fixed set of users, loans,
// fundings, payments and a sell position.
type Scenario struct {
	log     zerolog.Logger
	api     API
	journal Journal
	cfg     Config
	timer   Timer
}

// New creates a new scenario played through the given API.
func New(log zerolog.Logger, api API, journal Journal, cfg Config) *Scenario {
	s := Scenario{
		log:     log.With().Str("component", "scenario").Logger(),
		api:     api,
		journal: journal,
		cfg:     cfg,
		timer:   cfg.Timer,
	}
	if s.timer == nil {
		s.timer = noopTimer{}
	}
	return &s
}

// Run plays the whole scenario. It stops at the first failure; steps that
// completed before are recorded in the journal and skipped on the next run.
func (s *Scenario) Run(ctx context.Context) (*Result, error) {

	// Acquiring actors has no side effects beyond the first signup, so it is
	// done on every run to get fresh tokens.
	admin, err := s.api.Login(ctx, s.cfg.Admin)
	if err != nil {
		return nil, fmt.Errorf("could not log in admin: %w", err)
	}
	alice, err := s.api.Acquire(ctx, signup("alice"), s.cfg.Keys.Alice)
	if err != nil {
		return nil, err
	}
	bob, err := s.api.Acquire(ctx, signup("bob"), s.cfg.Keys.Bob)
	if err != nil {
		return nil, err
	}
	charlie, err := s.api.Acquire(ctx, signup("charlie"), s.cfg.Keys.Charlie)
	if err != nil {
		return nil, err
	}
	dough, err := s.api.Acquire(ctx, signup("dough"), s.cfg.Keys.Dough)
	if err != nil {
		return nil, err
	}
	eve, err := s.api.Acquire(ctx, signup("eve"), s.cfg.Keys.Eve)
	if err != nil {
		return nil, err
	}

	var result Result

	// Alice's loan is funded halfway by dough.
	result.Alice, err = s.newLoan(ctx, alice, admin)
	if err != nil {
		return nil, err
	}
	err = s.fund(ctx, dough, alice, result.Alice, 5000)
	if err != nil {
		return nil, err
	}

	// Bob's loan is funded completely by dough and eve.
	result.Bob, err = s.newLoan(ctx, bob, admin)
	if err != nil {
		return nil, err
	}
	err = s.fund(ctx, dough, bob, result.Bob, 5000)
	if err != nil {
		return nil, err
	}
	err = s.fund(ctx, eve, bob, result.Bob, 5000)
	if err != nil {
		return nil, err
	}

	// Charlie's loan is funded completely, paid back and finalized.
	result.Charlie, err = s.newLoan(ctx, charlie, admin)
	if err != nil {
		return nil, err
	}
	err = s.fund(ctx, dough, charlie, result.Charlie, 5000)
	if err != nil {
		return nil, err
	}
	err = s.fund(ctx, eve, charlie, result.Charlie, 5000)
	if err != nil {
		return nil, err
	}
	err = s.once(step("loan", charlie.Username(), "payment"), &record{}, func(*record) error {
		return charlie.MakePayment(ctx, tuichain.Payment{
			LoanID: result.Charlie,
			Value:  tuichain.Dai(12000),
		})
	})
	if err != nil {
		return nil, err
	}
	err = s.once(step("loan", charlie.Username(), "finalize"), &record{}, func(*record) error {
		return admin.FinalizeLoan(ctx, result.Charlie)
	})
	if err != nil {
		return nil, err
	}

	// Eve puts half of her tokens of bob's loan up for sale at 1.5 DAI each.
	err = s.once(step("market", eve.Username(), "sell", bob.Username()), &record{}, func(*record) error {
		return eve.CreateSellPosition(ctx, tuichain.SellPosition{
			LoanID:       result.Bob,
			AmountTokens: 2500,
			Price:        tuichain.DaiFraction(15, 10),
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Stringer("alice_loan", result.Alice).
		Stringer("bob_loan", result.Bob).
		Stringer("charlie_loan", result.Charlie).
		Msg("scenario completed")

	return &result, nil
}

// newLoan creates a loan for the borrower and has the admin validate it.
func (s *Scenario) newLoan(ctx context.Context, borrower *client.Actor, admin *client.Actor) (tuichain.LoanID, error) {

	recipient, ok := borrower.Address()
	if !ok {
		return "", fmt.Errorf("borrower has no address (username: %s)", borrower.Username())
	}

	var created record
	err := s.once(step("loan", borrower.Username(), "new"), &created, func(rec *record) error {
		loanID, err := borrower.CreateLoan(ctx, loanRequest(borrower.Username(), recipient))
		rec.LoanID = loanID
		return err
	})
	if err != nil {
		return "", err
	}

	err = s.once(step("loan", borrower.Username(), "validate"), &record{}, func(*record) error {
		return admin.ValidateLoan(ctx, created.LoanID, validation())
	})
	if err != nil {
		return "", err
	}

	return created.LoanID, nil
}

// fund has the lender provide the given number of DAI to the borrower's loan.
func (s *Scenario) fund(ctx context.Context, lender *client.Actor, borrower *client.Actor, loanID tuichain.LoanID, dai int64) error {
	return s.once(step("loan", borrower.Username(), "fund", lender.Username()), &record{}, func(*record) error {
		return lender.ProvideFunds(ctx, tuichain.Funding{
			LoanID: loanID,
			Value:  tuichain.Dai(dai),
		})
	})
}

// once runs the given step, unless the journal says it already completed, in
// which case the recorded result is loaded into rec instead.
func (s *Scenario) once(name string, rec *record, run func(rec *record) error) error {

	err := s.journal.Retrieve(name, rec)
	if err == nil {
		s.log.Info().Str("step", name).Stringer("loan", rec.LoanID).Msg("step already completed, skipping")
		return nil
	}
	if !errors.Is(err, journal.ErrNotFound) {
		return fmt.Errorf("could not check journal (step: %s): %w", name, err)
	}

	stop := s.timer.Duration(name)
	err = run(rec)
	stop()
	if err != nil {
		return fmt.Errorf("could not run step (step: %s): %w", name, err)
	}
	rec.Completed = time.Now().UTC()

	err = s.journal.Save(name, rec)
	if err != nil {
		return fmt.Errorf("could not record step (step: %s): %w", name, err)
	}

	s.log.Info().Str("step", name).Stringer("loan", rec.LoanID).Msg("step completed")

	return nil
}

func step(parts ...string) string {
	return strings.Join(parts, "/")
}

type noopTimer struct{}

func (noopTimer) Duration(string) func() {
	return func() {}
}

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

package journal_test

import (
	"testing"
	"time"

	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/tuichain-seed/codec/zbor"
	"github.com/optakt/tuichain-seed/journal"
	"github.com/optakt/tuichain-seed/models/tuichain"
	"github.com/optakt/tuichain-seed/testing/mocks"
)

type entry struct {
	LoanID    tuichain.LoanID
	Completed time.Time
}

func TestJournal(t *testing.T) {
	step := "loan/alice/new"
	want := entry{
		LoanID:    mocks.GenericLoanID,
		Completed: time.Date(2021, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	t.Run("save and retrieve", func(t *testing.T) {
		t.Parallel()

		jour, err := journal.Open("")
		require.NoError(t, err)
		defer jour.Close()

		err = jour.Save(step, want)
		require.NoError(t, err)

		var got entry
		err = jour.Retrieve(step, &got)

		require.NoError(t, err)
		assert.Equal(t, want.LoanID, got.LoanID)
		assert.True(t, want.Completed.Equal(got.Completed))
	})

	t.Run("unknown step", func(t *testing.T) {
		t.Parallel()

		jour, err := journal.Open("")
		require.NoError(t, err)
		defer jour.Close()

		var got entry
		err = jour.Retrieve(step, &got)

		assert.ErrorIs(t, err, journal.ErrNotFound)
	})

	t.Run("survives reopening", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		jour, err := journal.Open(dir)
		require.NoError(t, err)
		err = jour.Save(step, want)
		require.NoError(t, err)
		require.NoError(t, jour.Close())

		jour, err = journal.Open(dir)
		require.NoError(t, err)
		defer jour.Close()

		var got entry
		err = jour.Retrieve(step, &got)

		require.NoError(t, err)
		assert.Equal(t, want.LoanID, got.LoanID)
	})

	t.Run("handles codec marshal failure", func(t *testing.T) {
		t.Parallel()

		db, err := badger.Open(journal.DefaultOptions(""))
		require.NoError(t, err)
		defer db.Close()

		codec := mocks.BaselineCodec(t)
		codec.MarshalFunc = func(interface{}) ([]byte, error) {
			return nil, mocks.GenericError
		}
		jour := journal.New(db, codec)

		err = jour.Save(step, want)

		assert.ErrorIs(t, err, mocks.GenericError)
	})

	t.Run("handles codec unmarshal failure", func(t *testing.T) {
		t.Parallel()

		db, err := badger.Open(journal.DefaultOptions(""))
		require.NoError(t, err)
		defer db.Close()

		codec := mocks.BaselineCodec(t)
		codec.UnmarshalFunc = func([]byte, interface{}) error {
			return mocks.GenericError
		}
		jour := journal.New(db, codec)

		err = jour.Save(step, want)
		require.NoError(t, err)

		var got entry
		err = jour.Retrieve(step, &got)

		assert.ErrorIs(t, err, mocks.GenericError)
		assert.NotErrorIs(t, err, journal.ErrNotFound)
	})

	t.Run("zbor codec is compatible", func(t *testing.T) {
		t.Parallel()

		db, err := badger.Open(journal.DefaultOptions(""))
		require.NoError(t, err)
		defer db.Close()

		jour := journal.New(db, zbor.NewCodec())
		err = jour.Save(step, want)
		require.NoError(t, err)

		var got entry
		err = jour.Retrieve(step, &got)

		require.NoError(t, err)
		assert.Equal(t, want.LoanID, got.LoanID)
	})
}

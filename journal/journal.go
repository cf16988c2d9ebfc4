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

package journal

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v2"

	"github.com/optakt/tuichain-seed/codec/zbor"
)

// ErrNotFound is returned when a step was never recorded.
var ErrNotFound = errors.New("step not found")

// Codec encodes the records kept in the journal.
type Codec interface {
	Marshal(value interface{}) ([]byte, error)
	Unmarshal(data []byte, value interface{}) error
}

// Journal records which steps of a run completed, along with whatever result
// later steps depend on, so that a run that was aborted can be resumed
// without repeating its side effects.
type Journal struct {
	db    *badger.DB
	codec Codec
}

// Open opens the journal stored in the given directory, creating it if needed.
// An empty directory gives a journal that only lives as long as the process.
func Open(dir string) (*Journal, error) {
	db, err := badger.Open(DefaultOptions(dir))
	if err != nil {
		return nil, fmt.Errorf("could not open journal database (dir: %s): %w", dir, err)
	}
	return New(db, zbor.NewCodec()), nil
}

// New creates a journal on top of an open database.
func New(db *badger.DB, codec Codec) *Journal {
	j := Journal{
		db:    db,
		codec: codec,
	}
	return &j
}

// Save records the given step as completed, with the given result.
func (j *Journal) Save(step string, record interface{}) error {

	key := stepKey(step)
	val, err := j.codec.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not encode record (step: %s): %w", step, err)
	}

	err = j.db.Update(func(tx *badger.Txn) error {
		return tx.Set(key, val)
	})
	if err != nil {
		return fmt.Errorf("could not save record (step: %s): %w", step, err)
	}

	return nil
}

// Retrieve decodes the result of the given step into the record. It returns
// ErrNotFound if the step was not completed yet.
func (j *Journal) Retrieve(step string, record interface{}) error {

	err := j.db.View(func(tx *badger.Txn) error {
		item, err := tx.Get(stepKey(step))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return j.codec.Unmarshal(val, record)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("could not retrieve record (step: %s): %w", step, err)
	}

	return nil
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	return j.db.Close()
}

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

package mocks

import (
	"testing"

	"github.com/optakt/tuichain-seed/journal"
)

type Journal struct {
	SaveFunc     func(step string, record interface{}) error
	RetrieveFunc func(step string, record interface{}) error
}

func BaselineJournal(t *testing.T) *Journal {
	t.Helper()

	j := Journal{
		SaveFunc: func(string, interface{}) error {
			return nil
		},
		RetrieveFunc: func(string, interface{}) error {
			return journal.ErrNotFound
		},
	}

	return &j
}

func (j *Journal) Save(step string, record interface{}) error {
	return j.SaveFunc(step, record)
}

func (j *Journal) Retrieve(step string, record interface{}) error {
	return j.RetrieveFunc(step, record)
}

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
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// LoanID identifies a loan on the marketplace. It holds the JSON scalar the
// API sent, number or string, and is sent back in exactly that form.
type LoanID string

// NewLoanID returns the identifier of a loan with a numeric ID.
func NewLoanID(id uint64) LoanID {
	return LoanID(strconv.FormatUint(id, 10))
}

// String returns the identifier as it appears in API paths, without quotes.
func (l LoanID) String() string {
	if len(l) == 0 || l[0] != '"' {
		return string(l)
	}
	var text string
	err := json.Unmarshal([]byte(l), &text)
	if err != nil {
		return string(l)
	}
	return text
}

func (l LoanID) MarshalJSON() ([]byte, error) {
	if l == "" {
		return []byte("null"), nil
	}
	if !json.Valid([]byte(l)) {
		return json.Marshal(string(l))
	}
	return []byte(l), nil
}

func (l *LoanID) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var scalar interface{}
	err := dec.Decode(&scalar)
	if err != nil {
		return fmt.Errorf("invalid loan ID (%s): %w", data, err)
	}
	switch scalar.(type) {
	case nil:
		return nil
	case string, json.Number:
		*l = LoanID(data)
		return nil
	default:
		return fmt.Errorf("invalid loan ID (%s): not a scalar", data)
	}
}

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
	"encoding/json"
	"fmt"
	"math/big"
)

// OneDai is the number of atto-DAI in a single DAI.
var OneDai = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// Amount is an amount of atto-DAI. It is encoded as a decimal string in JSON,
// so that values above the float precision of JSON numbers survive the trip.
type Amount struct {
	big.Int
}

// Dai returns the amount for the given number of whole DAI.
func Dai(n int64) Amount {
	var a Amount
	a.Mul(big.NewInt(n), OneDai)
	return a
}

// DaiFraction returns num/den DAI, rounded down to the nearest atto-DAI.
func DaiFraction(num int64, den int64) Amount {
	var a Amount
	a.Mul(big.NewInt(num), OneDai)
	a.Quo(&a.Int, big.NewInt(den))
	return a
}

// Big returns the amount as a big integer.
func (a Amount) Big() *big.Int {
	return new(big.Int).Set(&a.Int)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	text := string(data)
	if text == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		err := json.Unmarshal(data, &text)
		if err != nil {
			return fmt.Errorf("invalid amount (%s): %w", data, err)
		}
	}
	_, ok := a.SetString(text, 10)
	if !ok {
		return fmt.Errorf("invalid amount (%s)", data)
	}
	return nil
}

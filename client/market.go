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

// CreateSellPosition offers some of the actor's loan tokens on the market.
func (a *Actor) CreateSellPosition(ctx context.Context, position tuichain.SellPosition) error {
	err := a.Transact(ctx, tuichain.PathSellPosition, position)
	if err != nil {
		return fmt.Errorf("could not create sell position (loan: %s): %w", position.LoanID, err)
	}
	return nil
}

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

package failure

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// TransactionFailed is the error for a transaction that was mined, but whose
// receipt reports a failed execution.
type TransactionFailed struct {
	Description Description
	Hash        common.Hash
	Index       int
	Status      uint64
}

// Error implements the error interface.
func (t TransactionFailed) Error() string {
	return fmt.Sprintf("transaction failed (hash: %s, index: %d, status: %d): %s", t.Hash.Hex(), t.Index, t.Status, t.Description)
}

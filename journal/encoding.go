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
	"encoding/binary"

	"github.com/OneOfOne/xxhash"
)

// Key prefixes of the journal database.
const (
	prefixStep = 1
)

// stepKey derives the database key of a step from its name.
func stepKey(step string) []byte {
	key := make([]byte, 1+8)
	key[0] = prefixStep
	binary.BigEndian.PutUint64(key[1:], xxhash.ChecksumString64(step))
	return key
}

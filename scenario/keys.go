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
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/hashicorp/go-multierror"
)

// Keys are the signing keys of the users that play the scenario.
type Keys struct {
	Alice   *ecdsa.PrivateKey
	Bob     *ecdsa.PrivateKey
	Charlie *ecdsa.PrivateKey
	Dough   *ecdsa.PrivateKey
	Eve     *ecdsa.PrivateKey
}

// ParseKeys parses the hex-encoded private keys of alice, bob, charlie, dough
// and eve, in that order. Every invalid key is reported, not just the first.
func ParseKeys(hexes []string) (Keys, error) {

	names := []string{"alice", "bob", "charlie", "dough", "eve"}
	if len(hexes) != len(names) {
		return Keys{}, fmt.Errorf("invalid number of keys (have: %d, want: %d)", len(hexes), len(names))
	}

	var errs error
	keys := make([]*ecdsa.PrivateKey, len(names))
	for i, hex := range hexes {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(hex, "0x"))
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("invalid key (user: %s): %w", names[i], err))
			continue
		}
		keys[i] = key
	}
	if errs != nil {
		return Keys{}, errs
	}

	k := Keys{
		Alice:   keys[0],
		Bob:     keys[1],
		Charlie: keys[2],
		Dough:   keys[3],
		Eve:     keys[4],
	}

	return k, nil
}

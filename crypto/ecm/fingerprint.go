// Copyright © 2020 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ecm

import (
	"encoding/hex"
	"math/big"

	"golang.org/x/crypto/blake2b"
)

// curveFingerprint returns a short hex digest of (n, sigma), so log
// lines from stage 1 and stage 2 of the same curve can be correlated
// across threads without printing the full sigma every time.
func curveFingerprint(n, sigma *big.Int) string {
	h := blake2b.Sum256(append(n.Bytes(), sigma.Bytes()...))
	return hex.EncodeToString(h[:6])
}

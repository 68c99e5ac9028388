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

// Package sieve builds the primality bit-vector the ECM stage-2
// continuation scans for primes in (B1, B2].
package sieve

// Eratosthenes returns a bit-vector P of length limit with
// P[i] == true iff i is prime. P[0] and P[1] are always false.
//
// The inner loop only ever visits odd candidates (the classic
// odd-only optimization), but the returned vector stays indexable by
// the raw integer i, since callers (the ECM worker) index it directly
// at positions up to B2 + 2*floor(sqrt(B2)).
func Eratosthenes(limit int) []bool {
	p := make([]bool, limit)
	if limit <= 2 {
		return p
	}
	p[2] = true
	for i := 3; i < limit; i += 2 {
		p[i] = true
	}

	for i := 3; i*i < limit; i += 2 {
		if !p[i] {
			continue
		}
		for j := i * i; j < limit; j += 2 * i {
			p[j] = false
		}
	}
	return p
}

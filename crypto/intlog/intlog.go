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

// Package intlog computes the integer logarithm used to build the
// stage-1 smooth exponent from a prime's largest power under B1.
package intlog

// Log returns the largest nonnegative e with x^e <= y, along with
// whether x^e == y exactly. ok is false when x <= 1 or y == 0, in
// which case the log is undefined.
func Log(y, x uint64) (e uint64, exact bool, ok bool) {
	if x <= 1 || y == 0 {
		return 0, false, false
	}
	var p uint64 = 1
	for p <= y/x {
		p *= x
		e++
	}
	return e, p == y, true
}

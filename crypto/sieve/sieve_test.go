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
package sieve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func isPrimeRef(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func TestEratosthenesAgainstReference(t *testing.T) {
	const limit = 100000
	p := Eratosthenes(limit)
	assert.Len(t, p, limit)
	for i := 0; i < limit; i++ {
		assert.Equalf(t, isPrimeRef(i), p[i], "mismatch at %d", i)
	}
}

func TestEratosthenesEdges(t *testing.T) {
	p := Eratosthenes(3)
	assert.False(t, p[0])
	assert.False(t, p[1])
	assert.True(t, p[2])
}

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
package intlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogKnownValues(t *testing.T) {
	e, exact, ok := Log(125, 5)
	assert.True(t, ok)
	assert.Equal(t, uint64(3), e)
	assert.True(t, exact)

	e, exact, ok = Log(17, 9)
	assert.True(t, ok)
	assert.Equal(t, uint64(1), e)
	assert.False(t, exact)
}

func TestLogUndefined(t *testing.T) {
	_, _, ok := Log(10, 1)
	assert.False(t, ok)

	_, _, ok = Log(0, 5)
	assert.False(t, ok)
}

func TestLogRange(t *testing.T) {
	for x := uint64(2); x < 20; x++ {
		for y := uint64(1); y < 1000; y++ {
			e, exact, ok := Log(y, x)
			assert.True(t, ok)

			lower := uint64(1)
			for i := uint64(0); i < e; i++ {
				lower *= x
			}
			assert.LessOrEqualf(t, lower, y, "x=%d y=%d e=%d", x, y, e)

			upper := lower * x
			assert.Greaterf(t, upper, y, "x=%d y=%d e=%d", x, y, e)

			assert.Equal(t, lower == y, exact)
		}
	}
}

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
package arith

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMod(t *testing.T) {
	m := big.NewInt(29)
	got := Mod(big.NewInt(-3), m)
	assert.Equal(t, big.NewInt(26), got)
}

func TestAddSubMulMod(t *testing.T) {
	m := big.NewInt(97)
	a := big.NewInt(50)
	b := big.NewInt(90)

	assert.Equal(t, big.NewInt(43), AddMod(a, b, m))
	assert.Equal(t, big.NewInt(57), SubMod(a, b, m))
	assert.Equal(t, big.NewInt(50*90%97), MulMod(a, b, m))
}

func TestPowMod(t *testing.T) {
	got := PowMod(big.NewInt(2), 10, big.NewInt(1000))
	assert.Equal(t, big.NewInt(24), got)
}

func TestInvertMod(t *testing.T) {
	inv, err := InvertMod(big.NewInt(3), big.NewInt(11))
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(4), inv)

	_, err = InvertMod(big.NewInt(6), big.NewInt(9))
	assert.ErrorIs(t, err, ErrNoInverse)
}

func TestGcd(t *testing.T) {
	assert.Equal(t, big.NewInt(6), Gcd(big.NewInt(54), big.NewInt(24)))
}

func TestFastPow(t *testing.T) {
	assert.Equal(t, big.NewInt(0), FastPow(big.NewInt(0), big.NewInt(5)))
	assert.Equal(t, big.NewInt(1), FastPow(big.NewInt(7), big.NewInt(0)))
	assert.Equal(t, big.NewInt(7), FastPow(big.NewInt(7), big.NewInt(1)))
	assert.Equal(t, big.NewInt(128), FastPow(big.NewInt(2), big.NewInt(7)))
}

func TestRandomRange(t *testing.T) {
	floor := big.NewInt(6)
	ceil := big.NewInt(1000)
	for i := 0; i < 50; i++ {
		x, err := RandomRange(floor, ceil)
		require.NoError(t, err)
		assert.True(t, x.Cmp(floor) >= 0)
		assert.True(t, x.Cmp(ceil) < 0)
	}

	_, err := RandomRange(big.NewInt(10), big.NewInt(10))
	assert.ErrorIs(t, err, ErrLargerFloor)
}

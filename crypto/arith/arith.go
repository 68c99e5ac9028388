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

// Package arith provides the arbitrary-precision modular arithmetic
// the ECM core is built on: every modular operation returns a value in
// [0, m). FastPow is the exception, working over the plain integers.
package arith

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

var (
	// ErrNoInverse is returned when a has no inverse mod m, i.e. gcd(a, m) > 1.
	ErrNoInverse = errors.New("no modular inverse")
	// ErrLargerFloor is returned if the floor is larger than or equal to ceil.
	ErrLargerFloor = errors.New("larger floor")

	big1 = big.NewInt(1)
)

// Mod reduces a into [0, m).
func Mod(a, m *big.Int) *big.Int {
	r := new(big.Int).Mod(a, m)
	if r.Sign() < 0 {
		r.Add(r, m)
	}
	return r
}

// AddMod returns (a + b) mod m.
func AddMod(a, b, m *big.Int) *big.Int {
	return Mod(new(big.Int).Add(a, b), m)
}

// SubMod returns (a - b) mod m.
func SubMod(a, b, m *big.Int) *big.Int {
	return Mod(new(big.Int).Sub(a, b), m)
}

// MulMod returns (a * b) mod m.
func MulMod(a, b, m *big.Int) *big.Int {
	return Mod(new(big.Int).Mul(a, b), m)
}

// SquareMod returns (a * a) mod m.
func SquareMod(a, m *big.Int) *big.Int {
	return MulMod(a, a, m)
}

// PowMod returns (a^n) mod m for a small non-negative exponent n.
func PowMod(a *big.Int, n int64, m *big.Int) *big.Int {
	return new(big.Int).Exp(a, big.NewInt(n), m)
}

// InvertMod returns a^-1 mod m, or ErrNoInverse if gcd(a, m) > 1.
func InvertMod(a, m *big.Int) (*big.Int, error) {
	inv := new(big.Int).ModInverse(a, m)
	if inv == nil {
		return nil, ErrNoInverse
	}
	return inv, nil
}

// Gcd calculates the greatest common divisor via the Euclidean algorithm.
func Gcd(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
}

// FastPow computes a^n via square-and-multiply, over the plain
// integers (no modulus). Edge cases: a=0 -> 0, n=0 -> 1, n=1 -> a.
func FastPow(a *big.Int, n *big.Int) *big.Int {
	if a.Sign() == 0 {
		return new(big.Int)
	}
	if n.Sign() == 0 {
		return big.NewInt(1)
	}
	acc := big.NewInt(1)
	base := new(big.Int).Set(a)
	exp := new(big.Int).Set(n)
	for exp.Cmp(big1) > 0 {
		if exp.Bit(0) == 0 {
			base.Mul(base, base)
			exp.Rsh(exp, 1)
		} else {
			acc.Mul(acc, base)
			base.Mul(base, base)
			exp.Sub(exp, big1)
			exp.Rsh(exp, 1)
		}
	}
	return acc.Mul(acc, base)
}

// RandomInt generates a random number in [0, n).
func RandomInt(n *big.Int) (*big.Int, error) {
	return RandomIntFrom(rand.Reader, n)
}

// RandomIntFrom generates a random number in [0, n) read from the
// given source, so callers with a deterministic source (e.g. a seeded
// DRBG) can get reproducible draws.
func RandomIntFrom(r io.Reader, n *big.Int) (*big.Int, error) {
	return rand.Int(r, n)
}

// RandomRange generates a random number in [floor, ceil).
func RandomRange(floor, ceil *big.Int) (*big.Int, error) {
	return RandomRangeFrom(rand.Reader, floor, ceil)
}

// RandomRangeFrom generates a random number in [floor, ceil) read from
// the given source.
func RandomRangeFrom(r io.Reader, floor, ceil *big.Int) (*big.Int, error) {
	span := new(big.Int).Sub(ceil, floor)
	if span.Sign() <= 0 {
		return nil, ErrLargerFloor
	}
	x, err := RandomIntFrom(r, span)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Add(x, floor), nil
}

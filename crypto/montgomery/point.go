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

// Package montgomery implements projective x-only arithmetic on
// Montgomery-form curves y^2 = x^3 + c*x^2 + x mod n. Every operation
// works with only X and Z coordinates, so no modular inversion is ever
// required during a scalar multiplication — the point of running ECM
// this way is that an uninvertible intermediate value is itself the
// signal that a factor of n has been found.
package montgomery

import (
	"fmt"
	"math/big"

	"github.com/getamis/alice/crypto/arith"
)

var big4 = big.NewInt(4)

// Point is a point (X:Z) in Montgomery projective coordinates, along
// with the curve constant a24 = (a+2)/4 mod n it lives on.
type Point struct {
	X, Z *big.Int
	a24  *big.Int
	n    *big.Int
}

// New builds a point from a precomputed a24.
func New(x, z, a24, n *big.Int) *Point {
	return &Point{
		X:   new(big.Int).Set(x),
		Z:   new(big.Int).Set(z),
		a24: new(big.Int).Set(a24),
		n:   new(big.Int).Set(n),
	}
}

// New2 builds a point from the curve coefficient a, computing
// a24 = (a+2) * 4^-1 mod n. It requires 4 to be invertible mod n,
// which holds whenever n is odd.
func New2(x, z, a, n *big.Int) (*Point, error) {
	inv4, err := arith.InvertMod(big4, n)
	if err != nil {
		return nil, err
	}
	a24 := arith.MulMod(arith.AddMod(a, big.NewInt(2), n), inv4, n)
	return New(x, z, a24, n), nil
}

// A24 returns the curve constant.
func (p *Point) A24() *big.Int {
	return new(big.Int).Set(p.a24)
}

// String renders the projective coordinates for logging.
func (p *Point) String() string {
	return fmt.Sprintf("(X:Z) = (%s:%s)", p.X, p.Z)
}

// Equal reports whether p and q represent the same affine x-coordinate
// mod n, i.e. X*Z^-1 = X'*Z'^-1. Equality is only defined when both Z
// values are invertible mod n and the points share a24 and n.
func (p *Point) Equal(q *Point) bool {
	if p.n.Cmp(q.n) != 0 || p.a24.Cmp(q.a24) != 0 {
		return false
	}
	pInv, err := arith.InvertMod(p.Z, p.n)
	if err != nil {
		return false
	}
	qInv, err := arith.InvertMod(q.Z, q.n)
	if err != nil {
		return false
	}
	pRatio := arith.MulMod(p.X, pInv, p.n)
	qRatio := arith.MulMod(q.X, qInv, p.n)
	return pRatio.Cmp(qRatio) == 0
}

// Addh computes the differential addition p + q, given diff = p - q
// on the curve. It uses only X and Z: no inversion is ever performed.
func (p *Point) Addh(q, diff *Point) *Point {
	n := p.n
	u := arith.MulMod(arith.SubMod(p.X, p.Z, n), arith.AddMod(q.X, q.Z, n), n)
	v := arith.MulMod(arith.AddMod(p.X, p.Z, n), arith.SubMod(q.X, q.Z, n), n)

	sum := arith.AddMod(u, v, n)
	sub := arith.SubMod(u, v, n)

	x := arith.MulMod(diff.Z, arith.SquareMod(sum, n), n)
	z := arith.MulMod(diff.X, arith.SquareMod(sub, n), n)

	return New(x, z, p.a24, n)
}

// Double computes [2]p.
func (p *Point) Double() *Point {
	n := p.n
	sumXZ := arith.AddMod(p.X, p.Z, n)
	subXZ := arith.SubMod(p.X, p.Z, n)

	u := arith.SquareMod(sumXZ, n)
	v := arith.SquareMod(subXZ, n)
	d := arith.SubMod(u, v, n)

	x := arith.MulMod(u, v, n)
	z := arith.MulMod(d, arith.AddMod(v, arith.MulMod(p.a24, d, n), n), n)

	return New(x, z, p.a24, n)
}

// Ladder computes [k]p via the Montgomery ladder, starting from the
// bit after k's leading 1 and processing the rest MSB to LSB. The
// ladder invariant R - Q = p holds after every bit processed.
//
// k = 1 returns p unchanged; k = 0 is not a supported input from the
// ECM core and its behavior is otherwise unspecified.
func (p *Point) Ladder(k *big.Int) *Point {
	if k.Sign() == 0 {
		return New(p.X, p.Z, p.a24, p.n)
	}
	q := New(p.X, p.Z, p.a24, p.n)
	r := p.Double()

	for b := k.BitLen() - 2; b >= 0; b-- {
		if k.Bit(b) == 1 {
			q, r = r.Addh(q, p), r.Double()
		} else {
			r, q = q.Addh(r, p), q.Double()
		}
	}
	return q
}

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

// Package ecm implements Lenstra's Elliptic Curve Method for
// factorization, in its inversionless form (Algorithm 7.4.4 of
// Crandall & Pomerance's Prime Numbers: A Computational Perspective).
package ecm

import (
	"math"
	"math/big"
	"sync/atomic"
	"time"

	"github.com/getamis/alice/crypto/arith"
	"github.com/getamis/alice/crypto/intlog"
	"github.com/getamis/alice/crypto/montgomery"
	"github.com/getamis/alice/logger"
)

var (
	big1 = big.NewInt(1)
	big2 = big.NewInt(2)
	big3 = big.NewInt(3)
	big4 = big.NewInt(4)
	big5 = big.NewInt(5)
	big6 = big.NewInt(6)
)

// worker runs one thread's curve search loop: draw a Suyama curve,
// run stage 1 (a smooth-exponent ladder) then stage 2 (a giant-step
// continuation over the primes in (B1, B2]), and report a nontrivial
// factor the moment one surfaces.
type worker struct {
	n         *big.Int
	maxCurves *int // nil means unbounded
	primes    []bool
	b1, b2    uint64
	sigma     *big.Int // non-nil forces single-curve mode
	threadIdx int
	cancel    *atomic.Bool

	rng *drbg

	d      int
	points []*montgomery.Point
	beta   []*big.Int
}

func newWorker(n *big.Int, maxCurves *int, primes []bool, b1, b2 uint64, sigma *big.Int, threadIdx int, cancel *atomic.Bool) *worker {
	d := int(math.Sqrt(float64(b2)))
	return &worker{
		n:         n,
		maxCurves: maxCurves,
		primes:    primes,
		b1:        b1,
		b2:        b2,
		sigma:     sigma,
		threadIdx: threadIdx,
		cancel:    cancel,
		rng:       newDRBG(uint64(threadIdx)),
		d:         d,
		points:    make([]*montgomery.Point, d+1),
		beta:      make([]*big.Int, d+1),
	}
}

// run loops over curves until a factor is found, the curve budget is
// exhausted, or a peer worker sets the cancellation flag. It returns
// the factor (nil if none) and the wall-clock cost of each curve tried,
// so the driver can report throughput statistics.
func (w *worker) run() (*big.Int, []time.Duration) {
	var durations []time.Duration
	singleCurve := w.sigma != nil
	curve := 0

	for {
		if w.cancel.Load() {
			return nil, durations
		}

		start := time.Now()
		factor := w.tryCurve(w.sigma)
		durations = append(durations, time.Since(start))

		if factor != nil {
			w.cancel.Store(true)
			return factor, durations
		}

		curve++
		if singleCurve {
			return nil, durations
		}
		if w.maxCurves != nil && curve >= *w.maxCurves {
			return nil, durations
		}
	}
}

// tryCurve runs one curve's stage 1 and stage 2. It returns the factor
// found, or nil if this curve didn't turn one up.
func (w *worker) tryCurve(fixedSigma *big.Int) *big.Int {
	n := w.n
	logger := logger.Logger()

	sigma := fixedSigma
	if sigma == nil {
		var err error
		sigma, err = arith.RandomRangeFrom(w.rng, big6, n)
		if err != nil {
			logger.Warn("Cannot draw sigma", "err", err)
			return nil
		}
	}
	fp := curveFingerprint(n, sigma)
	logger.Debug("Trying curve", "thread", w.threadIdx, "curve", fp, "sigma", sigma)

	u := arith.SubMod(arith.SquareMod(sigma, n), big5, n)
	v := arith.MulMod(big4, sigma, n)
	diff := arith.SubMod(v, u, n)
	uCubed := arith.PowMod(u, 3, n)

	a := arith.MulMod(arith.MulMod(big4, uCubed, n), v, n)
	invA, err := arith.InvertMod(a, n)
	if err != nil {
		// a has no inverse mod n, so gcd(a, n) > 1: this is the
		// success path, not a failure.
		g := arith.Gcd(a, n)
		logger.Info("Found factor via non-invertible a", "thread", w.threadIdx, "curve", fp)
		return g
	}

	c := arith.SubMod(
		arith.MulMod(
			arith.MulMod(arith.PowMod(diff, 3, n), arith.AddMod(arith.MulMod(big3, u, n), v, n), n),
			invA, n,
		),
		big2, n,
	)

	q, err := montgomery.New2(uCubed, arith.PowMod(v, 3, n), c, n)
	if err != nil {
		// 4 isn't invertible mod n; out of scope per the core's
		// preconditions (n must be odd), nothing to do but skip.
		return nil
	}

	// Stage 1: multiply by the largest B1-smooth exponent.
	k := big.NewInt(1)
	for p := uint64(2); p <= w.b1; p++ {
		if p >= uint64(len(w.primes)) || !w.primes[p] {
			continue
		}
		e, _, ok := intlog.Log(w.b1, p)
		if !ok {
			continue
		}
		k.Mul(k, arith.FastPow(new(big.Int).SetUint64(p), new(big.Int).SetUint64(e)))
	}
	q = q.Ladder(k)

	g := arith.Gcd(q.Z, n)
	if strictlyBetween(g, n) {
		logger.Info("Found factor in stage 1", "thread", w.threadIdx, "curve", fp)
		return g
	}

	// Stage 2: giant-step continuation over the primes in (B1, B2].
	return w.stage2(q, n, fp)
}

func (w *worker) stage2(q *montgomery.Point, n *big.Int, fp string) *big.Int {
	logger := logger.Logger()
	d := w.d

	w.points[1] = q.Double()
	w.points[2] = w.points[1].Double()
	w.beta[1] = arith.MulMod(w.points[1].X, w.points[1].Z, n)
	w.beta[2] = arith.MulMod(w.points[2].X, w.points[2].Z, n)
	for i := 3; i <= d; i++ {
		w.points[i] = w.points[i-1].Addh(w.points[1], w.points[i-2])
		w.beta[i] = arith.MulMod(w.points[i].X, w.points[i].Z, n)
	}

	b := w.b1 - 1
	s := q.Ladder(new(big.Int).SetUint64(b))

	// b - 2d can go negative when B1-1 < 2*floor(sqrt(B2)) (a small
	// B1 relative to B2). Montgomery x-only points don't distinguish
	// a scalar from its negation ([-k]Q and [k]Q share the same X:Z,
	// since negating a curve point only flips its y-coordinate), so
	// ladder-ing the absolute value gives the same T the reference
	// continuation needs; Ladder itself only special-cases k=0 and
	// would otherwise read a negative k's two's-complement bits.
	bMinus2d := new(big.Int).Sub(new(big.Int).SetUint64(b), new(big.Int).SetUint64(2*uint64(d)))
	t := q.Ladder(bMinus2d.Abs(bMinus2d))

	g := big.NewInt(1)
	step := uint64(2 * d)
	for r := b; r < w.b2; r += step {
		alpha := arith.MulMod(s.X, s.Z, n)

		minI := r + 2
		maxI := r + 2*uint64(d) + 1
		for i := minI; i < maxI; i++ {
			if i >= uint64(len(w.primes)) || !w.primes[i] {
				continue
			}
			delta := (i - r) / 2

			// f is deliberately computed without intermediate
			// modular reduction; only the running product g is
			// ever reduced mod n.
			rawDiff := new(big.Int).Sub(s.X, w.points[d].X)
			rawSum := new(big.Int).Add(s.Z, w.points[d].Z)
			f := new(big.Int).Mul(rawDiff, rawSum)
			f.Sub(f, alpha)
			f.Add(f, w.beta[delta])

			g = arith.MulMod(g, f, n)
		}

		s, t = s.Addh(w.points[d], t), s
	}

	g = arith.Gcd(g, n)
	if strictlyBetween(g, n) {
		logger.Info("Found factor in stage 2", "thread", w.threadIdx, "curve", fp)
		return g
	}
	return nil
}

func strictlyBetween(g, n *big.Int) bool {
	return g.Cmp(big1) > 0 && g.Cmp(n) < 0
}

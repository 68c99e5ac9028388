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
	"errors"
	"math"
	"math/big"
	"sync"
	"sync/atomic"
	"time"

	"github.com/getamis/alice/crypto/sieve"
	"github.com/getamis/alice/logger"
)

// ErrEven is logged by Find when n is even, and Find then returns
// (nil, false): the core only handles odd n (an even n is trivially
// factored by dividing out 2 before ECM is ever invoked).
var ErrEven = errors.New("n is even")

// Find searches for a nontrivial factor of n using the elliptic curve
// method. maxCurves, if non-nil, bounds the number of curves tried per
// thread before giving up; sigma, if non-nil, pins the curve parameter
// and forces a single-curve run regardless of maxCurves or threads.
// threads <= 1 runs single-threaded.
//
// It returns the factor found and true, or (nil, false) if the search
// was exhausted without finding one.
func Find(n *big.Int, maxCurves *int, b1, b2 uint64, sigma *big.Int, threads int) (*big.Int, bool) {
	if n.Bit(0) == 0 {
		logger.Logger().Warn("Refusing to run ECM on an even number", "err", ErrEven)
		return nil, false
	}

	d := int(math.Sqrt(float64(b2)))
	limit := b2 + 2*uint64(d) + 1
	primes := sieve.Eratosthenes(int(limit))

	if sigma != nil || threads <= 1 {
		return runSingle(n, maxCurves, primes, b1, b2, sigma, 0)
	}
	return runMulti(n, maxCurves, primes, b1, b2, threads)
}

func runSingle(n *big.Int, maxCurves *int, primes []bool, b1, b2 uint64, sigma *big.Int, threadIdx int) (*big.Int, bool) {
	var cancel atomic.Bool
	w := newWorker(n, maxCurves, primes, b1, b2, sigma, threadIdx, &cancel)
	factor, durations := w.run()
	reportStats("single", durations)
	return factor, factor != nil
}

// runMulti fans a curve search out across threads goroutines, each with
// its own deterministic RNG keyed by thread index, sharing one
// cancellation flag so every worker stops as soon as any one of them
// finds a factor.
func runMulti(n *big.Int, maxCurves *int, primes []bool, b1, b2 uint64, threads int) (*big.Int, bool) {
	var cancel atomic.Bool
	var wg sync.WaitGroup
	results := make([]*big.Int, threads)
	allDurations := make([][]time.Duration, threads)

	for i := 0; i < threads; i++ {
		wg.Add(1)
		idx := i
		go func() {
			defer wg.Done()
			w := newWorker(n, maxCurves, primes, b1, b2, nil, idx, &cancel)
			factor, durations := w.run()
			results[idx] = factor
			allDurations[idx] = durations
		}()
	}
	wg.Wait()

	var merged []time.Duration
	for _, d := range allDurations {
		merged = append(merged, d...)
	}
	reportStats("multi", merged)

	for _, f := range results {
		if f != nil {
			return f, true
		}
	}
	return nil, false
}

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
	"encoding/binary"

	"github.com/minio/blake2b-simd"
)

// drbg is a counter-mode deterministic random byte generator keyed by
// a single seed. Two drbg instances built from the same seed produce
// the same byte stream, which is what lets a worker's sequence of
// sigma draws be reproduced across runs given the same thread index
// and thread count (see the search driver's RNG note).
type drbg struct {
	key     [32]byte
	counter uint64
	buf     []byte
}

// newDRBG seeds a drbg from a thread index.
func newDRBG(seed uint64) *drbg {
	var seedBytes [8]byte
	binary.BigEndian.PutUint64(seedBytes[:], seed)
	key := blake2b.Sum256(seedBytes[:])
	return &drbg{key: key}
}

// Read implements io.Reader, so a drbg can be passed anywhere
// crypto/rand.Reader would be, e.g. into math/big.Int's rand helpers.
func (d *drbg) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(d.buf) == 0 {
			d.buf = d.nextBlock()
		}
		c := copy(p[n:], d.buf)
		d.buf = d.buf[c:]
		n += c
	}
	return n, nil
}

func (d *drbg) nextBlock() []byte {
	var counterBytes [8]byte
	binary.BigEndian.PutUint64(counterBytes[:], d.counter)
	d.counter++

	input := make([]byte, 0, len(d.key)+len(counterBytes))
	input = append(input, d.key[:]...)
	input = append(input, counterBytes[:]...)
	block := blake2b.Sum256(input)
	return block[:]
}

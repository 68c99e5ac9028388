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
package montgomery

import (
	"math/big"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

func TestMontgomery(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Montgomery Suite")
}

func bi(x int64) *big.Int { return big.NewInt(x) }

var _ = Describe("Point", func() {
	It("addh matches the reference vector", func() {
		p1 := New(bi(11), bi(16), bi(7), bi(29))
		p2 := New(bi(13), bi(10), bi(7), bi(29))
		p3 := p2.Addh(p1, p1)
		Expect(p3.X).Should(Equal(bi(23)))
		Expect(p3.Z).Should(Equal(bi(17)))
	})

	It("double matches the reference vector", func() {
		p := New(bi(11), bi(16), bi(7), bi(29))
		q := p.Double()
		Expect(q.X).Should(Equal(bi(13)))
		Expect(q.Z).Should(Equal(bi(10)))
	})

	It("double via New2 matches the reference vector", func() {
		p1, err := New2(bi(10), bi(17), bi(10), bi(101))
		Expect(err).ShouldNot(HaveOccurred())
		p2 := p1.Double()

		expected, err := New2(bi(68), bi(56), bi(10), bi(101))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(p2.X).Should(Equal(expected.X))
		Expect(p2.Z).Should(Equal(expected.Z))
		Expect(p2.a24).Should(Equal(expected.a24))
	})

	It("ladder matches the reference vector", func() {
		p := New(bi(11), bi(16), bi(7), bi(29))
		q := p.Ladder(bi(3))
		Expect(q.X).Should(Equal(bi(23)))
		Expect(q.Z).Should(Equal(bi(17)))
	})

	DescribeTable("ladder identities",
		func(k int64) {
			n := bi(1000003 * 999983)
			p := New(bi(123456789), bi(1), bi(7), n)

			Expect(p.Ladder(bi(1)).X).Should(Equal(p.X))
			Expect(p.Ladder(bi(1)).Z).Should(Equal(p.Z))

			a := p.Ladder(bi(k))
			b := p.Ladder(big.NewInt(2 * k))
			doubled := a.Double()
			Expect(doubled.Equal(b)).Should(BeTrue())
		},
		Entry("k=5", int64(5)),
		Entry("k=17", int64(17)),
		Entry("k=100", int64(100)),
	)
})

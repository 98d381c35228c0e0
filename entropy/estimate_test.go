package entropy_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pwdtools/passguard/entropy"
)

var _ = Describe("Estimate", func() {
	It("is zero for the empty string", func() {
		Expect(entropy.Estimate("")).To(Equal(0.0))
	})

	It("gives generated material far more bits than dictionary words", func() {
		Expect(entropy.Estimate("N9R5tMnaAYKRXgPMWyZsytJt")).To(
			BeNumerically(">", entropy.Estimate("password")))
	})
})

var _ = Describe("IsRandomLooking", func() {
	It("rejects dictionary words", func() {
		Expect(entropy.IsRandomLooking("password")).To(BeFalse())
	})

	It("accepts generated material", func() {
		Expect(entropy.IsRandomLooking("N9R5tMnaAYKRXgPMWyZsytJt")).To(BeTrue())
	})
})

package generator_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pwdtools/passguard/generator"
)

var _ = Describe("strength levels", func() {
	Describe("ParseStrength", func() {
		It("accepts the four tier names", func() {
			for _, name := range []string{"WEAK", "MEDIUM", "STRONG", "VERY_STRONG"} {
				level, err := generator.ParseStrength(name)
				Expect(err).NotTo(HaveOccurred())
				Expect(string(level)).To(Equal(name))
			}
		})

		It("rejects anything else", func() {
			_, err := generator.ParseStrength("strong")
			Expect(err).To(MatchError(ContainSubstring("unknown strength level")))
		})
	})

	Describe("RecommendedLength", func() {
		It("grows with the tier", func() {
			Expect(generator.RecommendedLength(generator.Weak)).To(Equal(8))
			Expect(generator.RecommendedLength(generator.Medium)).To(Equal(12))
			Expect(generator.RecommendedLength(generator.Strong)).To(Equal(16))
			Expect(generator.RecommendedLength(generator.VeryStrong)).To(Equal(20))
		})
	})

	Describe("Describe", func() {
		It("has a title and description for every tier", func() {
			for _, level := range []generator.Strength{
				generator.Weak, generator.Medium, generator.Strong, generator.VeryStrong,
			} {
				title, description := generator.Describe(level)
				Expect(title).NotTo(BeEmpty())
				Expect(description).NotTo(BeEmpty())
			}
		})
	})

	Describe("DefaultPolicy", func() {
		It("matches the tier recommendation and validates", func() {
			policy := generator.DefaultPolicy(generator.Strong)

			Expect(policy.Length).To(Equal(16))
			Expect(policy.Validate()).To(Succeed())
		})
	})
})

var _ = Describe("entropy utilities", func() {
	Describe("CalculateEntropy", func() {
		It("is zero for degenerate arguments", func() {
			Expect(generator.CalculateEntropy(0, 94)).To(Equal(0.0))
			Expect(generator.CalculateEntropy(-3, 94)).To(Equal(0.0))
			Expect(generator.CalculateEntropy(16, 1)).To(Equal(0.0))
			Expect(generator.CalculateEntropy(16, 0)).To(Equal(0.0))
		})

		It("returns length × log2(charset size)", func() {
			Expect(generator.CalculateEntropy(16, 2)).To(Equal(16.0))
			Expect(generator.CalculateEntropy(10, 1024)).To(Equal(100.0))
		})
	})

	Describe("CharsetSize", func() {
		It("sums the enabled class sizes", func() {
			Expect(generator.CharsetSize(generator.CharsetOptions{
				Uppercase: true, Lowercase: true, Digits: true, Special: true,
			})).To(Equal(94))

			Expect(generator.CharsetSize(generator.CharsetOptions{
				Uppercase: true, Lowercase: true, Digits: true,
			})).To(Equal(62))
		})

		It("subtracts the approximate ambiguous count", func() {
			Expect(generator.CharsetSize(generator.CharsetOptions{
				Uppercase: true, Lowercase: true, Digits: true, Special: true,
				ExcludeAmbiguous: true,
			})).To(Equal(87))
		})
	})
})

package strength_test

import (
	"encoding/json"

	"code.cloudfoundry.org/lager"
	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pwdtools/passguard/strength"
	"github.com/pwdtools/passguard/wordlist"
)

var _ = Describe("Engine", func() {
	var (
		logger lager.Logger
		engine *strength.Engine
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("engine")
		engine = strength.New(logger, wordlist.New([]string{
			"password", "123456", "qwerty", "letmein", "iloveyou",
		}))
	})

	Describe("Check", func() {
		Context("with an empty password", func() {
			It("returns the fixed VERY_WEAK verdict", func() {
				verdict := engine.Check("")

				Expect(verdict.OverallStrength).To(Equal(strength.VeryWeak))
				Expect(verdict.Score).To(Equal(0))
				Expect(verdict.EntropyBits).To(Equal(0.0))
				Expect(verdict.TimeToCrack).To(Equal("Less than 1 second"))
				Expect(verdict.Feedback.Negative).To(ConsistOf("Password cannot be empty"))
			})

			It("reports every criterion as failed", func() {
				verdict := engine.Check("")

				for _, criterion := range verdict.Criteria.Ordered() {
					Expect(criterion.Pass).To(BeFalse(), string(criterion.Name))
				}
			})
		})

		Context("with a long, diverse, uncommon password", func() {
			It("rates it STRONG with high entropy", func() {
				verdict := engine.Check("Tr0pic@lThund3rstorm!")

				Expect(verdict.OverallStrength).To(Equal(strength.Strong))
				Expect(verdict.Score).To(BeNumerically(">=", 80))
				Expect(verdict.EntropyBits).To(BeNumerically(">", 70))
			})

			It("passes the four character-class criteria", func() {
				verdict := engine.Check("Tr0pic@lThund3rstorm!")

				Expect(verdict.Criteria.Uppercase).To(BeTrue())
				Expect(verdict.Criteria.Lowercase).To(BeTrue())
				Expect(verdict.Criteria.Numbers).To(BeTrue())
				Expect(verdict.Criteria.SpecialChars).To(BeTrue())
			})
		})

		Context("with passwords from the dictionary", func() {
			It("rates them at the bottom tiers", func() {
				for _, candidate := range []string{"password", "123456"} {
					verdict := engine.Check(candidate)

					Expect(verdict.OverallStrength).To(
						Or(Equal(strength.Weak), Equal(strength.VeryWeak)),
						candidate,
					)
					Expect(verdict.Criteria.NoDictionaryWords).To(BeFalse(), candidate)
				}
			})

			It("catches leet-speak variants of dictionary words", func() {
				verdict := engine.Check("p@ssw0rd")

				Expect(verdict.Criteria.NoDictionaryWords).To(BeFalse())
			})
		})

		It("keeps the score within [0, 100] for assorted input", func() {
			candidates := []string{
				"a", "abc", "password", "correcthorsebatterystaple",
				"Tr0pic@lThund3rstorm!", "        ", "ÜberStraßenPaß", "1",
				"!!!!!!!!!!!!", "aA1!aA1!aA1!aA1!aA1!aA1!aA1!aA1!",
			}

			for _, candidate := range candidates {
				verdict := engine.Check(candidate)

				Expect(verdict.Score).To(BeNumerically(">=", 0), candidate)
				Expect(verdict.Score).To(BeNumerically("<=", 100), candidate)
				Expect(verdict.EntropyBits).To(BeNumerically(">=", 0), candidate)
			}
		})

		It("reports zero entropy when no character class matches", func() {
			verdict := engine.Check("ÜÜÜÜÜÜÜÜ")

			Expect(verdict.EntropyBits).To(Equal(0.0))
		})

		It("is idempotent", func() {
			first := engine.Check("N0t-Quite-Rand0m?")
			second := engine.Check("N0t-Quite-Rand0m?")

			Expect(first).To(Equal(second))
		})

		It("flags sequential runs in the criteria", func() {
			verdict := engine.Check("horseabcmeadow")

			Expect(verdict.Criteria.NoSequentialChars).To(BeFalse())
		})

		It("suggests a generator when there is nothing positive to say", func() {
			verdict := engine.Check("admin")

			Expect(verdict.Feedback.Positive).To(BeEmpty())
			Expect(verdict.Feedback.Suggestions).To(
				ContainElement("Consider using a password generator for a strong password"))
		})
	})

	Describe("working without a dictionary", func() {
		It("degrades dictionary checks to no-match", func() {
			engine := strength.New(logger, wordlist.Set{})
			verdict := engine.Check("Tr0pic@lThund3rstorm!")

			Expect(verdict.OverallStrength).To(Equal(strength.Strong))
		})
	})

	Describe("verdict serialization", func() {
		It("uses the stable field names callers rely on", func() {
			out, err := json.Marshal(engine.Check("Tr0pic@lThund3rstorm!"))
			Expect(err).NotTo(HaveOccurred())

			var fields map[string]json.RawMessage
			Expect(json.Unmarshal(out, &fields)).To(Succeed())
			Expect(fields).To(HaveKey("overall_strength"))
			Expect(fields).To(HaveKey("score"))
			Expect(fields).To(HaveKey("entropy_bits"))
			Expect(fields).To(HaveKey("time_to_crack"))
			Expect(fields).To(HaveKey("feedback"))
			Expect(fields).To(HaveKey("criteria"))
		})
	})
})

package charset_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pwdtools/passguard/charset"
)

var _ = Describe("charset", func() {
	It("keeps the class sizes the entropy math depends on", func() {
		Expect(charset.Lowercase).To(HaveLen(charset.LowercaseSize))
		Expect(charset.Uppercase).To(HaveLen(charset.UppercaseSize))
		Expect(charset.Digits).To(HaveLen(charset.DigitSize))
		Expect(charset.Special).To(HaveLen(charset.SpecialSize))
	})

	It("keeps the four classes disjoint", func() {
		seen := map[byte]bool{}
		all := charset.Lowercase + charset.Uppercase + charset.Digits + charset.Special

		for i := 0; i < len(all); i++ {
			Expect(seen[all[i]]).To(BeFalse(), string(all[i]))
			seen[all[i]] = true
		}
	})

	Describe("class membership", func() {
		It("classifies ASCII", func() {
			Expect(charset.IsLowercase('q')).To(BeTrue())
			Expect(charset.IsUppercase('Q')).To(BeTrue())
			Expect(charset.IsDigit('7')).To(BeTrue())
			Expect(charset.IsSpecial('!')).To(BeTrue())
			Expect(charset.IsSpecial('`')).To(BeTrue())
		})

		It("puts non-ASCII runes in no class", func() {
			Expect(charset.IsLowercase('é')).To(BeFalse())
			Expect(charset.IsUppercase('É')).To(BeFalse())
			Expect(charset.IsDigit('٣')).To(BeFalse())
			Expect(charset.IsSpecial('€')).To(BeFalse())
		})
	})

	Describe("string predicates", func() {
		It("detects each class independently", func() {
			Expect(charset.HasLowercase("ABCd")).To(BeTrue())
			Expect(charset.HasUppercase("abcD")).To(BeTrue())
			Expect(charset.HasDigit("abc9")).To(BeTrue())
			Expect(charset.HasSpecial("abc~")).To(BeTrue())

			Expect(charset.HasLowercase("ABC")).To(BeFalse())
			Expect(charset.HasUppercase("abc")).To(BeFalse())
			Expect(charset.HasDigit("abc")).To(BeFalse())
			Expect(charset.HasSpecial("abc1")).To(BeFalse())
		})
	})

	It("only excludes ambiguous glyphs that exist in some class", func() {
		all := charset.Lowercase + charset.Uppercase + charset.Digits + charset.Special
		for _, r := range charset.Ambiguous {
			Expect(all).To(ContainSubstring(string(r)))
		}
	})
})

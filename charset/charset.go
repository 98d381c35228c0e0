// Package charset defines the four password character classes shared by the
// strength engine and the generator. The special-character catalog is fixed
// at 32 characters; entropy math depends on these exact sizes.
package charset

const (
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits    = "0123456789"
	Special   = "!@#$%^&*()_+-=[]{};:'\",.<>?/\\|`~"

	// Ambiguous holds glyphs that are easily confused when read or typed.
	Ambiguous = "0O1lI|`"
)

const (
	LowercaseSize = 26
	UppercaseSize = 26
	DigitSize     = 10
	SpecialSize   = 32
)

// Class membership is a strict ASCII-range check. Non-ASCII runes belong to
// no class so that charset sizes stay exact.

func IsLowercase(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func IsUppercase(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func IsSpecial(r rune) bool {
	if r > 127 {
		return false
	}
	for _, s := range Special {
		if r == s {
			return true
		}
	}
	return false
}

func HasLowercase(s string) bool { return hasClass(s, IsLowercase) }
func HasUppercase(s string) bool { return hasClass(s, IsUppercase) }
func HasDigit(s string) bool     { return hasClass(s, IsDigit) }
func HasSpecial(s string) bool   { return hasClass(s, IsSpecial) }

func hasClass(s string, member func(rune) bool) bool {
	for _, r := range s {
		if member(r) {
			return true
		}
	}
	return false
}

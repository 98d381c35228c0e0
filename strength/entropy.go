package strength

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/pwdtools/passguard/charset"
)

const (
	guessesPerSecond = 1e9
	secondsPerYear   = 31536000
)

// detectedCharsetSize sums the sizes of the character classes actually
// present in the password. Non-ASCII runes contribute to no class.
func detectedCharsetSize(password string) int {
	size := 0
	if charset.HasLowercase(password) {
		size += charset.LowercaseSize
	}
	if charset.HasUppercase(password) {
		size += charset.UppercaseSize
	}
	if charset.HasDigit(password) {
		size += charset.DigitSize
	}
	if charset.HasSpecial(password) {
		size += charset.SpecialSize
	}
	return size
}

// entropyBits is length × log2(charset size), or 0 when no class matches.
func entropyBits(password string) float64 {
	size := detectedCharsetSize(password)
	if size == 0 {
		return 0
	}
	return float64(utf8.RuneCountInString(password)) * math.Log2(float64(size))
}

func entropyScore(bits float64) float64 {
	switch {
	case bits < 30:
		return 10
	case bits < 50:
		return 50
	case bits < 70:
		return 75
	default:
		return 100
	}
}

// timeToCrack renders the average brute-force duration at one billion
// guesses per second, using the largest sensible unit.
func timeToCrack(bits float64) string {
	averageGuesses := math.Pow(2, bits) / 2
	seconds := averageGuesses / guessesPerSecond

	switch {
	case seconds < 1:
		return "Less than 1 second"
	case seconds < 60:
		return fmt.Sprintf("%.1f seconds", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%.1f minutes", seconds/60)
	case seconds < 86400:
		return fmt.Sprintf("%.1f hours", seconds/3600)
	case seconds < secondsPerYear:
		return fmt.Sprintf("%.1f days", seconds/86400)
	}

	years := seconds / secondsPerYear
	if math.IsInf(years, 1) {
		return "practically forever"
	}
	if years > 1e6 {
		return fmt.Sprintf("~%.1f million years", years/1e6)
	}
	return fmt.Sprintf("~%.1f years", years)
}

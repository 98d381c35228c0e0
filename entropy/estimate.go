// Package entropy gives a second opinion on password strength using the
// zxcvbn estimator. It is advisory only and never feeds the core score.
package entropy

import "github.com/nbutton23/zxcvbn-go"

const suspectBitsPerChar = 3.7 // magic magic magic

// Estimate returns zxcvbn's entropy estimate in bits.
func Estimate(candidate string) float64 {
	if candidate == "" {
		return 0
	}
	return zxcvbn.PasswordStrength(candidate, nil).Entropy
}

// IsRandomLooking reports whether the candidate carries enough entropy per
// character to pass for generated material.
func IsRandomLooking(candidate string) bool {
	if candidate == "" {
		return false
	}
	return Estimate(candidate)/float64(len(candidate)) > suspectBitsPerChar
}

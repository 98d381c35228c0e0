package generator

import (
	"math"

	"github.com/pwdtools/passguard/charset"
)

// CalculateEntropy returns length × log2(charsetSize) in bits, or 0 when
// either argument makes the search space degenerate.
func CalculateEntropy(length, charsetSize int) float64 {
	if length <= 0 || charsetSize <= 1 {
		return 0
	}
	return float64(length) * math.Log2(float64(charsetSize))
}

// CharsetOptions selects which classes contribute to CharsetSize.
type CharsetOptions struct {
	Uppercase        bool
	Lowercase        bool
	Digits           bool
	Special          bool
	ExcludeAmbiguous bool
}

// CharsetSize sums the enabled class sizes. The ambiguous-character
// subtraction is approximate: it removes the full exclusion-set size
// without checking which classes the excluded glyphs belong to.
func CharsetSize(opts CharsetOptions) int {
	size := 0
	if opts.Uppercase {
		size += charset.UppercaseSize
	}
	if opts.Lowercase {
		size += charset.LowercaseSize
	}
	if opts.Digits {
		size += charset.DigitSize
	}
	if opts.Special {
		size += charset.SpecialSize
	}
	if opts.ExcludeAmbiguous {
		size -= len(charset.Ambiguous)
	}
	return size
}

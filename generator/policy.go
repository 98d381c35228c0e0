package generator

import (
	"errors"
	"fmt"
)

// ErrInvalidPolicy marks a policy that fails validation. Callers can test
// for it with errors.Is.
var ErrInvalidPolicy = errors.New("invalid generation policy")

// MinLength is the floor below which generation is refused, never clamped.
const MinLength = 8

// Policy describes one generation request. The zero value is not valid;
// callers set at least Length and Strength.
type Policy struct {
	Length           int
	Strength         Strength
	IncludeSpecial   bool
	ExcludeAmbiguous bool
	Readable         bool
}

// DefaultPolicy mirrors the recommended settings for a tier.
func DefaultPolicy(s Strength) Policy {
	return Policy{
		Length:           RecommendedLength(s),
		Strength:         s,
		IncludeSpecial:   true,
		ExcludeAmbiguous: true,
	}
}

func (p Policy) Validate() error {
	if p.Length < MinLength {
		return fmt.Errorf("%w: length must be at least %d characters, got %d",
			ErrInvalidPolicy, MinLength, p.Length)
	}
	if _, ok := strengthTable[p.Strength]; !ok && !p.Readable {
		return fmt.Errorf("%w: unknown strength level %q", ErrInvalidPolicy, p.Strength)
	}
	return nil
}

// Package generator produces cryptographically strong passwords to a
// strength policy. Generation guarantees character-class presence without
// sacrificing uniformity: required class representatives are drawn first,
// the remainder is filled from the permitted union, and the whole sequence
// is shuffled with a secure Fisher-Yates pass.
package generator

import (
	"strings"

	"github.com/pwdtools/passguard/charset"
)

const (
	consonants = "bcdfghjklmnprstvwxyz"
	vowels     = "aeiou"
)

// Generate produces one password satisfying policy. Readable mode
// overrides the tier strategy entirely.
func Generate(policy Policy) (string, error) {
	if err := policy.Validate(); err != nil {
		return "", err
	}

	if policy.Readable {
		return generateReadable(policy.Length, policy.IncludeSpecial)
	}

	switch policy.Strength {
	case Weak:
		return generateWeak(policy.Length)
	case Medium:
		return generateGuaranteed(policy, mediumRequirements(policy))
	case Strong:
		return generateGuaranteed(policy, requirements(1))
	default: // VeryStrong
		return generateGuaranteed(policy, requirements(2))
	}
}

// GenerateMultiple runs Generate count times. Uniqueness across the batch
// is not enforced; collisions are astronomically unlikely.
func GenerateMultiple(count int, policy Policy) ([]string, error) {
	passwords := make([]string, 0, count)
	for i := 0; i < count; i++ {
		password, err := Generate(policy)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, password)
	}
	return passwords, nil
}

// requirement pairs a class charset with how many representatives it must
// contribute.
type requirement struct {
	class string
	count int
}

func mediumRequirements(policy Policy) []requirement {
	required := []requirement{
		{charset.Uppercase, 1},
		{charset.Lowercase, 1},
		{charset.Digits, 1},
	}
	if policy.IncludeSpecial {
		required = append(required, requirement{charset.Special, 1})
	}
	return required
}

func requirements(perClass int) []requirement {
	return []requirement{
		{charset.Uppercase, perClass},
		{charset.Lowercase, perClass},
		{charset.Digits, perClass},
		{charset.Special, perClass},
	}
}

// generateWeak draws every position uniformly from letters and digits;
// special characters are never used regardless of the policy flag.
func generateWeak(length int) (string, error) {
	pool := charset.Lowercase + charset.Uppercase + charset.Digits

	chars := make([]byte, 0, length)
	for i := 0; i < length; i++ {
		c, err := choose(pool)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}

	return string(chars), nil
}

// generateGuaranteed implements the fill-and-shuffle discipline. The
// ambiguous-character exclusion narrows only the fill pool: a guaranteed
// class representative is always drawn from the full class.
func generateGuaranteed(policy Policy, required []requirement) (string, error) {
	pool := charset.Lowercase + charset.Uppercase + charset.Digits
	if policy.Strength != Medium || policy.IncludeSpecial {
		pool += charset.Special
	}
	if policy.ExcludeAmbiguous {
		pool = removeAmbiguous(pool)
	}

	chars := make([]byte, 0, policy.Length)
	for _, req := range required {
		for i := 0; i < req.count; i++ {
			c, err := choose(req.class)
			if err != nil {
				return "", err
			}
			chars = append(chars, c)
		}
	}

	for len(chars) < policy.Length {
		c, err := choose(pool)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}

	if err := shuffle(chars); err != nil {
		return "", err
	}

	return string(chars), nil
}

// generateReadable alternates consonants and vowels, capitalizing the
// consonant at every fifth position. With special characters enabled and
// room to spare, two pseudo-randomly chosen positions are overwritten with
// a digit and a special character; the positions may coincide.
func generateReadable(length int, includeSpecial bool) (string, error) {
	chars := make([]byte, 0, length)

	isConsonant := true
	for i := 0; i < length; i++ {
		var set string
		if isConsonant {
			set = consonants
			if i%5 == 0 {
				set = strings.ToUpper(consonants)
			}
		} else {
			set = vowels
		}

		c, err := choose(set)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
		isConsonant = !isConsonant
	}

	if includeSpecial && length >= 12 {
		idx1, err := randBelow(length - 2)
		if err != nil {
			return "", err
		}
		idx2, err := randBelow(length - 2)
		if err != nil {
			return "", err
		}

		digit, err := choose(charset.Digits)
		if err != nil {
			return "", err
		}
		special, err := choose(charset.Special)
		if err != nil {
			return "", err
		}

		chars[idx1] = digit
		chars[idx2] = special
	}

	return string(chars), nil
}

func removeAmbiguous(pool string) string {
	var b strings.Builder
	b.Grow(len(pool))
	for i := 0; i < len(pool); i++ {
		if strings.IndexByte(charset.Ambiguous, pool[i]) == -1 {
			b.WriteByte(pool[i])
		}
	}
	return b.String()
}

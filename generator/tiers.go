package generator

import "fmt"

// Strength selects the generation strategy: which character classes are
// guaranteed to appear and how many representatives each one gets.
type Strength string

const (
	Weak       Strength = "WEAK"
	Medium     Strength = "MEDIUM"
	Strong     Strength = "STRONG"
	VeryStrong Strength = "VERY_STRONG"
)

type strengthInfo struct {
	title             string
	description       string
	recommendedLength int
}

var strengthTable = map[Strength]strengthInfo{
	Weak: {
		title:             "Basic security",
		description:       "Letters and numbers only (8+ chars)",
		recommendedLength: 8,
	},
	Medium: {
		title:             "Standard security",
		description:       "Uppercase, lowercase, numbers (12+ chars)",
		recommendedLength: 12,
	},
	Strong: {
		title:             "Good security",
		description:       "All character types including special chars (16+ chars)",
		recommendedLength: 16,
	},
	VeryStrong: {
		title:             "Maximum security",
		description:       "Maximum diversity, recommended for critical accounts (20+ chars)",
		recommendedLength: 20,
	},
}

// ParseStrength maps a case-sensitive tier name to a Strength.
func ParseStrength(name string) (Strength, error) {
	s := Strength(name)
	if _, ok := strengthTable[s]; !ok {
		return "", fmt.Errorf("unknown strength level: %q", name)
	}
	return s, nil
}

// RecommendedLength returns the advised password length for a tier.
func RecommendedLength(s Strength) int {
	return strengthTable[s].recommendedLength
}

// Describe returns the short title and the longer description of a tier.
func Describe(s Strength) (string, string) {
	info := strengthTable[s]
	return info.title, info.description
}

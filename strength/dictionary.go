package strength

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/pwdtools/passguard/wordlist"
)

// leetTable maps visually-similar substitutions back to their intended
// letters. Substitutions are applied strictly in this order; some entries
// chain (a "8" becomes "b" before later rules run), so reordering the table
// changes fuzzy-match scores.
var leetTable = []struct {
	from string
	to   string
}{
	{"@", "a"}, {"4", "a"}, {"^", "a"},
	{"3", "e"}, {"€", "e"},
	{"8", "b"},
	{"9", "g"},
	{"1", "i"}, {"|", "i"}, {"!", "i"},
	{"0", "o"}, {"()", "o"},
	{"5", "s"}, {"$", "s"},
	{"7", "t"}, {"+", "t"},
	{"2", "z"},
	{"6", "g"},
	{".", ""}, {"-", ""}, {"_", ""}, {" ", ""},
}

// commonWords backs the fallback check when the loaded dictionary misses.
var commonWords = []string{
	"password", "admin", "user", "welcome", "letmein", "monkey",
	"dragon", "master", "shadow", "sunshine", "starlight", "trustno1",
	"qwerty", "admin123", "pass123", "password123",
}

func normalizeLeet(lowered string) string {
	normalized := lowered
	for _, sub := range leetTable {
		normalized = strings.ReplaceAll(normalized, sub.from, sub.to)
	}
	return normalized
}

// dictionaryScore rates how far the password is from known-weak material.
// Higher is better; 0 means a direct dictionary hit. The fixed constants
// (0/10/25 and the 85/80 similarity cutoffs) are empirically chosen and
// kept as-is.
func dictionaryScore(lowered string, words wordlist.Set) float64 {
	normalized := normalizeLeet(lowered)

	if words.Contains(lowered) || words.Contains(normalized) {
		return 0
	}

	for _, word := range words.Words() {
		similarity := fuzzy.TokenSetRatio(normalized, word)
		if similarity >= 85 {
			score := 50 - float64(similarity-85)*4
			if score < 0 {
				return 0
			}
			return score
		}
	}

	for _, word := range commonWords {
		similarity := fuzzy.TokenSetRatio(normalized, word)
		if similarity >= 80 {
			score := 60 - float64(similarity-80)*2.5
			if score < 10 {
				return 10
			}
			return score
		}
	}

	for _, word := range commonWords {
		if len(word) >= 4 && strings.Contains(normalized, word) {
			return 25
		}
	}

	return 100
}

// Package strength rates passwords with a weighted multi-criteria score:
// length, character diversity, pattern detection, dictionary similarity and
// brute-force entropy. Check is a pure function of the password and the
// dictionary loaded at construction, so an Engine is safe for concurrent use.
package strength

import (
	"math"
	"strings"
	"unicode/utf8"

	"code.cloudfoundry.org/lager"

	"github.com/pwdtools/passguard/charset"
	"github.com/pwdtools/passguard/wordlist"
)

// Sub-score weights; they sum to 1.
const (
	lengthWeight     = 0.25
	diversityWeight  = 0.25
	patternWeight    = 0.20
	dictionaryWeight = 0.20
	entropyWeight    = 0.10
)

type Engine struct {
	logger lager.Logger
	words  wordlist.Set
}

// New builds an Engine around a loaded dictionary set. An empty set is
// legal: dictionary checks then degrade to "no match", which is logged as
// an advisory rather than treated as a failure.
func New(logger lager.Logger, words wordlist.Set) *Engine {
	logger = logger.Session("strength-engine")

	if words.Len() == 0 {
		logger.Info("empty-dictionary", lager.Data{
			"note": "common-password checks degrade to no-match",
		})
	}

	return &Engine{
		logger: logger,
		words:  words,
	}
}

// Check produces a full verdict for password. All eight criteria are
// populated on every call; an empty password short-circuits to a fixed
// VERY_WEAK verdict.
func (e *Engine) Check(password string) Verdict {
	if password == "" {
		return emptyPasswordVerdict()
	}

	lowered := strings.ToLower(password)

	lengthSc := lengthScore(password)
	diversitySc := diversityScore(password)
	patternSc := patternScore(password, lowered)
	dictionarySc := dictionaryScore(lowered, e.words)
	bits := entropyBits(password)

	overall := lengthSc*lengthWeight +
		diversitySc*diversityWeight +
		patternSc*patternWeight +
		dictionarySc*dictionaryWeight +
		entropyScore(bits)*entropyWeight

	verdict := Verdict{
		OverallStrength: tierForScore(overall),
		Score:           int(math.Round(overall)),
		EntropyBits:     math.Round(bits*100) / 100,
		TimeToCrack:     timeToCrack(bits),
		Feedback:        synthesizeFeedback(password, diversitySc, patternSc, dictionarySc),
		Criteria: Criteria{
			Length:             utf8.RuneCountInString(password) >= 12,
			Uppercase:          charset.HasUppercase(password),
			Lowercase:          charset.HasLowercase(password),
			Numbers:            charset.HasDigit(password),
			SpecialChars:       charset.HasSpecial(password),
			NoDictionaryWords:  dictionarySc > 50,
			NoKeyboardPatterns: patternSc > 70,
			NoSequentialChars:  !hasSequentialRun(password),
		},
	}

	e.logger.Debug("checked", lager.Data{
		"strength": verdict.OverallStrength,
		"score":    verdict.Score,
	})

	return verdict
}

func tierForScore(overall float64) Tier {
	switch {
	case overall >= 80:
		return Strong
	case overall >= 60:
		return Medium
	case overall >= 40:
		return Weak
	default:
		return VeryWeak
	}
}

// lengthScore steps through fixed thresholds on the character count.
func lengthScore(password string) float64 {
	length := utf8.RuneCountInString(password)
	switch {
	case length < 6:
		return 0
	case length < 8:
		return 20
	case length < 12:
		return 50
	case length < 16:
		return 75
	default:
		return 100
	}
}

// diversityScore awards 25 points per character class present.
func diversityScore(password string) float64 {
	classes := 0
	if charset.HasUppercase(password) {
		classes++
	}
	if charset.HasLowercase(password) {
		classes++
	}
	if charset.HasDigit(password) {
		classes++
	}
	if charset.HasSpecial(password) {
		classes++
	}
	return float64(classes) / 4 * 100
}

func emptyPasswordVerdict() Verdict {
	return Verdict{
		OverallStrength: VeryWeak,
		Score:           0,
		EntropyBits:     0,
		TimeToCrack:     "Less than 1 second",
		Feedback: Feedback{
			Negative:    []string{"Password cannot be empty"},
			Suggestions: []string{"Create a proper password with minimum 12 characters"},
		},
		Criteria: Criteria{},
	}
}

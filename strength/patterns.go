package strength

import "regexp"

// Keyboard walks over the rows of a standard QWERTY layout, checked against
// the lowercased password.
var keyboardWalks = []*regexp.Regexp{
	regexp.MustCompile(`qwert|werty|ertyu|rtyui|tyuio|yuiop`),
	regexp.MustCompile(`asdfg|sdfgh|dfghj|fghjk|ghjkl`),
	regexp.MustCompile(`zxcvb|xcvbn|cvbnm`),
	regexp.MustCompile(`12345|23456|34567|45678|56789|67890`),
	regexp.MustCompile(`!@#\$%|\$%\^&`),
}

// Well-known password shapes, tolerant of basic symbol substitution.
var commonShapes = []*regexp.Regexp{
	regexp.MustCompile(`[Pp]ass(word)?`),
	regexp.MustCompile(`[Pp]@ssw0rd`),
	regexp.MustCompile(`[Qq]werty`),
	regexp.MustCompile(`[Aa]dmin`),
	regexp.MustCompile(`[Ll]etme[Ii]n`),
	regexp.MustCompile(`[Ww]elcome`),
	regexp.MustCompile(`[Ss]ecure`),
}

func hasKeyboardWalk(lowered string) bool {
	for _, walk := range keyboardWalks {
		if walk.MatchString(lowered) {
			return true
		}
	}
	return false
}

// hasSequentialRun reports whether three strictly consecutive codepoints
// appear anywhere in the password, e.g. "abc" or "789".
func hasSequentialRun(password string) bool {
	runes := []rune(password)
	for i := 0; i+2 < len(runes); i++ {
		if runes[i+1] == runes[i]+1 && runes[i+2] == runes[i+1]+1 {
			return true
		}
	}
	return false
}

// hasRepeatedRun reports whether any single character occurs three or more
// times in total.
func hasRepeatedRun(password string) bool {
	counts := make(map[rune]int)
	for _, r := range password {
		counts[r]++
		if counts[r] >= 3 {
			return true
		}
	}
	return false
}

func matchesCommonShape(password string) bool {
	for _, shape := range commonShapes {
		if shape.MatchString(password) {
			return true
		}
	}
	return false
}

// patternScore starts at 100 and subtracts a fixed penalty per detected
// weakness, flooring at 0. Higher is better.
func patternScore(password, lowered string) float64 {
	score := 100.0

	if hasKeyboardWalk(lowered) {
		score -= 25
	}
	if hasSequentialRun(password) {
		score -= 15
	}
	if hasRepeatedRun(password) {
		score -= 10
	}
	if matchesCommonShape(password) {
		score -= 20
	}

	if score < 0 {
		return 0
	}
	return score
}

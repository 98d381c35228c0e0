package strength

import (
	"strings"
	"unicode/utf8"

	"github.com/pwdtools/passguard/charset"
)

func synthesizeFeedback(password string, diversityScore, patternScore, dictionaryScore float64) Feedback {
	var positive, negative, suggestions []string

	length := utf8.RuneCountInString(password)

	if length >= 16 {
		positive = append(positive, "Excellent length (16+ characters)")
	} else if length >= 12 {
		positive = append(positive, "Good length (12+ characters)")
	}

	if diversityScore == 100 {
		positive = append(positive, "Excellent character diversity (all types present)")
	} else if diversityScore >= 75 {
		positive = append(positive, "Good character variety")
	}

	if patternScore == 100 {
		positive = append(positive, "No predictable patterns detected")
	}

	if dictionaryScore == 100 {
		positive = append(positive, "Not a common password")
	}

	if length < 12 {
		negative = append(negative, "Password too short (use 12+ characters)")
		suggestions = append(suggestions, "Increase password length to at least 12 characters")
	}

	if !charset.HasUppercase(password) {
		negative = append(negative, "Missing uppercase letters")
		suggestions = append(suggestions, "Add uppercase letters (A-Z)")
	}

	if !charset.HasLowercase(password) {
		negative = append(negative, "Missing lowercase letters")
		suggestions = append(suggestions, "Add lowercase letters (a-z)")
	}

	if !charset.HasDigit(password) {
		negative = append(negative, "Missing numbers")
		suggestions = append(suggestions, "Add numbers (0-9)")
	}

	if !charset.HasSpecial(password) {
		negative = append(negative, "Missing special characters")
		suggestions = append(suggestions, "Add special characters (!@#$%^&*)")
	}

	if hasKeyboardWalk(strings.ToLower(password)) {
		negative = append(negative, "Contains keyboard walk pattern")
		suggestions = append(suggestions, "Avoid keyboard patterns like qwerty or 12345")
	}

	if dictionaryScore < 100 {
		negative = append(negative, "Password contains common words")
		suggestions = append(suggestions, "Use random, uncommon words or phrases")
	}

	if len(positive) == 0 {
		suggestions = append(suggestions, "Consider using a password generator for a strong password")
	}

	return Feedback{
		Positive:    positive,
		Negative:    negative,
		Suggestions: suggestions,
	}
}

package validation

import (
	"strings"
	"unicode"

	zxcvbn "github.com/nbutton23/zxcvbn-go"
)

var strengthLabels = [...]string{"", "Weak", "Fair", "Good", "Strong", "Excellent"}

// PasswordStrength scores a password 0..5 by counting satisfied categories:
// length of at least 8, lowercase, uppercase, digit, symbol. The score feeds
// the strength meter only; it never gates submission.
func PasswordStrength(value string) int {
	score := 0
	if len(value) >= 8 {
		score++
	}
	if hasLower(value) {
		score++
	}
	if hasUpper(value) {
		score++
	}
	if hasDigit(value) {
		score++
	}
	if strings.ContainsFunc(value, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		score++
	}
	return score
}

// StrengthLabel maps a PasswordStrength score to its display label.
// Out-of-range scores map to "".
func StrengthLabel(score int) string {
	if score < 0 || score >= len(strengthLabels) {
		return ""
	}
	return strengthLabels[score]
}

// WeakPasswordHint returns an advisory message when zxcvbn estimates the
// password as easily guessable, optionally penalizing values related to
// userInputs (e.g. the account email). Advisory only: a non-empty hint
// does not block submission.
func WeakPasswordHint(value string, userInputs ...string) string {
	if value == "" {
		return ""
	}
	result := zxcvbn.PasswordStrength(value, userInputs)
	if result.Score <= 1 {
		return "This password would be easy to guess; consider something longer"
	}
	return ""
}

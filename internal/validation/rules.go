// Package validation implements the field-level rules gating the
// registration and login flows. Every rule is a pure function of the field
// value (plus sibling values for cross-field checks): no I/O, no clock
// access except the date-of-birth age computation.
package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

// FieldPassword is the sibling key consulted by the confirm-password rule.
const FieldPassword = "password"

var (
	emailRe    = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phoneRe    = regexp.MustCompile(`^(\+44|0)[0-9]{10}$`)
	postcodeRe = regexp.MustCompile(`(?i)^[A-Z]{1,2}[0-9]{1,2}[A-Z]?\s?[0-9][A-Z]{2}$`)
	cqcRe      = regexp.MustCompile(`(?i)^[A-Z0-9-]+$`)
)

// Field validates a single named field and returns a user-facing error
// message, or "" when the value is acceptable. Unknown field names are
// accepted unchanged. siblings carries the other values of the same form,
// used by cross-field rules (confirmPassword).
func Field(name, value string, siblings map[string]string) string {
	switch name {
	case "email":
		if value == "" {
			return "Email is required"
		}
		if !emailRe.MatchString(value) {
			return "Email is invalid"
		}
	case "password":
		if value == "" {
			return "Password is required"
		}
		if len(value) < 8 {
			return "Password must be at least 8 characters"
		}
		if !hasLower(value) || !hasUpper(value) || !hasDigit(value) {
			return "Password must contain uppercase, lowercase, and number"
		}
	case "confirmPassword":
		if value == "" {
			return "Please confirm password"
		}
		if value != siblings[FieldPassword] {
			return "Passwords do not match"
		}
	case "first_name":
		if value == "" {
			return "First name is required"
		}
		if len(value) < 2 {
			return "Name must be at least 2 characters"
		}
	case "last_name":
		if value == "" {
			return "Last name is required"
		}
		if len(value) < 2 {
			return "Name must be at least 2 characters"
		}
	case "business_name":
		if value == "" {
			return "Business name is required"
		}
		if len(value) < 3 {
			return "Business name must be at least 3 characters"
		}
	case "cqc_number":
		if value == "" {
			return "CQC number is required"
		}
		if !cqcRe.MatchString(value) {
			return "Please enter a valid CQC number"
		}
	case "phone":
		if value == "" {
			return "Phone number is required"
		}
		stripped := strings.Join(strings.Fields(value), "")
		if !phoneRe.MatchString(stripped) {
			return "Please enter a valid UK phone number"
		}
	case "date_of_birth":
		if value == "" {
			return "Date of birth is required"
		}
		dob, err := time.Parse("2006-01-02", value)
		if err != nil {
			return "Please enter a valid date"
		}
		age := time.Now().Year() - dob.Year()
		if age < 18 {
			return "You must be at least 18 years old"
		}
		if age > 100 {
			return "Please enter a valid date"
		}
	case "postcode":
		if value == "" {
			return "Postcode is required"
		}
		if !postcodeRe.MatchString(value) {
			return "Please enter a valid UK postcode"
		}
	}
	return ""
}

func hasLower(s string) bool {
	return strings.ContainsFunc(s, unicode.IsLower)
}

func hasUpper(s string) bool {
	return strings.ContainsFunc(s, unicode.IsUpper)
}

func hasDigit(s string) bool {
	return strings.ContainsFunc(s, unicode.IsDigit)
}

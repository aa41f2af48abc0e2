package authflow

import (
	"regexp"
	"strings"
	"unicode"
)

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether the address has the local@domain.tld shape.
func ValidEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

// PasswordIssue returns the validation message for a weak password, or
// "" when the password passes. Rules: minimum length 8 and at least one
// uppercase letter, one lowercase letter, and one digit. A special
// character is not required; see HasSpecial.
func PasswordIssue(password string) string {
	if len(password) < 8 {
		return "Password must be at least 8 characters"
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return "Password must contain uppercase, lowercase, and numbers"
	}
	return ""
}

// HasSpecial reports whether the password contains a symbol. Checked for
// signup but never enforced; the CLI uses it for a strength hint only.
func HasSpecial(password string) bool {
	return strings.ContainsAny(password, `!@#$%^&*(),.?":{}|<>`)
}

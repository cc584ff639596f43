package auth

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Strength is advisory only; the login form enforces nothing beyond the
// minimum length.
type Strength struct {
	Score       int      `json:"score"` // 0..4
	Warning     string   `json:"warning,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Rate scores pwd by length and character classes. A password that
// contains one of the hints (username, email) loses a class.
func Rate(pwd string, hints ...string) Strength {
	n := utf8.RuneCountInString(pwd)

	var lower, upper, digit, other bool
	for _, r := range pwd {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			other = true
		}
	}
	classes := 0
	for _, has := range []bool{lower, upper, digit, other} {
		if has {
			classes++
		}
	}

	lp := strings.ToLower(pwd)
	for _, h := range hints {
		h = strings.ToLower(strings.TrimSpace(h))
		if h != "" && n < 16 && strings.Contains(lp, h) {
			if classes > 1 {
				classes--
			}
			break
		}
	}

	switch {
	case n >= 14 && classes >= 3:
		return Strength{Score: 4}
	case n >= 12 && classes >= 3:
		return Strength{Score: 3, Suggestions: []string{"A passphrase of 3 or 4 words is stronger still."}}
	case n >= 10 && classes >= 2:
		return Strength{Score: 2, Warning: "Short or low variety.", Suggestions: []string{"Add length and mix letters, numbers and symbols."}}
	case n >= 8:
		return Strength{Score: 1, Warning: "Too short or predictable.", Suggestions: []string{"Use at least 10 to 12 characters of mixed types."}}
	default:
		return Strength{Score: 0, Warning: "Very weak password.", Suggestions: []string{"Use 12+ characters with upper and lower case, numbers and symbols."}}
	}
}

package password

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MinLen is the shortest password the login form accepts.
const MinLen = 6

var ErrTooShort = errors.New("weak_password.length")

// Validate rejects pwd when it has fewer than MinLen runes once surrounding
// spaces are ignored. pwd itself is hashed and verified as given.
func Validate(pwd string) error {
	if utf8.RuneCountInString(strings.TrimSpace(pwd)) < MinLen {
		return ErrTooShort
	}
	return nil
}

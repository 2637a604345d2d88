package validator

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidUsername = errors.New("username must be 3-24 characters of letters, digits, '.', '_' or '-'")

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]{3,24}$`)

// NormalizeUsername trims surrounding whitespace.
func NormalizeUsername(s string) string {
	return strings.TrimSpace(s)
}

func IsValidUsername(s string) bool {
	return usernamePattern.MatchString(s)
}

func ValidateUsername(s string) error {
	if !IsValidUsername(s) {
		return ErrInvalidUsername
	}
	return nil
}

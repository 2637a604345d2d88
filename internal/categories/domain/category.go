package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	GeneralName   = "General"
	MaxNameLength = 60
)

var (
	ErrNameRequired = errors.New("category name is required")
	ErrNameTooLong  = errors.New("category name must not exceed 60 characters")
)

type Category struct {
	ID        int64
	Name      string
	PostCount int
	CreatedAt time.Time
}

// IsGeneral reports whether the category is the protected default.
func (c *Category) IsGeneral() bool {
	return c != nil && IsGeneralName(c.Name)
}

func IsGeneralName(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), GeneralName)
}

// NormalizeName trims and validates a category name.
func NormalizeName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", ErrNameRequired
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}

package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const MaxContentLength = 500

var (
	ErrContentEmpty   = errors.New("comment cannot be empty")
	ErrContentTooLong = errors.New("comment must not exceed 500 characters")
)

type Comment struct {
	ID        int64
	PostID    int64
	UserID    uuid.UUID
	Content   string
	CreatedAt time.Time
	Author    Author
}

// Author is the display snapshot joined from profiles.
type Author struct {
	Username string
	Name     string
	Avatar   string
}

// NormalizeContent trims and validates; length is counted in characters.
func NormalizeContent(raw string) (string, error) {
	content := strings.TrimSpace(raw)
	if content == "" {
		return "", ErrContentEmpty
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return "", ErrContentTooLong
	}
	return content, nil
}

// Order is the listing order of comments.
type Order string

const (
	OrderNew  Order = "new"
	OrderOld  Order = "old"
	OrderMine Order = "mine"
)

// ParseOrder falls back to newest first for unknown values.
func ParseOrder(raw string) Order {
	switch Order(strings.ToLower(strings.TrimSpace(raw))) {
	case OrderOld:
		return OrderOld
	case OrderMine:
		return OrderMine
	}
	return OrderNew
}

package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Status mirrors the status_id column.
type Status int16

const (
	StatusDraft     Status = 1
	StatusPublished Status = 2
)

func StatusFor(published bool) Status {
	if published {
		return StatusPublished
	}
	return StatusDraft
}

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 500
)

var (
	ErrTitleRequired      = errors.New("title is required")
	ErrTitleTooLong       = errors.New("title must not exceed 200 characters")
	ErrDescriptionTooLong = errors.New("description must not exceed 500 characters")
	ErrInvalidAuthorID    = errors.New("author ID is required")
)

type Post struct {
	ID           int64
	Title        string
	Description  string
	Content      string // sanitized HTML
	Image        *string
	CategoryID   int64
	CategoryName string
	AuthorID     uuid.UUID
	AuthorName   string
	Published    bool
	StatusID     Status
	LikesCount   int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewPost(title, description, content string, categoryID int64, authorID uuid.UUID, published bool) (*Post, error) {
	if authorID == uuid.Nil {
		return nil, ErrInvalidAuthorID
	}
	p := &Post{AuthorID: authorID, CategoryID: categoryID}
	if err := p.Edit(title, description, content); err != nil {
		return nil, err
	}
	p.SetPublished(published)

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	return p, nil
}

// Edit replaces the text fields after validating them.
func (p *Post) Edit(title, description, content string) error {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" {
		return ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	p.Title = title
	p.Description = description
	p.Content = content
	p.UpdatedAt = time.Now()
	return nil
}

// SetPublished keeps Published and StatusID consistent.
func (p *Post) SetPublished(published bool) {
	p.Published = published
	p.StatusID = StatusFor(published)
}

func (p *Post) ImageURL() string {
	if p.Image == nil {
		return ""
	}
	return *p.Image
}

// ChangeImage applies an image change and returns the URL that becomes
// unreferenced, which the caller deletes once the row is saved.
// A nil newURL with remove false keeps the current image.
func (p *Post) ChangeImage(newURL *string, remove bool) (orphaned string) {
	old := p.ImageURL()
	switch {
	case newURL != nil && strings.TrimSpace(*newURL) != "":
		url := strings.TrimSpace(*newURL)
		p.Image = &url
	case remove || newURL != nil:
		p.Image = nil
	default:
		return ""
	}
	if old != "" && old != p.ImageURL() {
		return old
	}
	return ""
}

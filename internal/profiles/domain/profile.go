package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	authz "github.com/philly/inkwell/internal/authz/domain"
	"github.com/philly/inkwell/internal/platform/validator"
)

const (
	MaxNameLength     = 80
	MinPasswordLength = 8
)

var (
	ErrNameTooLong      = errors.New("name must not exceed 80 characters")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
)

// Profile extends an auth-provider identity with display data and a role.
type Profile struct {
	ID                uuid.UUID
	Email             string
	Username          string
	Name              string
	ProfilePic        *string
	Role              authz.Role
	SessionsRevokedAt *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// DefaultProfile is the view of an identity that has never saved a profile.
func DefaultProfile(id uuid.UUID, email string) *Profile {
	return &Profile{ID: id, Email: email, Role: authz.RoleUser}
}

// AvatarURL returns the picture URL or "".
func (p *Profile) AvatarURL() string {
	if p == nil || p.ProfilePic == nil {
		return ""
	}
	return *p.ProfilePic
}

// SetUsername validates and assigns a trimmed username.
func (p *Profile) SetUsername(raw string) error {
	username := validator.NormalizeUsername(raw)
	if err := validator.ValidateUsername(username); err != nil {
		return err
	}
	p.Username = username
	return nil
}

func (p *Profile) SetName(raw string) error {
	name := strings.TrimSpace(raw)
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	p.Name = name
	return nil
}

// SetProfilePic stores a trimmed URL; blank clears it.
func (p *Profile) SetProfilePic(raw *string) {
	if raw == nil {
		return
	}
	url := strings.TrimSpace(*raw)
	if url == "" {
		p.ProfilePic = nil
		return
	}
	p.ProfilePic = &url
}

func ValidatePassword(pw string) error {
	if utf8.RuneCountInString(pw) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

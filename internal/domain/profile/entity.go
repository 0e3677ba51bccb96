package profile

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail = errors.New("invalid email format")
	ErrInvalidRole  = errors.New("invalid role")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

// Profile is an account record. Used for auth and admin role checks.
type Profile struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	createdAt    time.Time
}

func NewProfile(email Email, passwordHash string, role Role) *Profile {
	return &Profile{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
	}
}

func Reconstruct(id uuid.UUID, email Email, passwordHash string, role Role, createdAt time.Time) *Profile {
	return &Profile{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
	}
}

func (p *Profile) ID() uuid.UUID        { return p.id }
func (p *Profile) Email() Email         { return p.email }
func (p *Profile) PasswordHash() string { return p.passwordHash }
func (p *Profile) Role() Role           { return p.role }
func (p *Profile) CreatedAt() time.Time { return p.createdAt }

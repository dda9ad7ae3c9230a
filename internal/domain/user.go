package domain

import (
	"errors"
	"strings"
	"time"
)

// User validation errors.
var (
	ErrEmptyName           = errors.New("name cannot be empty")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters long")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// MinPasswordLength is the minimum accepted password length for registration.
const MinPasswordLength = 6

// User represents a registered account. A user owns categories and tasks;
// deleting a user cascades to both at the database level.
type User struct {
	UserID         int64
	Name           string
	Email          string
	HashedPassword string
	CreatedAt      time.Time
	DeletedAt      *time.Time // written by the schema, never read
}

// NewUser builds a User from registration input. The email is normalized
// (trimmed, lowercased) and the name trimmed before validation. The caller
// is responsible for hashing the password into HashedPassword before the
// user is stored.
func NewUser(name, email string) (*User, error) {
	user := &User{
		Name:      strings.TrimSpace(name),
		Email:     NormalizeEmail(email),
		CreatedAt: time.Now().UTC(),
	}
	if user.Name == "" {
		return nil, ErrEmptyName
	}
	if err := validateEmail(user.Email); err != nil {
		return nil, err
	}
	return user, nil
}

// NormalizeEmail trims surrounding whitespace and lowercases an email address
// so that lookups and the unique constraint are case-insensitive in practice.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate checks that a stored user is internally consistent.
func (u *User) Validate() error {
	if u.Name == "" {
		return ErrEmptyName
	}
	if err := validateEmail(u.Email); err != nil {
		return err
	}
	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return ErrEmptyEmail
	}
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return ErrInvalidEmail
	}
	domainPart := email[at+1:]
	dot := strings.IndexByte(domainPart, '.')
	if dot <= 0 || dot == len(domainPart)-1 {
		return ErrInvalidEmail
	}
	return nil
}

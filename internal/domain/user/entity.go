package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxDisplayNameLength = 100

// User is a property owner account.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	displayName  string
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, passwordHash, displayName string, now time.Time) (*User, error) {
	displayName = strings.TrimSpace(displayName)
	if len(displayName) > MaxDisplayNameLength {
		return nil, ErrDisplayNameTooLong
	}
	if passwordHash == "" {
		return nil, ErrEmptyPasswordHash
	}

	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		displayName:  displayName,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) DisplayName() string   { return u.displayName }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }

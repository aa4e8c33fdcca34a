package user

import (
	"fmt"
	"time"

	"github.com/agewithcare/policyhub/internal/domain/user/valueobjects"
	"github.com/agewithcare/policyhub/internal/shared/biztime"
)

// PasswordHasher abstracts the hashing scheme used for user credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// User represents the user aggregate root (pure domain model without persistence concerns)
type User struct {
	id           uint
	email        *valueobjects.Email
	name         string
	status       valueobjects.Status
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a new user aggregate with initial values
func NewUser(email *valueobjects.Email, name string) (*User, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name cannot exceed 100 characters")
	}

	now := biztime.NowUTC()
	return &User{
		email:     email,
		name:      name,
		status:    valueobjects.StatusActive,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructUser reconstructs a user from persistence
func ReconstructUser(id uint, email *valueobjects.Email, name string, status valueobjects.Status, passwordHash string, createdAt, updatedAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}

	return &User{
		id:           id,
		email:        email,
		name:         name,
		status:       status,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint                        { return u.id }
func (u *User) Email() *valueobjects.Email      { return u.email }
func (u *User) Name() string                    { return u.name }
func (u *User) Status() valueobjects.Status     { return u.status }
func (u *User) PasswordHash() string            { return u.passwordHash }
func (u *User) CreatedAt() time.Time            { return u.createdAt }
func (u *User) UpdatedAt() time.Time            { return u.updatedAt }

// SetID sets the user ID (only for persistence layer use)
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// SetPassword hashes and stores a new password
func (u *User) SetPassword(password string, hasher PasswordHasher) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	hash, err := hasher.Hash(password)
	if err != nil {
		return err
	}
	u.passwordHash = hash
	u.updatedAt = biztime.NowUTC()
	return nil
}

// VerifyPassword checks a candidate password against the stored hash
func (u *User) VerifyPassword(password string, hasher PasswordHasher) error {
	if u.passwordHash == "" {
		return fmt.Errorf("no password set for user")
	}
	return hasher.Verify(password, u.passwordHash)
}

// CanLogin reports whether the account status permits authentication
func (u *User) CanLogin() bool {
	return u.status.IsActive()
}

// UpdateEmail updates the user's email address
func (u *User) UpdateEmail(newEmail *valueobjects.Email) error {
	if newEmail == nil {
		return fmt.Errorf("email cannot be nil")
	}
	if u.email.Equals(newEmail) {
		return nil
	}
	u.email = newEmail
	u.updatedAt = biztime.NowUTC()
	return nil
}

// UpdateName updates the user's display name
func (u *User) UpdateName(name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if len(name) > 100 {
		return fmt.Errorf("name cannot exceed 100 characters")
	}
	u.name = name
	u.updatedAt = biztime.NowUTC()
	return nil
}

// ChangeStatus transitions the account to a new status, validating the edge
func (u *User) ChangeStatus(target valueobjects.Status) error {
	if u.status == target {
		return nil
	}
	if !u.status.CanTransitionTo(target) {
		return fmt.Errorf("cannot transition user status from %s to %s", u.status, target)
	}
	u.status = target
	u.updatedAt = biztime.NowUTC()
	return nil
}

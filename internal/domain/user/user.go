package user

import (
	"fmt"
	"time"

	vo "github.com/vpndash/vpndash/internal/domain/user/valueobjects"
)

// User represents the user aggregate root (pure domain model without persistence concerns)
type User struct {
	id                 uint
	sid                string
	name               *vo.Name
	email              *vo.Email
	passwordHash       string
	plan               vo.Plan
	subscriptionExpiry time.Time
	totalDataUsed      float64
	createdAt          time.Time
	updatedAt          time.Time
	lastLogin          time.Time
}

// NewUser creates a freshly registered user on a trial of the given plan.
// lastLogin starts equal to createdAt.
func NewUser(name *vo.Name, email *vo.Email, passwordHash string, plan vo.Plan, trial time.Duration, now time.Time, shortIDGenerator func() (string, error)) (*User, error) {
	if name == nil {
		return nil, fmt.Errorf("name is required")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !plan.IsValid() {
		return nil, fmt.Errorf("invalid plan: %s", plan)
	}

	sid, err := shortIDGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now = now.UTC()
	return &User{
		sid:                sid,
		name:               name,
		email:              email,
		passwordHash:       passwordHash,
		plan:               plan,
		subscriptionExpiry: now.Add(trial),
		createdAt:          now,
		updatedAt:          now,
		lastLogin:          now,
	}, nil
}

// UserSnapshot carries persisted state into ReconstructUser.
type UserSnapshot struct {
	ID                 uint
	SID                string
	Name               string
	Email              string
	PasswordHash       string
	Plan               string
	SubscriptionExpiry time.Time
	TotalDataUsed      float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
	LastLogin          time.Time
}

// ReconstructUser reconstructs a user from persistence
func ReconstructUser(s UserSnapshot) (*User, error) {
	if s.ID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	email, err := vo.NewEmail(s.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid stored email for user %d: %w", s.ID, err)
	}
	name, err := vo.NewName(s.Name)
	if err != nil {
		return nil, fmt.Errorf("invalid stored name for user %d: %w", s.ID, err)
	}
	plan, err := vo.ParsePlan(s.Plan)
	if err != nil {
		return nil, err
	}

	return &User{
		id:                 s.ID,
		sid:                s.SID,
		name:               name,
		email:              email,
		passwordHash:       s.PasswordHash,
		plan:               plan,
		subscriptionExpiry: s.SubscriptionExpiry.UTC(),
		totalDataUsed:      s.TotalDataUsed,
		createdAt:          s.CreatedAt.UTC(),
		updatedAt:          s.UpdatedAt.UTC(),
		lastLogin:          s.LastLogin.UTC(),
	}, nil
}

func (u *User) ID() uint                      { return u.id }
func (u *User) SID() string                   { return u.sid }
func (u *User) Name() *vo.Name                { return u.name }
func (u *User) Email() *vo.Email              { return u.email }
func (u *User) PasswordHash() string          { return u.passwordHash }
func (u *User) Plan() vo.Plan                 { return u.plan }
func (u *User) SubscriptionExpiry() time.Time { return u.subscriptionExpiry }
func (u *User) TotalDataUsed() float64        { return u.totalDataUsed }
func (u *User) CreatedAt() time.Time          { return u.createdAt }
func (u *User) UpdatedAt() time.Time          { return u.updatedAt }
func (u *User) LastLogin() time.Time          { return u.lastLogin }

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

// UpdateName replaces the display name.
func (u *User) UpdateName(name *vo.Name, now time.Time) error {
	if name == nil {
		return fmt.Errorf("name cannot be nil")
	}
	if u.name.Equals(name) {
		return nil
	}
	u.name = name
	u.updatedAt = now.UTC()
	return nil
}

// UpdateEmail replaces the email. Uniqueness is checked by the caller.
func (u *User) UpdateEmail(email *vo.Email, now time.Time) error {
	if email == nil {
		return fmt.Errorf("email cannot be nil")
	}
	if u.email.Equals(email) {
		return nil
	}
	u.email = email
	u.updatedAt = now.UTC()
	return nil
}

// ChangePasswordHash stores a new credential hash.
func (u *User) ChangePasswordHash(hash string, now time.Time) error {
	if hash == "" {
		return fmt.Errorf("password hash cannot be empty")
	}
	u.passwordHash = hash
	u.updatedAt = now.UTC()
	return nil
}

// RecordLogin marks a successful authentication.
func (u *User) RecordLogin(now time.Time) {
	u.lastLogin = now.UTC()
	u.updatedAt = u.lastLogin
}

// IsSubscriptionActive reports whether the subscription has not yet expired.
func (u *User) IsSubscriptionActive(now time.Time) bool {
	return now.Before(u.subscriptionExpiry)
}

package user

import "context"

// Repository defines the interface for user data operations
type Repository interface {
	// Create persists a new user and assigns its internal ID
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by internal ID
	GetByID(ctx context.Context, id uint) (*User, error)

	// GetBySID retrieves a user by external SID (Stripe-style ID)
	GetBySID(ctx context.Context, sid string) (*User, error)

	// GetByEmail retrieves a user by normalized email
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Update saves profile, credential and login fields
	Update(ctx context.Context, user *User) error

	// ExistsByEmail checks if a user exists by email
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// AddDataUsed atomically increments the cumulative data counter
	AddDataUsed(ctx context.Context, id uint, gb float64) error
}

// PasswordHasher hashes and verifies credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

package usage

import "context"

// Repository persists the usage row of each user.
type Repository interface {
	Create(ctx context.Context, stats *Stats) error
	GetByUserID(ctx context.Context, userID uint) (*Stats, error)
	Update(ctx context.Context, stats *Stats) error
}

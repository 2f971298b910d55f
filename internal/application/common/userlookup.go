// Package common holds helpers shared by the application use cases.
package common

import (
	"context"
	"fmt"

	"github.com/vpndash/vpndash/internal/domain/user"
	"github.com/vpndash/vpndash/internal/shared/errors"
	"github.com/vpndash/vpndash/internal/shared/logger"
)

// LookupUser resolves the caller's SID. An unknown SID is a NotFound error.
func LookupUser(ctx context.Context, repo user.Repository, sid string, log logger.Interface) (*user.User, error) {
	if sid == "" {
		return nil, errors.NewUnauthorizedError("missing user identity")
	}

	u, err := repo.GetBySID(ctx, sid)
	if err != nil {
		log.Errorw("failed to get user", "user_sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, errors.NewNotFoundError("User not found")
	}
	return u, nil
}

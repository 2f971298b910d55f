package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenRevoker remembers logged-out token IDs until the tokens would have expired.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// RedisTokenRevoker keeps one key per revoked token with a TTL equal to the
// token's remaining lifetime.
type RedisTokenRevoker struct {
	client *redis.Client
}

func NewRedisTokenRevoker(client *redis.Client) *RedisTokenRevoker {
	return &RedisTokenRevoker{client: client}
}

func revokedKey(tokenID string) string {
	return "auth:revoked:" + tokenID
}

func (r *RedisTokenRevoker) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := r.client.Set(ctx, revokedKey(tokenID), 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (r *RedisTokenRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, revokedKey(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return n > 0, nil
}

// NoopTokenRevoker never revokes anything.
type NoopTokenRevoker struct{}

func (NoopTokenRevoker) Revoke(context.Context, string, time.Time) error { return nil }
func (NoopTokenRevoker) IsRevoked(context.Context, string) (bool, error) { return false, nil }

// MemoryTokenRevoker is used when Redis is disabled. Revocations are visible
// to this process only and are lost on restart.
type MemoryTokenRevoker struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewMemoryTokenRevoker() *MemoryTokenRevoker {
	return &MemoryTokenRevoker{revoked: make(map[string]time.Time), now: time.Now}
}

func (r *MemoryTokenRevoker) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if !expiresAt.After(now) {
		return nil
	}
	for id, exp := range r.revoked {
		if !exp.After(now) {
			delete(r.revoked, id)
		}
	}
	r.revoked[tokenID] = expiresAt
	return nil
}

func (r *MemoryTokenRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	exp, ok := r.revoked[tokenID]
	return ok && exp.After(r.now()), nil
}

// IsClaimsRevoked reports whether the token itself or its family was revoked.
func IsClaimsRevoked(ctx context.Context, r TokenRevoker, claims *Claims) (bool, error) {
	for _, id := range []string{claims.ID, claims.FamilyID} {
		if id == "" {
			continue
		}
		revoked, err := r.IsRevoked(ctx, id)
		if err != nil || revoked {
			return revoked, err
		}
	}
	return false, nil
}

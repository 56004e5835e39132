package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const blacklistKeyPrefix = "auth:revoked:"

// TokenBlacklist stores revoked refresh tokens with a TTL matching their
// remaining lifetime, so logout invalidates the token before its natural
// expiry.
type TokenBlacklist struct {
	client *redis.Client
}

// NewTokenBlacklist creates a blacklist backed by the given Redis client.
func NewTokenBlacklist(client *redis.Client) *TokenBlacklist {
	return &TokenBlacklist{client: client}
}

// Revoke marks a token as revoked for the given duration.
func (b *TokenBlacklist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already expired, nothing to store
		return nil
	}
	return b.client.Set(ctx, blacklistKeyPrefix+token, "1", ttl).Err()
}

// IsRevoked reports whether a token has been revoked.
func (b *TokenBlacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := b.client.Exists(ctx, blacklistKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

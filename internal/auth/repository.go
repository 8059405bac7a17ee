package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"duka/internal/shared/constants"

	"github.com/redis/go-redis/v9"
)

// RevocationChecker reports whether a token id has been revoked
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Denylist is the Redis-backed token revocation store
type Denylist interface {
	RevocationChecker
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

type redisDenylist struct {
	client *redis.Client
	prefix string
}

func NewRedisDenylist(client *redis.Client, prefix string) Denylist {
	return &redisDenylist{client: client, prefix: prefix}
}

func (d *redisDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	value, err := d.client.Get(ctx, constants.BuildDenylistKey(d.prefix, tokenID)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read denylist: %w", err)
	}
	return value == constants.DENYLIST_REVOKED_VALUE, nil
}

func (d *redisDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	key := constants.BuildDenylistKey(d.prefix, tokenID)
	if err := d.client.Set(ctx, key, constants.DENYLIST_REVOKED_VALUE, ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

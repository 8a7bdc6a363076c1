package sessions

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// revoked access tokens live under this prefix until their natural expiry
const blacklistKeyPrefix = "blacklist:access:"

// optional Redis client backing the access-token blacklist
var blacklistClient *redis.Client

// SetBlacklistClient configures the Redis client used for revocation checks.
// Passing nil disables the blacklist entirely; every check then reports the
// token as valid.
func SetBlacklistClient(c *redis.Client) {
	blacklistClient = c
}

// BlacklistAccessToken marks the token as revoked for the given TTL, which
// callers derive from the token's remaining lifetime. A no-op without a
// configured client.
func BlacklistAccessToken(ctx context.Context, token string, ttl time.Duration) error {
	if blacklistClient == nil {
		return nil
	}
	return blacklistClient.Set(ctx, blacklistKeyPrefix+token, "1", ttl).Err()
}

// IsAccessTokenBlacklisted reports whether the token has been revoked.
// Without a configured client it answers (false, nil).
func IsAccessTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	if blacklistClient == nil {
		return false, nil
	}
	exists, err := blacklistClient.Exists(ctx, blacklistKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

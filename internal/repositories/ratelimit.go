package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/investflow/investflow/internal/logger"
	"github.com/redis/go-redis/v9"
)

// RateLimitRepository counts actions per (user, action) in fixed
// windows using Redis INCR. Callers decide what to do on Redis errors;
// the financial services fail open on the check and closed on the
// mutation it guards.
type RateLimitRepository struct {
	client *redis.Client
}

func NewRateLimitRepository(client *redis.Client) *RateLimitRepository {
	return &RateLimitRepository{client: client}
}

// Increment bumps the fixed-window counter for (subject, action) and
// returns the count within the current window. The subject is a user
// id for financial actions and a username for login attempts. The
// first hit of a window sets the TTL.
func (r *RateLimitRepository) Increment(ctx context.Context, subject, action string, window time.Duration) (int64, error) {
	windowStart := time.Now().Truncate(window).Unix()
	key := fmt.Sprintf("rate_limit:%s:%s:%d", action, subject, windowStart)

	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", count,
			"error", err,
		)
		return 0, err
	}

	if count == 1 {
		if err := r.client.Expire(ctx, key, window).Err(); err != nil {
			logger.Log.Warnw("failed to set rate limit window expiry", "key", key, "error", err)
		}
	}

	logger.Log.Infow(
		"key", key,
		"result", count,
		"error", nil,
	)

	return count, nil
}

package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRateLimitRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewRateLimitRepository(rdb)

	t.Run("counts per subject and action", func(t *testing.T) {
		subject := uuid.New().String()

		for i := int64(1); i <= 3; i++ {
			count, err := repo.Increment(ctx, subject, "deposit", time.Hour)
			assert.NoError(t, err)
			assert.Equal(t, i, count)
		}

		// A different action keeps its own counter.
		count, err := repo.Increment(ctx, subject, "withdraw", time.Hour)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), count)

		// So does a different subject.
		count, err = repo.Increment(ctx, uuid.New().String(), "deposit", time.Hour)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("window expires", func(t *testing.T) {
		subject := uuid.New().String()

		count, err := repo.Increment(ctx, subject, "login", 2*time.Second)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), count)

		// Wait for the window to lapse (2s)
		time.Sleep(3 * time.Second)

		count, err = repo.Increment(ctx, subject, "login", 2*time.Second)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

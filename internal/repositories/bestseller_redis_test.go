package repositories

import (
	"context"
	"os"
	"testing"

	"watchstore/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	return client
}

func TestRedisBestSellerRanking(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	ranking := NewRedisBestSellerRanking(client)
	ranking.key = "test:" + bestSellersKey
	client.Del(ctx, ranking.key)
	defer client.Del(ctx, ranking.key)

	require.NoError(t, ranking.Record(ctx, []models.OrderItem{
		{ProductID: "omega", Quantity: 1},
		{ProductID: "rolex", Quantity: 2},
	}))
	require.NoError(t, ranking.Record(ctx, []models.OrderItem{
		{ProductID: "omega", Quantity: 3},
		{ProductID: "tudor", Quantity: 1},
	}))

	top, err := ranking.Top(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"omega", "rolex"}, top)

	none, err := ranking.Top(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

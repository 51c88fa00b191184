package repositories

import (
	"context"
	"fmt"

	"watchstore/internal/models"

	"github.com/redis/go-redis/v9"
)

const bestSellersKey = "bestsellers:units"

// BestSellerRanking counts units bought per product.
type BestSellerRanking interface {
	Record(ctx context.Context, items []models.OrderItem) error
	Top(ctx context.Context, limit int) ([]string, error)
}

// RedisBestSellerRanking keeps the ranking in a Redis sorted set scored by units bought.
type RedisBestSellerRanking struct {
	client *redis.Client
	key    string
}

// NewRedisBestSellerRanking creates a ranking stored in a Redis sorted set.
func NewRedisBestSellerRanking(client *redis.Client) *RedisBestSellerRanking {
	return &RedisBestSellerRanking{client: client, key: bestSellersKey}
}

// Record adds the quantities of an order to the ranking.
func (r *RedisBestSellerRanking) Record(ctx context.Context, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	pipe := r.client.TxPipeline()
	for _, it := range items {
		pipe.ZIncrBy(ctx, r.key, float64(it.Quantity), it.ProductID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record best sellers: %w", err)
	}
	return nil
}

// Top returns up to limit product IDs, most units bought first.
func (r *RedisBestSellerRanking) Top(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}
	ids, err := r.client.ZRevRange(ctx, r.key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read best sellers: %w", err)
	}
	return ids, nil
}

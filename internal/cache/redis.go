package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sportnex-backend/internal/config"
	"sportnex-backend/internal/domain"

	"github.com/redis/go-redis/v9"
)

// CourtCache holds the court catalog in redis so the busiest read path
// (browse courts) avoids the database. Admin court mutations invalidate it;
// readers fall back to the repository on a miss.
type CourtCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCourtCache(cfg config.RedisConfig) *CourtCache {
	return &CourtCache{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		ttl:    time.Duration(cfg.CourtCacheTTL) * time.Second,
	}
}

func (c *CourtCache) GetCourts(ctx context.Context, page, pageSize int32) ([]domain.Court, int32, bool, error) {
	data, err := c.client.Get(ctx, courtsKey(page, pageSize)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, 0, false, nil
		}
		return nil, 0, false, err
	}

	var entry courtsEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, 0, false, err
	}
	return entry.Courts, entry.Total, true, nil
}

func (c *CourtCache) SetCourts(ctx context.Context, page, pageSize int32, courts []domain.Court, total int32) error {
	payload, err := json.Marshal(courtsEntry{Courts: courts, Total: total})
	if err != nil {
		return err
	}
	return c.client.Set(ctx, courtsKey(page, pageSize), payload, c.ttl).Err()
}

// Invalidate drops every cached court page. Called after any admin court
// mutation so the next read refetches.
func (c *CourtCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, "cache:courts:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (c *CourtCache) Close() error {
	return c.client.Close()
}

type courtsEntry struct {
	Courts []domain.Court `json:"courts"`
	Total  int32          `json:"total"`
}

func courtsKey(page, pageSize int32) string {
	return fmt.Sprintf("cache:courts:%d:%d", page, pageSize)
}

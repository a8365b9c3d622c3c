package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/reviewpulse/sentiment-api/internal/domain/service"
	"github.com/reviewpulse/sentiment-api/internal/infrastructure/config"
)

// NewRedisClient creates a new Redis client and verifies connectivity
func NewRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

// ResultCache stores classification results keyed by a hash of the text
// and language hint. Cache failures degrade to a miss; they never fail
// the request.
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResultCache creates a result cache with the given entry lifetime
func NewResultCache(client *redis.Client, ttl time.Duration) *ResultCache {
	return &ResultCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns a cached result for the text, if present
func (c *ResultCache) Get(ctx context.Context, text, language string) (*service.ClassificationResult, bool) {
	payload, err := c.client.Get(ctx, cacheKey(text, language)).Result()
	if err != nil {
		return nil, false
	}

	var result service.ClassificationResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, false
	}
	return &result, true
}

// Set stores a result for the text
func (c *ResultCache) Set(ctx context.Context, text, language string, result *service.ClassificationResult) {
	payload, err := json.Marshal(result)
	if err != nil {
		return
	}
	c.client.Set(ctx, cacheKey(text, language), payload, c.ttl)
}

func cacheKey(text, language string) string {
	sum := sha256.Sum256([]byte(language + "\x00" + text))
	return "sentiment:result:" + hex.EncodeToString(sum[:])
}

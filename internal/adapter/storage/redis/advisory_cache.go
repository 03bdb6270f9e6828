package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"cash-wallet-tracker/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// AdvisoryCache implements ports.AdvisoryCache using Redis. Keys are the
// SHA-256 of the normalized description so arbitrary user text never
// becomes a raw Redis key.
type AdvisoryCache struct {
	client *goredis.Client
	prefix string
}

// NewAdvisoryCache creates a new Redis-backed advisory classification cache.
func NewAdvisoryCache(client *goredis.Client) *AdvisoryCache {
	return &AdvisoryCache{
		client: client,
		prefix: "advisory:classify:",
	}
}

// GetClassification retrieves a cached classification.
// Returns nil, nil if the description was never classified.
func (c *AdvisoryCache) GetClassification(ctx context.Context, description string) (*ports.AdvisoryClassification, error) {
	val, err := c.client.Get(ctx, c.key(description)).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis classification get: %w", err)
	}

	var classification ports.AdvisoryClassification
	if err := json.Unmarshal(val, &classification); err != nil {
		return nil, fmt.Errorf("decode cached classification: %w", err)
	}
	return &classification, nil
}

// SetClassification stores a classification with TTL.
func (c *AdvisoryCache) SetClassification(ctx context.Context, description string, classification *ports.AdvisoryClassification, ttl time.Duration) error {
	payload, err := json.Marshal(classification)
	if err != nil {
		return fmt.Errorf("encode classification: %w", err)
	}
	if err := c.client.Set(ctx, c.key(description), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis classification set: %w", err)
	}
	return nil
}

func (c *AdvisoryCache) key(description string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(description))))
	return c.prefix + hex.EncodeToString(sum[:])
}

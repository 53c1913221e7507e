package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ContactDeduper suppresses repeat contact-form notifications using Redis
// keys with a TTL. Key format: contact:dedup:<sha256(email|message)>
type ContactDeduper struct {
	client *redis.Client
	ttl    time.Duration
}

// NewContactDeduper creates a ContactDeduper wrapping the given Redis client.
func NewContactDeduper(client *redis.Client, ttl time.Duration) *ContactDeduper {
	return &ContactDeduper{client: client, ttl: ttl}
}

// IsDuplicate reports whether an identical submission was seen within the TTL.
func (d *ContactDeduper) IsDuplicate(ctx context.Context, email, message string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(email, message)).Result()
	if err != nil {
		return false, fmt.Errorf("contact dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records the submission so repeats within the TTL are suppressed.
func (d *ContactDeduper) Mark(ctx context.Context, email, message string) error {
	return d.client.Set(ctx, d.key(email, message), "1", d.ttl).Err()
}

func (d *ContactDeduper) key(email, message string) string {
	sum := sha256.Sum256([]byte(email + "|" + message))
	return "contact:dedup:" + hex.EncodeToString(sum[:])
}

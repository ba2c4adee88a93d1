package kv

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedPrefix = "blacklist:"

// RevocationStore records revoked token ids until the token would have expired.
type RevocationStore struct {
	rdb *redis.Client
}

// NewRevocationStore returns a store backed by rdb. A nil client yields a
// store that revokes nothing and reports nothing revoked.
func NewRevocationStore(rdb *redis.Client) *RevocationStore {
	return &RevocationStore{rdb: rdb}
}

// Enabled reports whether revocations are persisted.
func (s *RevocationStore) Enabled() bool {
	return s != nil && s.rdb != nil
}

// Revoke marks jti as revoked for ttl. Non-positive ttls are ignored since
// the token is already expired.
func (s *RevocationStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if !s.Enabled() || jti == "" || ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, revokedPrefix+jti, "1", ttl).Err()
}

// IsRevoked reports whether jti was revoked.
func (s *RevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if !s.Enabled() || jti == "" {
		return false, nil
	}
	n, err := s.rdb.Exists(ctx, revokedPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

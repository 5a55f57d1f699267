package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/Brunera17/TCC/internal/auth/domain"
	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "refresh:active:"

// RefreshStore shares the active refresh-token set between processes. Each
// token lives under its own key whose TTL is the token's remaining lifetime
// plus domain.RefreshExpiryGrace, so expired entries disappear without a sweep.
type RefreshStore struct {
	client goredis.UniversalClient
	now    func() time.Time
}

func NewRefreshStore(client goredis.UniversalClient) *RefreshStore {
	return &RefreshStore{client: client, now: time.Now}
}

func key(tokenID string) string {
	return keyPrefix + tokenID
}

func (s *RefreshStore) Add(ctx context.Context, tokenID string, expiresAt time.Time) error {
	remaining := expiresAt.Sub(s.now())
	if remaining <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, key(tokenID), "1", remaining+domain.RefreshExpiryGrace).Err(); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

func (s *RefreshStore) Contains(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check refresh token: %w", err)
	}
	return n > 0, nil
}

func (s *RefreshStore) Remove(ctx context.Context, tokenID string) error {
	if err := s.client.Del(ctx, key(tokenID)).Err(); err != nil {
		return fmt.Errorf("failed to remove refresh token: %w", err)
	}
	return nil
}

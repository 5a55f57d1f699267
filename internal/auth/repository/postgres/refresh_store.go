package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Brunera17/TCC/internal/auth/domain"
	"github.com/jackc/pgx/v5"
)

// RefreshStore keeps the active refresh-token set in the refresh_tokens table.
type RefreshStore struct {
	db DB
}

func NewRefreshStore(db DB) *RefreshStore {
	return &RefreshStore{db: db}
}

func (s *RefreshStore) Add(ctx context.Context, tokenID string, expiresAt time.Time) error {
	query := `INSERT INTO refresh_tokens (token_hash, expires_at, created_at, revoked)
	          VALUES ($1, $2, now(), false)
	          ON CONFLICT (token_hash) DO NOTHING`
	if _, err := s.db.Exec(ctx, query, tokenID, expiresAt); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

// Get returns the stored row for tokenID, or (nil, nil) when there is none.
func (s *RefreshStore) Get(ctx context.Context, tokenID string) (*domain.RefreshToken, error) {
	var token domain.RefreshToken
	err := s.db.QueryRow(ctx, `
		SELECT token_hash, expires_at, created_at, revoked
		FROM refresh_tokens
		WHERE token_hash = $1
	`, tokenID).Scan(&token.TokenHash, &token.ExpiresAt, &token.CreatedAt, &token.Revoked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load refresh token: %w", err)
	}
	return &token, nil
}

// Contains reports membership only; expiry is left to the token's own claims.
func (s *RefreshStore) Contains(ctx context.Context, tokenID string) (bool, error) {
	token, err := s.Get(ctx, tokenID)
	if err != nil {
		return false, err
	}
	return token != nil && !token.Revoked, nil
}

func (s *RefreshStore) Remove(ctx context.Context, tokenID string) error {
	_, err := s.db.Exec(ctx, `UPDATE refresh_tokens SET revoked = true WHERE token_hash = $1`, tokenID)
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/Brunera17/TCC/internal/auth/service TokenGenerator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/Brunera17/TCC/internal/auth/domain"
	autherror "github.com/Brunera17/TCC/internal/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenGenerator interface {
	GenerateAccessToken(claims UserClaims) (string, error)
	GenerateRefreshToken(ctx context.Context, claims UserClaims) (string, error)
	VerifyAccessToken(tokenString string) (*JWTCustomClaims, error)
	VerifyRefreshToken(ctx context.Context, tokenString string) (*JWTCustomClaims, error)
	RevokeRefreshToken(ctx context.Context, tokenString string) error
	RenewAccessToken(ctx context.Context, refreshToken string) (string, error)
	GetAccessTokenExpiry() time.Duration
	GetRefreshTokenExpiry() time.Duration
}

// UserClaims is the identity embedded in both token kinds.
type UserClaims struct {
	UserID string
	Email  string
	Role   string
}

type TokenService struct {
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
	// Now is the clock used for issuing and validating tokens.
	Now func() time.Time

	store domain.RefreshTokenStore
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// Subject returns the identity carried by the token.
func (c *JWTCustomClaims) Subject() UserClaims {
	return UserClaims{UserID: c.UserID, Email: c.Email, Role: c.Role}
}

func NewTokenService(accessSecret, refreshSecret string, accessMinutes, refreshMinutes int, store domain.RefreshTokenStore) *TokenService {
	return &TokenService{
		AccessTokenSecret:  accessSecret,
		RefreshTokenSecret: refreshSecret,
		AccessTokenExpiry:  time.Duration(accessMinutes) * time.Minute,
		RefreshTokenExpiry: time.Duration(refreshMinutes) * time.Minute,
		Now:                time.Now,
		store:              store,
	}
}

// GenerateAccessToken signs a short-lived, stateless access token.
func (ts *TokenService) GenerateAccessToken(claims UserClaims) (string, error) {
	now := ts.Now()
	accessClaims := JWTCustomClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.AccessTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(ts.AccessTokenSecret))
}

// GenerateRefreshToken signs a refresh token and registers it as active.
func (ts *TokenService) GenerateRefreshToken(ctx context.Context, claims UserClaims) (string, error) {
	now := ts.Now()
	expiresAt := now.Add(ts.RefreshTokenExpiry)
	refreshClaims := JWTCustomClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   claims.UserID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(ts.RefreshTokenSecret))
	if err != nil {
		return "", err
	}

	if err := ts.store.Add(ctx, TokenIdentity(refreshToken), expiresAt); err != nil {
		return "", fmt.Errorf("failed to register refresh token: %w", err)
	}

	return refreshToken, nil
}

func (ts *TokenService) GetAccessTokenExpiry() time.Duration {
	return ts.AccessTokenExpiry
}

func (ts *TokenService) GetRefreshTokenExpiry() time.Duration {
	return ts.RefreshTokenExpiry
}

// VerifyAccessToken checks signature and expiry only. It returns
// ErrTokenExpired or ErrTokenInvalid on failure.
func (ts *TokenService) VerifyAccessToken(tokenString string) (*JWTCustomClaims, error) {
	return ts.parse(tokenString, ts.AccessTokenSecret)
}

// VerifyRefreshToken first requires the token to be in the active set, so a
// revoked token is rejected even before it expires. Expired tokens are
// dropped from the set.
func (ts *TokenService) VerifyRefreshToken(ctx context.Context, tokenString string) (*JWTCustomClaims, error) {
	id := TokenIdentity(tokenString)

	active, err := ts.store.Contains(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if !active {
		return nil, autherror.ErrTokenRevoked
	}

	claims, err := ts.parse(tokenString, ts.RefreshTokenSecret)
	if errors.Is(err, autherror.ErrTokenExpired) {
		if rmErr := ts.store.Remove(ctx, id); rmErr != nil {
			return nil, fmt.Errorf("failed to drop expired refresh token: %w", rmErr)
		}
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	return claims, nil
}

// RevokeRefreshToken removes the token from the active set. Revoking an
// unknown token is not an error.
func (ts *TokenService) RevokeRefreshToken(ctx context.Context, tokenString string) error {
	return ts.store.Remove(ctx, TokenIdentity(tokenString))
}

// RenewAccessToken issues a new access token for the refresh token's subject.
// The refresh token itself is not rotated.
func (ts *TokenService) RenewAccessToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := ts.VerifyRefreshToken(ctx, refreshToken)
	if err != nil {
		return "", err
	}
	return ts.GenerateAccessToken(claims.Subject())
}

func (ts *TokenService) parse(tokenString, secret string) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(ts.Now),
	)

	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if errors.Is(err, jwt.ErrTokenExpired) {
		return nil, autherror.ErrTokenExpired
	}
	if err != nil || !token.Valid {
		return nil, autherror.ErrTokenInvalid
	}

	return claims, nil
}

// TokenIdentity is the key under which a refresh token is tracked.
func TokenIdentity(tokenString string) string {
	sum := sha256.Sum256([]byte(tokenString))
	return hex.EncodeToString(sum[:])
}

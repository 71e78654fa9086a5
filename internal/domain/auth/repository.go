package auth

import (
	"context"
	"time"
)

// RefreshToken is a persisted, revocable refresh token row.
type RefreshToken struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

// RefreshTokenRepository - interface for the refresh_tokens table
type RefreshTokenRepository interface {
	Create(ctx context.Context, token RefreshToken) error
	GetByHash(ctx context.Context, tokenHash string) (RefreshToken, error)
	Revoke(ctx context.Context, tokenHash string) error
	RevokeAllForUser(ctx context.Context, userID string) error
}

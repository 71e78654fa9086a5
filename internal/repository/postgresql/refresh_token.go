package postgresql

import (
	"context"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/auth"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/database"
)

type refreshTokenRepositoryImpl struct {
	db *database.DB
}

func NewRefreshTokenRepository(db *database.DB) auth.RefreshTokenRepository {
	return &refreshTokenRepositoryImpl{db: db}
}

// Create implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) Create(ctx context.Context, token auth.RefreshToken) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := q.Exec(ctx, query, token.ID, token.UserID, token.TokenHash, token.ExpiresAt)
	return err
}

// GetByHash implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) GetByHash(ctx context.Context, tokenHash string) (auth.RefreshToken, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, token_hash, expires_at, revoked_at, created_at
		FROM refresh_tokens
		WHERE token_hash = $1
	`

	var token auth.RefreshToken
	err := q.QueryRow(ctx, query, tokenHash).Scan(
		&token.ID,
		&token.UserID,
		&token.TokenHash,
		&token.ExpiresAt,
		&token.RevokedAt,
		&token.CreatedAt,
	)
	if err != nil {
		return auth.RefreshToken{}, err
	}
	return token, nil
}

// Revoke implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) Revoke(ctx context.Context, tokenHash string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE refresh_tokens
		SET revoked_at = NOW()
		WHERE token_hash = $1 AND revoked_at IS NULL
	`

	_, err := q.Exec(ctx, query, tokenHash)
	return err
}

// RevokeAllForUser implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) RevokeAllForUser(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE refresh_tokens
		SET revoked_at = NOW()
		WHERE user_id = $1 AND revoked_at IS NULL
	`

	_, err := q.Exec(ctx, query, userID)
	return err
}

package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/auth"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/user"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/database"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/jwt"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/oauth"
	"github.com/shiftwise/shiftwise-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type authServiceImpl struct {
	db               *database.DB
	userRepo         user.Repository
	refreshTokenRepo auth.RefreshTokenRepository
	jwtService       jwt.Service
	googleService    oauth.GoogleService
}

func NewAuthService(
	db *database.DB,
	userRepo user.Repository,
	refreshTokenRepo auth.RefreshTokenRepository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
) auth.Service {
	return &authServiceImpl{
		db:               db,
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		jwtService:       jwtService,
		googleService:    googleService,
	}
}

// hashToken derives the digest stored in place of the raw refresh token.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (s *authServiceImpl) issueTokens(ctx context.Context, u user.User) (auth.TokenResponse, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.refreshTokenRepo.Create(ctx, auth.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    u.ID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: time.Unix(refreshExp, 0),
	}); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		AccessTokenExpiresIn:  accessExp,
		RefreshTokenExpiresIn: refreshExp,
	}, nil
}

func (s *authServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	if u.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, u)
}

func (s *authServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	userID, err := s.jwtService.DecodeRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	stored, err := s.refreshTokenRepo.GetByHash(ctx, hashToken(refreshToken))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get refresh token: %w", err)
	}
	if stored.RevokedAt != nil {
		// A revoked token being replayed is a theft signal. Revoke the whole
		// family for that user.
		if err := s.refreshTokenRepo.RevokeAllForUser(ctx, stored.UserID); err != nil {
			return auth.TokenResponse{}, fmt.Errorf("failed to revoke tokens: %w", err)
		}
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}
	if time.Now().After(stored.ExpiresAt) {
		return auth.TokenResponse{}, auth.ErrTokenExpired
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	// Revoke and reissue must commit together.
	var tokens auth.TokenResponse
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.refreshTokenRepo.Revoke(txCtx, stored.TokenHash); err != nil {
			return fmt.Errorf("failed to rotate refresh token: %w", err)
		}
		tokens, err = s.issueTokens(txCtx, u)
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}
	return tokens, nil
}

func (s *authServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if _, err := s.jwtService.DecodeRefreshToken(refreshToken); err != nil {
		return auth.ErrInvalidToken
	}
	return s.refreshTokenRepo.Revoke(ctx, hashToken(refreshToken))
}

func (s *authServiceImpl) GetGoogleLoginURL() (string, string) {
	state := s.googleService.GenerateState()
	return s.googleService.RedirectURL(state), state
}

func (s *authServiceImpl) LoginWithGoogle(ctx context.Context, state, expectedState, code string) (auth.TokenResponse, error) {
	if expectedState == "" || state != expectedState {
		return auth.TokenResponse{}, auth.ErrOAuthStateMismatch
	}

	token, err := s.googleService.Exchange(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	info, err := s.googleService.FetchUser(ctx, token)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to fetch Google profile: %w", err)
	}

	u, err := s.userRepo.GetByGoogleID(ctx, info.GoogleID)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) && !errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, fmt.Errorf("failed to get user: %w", err)
		}

		// Link by email when the account already exists, otherwise provision
		// a staff account.
		existing, emailErr := s.userRepo.GetByEmail(ctx, info.Email)
		switch {
		case emailErr == nil:
			existing.GoogleID = &info.GoogleID
			if err := s.userRepo.Update(ctx, existing); err != nil {
				return auth.TokenResponse{}, fmt.Errorf("failed to link Google account: %w", err)
			}
			u = existing
		case errors.Is(emailErr, pgx.ErrNoRows) || errors.Is(emailErr, user.ErrUserNotFound):
			u, err = s.userRepo.Create(ctx, user.User{
				ID:       uuid.NewString(),
				Email:    info.Email,
				FullName: info.Name,
				Role:     user.RoleStaff,
				GoogleID: &info.GoogleID,
			})
			if err != nil {
				return auth.TokenResponse{}, fmt.Errorf("failed to create user: %w", err)
			}
		default:
			return auth.TokenResponse{}, fmt.Errorf("failed to get user: %w", emailErr)
		}
	}

	return s.issueTokens(ctx, u)
}

func (s *authServiceImpl) GetUser(ctx context.Context, userID string) (user.User, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

package auth

import (
	"context"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/user"
)

type Service interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	// Refresh rotates the refresh token: the presented token is revoked and a
	// new pair is issued.
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error

	GetGoogleLoginURL() (url string, state string)
	// LoginWithGoogle finishes the OAuth2 flow, creating a staff account on
	// first login.
	LoginWithGoogle(ctx context.Context, state, expectedState, code string) (TokenResponse, error)

	GetUser(ctx context.Context, userID string) (user.User, error)
}

package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/auth"
	"github.com/shiftwise/shiftwise-backend-go/internal/handler/http/middleware"
	"github.com/shiftwise/shiftwise-backend-go/internal/handler/http/response"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	GoogleLogin(w http.ResponseWriter, r *http.Request)
	GoogleCallback(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.Service
	jwtService  jwt.Service
}

func NewAuthHandler(authService auth.Service, jwtService jwt.Service) AuthHandler {
	return &AuthHandlerImpl{
		authService: authService,
		jwtService:  jwtService,
	}
}

// Login implements AuthHandler.
func (h *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tokens, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(tokens.RefreshToken, tokens.RefreshTokenExpiresIn))
	response.Success(w, tokens)
}

// refreshTokenFrom prefers the cookie, falling back to the request body for
// non-browser clients.
func refreshTokenFrom(r *http.Request) string {
	if cookie, err := r.Cookie("refresh_token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	var req auth.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return ""
	}
	return req.RefreshToken
}

// Refresh implements AuthHandler.
func (h *AuthHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	token := refreshTokenFrom(r)
	if token == "" {
		response.Unauthorized(w, "Refresh token required")
		return
	}

	tokens, err := h.authService.Refresh(r.Context(), token)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(tokens.RefreshToken, tokens.RefreshTokenExpiresIn))
	response.Success(w, tokens)
}

// Logout implements AuthHandler.
func (h *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	token := refreshTokenFrom(r)
	if token == "" {
		response.Unauthorized(w, "Refresh token required")
		return
	}

	if err := h.authService.Logout(r.Context(), token); err != nil {
		response.HandleError(w, err)
		return
	}

	expired := h.jwtService.RefreshTokenCookie("", 0)
	expired.MaxAge = -1
	http.SetCookie(w, expired)
	response.SuccessWithMessage(w, "Logged out successfully", nil)
}

// GoogleLogin implements AuthHandler.
func (h *AuthHandlerImpl) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	url, state := h.authService.GetGoogleLoginURL()

	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/api/v1/auth",
		MaxAge:   600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// GoogleCallback implements AuthHandler.
func (h *AuthHandlerImpl) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	stateCookie, err := r.Cookie("oauth_state")
	if err != nil {
		response.HandleError(w, auth.ErrOAuthStateMismatch)
		return
	}

	tokens, err := h.authService.LoginWithGoogle(
		r.Context(),
		r.URL.Query().Get("state"),
		stateCookie.Value,
		r.URL.Query().Get("code"),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(tokens.RefreshToken, tokens.RefreshTokenExpiresIn))
	response.Success(w, tokens)
}

// Me implements AuthHandler.
func (h *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	u, err := h.authService.GetUser(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"id":         u.ID,
		"email":      u.Email,
		"fullName":   u.FullName,
		"role":       string(u.Role),
		"employeeId": u.EmployeeID,
	})
}

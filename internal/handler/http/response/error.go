package response

import (
	"errors"
	"net/http"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/auth"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/employee"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/leave"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/shift"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/user"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		BadRequest(w, "OAuth state mismatch", nil)
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailTaken):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Conflict(w, "Employee is inactive")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftNotDeletable):
		Conflict(w, "Shift can no longer be deleted")
	case errors.Is(err, shift.ErrShiftNotReassignable):
		Conflict(w, "Shift assignment can no longer be changed")
	case errors.Is(err, shift.ErrInvalidStatusChange):
		Conflict(w, "Status transition not allowed")
	case errors.Is(err, shift.ErrShiftConcurrentlyEdited):
		Conflict(w, "Shift was modified by another request, retry")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyStarted):
		Conflict(w, "Approved leave can no longer be cancelled")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

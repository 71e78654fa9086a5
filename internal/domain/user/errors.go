package user

import "errors"

var (
	ErrUserNotFound          = errors.New("User not found")
	ErrEmailTaken            = errors.New("Email already registered")
	ErrManagerAccessRequired = errors.New("Manager access required")
)

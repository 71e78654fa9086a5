package shift

import "errors"

var (
	ErrShiftNotFound           = errors.New("Shift not found")
	ErrShiftNotDeletable       = errors.New("Shift can no longer be deleted")
	ErrShiftNotReassignable    = errors.New("Shift assignment can no longer be changed")
	ErrInvalidStatusChange     = errors.New("Invalid shift status change")
	ErrShiftConcurrentlyEdited = errors.New("Shift was modified by another request")
)

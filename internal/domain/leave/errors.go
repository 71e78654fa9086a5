package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("Leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("Leave request already processed")
	ErrLeaveRequestAlreadyStarted   = errors.New("Leave request has already started")
)

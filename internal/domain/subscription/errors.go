package subscription

import "errors"

var (
	ErrSubsNotFound         = errors.New("subscription record not found")
	ErrNotOwner             = errors.New("subscription belongs to another customer")
	ErrAlreadyCanceling     = errors.New("subscription is already set to cancel")
	ErrNotCanceling         = errors.New("subscription is not set to cancel")
	ErrInactive             = errors.New("subscription is not active")
	ErrUnknownPlan          = errors.New("unknown plan")
	ErrGatewayNotConfigured = errors.New("billing provider is not configured")
)

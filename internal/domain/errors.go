package domain

import "errors"

// Sentinel errors for the order lifecycle. Callers classify failures with
// errors.Is; usecases wrap these with fmt.Errorf("%w: ...") to add context.
var (
	// ErrPermissionDenied means the acting staff member lacks the capability
	// required for the attempted mutation.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIllegalTransition means the target status is not reachable from the
	// order's current status.
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrInvalidReturnState means a return/refund action was attempted
	// without a matching return request, or with the wrong return type.
	ErrInvalidReturnState = errors.New("invalid return state")

	// ErrValidation means the input itself is malformed.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound means the targeted order or staff record does not exist.
	ErrNotFound = errors.New("not found")
)

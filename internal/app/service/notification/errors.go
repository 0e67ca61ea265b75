package notification

import "errors"

var (
	// ErrValidation marks structurally invalid input on Create: the caller
	// must fix the request, the call is never retried automatically.
	ErrValidation = errors.New("invalid notification input")
	// ErrNotFound marks an identity that does not exist in the repository.
	ErrNotFound = errors.New("notification not found")
	// ErrRecordDeleted marks a mutation attempted against a soft-deleted row.
	ErrRecordDeleted = errors.New("notification is deleted")
)

package repositories

import "errors"

var (
	// ErrNotFound is returned when the order backend reports that a specific
	// record does not exist.
	ErrNotFound = errors.New("requested record not found")

	// ErrFetchFailed is returned when listing orders fails, either on the
	// wire or with a non-success response from the order backend.
	ErrFetchFailed = errors.New("failed to fetch orders from backend")

	// ErrDeleteFailed is returned when an order deletion fails, either on
	// the wire or with a non-success response from the order backend.
	ErrDeleteFailed = errors.New("failed to delete order on backend")
)

package storage

import "errors"

// Sentinel error kinds surfaced by store operations. Reads report a missing
// record as a nil result, not an error, so there is no not-found sentinel.
var (
	// ErrUnavailable means the database could not be opened or configured
	// (missing permissions, full disk, corrupt file).
	ErrUnavailable = errors.New("storage unavailable")

	// ErrWriteFailed means the engine rejected a put or delete.
	ErrWriteFailed = errors.New("storage write failed")
)

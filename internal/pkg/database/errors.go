package database

import "errors"

// ErrUnavailable classifies failures at the store boundary: connectivity,
// timeout, or a failed operation. It is the only error class callers may
// retry; this backend never retries internally.
var ErrUnavailable = errors.New("store unavailable")

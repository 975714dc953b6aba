package errs

import "errors"

// Cross-layer sentinels. Layer-specific errors are declared next to the code that returns them.
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidRequest = errors.New("invalid request")
	ErrConflict       = errors.New("concurrent modification")
)

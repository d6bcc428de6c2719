package syncer

import (
	"errors"
	"fmt"
)

// ErrInvalidChunkSize is returned by Chunk when the requested size is not
// positive.
var ErrInvalidChunkSize = errors.New("chunk size must be positive")

// DataIntegrityError means a feed row is missing a required field or holds a
// value that cannot be interpreted. The run must stop rather than push a
// partial or wrong state to the marketplace.
type DataIntegrityError struct {
	Code   string
	Field  string
	Reason string
}

func (e *DataIntegrityError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("feed row: %s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("feed row %q: %s %s", e.Code, e.Field, e.Reason)
}

package remap

import (
	"errors"
	"fmt"
)

var (
	ErrUnresolvedAlias = errors.New("no source supplied for alias")
	ErrTypeMismatch    = errors.New("source type does not fit the relation")
	ErrDepthExceeded   = errors.New("relation nesting exceeds the maximum depth")
)

// RecordError reports the failure of one input record of a batch.
type RecordError struct {
	Index int
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

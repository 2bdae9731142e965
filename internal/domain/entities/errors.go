package entities

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by both services. Handlers translate these into
// HTTP status codes; the coordinator uses them to decide its failure policy.
var (
	// ErrNotFound means the referenced id is absent in the store queried.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateID means an insert collided with an existing id.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrStorageUnavailable means the storage node could not be reached or
	// rejected the call before any registry write happened. The whole
	// operation is safe to retry.
	ErrStorageUnavailable = errors.New("storage node unavailable")
)

// ValidationError reports client-supplied data that fails shape or format
// checks. Never retried; maps to HTTP 400.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Legs of a composite operation, used to report which half failed.
const (
	LegRegistry = "registry"
	LegStorage  = "storage"
)

// PartialError records a composite operation whose first leg succeeded and
// second leg failed. Blind retries are not safe: the completed leg would be
// re-issued. The orphaned state is left for out-of-band reconciliation.
type PartialError struct {
	Op           string // create, delete or move
	CompletedLeg string
	FailedLeg    string
	Err          error
}

func (e *PartialError) Error() string {
	return fmt.Sprintf("%s partially failed: %s leg succeeded, %s leg failed: %v",
		e.Op, e.CompletedLeg, e.FailedLeg, e.Err)
}

func (e *PartialError) Unwrap() error { return e.Err }

// AsPartial extracts a PartialError from err, if any.
func AsPartial(err error) (*PartialError, bool) {
	var pe *PartialError
	ok := errors.As(err, &pe)
	return pe, ok
}

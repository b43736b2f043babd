// Package common defines shared constants and sentinel errors used across
// the notekeeper layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Storage errors. Read failures are never surfaced, so only writes have one.
	ErrStorageWrite = errors.New("storage write failed")

	// Validation errors, raised before any mutation or write.
	ErrValidation = errors.New("validation error")

	// Flow errors.
	ErrNoProfile = errors.New("no profile")

	// Configuration errors.
	ErrUnknownSlice = errors.New("unknown state slice")
)

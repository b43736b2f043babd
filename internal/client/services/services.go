// Package services carries the client flows: the durable Store, onboarding
// and profile edits (ProfileService), and note capture (NoteService).
//
// Validation always runs before any mutation or write. Storage write errors
// are returned to the caller unchanged in kind (common.ErrStorageWrite) and
// never retried.
package services

import (
	"time"

	"github.com/google/uuid"
)

// Clock returns the current time. Tests pin it.
type Clock func() time.Time

// IDFunc returns a new unique identifier.
type IDFunc func() string

func defaultClock() time.Time { return time.Now() }

func defaultID() string { return uuid.NewString() }

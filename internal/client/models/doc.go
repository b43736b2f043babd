// Package models defines the client-side records persisted by notekeeper:
// the single user profile, notes, and their optional location tags.
//
// Timestamps are milliseconds since the Unix epoch, and the JSON field names
// match the on-disk layout, so a stored record decodes back into an equal
// value.
package models

// Package common contains shared constants and sentinel errors used across
// notekeeper components.
package common

// Durable store keys. The values match the record names the data was
// historically written under, so existing stores keep loading.
const (
	UserProfileKey = "@user_profile"
	NotesKey       = "@notes"
)

// Package cli provides the interactive notekeeper command-line client.
//
// It wires configuration, local storage, the state cache and the services
// on top of it, then runs a REPL. On start the stored profile and notes are
// loaded into the cache; from then on whitelisted cache slices are written
// back after every change.
//
// Before a profile exists only help, setup and exit are available. After
// onboarding:
//   - profile / edit / photo: show and change the profile
//   - addnote: capture a note with optional photo and location
//   - (l)ist / search: browse notes, newest first
//   - clear: wipe all local data and return to onboarding
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli

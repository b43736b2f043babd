// Package persist bridges the durable store and the in-memory cache.
//
// Rehydrate loads both records at startup. Attach installs a write-through
// mirror: every mutation of a whitelisted slice is written back in full,
// immediately, with no buffering or coalescing. Mirror writes are
// fire-and-forget; a failure is logged and the cache keeps its state until
// the next successful write.
package persist

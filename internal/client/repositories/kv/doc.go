// Package kv provides the durable key/value medium behind the note store.
//
// # Overview
//
// Repository is a flat namespace of byte values addressed by string keys.
// Two implementations share the same contract:
//
//   - SQLiteRepository: on-device SQLite file (modernc.org/sqlite)
//   - PostgresRepository: PostgreSQL via the pgx database/sql driver
//
// Both work over a dbx.DBTX, so they can run inside a transaction.
//
// # Contract
//
// Get returns (nil, nil) for an absent key. Set overwrites the whole value.
// Delete is idempotent. Clear removes every key in the namespace, not only
// the ones the caller knows about.
//
// Typical Usage
//
//	repo := kv.NewSQLiteRepository(db)
//	_ = repo.Set(ctx, "@notes", []byte("[]"))
//	v, _ := repo.Get(ctx, "@notes")
package kv

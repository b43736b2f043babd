package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/notekeeper/internal/client/models"
	"github.com/dmitrijs2005/notekeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/logging"
)

// TxRunner runs fn against a repository bound to one transaction.
type TxRunner func(ctx context.Context, fn func(ctx context.Context, repo kv.Repository) error) error

// Store persists the profile and the notes list as JSON records under
// fixed keys. Every write replaces the whole record.
//
// Reads never fail: an absent, unreadable or malformed record is reported
// as "no profile" / "no notes" and logged at warn level.
type Store struct {
	repo kv.Repository
	tx   TxRunner
	log  logging.Logger
}

// NewStore builds a Store over repo. tx may be nil, in which case
// ClearAllData runs directly on repo.
func NewStore(repo kv.Repository, tx TxRunner, log logging.Logger) *Store {
	return &Store{repo: repo, tx: tx, log: log.With("component", "store")}
}

func (s *Store) SaveUserProfile(ctx context.Context, p models.UserProfile) error {
	return s.put(ctx, common.UserProfileKey, p)
}

// GetUserProfile returns nil when no usable profile record exists.
func (s *Store) GetUserProfile(ctx context.Context) *models.UserProfile {
	var p models.UserProfile
	if !s.get(ctx, common.UserProfileKey, &p) {
		return nil
	}
	return &p
}

func (s *Store) ClearUserProfile(ctx context.Context) error {
	if err := s.repo.Delete(ctx, common.UserProfileKey); err != nil {
		s.log.Error(ctx, "error clearing user profile", "error", err)
		return fmt.Errorf("%w: %w", common.ErrStorageWrite, err)
	}
	return nil
}

func (s *Store) SaveNotes(ctx context.Context, notes []models.Note) error {
	if notes == nil {
		notes = []models.Note{}
	}
	return s.put(ctx, common.NotesKey, notes)
}

// GetNotes returns the stored list, or an empty non-nil slice.
func (s *Store) GetNotes(ctx context.Context) []models.Note {
	var notes []models.Note
	if !s.get(ctx, common.NotesKey, &notes) || notes == nil {
		return []models.Note{}
	}
	return notes
}

// ClearAllData wipes the whole namespace, including keys this store does
// not own.
func (s *Store) ClearAllData(ctx context.Context) error {
	var err error
	if s.tx != nil {
		err = s.tx(ctx, s.wipe)
	} else {
		err = s.wipe(ctx, s.repo)
	}
	if err != nil {
		s.log.Error(ctx, "error clearing all data", "error", err)
		return fmt.Errorf("%w: %w", common.ErrStorageWrite, err)
	}
	return nil
}

// wipe clears repo, logging how many of the removed keys belong to
// something other than this store.
func (s *Store) wipe(ctx context.Context, repo kv.Repository) error {
	all, err := repo.List(ctx)
	if err != nil {
		return err
	}

	foreign := 0
	for key := range all {
		if key != common.UserProfileKey && key != common.NotesKey {
			foreign++
		}
	}
	s.log.Info(ctx, "clearing all data", "keys", len(all), "foreign", foreign)

	return repo.Clear(ctx)
}

func (s *Store) put(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.repo.Set(ctx, key, data); err != nil {
		s.log.Error(ctx, "error saving record", "key", key, "error", err)
		return fmt.Errorf("%w: %w", common.ErrStorageWrite, err)
	}
	s.log.Debug(ctx, "record saved", "key", key, "bytes", len(data))
	return nil
}

// get decodes the record under key into dst and reports whether it did.
func (s *Store) get(ctx context.Context, key string, dst any) bool {
	data, err := s.repo.Get(ctx, key)
	if err != nil {
		s.log.Warn(ctx, "error reading record", "key", key, "error", err)
		return false
	}
	if data == nil || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return false
	}
	// TODO: surface corrupt records as their own error kind once the CLI has a
	// recovery flow for them; until then they read as absent.
	if err := json.Unmarshal(data, dst); err != nil {
		s.log.Warn(ctx, "malformed record treated as absent", "key", key, "error", err)
		return false
	}
	return true
}

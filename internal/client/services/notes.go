package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/notekeeper/internal/client/models"
	"github.com/dmitrijs2005/notekeeper/internal/client/state"
	"github.com/dmitrijs2005/notekeeper/internal/logging"
)

// NoteStore is what NoteService needs from the durable store.
type NoteStore interface {
	SaveNotes(ctx context.Context, notes []models.Note) error
}

type NoteService struct {
	store NoteStore
	cache *state.Cache
	log   logging.Logger
	now   Clock
	newID IDFunc
}

func NewNoteService(store NoteStore, cache *state.Cache, log logging.Logger) *NoteService {
	return &NoteService{
		store: store,
		cache: cache,
		log:   log.With("component", "notes"),
		now:   defaultClock,
		newID: defaultID,
	}
}

// Create validates d, puts the note at the front of the collection and
// saves the whole collection. On a write error the note stays in memory.
func (s *NoteService) Create(ctx context.Context, d models.NoteDraft) (*models.Note, error) {
	if err := models.ValidateNoteDraft(d); err != nil {
		return nil, err
	}

	ts := s.now().UnixMilli()
	n := models.Note{
		ID:        s.newID(),
		Title:     strings.TrimSpace(d.Title),
		Content:   strings.TrimSpace(d.Content),
		ImageURI:  d.ImageURI,
		Location:  d.Location,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	s.cache.AddNote(n)
	if err := s.store.SaveNotes(ctx, s.cache.Notes()); err != nil {
		return &n, fmt.Errorf("save notes: %w", err)
	}

	s.log.Debug(ctx, "note created", "id", n.ID)
	return &n, nil
}

// List returns every note, newest first.
func (s *NoteService) List() []models.Note {
	return s.cache.Notes()
}

// Search returns notes whose title or content contains query, ignoring case.
func (s *NoteService) Search(query string) []models.Note {
	return models.FilterNotes(s.cache.Notes(), query)
}

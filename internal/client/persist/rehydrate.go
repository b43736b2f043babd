package persist

import (
	"context"

	"github.com/dmitrijs2005/notekeeper/internal/client/models"
	"github.com/dmitrijs2005/notekeeper/internal/client/state"
	"github.com/dmitrijs2005/notekeeper/internal/logging"
	"golang.org/x/sync/errgroup"
)

// Store is the part of the durable store the bridge needs.
type Store interface {
	SaveUserProfile(ctx context.Context, p models.UserProfile) error
	GetUserProfile(ctx context.Context) *models.UserProfile
	ClearUserProfile(ctx context.Context) error
	SaveNotes(ctx context.Context, notes []models.Note) error
	GetNotes(ctx context.Context) []models.Note
}

// Result summarizes what was loaded at boot.
type Result struct {
	Onboarded bool
	NoteCount int
}

// Rehydrate reads the profile and the notes concurrently and loads whatever
// is present into cache. The reads are independent: a missing or broken
// profile does not stop the notes from loading, and vice versa.
func Rehydrate(ctx context.Context, store Store, cache *state.Cache, log logging.Logger) Result {
	var (
		profile *models.UserProfile
		notes   []models.Note
		g       errgroup.Group
	)

	g.Go(func() error {
		profile = store.GetUserProfile(ctx)
		return nil
	})
	g.Go(func() error {
		notes = store.GetNotes(ctx)
		return nil
	})
	_ = g.Wait()

	if profile != nil {
		cache.SetProfile(*profile)
	}
	if len(notes) > 0 {
		cache.SetNotes(notes)
	}

	res := Result{Onboarded: profile != nil, NoteCount: len(notes)}
	log.Info(ctx, "state rehydrated", "onboarded", res.Onboarded, "notes", res.NoteCount)
	return res
}

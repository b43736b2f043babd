package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/notekeeper/internal/client/models"
	"github.com/dmitrijs2005/notekeeper/internal/client/state"
	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newProfileService(t *testing.T) (*ProfileService, *Store, *state.Cache) {
	t.Helper()
	store, _ := newTestStore(t)
	cache := state.NewCache()
	svc := NewProfileService(store, cache, logging.NewNop())
	svc.now = fixedClock
	svc.newID = seqIDs("p-1")
	return svc, store, cache
}

func TestProfileService_Create(t *testing.T) {
	svc, store, cache := newProfileService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, models.ProfileDraft{Name: "  Ana ", Email: " Ana@X.com ", ProfileImage: "file:///me.jpg"})
	require.NoError(t, err)

	want := models.UserProfile{
		ID:           "p-1",
		Name:         "Ana",
		Email:        "ana@x.com",
		ProfileImage: "file:///me.jpg",
		CreatedAt:    fixedNow.UnixMilli(),
	}
	assert.Equal(t, want, *p)
	assert.Equal(t, &want, cache.Profile())
	assert.True(t, cache.IsOnboarded())
	assert.Equal(t, &want, store.GetUserProfile(ctx))
}

func TestProfileService_CreateRejectsInvalidInput(t *testing.T) {
	svc, store, cache := newProfileService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.ProfileDraft{Name: "Ana", Email: "not-an-email"})
	require.ErrorIs(t, err, common.ErrValidation)

	assert.Nil(t, cache.Profile())
	assert.Nil(t, store.GetUserProfile(ctx))
}

func TestProfileService_CreateWriteFailureLeavesStateUntouched(t *testing.T) {
	fs := &failingStore{}
	cache := state.NewCache()
	svc := NewProfileService(fs, cache, logging.NewNop())

	_, err := svc.Create(context.Background(), models.ProfileDraft{Name: "Ana", Email: "ana@x.com"})
	require.ErrorIs(t, err, common.ErrStorageWrite)
	assert.Equal(t, 1, fs.saves, "no retry")
	assert.Nil(t, cache.Profile())
	assert.False(t, cache.IsOnboarded())
}

func TestProfileService_Update(t *testing.T) {
	svc, store, _ := newProfileService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.ProfileDraft{Name: "Ana", Email: "ana@x.com"})
	require.NoError(t, err)

	p, err := svc.Update(ctx, models.ProfileUpdate{Name: strPtr("Ana Lima"), Email: strPtr("ANA@LIMA.dev")})
	require.NoError(t, err)
	assert.Equal(t, "Ana Lima", p.Name)
	assert.Equal(t, "ana@lima.dev", p.Email)
	assert.Equal(t, "p-1", p.ID)

	stored := store.GetUserProfile(ctx)
	require.NotNil(t, stored)
	assert.Equal(t, *p, *stored)

	p, err = svc.Update(ctx, models.ProfileUpdate{ProfileImage: strPtr("content://new")})
	require.NoError(t, err)
	assert.Equal(t, "content://new", p.ProfileImage)
	assert.Equal(t, "Ana Lima", p.Name)
}

func TestProfileService_UpdateWithoutProfile(t *testing.T) {
	svc, store, cache := newProfileService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, models.ProfileUpdate{Name: strPtr("X")})
	require.ErrorIs(t, err, common.ErrNoProfile)
	assert.Nil(t, cache.Profile())
	assert.Nil(t, store.GetUserProfile(ctx))
}

func TestProfileService_UpdateRejectsBlankName(t *testing.T) {
	svc, _, cache := newProfileService(t)
	ctx := context.Background()
	_, err := svc.Create(ctx, models.ProfileDraft{Name: "Ana", Email: "ana@x.com"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, models.ProfileUpdate{Name: strPtr("  ")})
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, "Ana", cache.Profile().Name)
}

func TestProfileService_UpdateWriteFailureKeepsMemoryState(t *testing.T) {
	fs := &failingStore{}
	cache := state.NewCache()
	cache.SetProfile(models.UserProfile{ID: "1", Name: "Ana", Email: "ana@x.com"})
	svc := NewProfileService(fs, cache, logging.NewNop())

	p, err := svc.Update(context.Background(), models.ProfileUpdate{Name: strPtr("Bo")})
	require.ErrorIs(t, err, common.ErrStorageWrite)
	require.NotNil(t, p)
	assert.Equal(t, "Bo", cache.Profile().Name)
}

func TestProfileService_ClearAll(t *testing.T) {
	svc, store, cache := newProfileService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.ProfileDraft{Name: "Ana", Email: "ana@x.com"})
	require.NoError(t, err)
	cache.AddNote(models.Note{ID: "n"})
	require.NoError(t, store.SaveNotes(ctx, cache.Notes()))

	require.NoError(t, svc.ClearAll(ctx))

	assert.Nil(t, svc.Current())
	assert.False(t, cache.IsOnboarded())
	assert.Empty(t, cache.Notes())
	assert.Nil(t, store.GetUserProfile(ctx))
	assert.Empty(t, store.GetNotes(ctx))
}

func TestProfileService_ClearAllFailureKeepsState(t *testing.T) {
	cache := state.NewCache()
	cache.SetProfile(models.UserProfile{ID: "1"})
	cache.AddNote(models.Note{ID: "n"})
	svc := NewProfileService(&failingStore{}, cache, logging.NewNop())

	require.ErrorIs(t, svc.ClearAll(context.Background()), common.ErrStorageWrite)
	assert.NotNil(t, cache.Profile())
	assert.Len(t, cache.Notes(), 1)
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/notekeeper/internal/client/models"
	"github.com/dmitrijs2005/notekeeper/internal/client/state"
	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/logging"
)

// ProfileStore is what ProfileService needs from the durable store.
type ProfileStore interface {
	SaveUserProfile(ctx context.Context, p models.UserProfile) error
	ClearAllData(ctx context.Context) error
}

type ProfileService struct {
	store ProfileStore
	cache *state.Cache
	log   logging.Logger
	now   Clock
	newID IDFunc
}

func NewProfileService(store ProfileStore, cache *state.Cache, log logging.Logger) *ProfileService {
	return &ProfileService{
		store: store,
		cache: cache,
		log:   log.With("component", "profile"),
		now:   defaultClock,
		newID: defaultID,
	}
}

// Create onboards the user. The profile is written first and only then
// placed in the cache, so a failed write leaves the app un-onboarded.
func (s *ProfileService) Create(ctx context.Context, d models.ProfileDraft) (*models.UserProfile, error) {
	if err := models.ValidateProfile(d); err != nil {
		return nil, err
	}

	p := models.UserProfile{
		ID:           s.newID(),
		Name:         strings.TrimSpace(d.Name),
		Email:        models.NormalizeEmail(d.Email),
		ProfileImage: d.ProfileImage,
		CreatedAt:    s.now().UnixMilli(),
	}

	if err := s.store.SaveUserProfile(ctx, p); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	s.cache.SetProfile(p)

	s.log.Info(ctx, "profile created", "id", p.ID)
	return &p, nil
}

// Update merges u into the current profile and saves the result. The cache
// is updated before the write; a write error is returned but not rolled back.
func (s *ProfileService) Update(ctx context.Context, u models.ProfileUpdate) (*models.UserProfile, error) {
	if err := models.ValidateUpdate(u); err != nil {
		return nil, err
	}
	if !s.cache.UpdateProfile(u) {
		return nil, common.ErrNoProfile
	}

	p := s.cache.Profile()
	if err := s.store.SaveUserProfile(ctx, *p); err != nil {
		return p, fmt.Errorf("update profile: %w", err)
	}
	return p, nil
}

// Current returns the profile, or nil before onboarding.
func (s *ProfileService) Current() *models.UserProfile {
	return s.cache.Profile()
}

// ClearAll wipes the store and then resets the cache to the pre-onboarding
// state. If the wipe fails the cache is left as it was.
func (s *ProfileService) ClearAll(ctx context.Context) error {
	if err := s.store.ClearAllData(ctx); err != nil {
		return fmt.Errorf("clear data: %w", err)
	}
	s.cache.ClearProfile()
	s.cache.SetNotes(nil)

	s.log.Info(ctx, "all data cleared")
	return nil
}

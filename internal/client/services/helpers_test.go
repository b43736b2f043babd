package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/client/models"
	"github.com/dmitrijs2005/notekeeper/internal/common"
)

var fixedNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func seqIDs(ids ...string) IDFunc {
	i := 0
	return func() string {
		id := ids[i%len(ids)]
		i++
		return id
	}
}

var errDisk = errors.New("disk I/O error")

// failingStore rejects every write the way a full device would.
type failingStore struct {
	saves int
}

func (f *failingStore) SaveUserProfile(ctx context.Context, p models.UserProfile) error {
	f.saves++
	return errors.Join(common.ErrStorageWrite, errDisk)
}

func (f *failingStore) SaveNotes(ctx context.Context, notes []models.Note) error {
	f.saves++
	return errors.Join(common.ErrStorageWrite, errDisk)
}

func (f *failingStore) ClearAllData(ctx context.Context) error {
	return errors.Join(common.ErrStorageWrite, errDisk)
}

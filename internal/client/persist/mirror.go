package persist

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/notekeeper/internal/client/state"
	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/logging"
)

// ParseWhitelist turns slice names ("user", "notes") into state slices.
// Names are trimmed and lower-cased; blanks are skipped.
func ParseWhitelist(names []string) ([]state.Slice, error) {
	var out []state.Slice
	seen := make(map[state.Slice]bool)
	for _, n := range names {
		s := state.Slice(strings.ToLower(strings.TrimSpace(n)))
		switch s {
		case "":
			continue
		case state.SliceUser, state.SliceNotes:
		default:
			return nil, fmt.Errorf("%w: %q", common.ErrUnknownSlice, n)
		}
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out, nil
}

// Mirror writes whitelisted slices of a cache back to a store.
type Mirror struct {
	ctx       context.Context
	cache     *state.Cache
	store     Store
	whitelist map[state.Slice]bool
	log       logging.Logger
}

// Attach subscribes a Mirror to cache and returns the function that detaches it.
// ctx is used for every write the mirror issues.
func Attach(ctx context.Context, cache *state.Cache, store Store, whitelist []state.Slice, log logging.Logger) func() {
	m := &Mirror{
		ctx:       ctx,
		cache:     cache,
		store:     store,
		whitelist: make(map[state.Slice]bool, len(whitelist)),
		log:       log.With("component", "mirror"),
	}
	for _, s := range whitelist {
		m.whitelist[s] = true
	}
	return cache.Subscribe(m.onChange)
}

func (m *Mirror) onChange(s state.Slice) {
	if !m.whitelist[s] {
		return
	}
	if err := m.write(s); err != nil {
		m.log.Warn(m.ctx, "mirror write failed", "slice", string(s), "error", err)
	}
}

func (m *Mirror) write(s state.Slice) error {
	switch s {
	case state.SliceUser:
		p := m.cache.Profile()
		if p == nil {
			return m.store.ClearUserProfile(m.ctx)
		}
		return m.store.SaveUserProfile(m.ctx, *p)
	case state.SliceNotes:
		return m.store.SaveNotes(m.ctx, m.cache.Notes())
	}
	return nil
}

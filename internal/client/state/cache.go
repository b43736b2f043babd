// Package state holds the in-memory profile and notes the CLI works on.
//
// A Cache is created once at startup and passed to whoever needs it. All
// mutations are synchronous and visible to readers as soon as they return.
// Listeners registered with Subscribe are told which slice changed, after
// the change is applied and the lock released, so a listener may read the
// cache back.
package state

import (
	"slices"
	"sync"

	"github.com/dmitrijs2005/notekeeper/internal/client/models"
)

// Slice names a part of the cache that can be observed and persisted.
type Slice string

const (
	SliceUser  Slice = "user"
	SliceNotes Slice = "notes"
)

// Listener is called after a slice changed.
type Listener func(Slice)

type Cache struct {
	mu        sync.RWMutex
	profile   *models.UserProfile
	onboarded bool
	notes     []models.Note

	lmu       sync.Mutex
	listeners map[int]Listener
	nextID    int
}

func NewCache() *Cache {
	return &Cache{notes: []models.Note{}, listeners: make(map[int]Listener)}
}

// Subscribe registers l and returns a function that removes it.
func (c *Cache) Subscribe(l Listener) func() {
	c.lmu.Lock()
	defer c.lmu.Unlock()

	id := c.nextID
	c.nextID++
	c.listeners[id] = l

	return func() {
		c.lmu.Lock()
		defer c.lmu.Unlock()
		delete(c.listeners, id)
	}
}

func (c *Cache) notify(s Slice) {
	c.lmu.Lock()
	ls := make([]Listener, 0, len(c.listeners))
	for id := 0; id < c.nextID; id++ {
		if l, ok := c.listeners[id]; ok {
			ls = append(ls, l)
		}
	}
	c.lmu.Unlock()

	for _, l := range ls {
		l(s)
	}
}

// SetProfile replaces the profile and marks onboarding complete.
func (c *Cache) SetProfile(p models.UserProfile) {
	c.mu.Lock()
	c.profile = &p
	c.onboarded = true
	c.mu.Unlock()

	c.notify(SliceUser)
}

// UpdateProfile merges u into the current profile. It reports false and
// changes nothing when no profile is set.
func (c *Cache) UpdateProfile(u models.ProfileUpdate) bool {
	c.mu.Lock()
	if c.profile == nil {
		c.mu.Unlock()
		return false
	}
	p := u.Apply(*c.profile)
	c.profile = &p
	c.mu.Unlock()

	c.notify(SliceUser)
	return true
}

// ClearProfile drops the profile and marks onboarding incomplete.
func (c *Cache) ClearProfile() {
	c.mu.Lock()
	c.profile = nil
	c.onboarded = false
	c.mu.Unlock()

	c.notify(SliceUser)
}

// Profile returns a copy of the current profile, or nil.
func (c *Cache) Profile() *models.UserProfile {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.profile == nil {
		return nil
	}
	p := *c.profile
	return &p
}

func (c *Cache) IsOnboarded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.onboarded
}

// SetNotes replaces the whole collection.
func (c *Cache) SetNotes(notes []models.Note) {
	c.mu.Lock()
	c.notes = models.CloneNotes(notes)
	c.mu.Unlock()

	c.notify(SliceNotes)
}

// AddNote puts n in front of the collection; the newest note is always first.
func (c *Cache) AddNote(n models.Note) {
	c.mu.Lock()
	c.notes = slices.Insert(c.notes, 0, n.Clone())
	c.mu.Unlock()

	c.notify(SliceNotes)
}

// Notes returns a deep copy of the collection, newest first.
func (c *Cache) Notes() []models.Note {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return models.CloneNotes(c.notes)
}

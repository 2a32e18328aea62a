package story

import (
	"errors"
	"os"
	"sync"

	"fable/pkg/domain"
	"fable/pkg/utils"
)

// History is the ordered collection of saved stories, newest first. Every
// mutation rewrites the whole backing document; the collection is small
// enough that partial-write atomicity across crashes is an accepted
// limitation.
type History struct {
	mu      sync.Mutex
	stories []domain.Story
	path    string
}

// OpenHistory loads the history document at path. A missing file means an
// empty history, not an error.
func OpenHistory(path string) (*History, error) {
	stories, err := utils.Load[[]domain.Story](path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return &History{stories: stories, path: path}, nil
}

// Append inserts at the head and evicts from the tail until the length fits
// the account's current saved-story limit. The limit is read at insertion
// time, so a plan downgrade only truncates on the next append.
func (h *History) Append(s domain.Story, limit int) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.stories = append([]domain.Story{s}, h.stories...)
	for limit > 0 && len(h.stories) > limit {
		h.stories = h.stories[:len(h.stories)-1]
	}
	return h.save()
}

// Remove deletes the story with the given id. Removing an absent id is a
// no-op.
func (h *History) Remove(id string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, s := range h.stories {
		if s.ID == id {
			h.stories = append(h.stories[:i], h.stories[i+1:]...)
			return h.save()
		}
	}
	return nil
}

// Get returns the story with the given id.
func (h *History) Get(id string) (domain.Story, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, s := range h.stories {
		if s.ID == id {
			return s, true
		}
	}
	return domain.Story{}, false
}

// List returns a copy of the collection, newest first.
func (h *History) List() []domain.Story {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]domain.Story, len(h.stories))
	copy(out, h.stories)
	return out
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.stories)
}

// Clear drops every saved story and erases the backing document.
func (h *History) Clear() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.stories = nil
	return utils.Remove(h.path)
}

// Save persists the current collection, for use at shutdown.
func (h *History) Save() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.save()
}

func (h *History) save() error {
	return utils.Save(h.path, h.stories)
}

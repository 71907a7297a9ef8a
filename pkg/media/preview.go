package media

import (
	"sync"

	"github.com/google/uuid"
	"github.com/neighborbank/cli/pkg/logger"
)

// Preview is a handle to a displayable rendition of an attached file.
type Preview struct {
	Handle   string
	FileName string
}

// PreviewStore allocates and releases preview handles. Release of a handle
// that is not live must be a no-op.
type PreviewStore interface {
	Allocate(f File) (Preview, error)
	Release(p Preview)
}

// MemoryStore keeps previews in memory and counts allocations and releases.
type MemoryStore struct {
	mu        sync.Mutex
	live      map[string]File
	allocated int
	released  int
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{live: make(map[string]File)}
}

// Allocate implements PreviewStore
func (s *MemoryStore) Allocate(f File) (Preview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := Preview{Handle: "preview://" + uuid.NewString(), FileName: f.Name}
	s.live[p.Handle] = f
	s.allocated++
	logger.Debug("Preview allocated", "handle", p.Handle, "file", f.Name)
	return p, nil
}

// Release implements PreviewStore
func (s *MemoryStore) Release(p Preview) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.live[p.Handle]; !ok {
		return
	}
	delete(s.live, p.Handle)
	s.released++
	logger.Debug("Preview released", "handle", p.Handle, "file", p.FileName)
}

// Live returns the number of previews not yet released.
func (s *MemoryStore) Live() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.live)
}

// Counts returns how many previews were allocated and released so far.
func (s *MemoryStore) Counts() (allocated, released int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allocated, s.released
}

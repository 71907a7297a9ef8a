package media

import (
	"errors"
	"fmt"
	"sync"

	clierrors "github.com/neighborbank/cli/pkg/errors"
	"github.com/neighborbank/cli/pkg/logger"
)

// ErrClosed is returned by a Manager after Close.
var ErrClosed = errors.New("attachment manager closed")

// Attachment is an admitted file and its preview.
type Attachment struct {
	File    File
	Preview Preview
}

// Set is the ordered list of admitted attachments.
type Set []Attachment

// Files returns the admitted files in order, ready for upload.
func (s Set) Files() []File {
	files := make([]File, 0, len(s))
	for _, a := range s {
		files = append(files, a.File)
	}
	return files
}

// Rejection explains why one candidate was not admitted.
type Rejection struct {
	File File
	Err  error
}

// Manager owns the attachments of one compose session. Every preview it
// allocates is released exactly once, on Remove or Close.
type Manager struct {
	mu     sync.Mutex
	store  PreviewStore
	items  []Attachment
	closed bool
}

// NewManager creates a manager backed by store, or by a MemoryStore if nil.
func NewManager(store PreviewStore) *Manager {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Manager{store: store}
}

// Add admits the valid candidates. If the batch would take the set past
// MaxAttachments, nothing is admitted and a capacity error is returned.
func (m *Manager) Add(candidates []File) (Set, []Rejection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, nil, ErrClosed
	}

	if len(m.items)+len(candidates) > MaxAttachments {
		logger.Warn("Attachment batch rejected", "current", len(m.items), "incoming", len(candidates))
		return m.snapshot(), nil, clierrors.AttachmentCapacityError(len(m.items), len(candidates), MaxAttachments)
	}

	var rejections []Rejection
	for _, f := range candidates {
		if err := Validate(f); err != nil {
			rejections = append(rejections, Rejection{File: f, Err: err})
			continue
		}

		preview, err := m.store.Allocate(f)
		if err != nil {
			rejections = append(rejections, Rejection{File: f, Err: fmt.Errorf("failed to create preview for %s: %w", f.Name, err)})
			continue
		}
		m.items = append(m.items, Attachment{File: f, Preview: preview})
	}

	return m.snapshot(), rejections, nil
}

// Remove releases the preview at index and drops it from the set.
func (m *Manager) Remove(index int) (Set, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrClosed
	}
	if index < 0 || index >= len(m.items) {
		return m.snapshot(), clierrors.ValidationError("index", fmt.Sprintf("no attachment at position %d", index))
	}

	m.store.Release(m.items[index].Preview)
	m.items = append(m.items[:index], m.items[index+1:]...)

	return m.snapshot(), nil
}

// Set returns a copy of the current attachments.
func (m *Manager) Set() Set {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot()
}

// Close releases every remaining preview. Later calls do nothing.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}
	m.closed = true
	for _, a := range m.items {
		m.store.Release(a.Preview)
	}
	m.items = nil
}

func (m *Manager) snapshot() Set {
	out := make(Set, len(m.items))
	copy(out, m.items)
	return out
}

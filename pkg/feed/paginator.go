// Package feed loads Q&A and community feeds a page at a time. Switching
// category supersedes any fetch still in flight for the old one.
package feed

import (
	"context"
	"errors"
	"sync"

	"github.com/neighborbank/cli/pkg/content"
	clierrors "github.com/neighborbank/cli/pkg/errors"
	"github.com/neighborbank/cli/pkg/logger"
)

// DefaultPageSize is used when the configured page size is not positive.
const DefaultPageSize = 5

var (
	// ErrStale is returned for a fetch superseded by a newer category load.
	// The page was not touched.
	ErrStale = errors.New("feed result superseded by a newer load")
	// ErrClosed is returned for results arriving after Close.
	ErrClosed = errors.New("feed paginator closed")
)

// Source fetches one slice of a category's records.
type Source interface {
	FetchSlice(ctx context.Context, category string, offset, limit int) ([]content.Record, error)
}

// Cursor says where a load starts.
type Cursor struct {
	scratch bool
	offset  int
}

// FromScratch discards the current page and loads the first slice.
func FromScratch() Cursor { return Cursor{scratch: true} }

// Continue loads the slice after offset items.
func Continue(offset int) Cursor { return Cursor{offset: offset} }

// Page is a snapshot of the loaded feed.
type Page struct {
	Category string
	Items    []content.Record
	HasMore  bool
	Loading  bool
}

// Paginator owns the page of one feed view.
type Paginator struct {
	mu       sync.Mutex
	source   Source
	pageSize int

	page    Page
	started bool
	gen     uint64
	closed  bool
}

// NewPaginator creates a paginator over source.
func NewPaginator(source Source, pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Paginator{source: source, pageSize: pageSize}
}

// PageSize returns the number of records requested per slice.
func (p *Paginator) PageSize() int {
	return p.pageSize
}

// Page returns a snapshot of the current page.
func (p *Paginator) Page() Page {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot()
}

// SelectCategory switches to category and loads its first slice.
func (p *Paginator) SelectCategory(ctx context.Context, category string) (Page, error) {
	return p.Load(ctx, category, FromScratch())
}

// LoadMore loads the next slice of the current category. On a fresh
// paginator it loads the first slice of all categories.
func (p *Paginator) LoadMore(ctx context.Context) (Page, error) {
	p.mu.Lock()
	category, offset := p.page.Category, len(p.page.Items)
	p.mu.Unlock()
	return p.Load(ctx, category, Continue(offset))
}

// Load fetches a slice of category.
//
// A scratch load, a load for a different category, or the first load
// replaces the page and supersedes every older fetch. A continue is a no-op
// while another load is outstanding or once the category is exhausted.
func (p *Paginator) Load(ctx context.Context, category string, cursor Cursor) (Page, error) {
	category = NormalizeCategory(category)

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return Page{}, ErrClosed
	}

	var offset int
	if cursor.scratch || !p.started || category != p.page.Category {
		p.gen++
		p.started = true
		p.page = Page{Category: category, HasMore: true}
	} else {
		if p.page.Loading || !p.page.HasMore {
			page := p.snapshot()
			p.mu.Unlock()
			return page, nil
		}
		offset = cursor.offset
	}
	gen := p.gen
	p.page.Loading = true
	p.mu.Unlock()

	logger.Debug("Loading feed slice", "category", category, "offset", offset, "limit", p.pageSize, "generation", gen)
	records, err := p.source.FetchSlice(ctx, category, offset, p.pageSize)

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		logger.Debug("Dropping feed result after close", "category", category, "generation", gen)
		return Page{}, ErrClosed
	}
	if gen != p.gen {
		logger.Debug("Dropping stale feed result", "category", category, "generation", gen, "current", p.gen)
		return p.snapshot(), ErrStale
	}

	p.page.Loading = false
	if err != nil {
		logger.Warn("Feed load failed", "category", category, "offset", offset, "error", err)
		return p.snapshot(), clierrors.FeedLoadError(category, err)
	}

	p.page.Items = append(p.page.Items, records...)
	if len(records) < p.pageSize {
		p.page.HasMore = false
	}
	return p.snapshot(), nil
}

// Close drops every result that arrives afterwards and discards the page.
func (p *Paginator) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.page = Page{}
}

func (p *Paginator) snapshot() Page {
	page := p.page
	page.Items = make([]content.Record, len(p.page.Items))
	copy(page.Items, p.page.Items)
	return page
}

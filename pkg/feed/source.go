package feed

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/neighborbank/cli/pkg/api"
	"github.com/neighborbank/cli/pkg/content"
	"github.com/neighborbank/cli/pkg/session"
)

// CategoryAll selects every category.
const CategoryAll = "전체"

// NormalizeCategory maps the spellings of "all categories" onto CategoryAll.
func NormalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	switch strings.ToLower(category) {
	case "", "all", CategoryAll:
		return CategoryAll
	}
	return category
}

// IsAll reports whether category selects every category.
func IsAll(category string) bool {
	return NormalizeCategory(category) == CategoryAll
}

// Sort orders a feed.
type Sort string

const (
	SortLatest  Sort = "latest"
	SortHelpful Sort = "helpful"
)

// ParseSort parses a sort name.
func ParseSort(s string) (Sort, error) {
	switch Sort(strings.ToLower(strings.TrimSpace(s))) {
	case "", SortLatest:
		return SortLatest, nil
	case SortHelpful:
		return SortHelpful, nil
	default:
		return "", fmt.Errorf("unknown sort %q (want %s or %s)", s, SortLatest, SortHelpful)
	}
}

// AllowedSorts returns the sorts a role may choose. Bankers only see the
// latest questions.
func AllowedSorts(role session.Role) []Sort {
	if role == session.RoleBanker {
		return []Sort{SortLatest}
	}
	return []Sort{SortLatest, SortHelpful}
}

// SortAllowed reports whether role may use s.
func SortAllowed(role session.Role, s Sort) bool {
	for _, allowed := range AllowedSorts(role) {
		if allowed == s {
			return true
		}
	}
	return false
}

func sortRecords(records []content.Record, s Sort) {
	latest := func(i, j int) bool {
		return createdAt(records[i]).After(createdAt(records[j]))
	}
	switch s {
	case SortHelpful:
		sort.SliceStable(records, func(i, j int) bool {
			li, lj := likes(records[i]), likes(records[j])
			if li != lj {
				return li > lj
			}
			return latest(i, j)
		})
	default:
		sort.SliceStable(records, latest)
	}
}

func createdAt(r content.Record) time.Time {
	if r.Question != nil {
		return r.Question.CreatedAt.Time
	}
	if r.Post != nil {
		return r.Post.CreatedAt.Time
	}
	return time.Time{}
}

func likes(r content.Record) int {
	if r.Question != nil {
		return r.Question.LikeCount
	}
	if r.Post != nil {
		return r.Post.LikeCount
	}
	return 0
}

func categoryOf(r content.Record) string {
	if r.Question != nil {
		return r.Question.CategoryName
	}
	if r.Post != nil {
		return r.Post.CategoryName
	}
	return ""
}

// snapshotSource serves slices out of one full listing, since the list
// endpoints have no offset parameter. The listing is refetched for every
// first slice and whenever the category changes. Only the most recently
// issued fetch may replace the listing.
type snapshotSource struct {
	mu       sync.Mutex
	sort     Sort
	fetch    func(ctx context.Context, category string) ([]content.Record, error)
	category string
	records  []content.Record
	loaded   bool
	issued   uint64
	stored   uint64
}

func (s *snapshotSource) FetchSlice(ctx context.Context, category string, offset, limit int) ([]content.Record, error) {
	category = NormalizeCategory(category)

	s.mu.Lock()
	fresh := s.loaded && s.category == category && offset > 0
	records := s.records
	s.mu.Unlock()

	if !fresh {
		s.mu.Lock()
		s.issued++
		seq := s.issued
		s.mu.Unlock()

		fetched, err := s.fetch(ctx, category)
		if err != nil {
			return nil, err
		}
		sortRecords(fetched, s.sort)
		records = fetched

		s.mu.Lock()
		if seq > s.stored {
			s.category, s.records, s.loaded, s.stored = category, fetched, true, seq
		}
		s.mu.Unlock()
	}

	return slice(records, offset, limit), nil
}

func slice(records []content.Record, offset, limit int) []content.Record {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(records) {
		return []content.Record{}
	}
	end := offset + limit
	if limit <= 0 || end > len(records) {
		end = len(records)
	}
	out := make([]content.Record, end-offset)
	copy(out, records[offset:end])
	return out
}

func filterCategory(records []content.Record, category string) []content.Record {
	if IsAll(category) {
		return records
	}
	filtered := make([]content.Record, 0, len(records))
	for _, r := range records {
		if categoryOf(r) == category {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// QnaLister lists questions.
type QnaLister interface {
	GetQnaList(ctx context.Context) ([]api.QnaSummary, error)
	GetQnaListByCategory(ctx context.Context, categoryID int) ([]api.QnaSummary, error)
}

// QnaSource is the Q&A feed. A numeric category is sent to the server as a
// category id; a category name is matched client side.
type QnaSource struct {
	snapshotSource
}

// NewQnaSource creates the Q&A feed source.
func NewQnaSource(lister QnaLister, s Sort) *QnaSource {
	src := &QnaSource{}
	src.sort = s
	src.fetch = func(ctx context.Context, category string) ([]content.Record, error) {
		if IsAll(category) {
			questions, err := lister.GetQnaList(ctx)
			if err != nil {
				return nil, err
			}
			return content.FromQuestions(questions), nil
		}
		if id, err := strconv.Atoi(category); err == nil {
			questions, err := lister.GetQnaListByCategory(ctx, id)
			if err != nil {
				return nil, err
			}
			return content.FromQuestions(questions), nil
		}
		questions, err := lister.GetQnaList(ctx)
		if err != nil {
			return nil, err
		}
		return filterCategory(content.FromQuestions(questions), category), nil
	}
	return src
}

// CommunityLister lists the community posts of a district.
type CommunityLister interface {
	GetCommunityList(ctx context.Context, location string) ([]api.CommunitySummary, error)
}

// CommunitySource is the community feed of one district.
type CommunitySource struct {
	snapshotSource
	location string
}

// NewCommunitySource creates the community feed source for location.
func NewCommunitySource(lister CommunityLister, location string, s Sort) *CommunitySource {
	src := &CommunitySource{location: location}
	src.sort = s
	src.fetch = func(ctx context.Context, category string) ([]content.Record, error) {
		posts, err := lister.GetCommunityList(ctx, location)
		if err != nil {
			return nil, err
		}
		return filterCategory(content.FromPosts(posts), category), nil
	}
	return src
}

// Location returns the district this source lists.
func (s *CommunitySource) Location() string {
	return s.location
}

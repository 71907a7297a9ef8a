package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/neighborbank/cli/pkg/config"
	"github.com/neighborbank/cli/pkg/content"
	clierrors "github.com/neighborbank/cli/pkg/errors"
	"github.com/neighborbank/cli/pkg/feed"
	"github.com/neighborbank/cli/pkg/formatter"
	"github.com/neighborbank/cli/pkg/logger"
	"github.com/neighborbank/cli/pkg/output"
	"github.com/neighborbank/cli/pkg/prompter"
)

// FeedService browses the Q&A and community feeds.
type FeedService struct {
	base
}

// NewFeedService creates a new feed service
func NewFeedService() *FeedService {
	return &FeedService{}
}

// BrowseOptions select a feed and how much of it to show.
type BrowseOptions struct {
	Kind     content.Kind
	Category string
	Sort     string
	Location string
	// Pages is how many pages to print without prompting.
	Pages int
	// Interactive prompts for more pages and category switches.
	Interactive bool
}

// Browse prints a feed page by page.
func (s *FeedService) Browse(ctx context.Context, opts BrowseOptions) error {
	e, err := s.environment()
	if err != nil {
		return err
	}

	sortName := opts.Sort
	if sortName == "" {
		sortName = config.GetString("feed.sort")
	}
	order, err := feed.ParseSort(sortName)
	if err != nil {
		return clierrors.ValidationError("sort", err.Error())
	}
	if !feed.SortAllowed(e.session.Role, order) {
		logger.Debug("Sort not available for role, using latest", "role", e.session.Role.String(), "sort", order)
		order = feed.SortLatest
	}

	var (
		source feed.Source
		title  string
	)
	switch opts.Kind {
	case content.KindQuestion:
		source = feed.NewQnaSource(e.api, order)
		title = "Q&A"
	case content.KindCommunity:
		location := opts.Location
		if location == "" {
			location = e.session.Location
		}
		source = feed.NewCommunitySource(e.api, location, order)
		title = "Community · " + location
	default:
		return clierrors.ValidationError("feed", fmt.Sprintf("unknown feed %q", opts.Kind))
	}

	p := feed.NewPaginator(source, config.GetInt("feed.page_size"))
	defer p.Close()

	page, err := p.SelectCategory(ctx, opts.Category)
	if err != nil {
		return err
	}
	printed, err := s.printNew(title, page, 0)
	if err != nil {
		return err
	}

	pages := opts.Pages
	if pages < 1 {
		pages = 1
	}
	for i := 1; i < pages && page.HasMore; i++ {
		page, err = p.LoadMore(ctx)
		if err != nil {
			return err
		}
		if printed, err = s.printNew(title, page, printed); err != nil {
			return err
		}
	}

	if !opts.Interactive {
		if page.HasMore {
			output.PrintInfo("More available: use --pages %d", pages+1)
		}
		return nil
	}

	for {
		if !page.HasMore {
			output.PrintInfo("End of %s", feedLabel(title, page.Category))
		}
		cmd, err := prompter.PromptString("[enter] more · c <category> · q quit > ")
		if err != nil {
			// stdin closed
			return nil
		}

		switch {
		case cmd == "q" || cmd == "quit":
			return nil

		case cmd == "c" || strings.HasPrefix(cmd, "c "):
			category := strings.TrimSpace(strings.TrimPrefix(cmd, "c"))
			next, err := p.SelectCategory(ctx, category)
			if err != nil {
				if reportRecoverable(err) {
					continue
				}
				return err
			}
			page = next
			if printed, err = s.printNew(title, page, 0); err != nil {
				return err
			}

		case cmd == "":
			if !page.HasMore {
				continue
			}
			next, err := p.LoadMore(ctx)
			if err != nil {
				if reportRecoverable(err) {
					continue
				}
				return err
			}
			page = next
			if printed, err = s.printNew(title, page, printed); err != nil {
				return err
			}

		default:
			output.PrintWarning("Unknown command %q", cmd)
		}
	}
}

// printNew prints the items of page after the first from, returning how
// many items have been printed in total.
func (s *FeedService) printNew(title string, page feed.Page, from int) (int, error) {
	if from > len(page.Items) {
		from = 0
	}
	items, err := content.ProjectAll(page.Items[from:])
	if err != nil {
		return from, err
	}

	now := s.env.now()
	rows := make([][]string, 0, len(items))
	for i, item := range items {
		rows = append(rows, formatter.FeedRow(from+i+1, item, now))
	}

	header := ""
	if from == 0 {
		header = feedLabel(title, page.Category)
	}
	if err := output.PrintRows(header, formatter.FeedHeaders, rows, items); err != nil {
		return from, err
	}
	return len(page.Items), nil
}

func feedLabel(title, category string) string {
	return fmt.Sprintf("%s [%s]", title, category)
}

// reportRecoverable prints err and reports whether browsing can go on.
func reportRecoverable(err error) bool {
	if errors.Is(err, feed.ErrStale) {
		return true
	}
	if !clierrors.Recoverable(err) {
		return false
	}
	output.PrintError("%s", clierrors.CategorizeError(err).Error())
	return true
}

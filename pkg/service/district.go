package service

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/neighborbank/cli/pkg/api"
	"github.com/neighborbank/cli/pkg/content"
	"github.com/neighborbank/cli/pkg/formatter"
	"github.com/neighborbank/cli/pkg/logger"
	"github.com/neighborbank/cli/pkg/output"
)

// DistrictService shows what is happening in a neighborhood.
type DistrictService struct {
	base
}

// NewDistrictService creates a new district service
func NewDistrictService() *DistrictService {
	return &DistrictService{}
}

// Dashboard is the combined district overview.
type Dashboard struct {
	Location        string                 `json:"location"`
	RecentQuestions []api.QnaSummary       `json:"recentQuestions"`
	HotPosts        []api.CommunitySummary `json:"hotPosts"`
	ActiveUsers     []api.CustomerSummary  `json:"activeUsers"`
	Keywords        []api.Keyword          `json:"keywords"`
}

// LoadDashboard fetches the four district sections concurrently. The first
// failure cancels the others.
func (s *DistrictService) LoadDashboard(ctx context.Context, location string) (*Dashboard, error) {
	e, err := s.environment()
	if err != nil {
		return nil, err
	}
	if location == "" {
		location = e.session.Location
	}

	d := &Dashboard{Location: location}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		d.RecentQuestions, err = e.api.GetRecentQuestions(gctx, location)
		return err
	})
	g.Go(func() error {
		var err error
		d.HotPosts, err = e.api.GetHotPosts(gctx, location)
		return err
	})
	g.Go(func() error {
		var err error
		d.ActiveUsers, err = e.api.GetActiveUsers(gctx, location)
		return err
	})
	g.Go(func() error {
		var err error
		d.Keywords, err = e.api.GetHotKeywords(gctx, location)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Error("Failed to load district dashboard", "location", location, "error", err)
		return nil, api.Classify(err, "District", location)
	}
	return d, nil
}

// Show prints the district dashboard.
func (s *DistrictService) Show(ctx context.Context, location string) error {
	d, err := s.LoadDashboard(ctx, location)
	if err != nil {
		return err
	}
	if output.GetOutputFormat() == output.FormatJSON {
		return output.PrintJSON(d)
	}

	now := s.env.now()

	questions, err := content.ProjectAll(content.FromQuestions(d.RecentQuestions))
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(questions))
	for i, item := range questions {
		rows = append(rows, formatter.FeedRow(i+1, item, now))
	}
	if err := output.PrintRows("Recent questions · "+d.Location, formatter.FeedHeaders, rows, questions); err != nil {
		return err
	}

	posts, err := content.ProjectAll(content.FromPosts(d.HotPosts))
	if err != nil {
		return err
	}
	rows = make([][]string, 0, len(posts))
	for i, item := range posts {
		rows = append(rows, formatter.FeedRow(i+1, item, now))
	}
	if err := output.PrintRows("Hot posts", formatter.FeedHeaders, rows, posts); err != nil {
		return err
	}

	rows = make([][]string, 0, len(d.ActiveUsers))
	for i, u := range d.ActiveUsers {
		rows = append(rows, []string{strconv.Itoa(i + 1), u.Nickname, strconv.Itoa(u.CommentCount)})
	}
	if err := output.PrintRows("Active neighbors", []string{"#", "NICKNAME", "COMMENTS"}, rows, d.ActiveUsers); err != nil {
		return err
	}

	rows = make([][]string, 0, len(d.Keywords))
	for i, k := range d.Keywords {
		rows = append(rows, []string{strconv.Itoa(i + 1), k.Keyword, strconv.Itoa(k.Count)})
	}
	return output.PrintRows("Keywords", []string{"#", "KEYWORD", "COUNT"}, rows, d.Keywords)
}

// Bankers prints the bankers serving a district.
func (s *DistrictService) Bankers(ctx context.Context, location string) error {
	e, err := s.environment()
	if err != nil {
		return err
	}
	if location == "" {
		location = e.session.Location
	}

	bankers, err := e.api.GetBankerProfiles(ctx, location)
	if err != nil {
		return api.Classify(err, "Bankers", location)
	}

	rows := make([][]string, 0, len(bankers))
	for _, b := range bankers {
		rows = append(rows, []string{
			strconv.FormatInt(b.BankerID, 10),
			b.Name,
			b.BranchName,
			formatter.Truncate(b.Interests, 30),
			formatter.Truncate(b.Desc, 40),
		})
	}
	return output.PrintRows("Bankers · "+location, []string{"ID", "NAME", "BRANCH", "INTERESTS", "INTRO"}, rows, bankers)
}

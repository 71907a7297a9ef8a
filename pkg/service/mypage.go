package service

import (
	"context"
	"strconv"

	"github.com/neighborbank/cli/pkg/api"
	"github.com/neighborbank/cli/pkg/content"
	"github.com/neighborbank/cli/pkg/formatter"
	"github.com/neighborbank/cli/pkg/output"
)

// MyPageService lists the signed-in customer's own activity.
type MyPageService struct {
	base
}

// NewMyPageService creates a new my page service
func NewMyPageService() *MyPageService {
	return &MyPageService{}
}

var scrapHeaders = []string{"ID", "CATEGORY", "TITLE", "VIEWS", "HELPFUL", "WHEN"}

// ScrappedQuestions lists the questions the customer scrapped.
func (s *MyPageService) ScrappedQuestions(ctx context.Context) error {
	e, err := s.environment()
	if err != nil {
		return err
	}
	if err := e.session.RequireCustomer("view scraps"); err != nil {
		return err
	}

	scraps, err := e.api.GetScrappedQuestions(ctx, e.session.UserID)
	if err != nil {
		return api.Classify(err, "Scraps", strconv.FormatInt(e.session.UserID, 10))
	}

	rows := make([][]string, 0, len(scraps))
	for _, q := range scraps {
		rows = append(rows, scrapRow(q.QuestionID, q.CategoryName, q.Title, q.ViewCount, q.LikeCount, q.CreatedAt, e))
	}
	return output.PrintRows("Scrapped questions", scrapHeaders, rows, scraps)
}

// ScrappedPosts lists the community posts the customer scrapped.
func (s *MyPageService) ScrappedPosts(ctx context.Context) error {
	e, err := s.environment()
	if err != nil {
		return err
	}
	if err := e.session.RequireCustomer("view scraps"); err != nil {
		return err
	}

	scraps, err := e.api.GetScrappedPosts(ctx, e.session.UserID)
	if err != nil {
		return api.Classify(err, "Scraps", strconv.FormatInt(e.session.UserID, 10))
	}

	rows := make([][]string, 0, len(scraps))
	for _, p := range scraps {
		rows = append(rows, scrapRow(p.PostID, p.CategoryName, p.Title, p.ViewCount, p.LikeCount, p.CreatedAt, e))
	}
	return output.PrintRows("Scrapped posts", scrapHeaders, rows, scraps)
}

// Questions lists the questions the customer asked.
func (s *MyPageService) Questions(ctx context.Context) error {
	e, err := s.environment()
	if err != nil {
		return err
	}
	if err := e.session.RequireCustomer("view your questions"); err != nil {
		return err
	}

	questions, err := e.api.GetMyQuestions(ctx, e.session.UserID)
	if err != nil {
		return api.Classify(err, "Questions", strconv.FormatInt(e.session.UserID, 10))
	}

	items, err := content.ProjectAll(content.FromQuestions(questions))
	if err != nil {
		return err
	}
	now := e.now()
	rows := make([][]string, 0, len(items))
	for i, item := range items {
		rows = append(rows, formatter.FeedRow(i+1, item, now))
	}
	return output.PrintRows("My questions", formatter.FeedHeaders, rows, items)
}

func scrapRow(id int64, category, title string, views, likes int, createdAt api.Timestamp, e *env) []string {
	return []string{
		strconv.FormatInt(id, 10),
		category,
		formatter.Truncate(title, 40),
		strconv.Itoa(views),
		strconv.Itoa(likes),
		formatter.RelativeTime(createdAt.Time, e.now()),
	}
}

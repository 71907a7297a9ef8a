package content

import (
	"fmt"
	"strings"
	"time"
)

// PendingAnswer is what the server sends as the answerer of a question
// nobody has answered yet.
const PendingAnswer = "답변 대기중"

// Item is the kind-independent row shown in a feed.
type Item struct {
	ID           int64     `json:"id"`
	Kind         Kind      `json:"kind"`
	CategoryName string    `json:"categoryName"`
	Title        string    `json:"title"`
	CreatedAt    time.Time `json:"createdAt"`
	ViewCount    int       `json:"viewCount"`
	LikeCount    int       `json:"likeCount"`
	// CommentCount is set for questions only.
	CommentCount *int `json:"commentCount,omitempty"`
	// AnsweredBy is nil until a banker answers.
	AnsweredBy *string `json:"answeredBy"`
	// Thumbnail is the first attached file, if any.
	Thumbnail string `json:"thumbnail,omitempty"`
}

// Answered reports whether a banker has answered the question.
func (i Item) Answered() bool {
	return i.AnsweredBy != nil
}

// Project maps a record onto the row view-model.
func Project(r Record) (Item, error) {
	switch r.Kind {
	case KindQuestion:
		if r.Question == nil {
			return Item{}, fmt.Errorf("question record %q has no payload", r.Key())
		}
		q := r.Question
		comments := q.CommentCount
		return Item{
			ID:           q.QuestionID,
			Kind:         KindQuestion,
			CategoryName: q.CategoryName,
			Title:        q.Title,
			CreatedAt:    q.CreatedAt.Time,
			ViewCount:    q.ViewCount,
			LikeCount:    nonNegative(q.LikeCount),
			CommentCount: &comments,
			AnsweredBy:   answerer(q.AnswerBanker),
			Thumbnail:    first(q.FilePaths),
		}, nil

	case KindCommunity:
		if r.Post == nil {
			return Item{}, fmt.Errorf("community record %q has no payload", r.Key())
		}
		p := r.Post
		return Item{
			ID:           p.PostID,
			Kind:         KindCommunity,
			CategoryName: p.CategoryName,
			Title:        p.Title,
			CreatedAt:    p.CreatedAt.Time,
			ViewCount:    p.ViewCount,
			LikeCount:    nonNegative(p.LikeCount),
			Thumbnail:    first(p.FilePaths),
		}, nil

	default:
		return Item{}, fmt.Errorf("unknown content kind %q", r.Kind)
	}
}

// ProjectAll projects every record, stopping at the first malformed one.
func ProjectAll(records []Record) ([]Item, error) {
	items := make([]Item, 0, len(records))
	for _, r := range records {
		item, err := Project(r)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func answerer(name *string) *string {
	if name == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*name)
	if trimmed == "" || trimmed == PendingAnswer {
		return nil
	}
	return &trimmed
}

func first(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	return paths[0]
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// Package content normalizes the two kinds of feed content, Q&A questions
// and community posts, into a single row view-model.
package content

import (
	"fmt"

	"github.com/neighborbank/cli/pkg/api"
)

// Kind discriminates the content a Record carries.
type Kind string

const (
	KindQuestion  Kind = "question"
	KindCommunity Kind = "community"
)

// Record is a tagged union over a Q&A question and a community post.
// Exactly one of Question or Post is set, as named by Kind.
type Record struct {
	Kind     Kind
	Question *api.QnaSummary
	Post     *api.CommunitySummary
}

// FromQuestion wraps a Q&A list row.
func FromQuestion(q api.QnaSummary) Record {
	return Record{Kind: KindQuestion, Question: &q}
}

// FromPost wraps a community list row.
func FromPost(p api.CommunitySummary) Record {
	return Record{Kind: KindCommunity, Post: &p}
}

// FromQuestions wraps every row of a Q&A list.
func FromQuestions(qs []api.QnaSummary) []Record {
	records := make([]Record, 0, len(qs))
	for _, q := range qs {
		records = append(records, FromQuestion(q))
	}
	return records
}

// FromPosts wraps every row of a community list.
func FromPosts(ps []api.CommunitySummary) []Record {
	records := make([]Record, 0, len(ps))
	for _, p := range ps {
		records = append(records, FromPost(p))
	}
	return records
}

// ID returns the record's identifier, unique per kind.
func (r Record) ID() int64 {
	switch {
	case r.Kind == KindQuestion && r.Question != nil:
		return r.Question.QuestionID
	case r.Kind == KindCommunity && r.Post != nil:
		return r.Post.PostID
	default:
		return 0
	}
}

// Key identifies the record across kinds, e.g. "question:7".
func (r Record) Key() string {
	return fmt.Sprintf("%s:%d", r.Kind, r.ID())
}

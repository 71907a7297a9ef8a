package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/neighborbank/cli/pkg/content"
	clierrors "github.com/neighborbank/cli/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// questionsJSON lists n questions, newest first, alternating categories.
func questionsJSON(n int) string {
	items := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		category := "예금"
		if i%2 == 0 {
			category = "대출"
		}
		items = append(items, fmt.Sprintf(
			`{"questionId": %d, "categoryName": %q, "title": "질문 %d", "viewCount": %d, "likeCount": 1, "commentCount": 0, "answerBanker": null, "createdAt": "2024-11-%02dT09:00:00"}`,
			100-i, category, i, i, 20-i))
	}
	return "[" + strings.Join(items, ",") + "]"
}

func TestFeedService_BrowseFirstPage(t *testing.T) {
	buf := setup(t, "text")

	var hits int32
	s := &FeedService{newTestEnv(t, guest, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		assert.Equal(t, "/qnalist", r.URL.Path)
		writeJSON(w, http.StatusOK, questionsJSON(7))
	})}

	err := s.Browse(context.Background(), BrowseOptions{Kind: content.KindQuestion, Pages: 1})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Q&A [전체]")
	for i := 1; i <= 5; i++ {
		assert.Contains(t, out, fmt.Sprintf("질문 %d", i))
	}
	assert.NotContains(t, out, "질문 6")
	assert.Contains(t, out, "More available: use --pages 2")
	assert.Contains(t, out, content.PendingAnswer)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestFeedService_BrowseSeveralPagesReusesListing(t *testing.T) {
	buf := setup(t, "text")

	var hits int32
	s := &FeedService{newTestEnv(t, guest, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		writeJSON(w, http.StatusOK, questionsJSON(7))
	})}

	err := s.Browse(context.Background(), BrowseOptions{Kind: content.KindQuestion, Pages: 3})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "질문 7")
	assert.NotContains(t, out, "More available")
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "later pages are sliced from the first listing")
}

func TestFeedService_BrowseInteractiveCategorySwitch(t *testing.T) {
	buf := setup(t, "text")
	withInput(t, "c 대출", "", "q")

	var hits int32
	s := &FeedService{newTestEnv(t, guest, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		writeJSON(w, http.StatusOK, questionsJSON(7))
	})}

	err := s.Browse(context.Background(), BrowseOptions{Kind: content.KindQuestion, Pages: 1, Interactive: true})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Q&A [대출]")
	assert.Contains(t, out, "End of Q&A [대출]")
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits), "a category switch refetches")
}

func TestFeedService_BrowseInteractiveStopsAtEOF(t *testing.T) {
	setup(t, "text")
	withInput(t)

	s := &FeedService{newTestEnv(t, guest, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, questionsJSON(2))
	})}

	err := s.Browse(context.Background(), BrowseOptions{Kind: content.KindQuestion, Interactive: true})
	assert.NoError(t, err)
}

func TestFeedService_BrowseNumericCategoryUsesServerFilter(t *testing.T) {
	setup(t, "text")

	s := &FeedService{newTestEnv(t, guest, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/qnalist/3", r.URL.Path)
		writeJSON(w, http.StatusOK, questionsJSON(1))
	})}

	err := s.Browse(context.Background(), BrowseOptions{Kind: content.KindQuestion, Category: "3"})
	assert.NoError(t, err)
}

func TestFeedService_BrowseCommunityUsesSessionLocation(t *testing.T) {
	buf := setup(t, "text")

	s := &FeedService{newTestEnv(t, customer, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/community/성동구", r.URL.Path)
		writeJSON(w, http.StatusOK, `[
			{"postId": 11, "categoryName": "맛집", "title": "국밥집 추천", "location": "성동구", "viewCount": 3, "likeCount": 2,
			 "createdAt": "2024-11-20T11:30:00", "filePaths": ["p.png"]}
		]`)
	})}

	err := s.Browse(context.Background(), BrowseOptions{Kind: content.KindCommunity})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Community · 성동구 [전체]")
	assert.Contains(t, out, "국밥집 추천 📎")
	assert.Contains(t, out, "30분 전")
	assert.NotContains(t, out, "댓글")
}

func TestFeedService_BrowseJSON(t *testing.T) {
	buf := setup(t, "json")

	s := &FeedService{newTestEnv(t, guest, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, questionsJSON(1))
	})}

	require.NoError(t, s.Browse(context.Background(), BrowseOptions{Kind: content.KindQuestion}))
	assert.Contains(t, buf.String(), `"title": "질문 1"`)
}

func TestFeedService_BrowseErrors(t *testing.T) {
	t.Run("invalid sort", func(t *testing.T) {
		setup(t, "text")
		s := &FeedService{newTestEnv(t, guest, unexpected(t))}

		err := s.Browse(context.Background(), BrowseOptions{Kind: content.KindQuestion, Sort: "oldest"})
		assert.True(t, clierrors.IsType(err, clierrors.ErrorTypeValidation))
	})

	t.Run("unknown feed", func(t *testing.T) {
		setup(t, "text")
		s := &FeedService{newTestEnv(t, guest, unexpected(t))}

		err := s.Browse(context.Background(), BrowseOptions{Kind: "story"})
		assert.True(t, clierrors.IsType(err, clierrors.ErrorTypeValidation))
	})

	t.Run("server failure", func(t *testing.T) {
		setup(t, "text")
		s := &FeedService{newTestEnv(t, guest, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusInternalServerError, `{"status": 500, "error": "Internal Server Error"}`)
		})}

		err := s.Browse(context.Background(), BrowseOptions{Kind: content.KindQuestion})
		assert.True(t, clierrors.IsType(err, clierrors.ErrorTypeFeedLoad))
	})
}

package service

import (
	"context"
	"net/http"
	"testing"

	clierrors "github.com/neighborbank/cli/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMyPageService_ScrappedQuestions(t *testing.T) {
	buf := setup(t, "text")
	s := &MyPageService{newTestEnv(t, customer, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/my/qna/scrapList/42", r.URL.Path)
		writeJSON(w, http.StatusOK, `[{"questionId": 7, "categoryName": "예금", "title": "적금 해지", "viewCount": 3, "likeCount": 1, "createdAt": "2024-11-20T10:00:00"}]`)
	})}

	require.NoError(t, s.ScrappedQuestions(context.Background()))
	out := buf.String()
	assert.Contains(t, out, "Scrapped questions")
	assert.Contains(t, out, "적금 해지")
	assert.Contains(t, out, "2시간 전")
}

func TestMyPageService_ScrappedPostsEmpty(t *testing.T) {
	buf := setup(t, "text")
	s := &MyPageService{newTestEnv(t, customer, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/my/post/scrapList/42", r.URL.Path)
		writeJSON(w, http.StatusOK, `[]`)
	})}

	require.NoError(t, s.ScrappedPosts(context.Background()))
	assert.Contains(t, buf.String(), "(none)")
}

func TestMyPageService_Questions(t *testing.T) {
	buf := setup(t, "text")
	s := &MyPageService{newTestEnv(t, customer, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mypage/questions/42", r.URL.Path)
		writeJSON(w, http.StatusOK, questionsJSON(2))
	})}

	require.NoError(t, s.Questions(context.Background()))
	assert.Contains(t, buf.String(), "질문 2")
}

func TestMyPageService_RequiresCustomer(t *testing.T) {
	setup(t, "text")

	s := &MyPageService{newTestEnv(t, guest, unexpected(t))}
	assert.True(t, clierrors.IsType(s.ScrappedQuestions(context.Background()), clierrors.ErrorTypeAuthRequired))

	s = &MyPageService{newTestEnv(t, banker, unexpected(t))}
	assert.True(t, clierrors.IsType(s.ScrappedPosts(context.Background()), clierrors.ErrorTypeForbidden))
}

package service

import (
	"context"
	"io"
	"net/http"
	"sync/atomic"
	"testing"

	json "github.com/json-iterator/go"
	"github.com/neighborbank/cli/pkg/api"
	clierrors "github.com/neighborbank/cli/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const communityPost = `{
	"postId": 11, "customerId": 42, "categoryName": "맛집", "title": "국밥집 추천",
	"content": "시장 안쪽 국밥집이 맛있어요", "nickname": "이웃", "location": "성동구",
	"viewCount": 20, "likeCount": 4, "scrapCount": 1, "createdAt": "2024-11-19T12:00:00",
	"filePaths": ["https://cdn.example.com/a.png"],
	"commentList": [{"commentId": 1, "nickname": "옆집", "content": "가봐야겠네요", "createdAt": "2024-11-20T11:59:30"}]
}`

func TestPostService_Show(t *testing.T) {
	buf := setup(t, "text")

	s := &PostService{newTestEnv(t, customer, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/community/detail/11":
			writeJSON(w, http.StatusOK, communityPost)
		case "/my/post/scrap/42/11":
			writeJSON(w, http.StatusOK, `false`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})}

	require.NoError(t, s.Show(context.Background(), 11))

	out := buf.String()
	assert.Contains(t, out, "Helpful: 4")
	assert.Contains(t, out, "Scrapped: no")
	assert.Contains(t, out, "Posted: 1일 전")
	assert.Contains(t, out, "Files: https://cdn.example.com/a.png")
	assert.Contains(t, out, "방금 전")
}

func TestPostService_ShowJSON(t *testing.T) {
	buf := setup(t, "json")

	s := &PostService{newTestEnv(t, guest, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, communityPost)
	})}

	require.NoError(t, s.Show(context.Background(), 11))

	var got api.CommunityDetail
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, int64(11), got.PostID)
	assert.Len(t, got.CommentList, 1)
}

func TestPostService_Like(t *testing.T) {
	buf := setup(t, "text")

	var liked int32
	s := &PostService{newTestEnv(t, customer, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/community/detail/11":
			writeJSON(w, http.StatusOK, communityPost)
		case r.URL.Path == "/my/post/scrap/42/11":
			writeJSON(w, http.StatusOK, `false`)
		case r.Method == http.MethodPost && r.URL.Path == "/post/dolike":
			atomic.AddInt32(&liked, 1)
			var req api.LikePostRequest
			body, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(body, &req))
			assert.Equal(t, int64(11), req.PostID)
			assert.Equal(t, int64(42), req.CustomerID)
			w.Header().Set("Content-Type", "text/plain")
			_, _ = io.WriteString(w, "5")
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	})}

	require.NoError(t, s.Like(context.Background(), 11))
	assert.Equal(t, int32(1), atomic.LoadInt32(&liked))
	assert.Contains(t, buf.String(), "Marked helpful (5)")
}

func TestPostService_LikeRemovesExistingLike(t *testing.T) {
	buf := setup(t, "text")

	s := &PostService{newTestEnv(t, customer, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/community/detail/11":
			writeJSON(w, http.StatusOK, communityPost)
		case "/my/post/scrap/42/11":
			writeJSON(w, http.StatusOK, `false`)
		case "/post/dolike":
			w.Header().Set("Content-Type", "text/plain")
			_, _ = io.WriteString(w, "3")
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	})}

	require.NoError(t, s.Like(context.Background(), 11))
	assert.Contains(t, buf.String(), "Helpful removed (3)")
	assert.NotContains(t, buf.String(), "Marked helpful")
}

func TestPostService_LikeFailureRollsBack(t *testing.T) {
	setup(t, "text")

	s := &PostService{newTestEnv(t, banker, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/post/dolike" {
			writeJSON(w, http.StatusInternalServerError, `{"status": 500}`)
			return
		}
		writeJSON(w, http.StatusOK, communityPost)
	})}

	err := s.Like(context.Background(), 11)
	assert.True(t, clierrors.IsType(err, clierrors.ErrorTypeToggleFailed))
}

func TestPostService_LikeRequiresSignIn(t *testing.T) {
	setup(t, "text")
	s := &PostService{newTestEnv(t, guest, unexpected(t))}

	err := s.Like(context.Background(), 11)
	assert.True(t, clierrors.IsType(err, clierrors.ErrorTypeAuthRequired))
}

func TestPostService_Scrap(t *testing.T) {
	buf := setup(t, "text")

	var scrapped atomic.Bool
	scrapped.Store(true)
	s := &PostService{newTestEnv(t, customer, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/my/post/scrap/42/11":
			if scrapped.Load() {
				writeJSON(w, http.StatusOK, `true`)
			} else {
				writeJSON(w, http.StatusOK, `false`)
			}
		case r.Method == http.MethodPost && r.URL.Path == "/post/scrap":
			scrapped.Store(!scrapped.Load())
			w.WriteHeader(http.StatusOK)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	})}

	require.NoError(t, s.Scrap(context.Background(), 11))
	assert.Contains(t, buf.String(), "Scrap removed from community #11")
}

func TestPostService_Delete(t *testing.T) {
	buf := setup(t, "text")

	var deleted int32
	s := &PostService{newTestEnv(t, customer, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			assert.Equal(t, "/community/delete/11", r.URL.Path)
			atomic.AddInt32(&deleted, 1)
			w.WriteHeader(http.StatusOK)
			return
		}
		writeJSON(w, http.StatusOK, communityPost)
	})}

	withInput(t, "y")
	require.NoError(t, s.Delete(context.Background(), 11, false))
	assert.Equal(t, int32(1), atomic.LoadInt32(&deleted))
	assert.Contains(t, buf.String(), "Post #11 deleted")
}

func TestPostService_New(t *testing.T) {
	t.Run("bankers cannot post", func(t *testing.T) {
		setup(t, "text")
		s := &PostService{newTestEnv(t, banker, unexpected(t))}

		err := s.New(context.Background(), Draft{Title: "t", Category: "c", Content: "b"}, false)
		assert.True(t, clierrors.IsType(err, clierrors.ErrorTypeForbidden))
	})

	t.Run("registers in the session district", func(t *testing.T) {
		buf := setup(t, "text")
		dir := t.TempDir()
		s := &PostService{newTestEnv(t, customer, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/community/register", r.URL.Path)
			require.NoError(t, r.ParseMultipartForm(1<<20))
			var req api.PostRegistration
			require.NoError(t, json.Unmarshal([]byte(r.MultipartForm.Value["post"][0]), &req))
			assert.Equal(t, "성동구", req.Location)
			assert.Equal(t, "맛집", req.CategoryName)
			assert.Len(t, r.MultipartForm.File["file"], 2)
			w.WriteHeader(http.StatusOK)
		})}

		draft := Draft{
			Title:    "빵집",
			Category: "맛집",
			Content:  "새로 생긴 빵집",
			Files:    []string{pngFile(t, dir, "a.png"), pngFile(t, dir, "b.png")},
		}
		require.NoError(t, s.New(context.Background(), draft, false))
		assert.Contains(t, buf.String(), "Post registered in 성동구 with 2 attachment(s)")
	})
}

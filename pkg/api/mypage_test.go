package api

import (
	"context"
	"io"
	"net/http"
	"testing"

	json "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerInfo(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "42", r.URL.Query().Get("customerId"))
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/my/edit/info":
			writeJSON(w, http.StatusOK, `{"customerName": "홍길동", "customerEmail": "hong@example.com",
				"nickname": "이웃", "phone": "010-1234-5678", "gender": "M", "location": "성동구"}`)
		case r.Method == http.MethodPut && r.URL.Path == "/my/edit/info/submit":
			var got CustomerInfoUpdate
			body, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, "새비밀번호123", got.Password)
			assert.Equal(t, "새이웃", got.Nickname)
			assert.Equal(t, "010-1234-5678", got.Phone)
			w.Header().Set("Content-Type", "text/plain")
			_, _ = io.WriteString(w, "수정 완료")
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	})

	info, err := c.GetCustomerInfo(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "홍길동", info.CustomerName)
	assert.Equal(t, "성동구", info.Location)
	assert.Empty(t, info.BirthDate)

	err = c.UpdateCustomerInfo(context.Background(), 42, CustomerInfoUpdate{
		Password: "새비밀번호123", Nickname: "새이웃", Phone: info.Phone,
	})
	assert.NoError(t, err)
}

func TestBankerInfo(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "9", r.URL.Query().Get("bankerId"))
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/my/bankers/edit/info":
			writeJSON(w, http.StatusOK, `{"bankerName": "김은행", "bankerEmail": "kim@bank.example", "branchName": "성수지점"}`)
		case r.Method == http.MethodPut && r.URL.Path == "/my/bankers/edit/info/submit":
			var got BankerInfoUpdate
			body, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, "왕십리지점", got.BranchName)
			writeJSON(w, http.StatusOK, `{"bankerName": "김은행", "bankerEmail": "kim@bank.example", "branchName": "왕십리지점"}`)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	})

	info, err := c.GetBankerInfo(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "성수지점", info.BranchName)

	assert.NoError(t, c.UpdateBankerInfo(context.Background(), 9, BankerInfoUpdate{Password: "password1", BranchName: "왕십리지점"}))
}

func TestUpdateBankerCard(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/my/bankers/mypage/modifyProfile", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		var got BankerCard
		require.NoError(t, json.Unmarshal([]byte(r.MultipartForm.Value["profile"][0]), &got))
		assert.Equal(t, int64(9), got.BankerID)
		assert.Equal(t, []string{"예금", "대출"}, got.Specializations)

		files := r.MultipartForm.File["file"]
		require.Len(t, files, 1)
		assert.Equal(t, "me.png", files[0].Filename)
		w.WriteHeader(http.StatusOK)
	})

	card := BankerCard{BankerID: 9, Name: "김은행", Specializations: []string{"예금", "대출"}, Content: "안녕하세요"}
	assert.NoError(t, c.UpdateBankerCard(context.Background(), card, memAttachment{"me.png", "image/png", "png"}))
}

func TestUpdateBankerCard_WithoutPhoto(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Len(t, r.MultipartForm.Value["profile"], 1)
		assert.Empty(t, r.MultipartForm.File["file"])
		w.WriteHeader(http.StatusOK)
	})

	assert.NoError(t, c.UpdateBankerCard(context.Background(), BankerCard{BankerID: 9}, nil))
}

package api

import (
	"io"
	"strconv"
	"strings"
	"time"

	json "github.com/json-iterator/go"
)

// Timestamp accepts the server's zone-less local datetimes as well as RFC 3339.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// UnmarshalJSON implements json.Unmarshaler
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	var lastErr error
	for _, layout := range timestampLayouts {
		parsed, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			t.Time = parsed
			return nil
		}
		lastErr = err
	}
	return lastErr
}

// MarshalJSON implements json.Marshaler
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(t.Format(time.RFC3339))), nil
}

// CategoryRef is a category reference that the server sends either as a
// numeric id or as a display name depending on the endpoint.
type CategoryRef string

// UnmarshalJSON implements json.Unmarshaler
func (c *CategoryRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = CategoryRef(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = CategoryRef(n.String())
	return nil
}

// QnaSummary is one row of the Q&A list
type QnaSummary struct {
	QuestionID   int64     `json:"questionId"`
	CategoryName string    `json:"categoryName"`
	Title        string    `json:"title"`
	Content      string    `json:"content,omitempty"`
	Nickname     string    `json:"nickname,omitempty"`
	ViewCount    int       `json:"viewCount"`
	LikeCount    int       `json:"likeCount"`
	CommentCount int       `json:"commentCount"`
	AnswerBanker *string   `json:"answerBanker"`
	CreatedAt    Timestamp `json:"createdAt"`
	FilePaths    []string  `json:"filePaths"`
}

// CommunitySummary is one row of the community list
type CommunitySummary struct {
	PostID       int64     `json:"postId"`
	CategoryName string    `json:"categoryName"`
	Title        string    `json:"title"`
	Content      string    `json:"content,omitempty"`
	Nickname     string    `json:"nickname,omitempty"`
	Location     string    `json:"location,omitempty"`
	ViewCount    int       `json:"viewCount"`
	LikeCount    int       `json:"likeCount"`
	ScrapCount   int       `json:"scrapCount"`
	CommentCount int       `json:"commentCount"`
	CreatedAt    Timestamp `json:"createdAt"`
	FilePaths    []string  `json:"filePaths"`
}

// Answer is a banker's answer to a question
type Answer struct {
	AnswerID   int64     `json:"answerId"`
	BankerID   int64     `json:"bankerId"`
	BankerName string    `json:"bankerName"`
	BranchName string    `json:"branchName,omitempty"`
	Content    string    `json:"content"`
	CreatedAt  Timestamp `json:"createdAt"`
}

// Comment is a comment on a question or a community post
type Comment struct {
	CommentID int64     `json:"commentId"`
	Nickname  string    `json:"nickname"`
	Content   string    `json:"content"`
	CreatedAt Timestamp `json:"createdAt"`
}

// QuestionDetail is the full question view
type QuestionDetail struct {
	QuestionID   int64       `json:"questionId"`
	CustomerID   int64       `json:"customerId"`
	CategoryID   CategoryRef `json:"categoryId"`
	CategoryName string      `json:"categoryName,omitempty"`
	Title        string      `json:"title"`
	Content      string      `json:"content"`
	Nickname     string      `json:"nickname"`
	ViewCount    int         `json:"viewCount"`
	LikeCount    int         `json:"likeCount"`
	CreatedAt    Timestamp   `json:"createdAt"`
	FilePaths    []string    `json:"filePaths"`
	Answer       *Answer     `json:"answer"`
	CommentList  []Comment   `json:"commentList"`
}

// CommunityDetail is the full community post view
type CommunityDetail struct {
	PostID       int64     `json:"postId"`
	CustomerID   int64     `json:"customerId"`
	CategoryName string    `json:"categoryName"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Nickname     string    `json:"nickname"`
	Location     string    `json:"location"`
	ViewCount    int       `json:"viewCount"`
	LikeCount    int       `json:"likeCount"`
	ScrapCount   int       `json:"scrapCount"`
	CreatedAt    Timestamp `json:"createdAt"`
	FilePaths    []string  `json:"filePaths"`
	CommentList  []Comment `json:"commentList"`
}

// CustomerSummary is an entry of the district's most active users
type CustomerSummary struct {
	CustomerID   int64  `json:"customerId"`
	Nickname     string `json:"nickname"`
	CommentCount int    `json:"commentCount"`
}

// Keyword is a trending keyword in a district
type Keyword struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// BankerProfile is a banker listed for a district
type BankerProfile struct {
	BankerID   int64  `json:"bankerId"`
	Name       string `json:"name"`
	BranchName string `json:"branchName"`
	Interests  string `json:"interests,omitempty"`
	Photo      string `json:"photo,omitempty"`
	Desc       string `json:"desc,omitempty"`
}

// ScrappedQuestion is an entry of the user's question scrap list
type ScrappedQuestion struct {
	QuestionID   int64     `json:"questionId"`
	CategoryName string    `json:"categoryName"`
	Title        string    `json:"title"`
	ViewCount    int       `json:"viewCount"`
	LikeCount    int       `json:"likeCount"`
	CreatedAt    Timestamp `json:"createdAt"`
}

// ScrappedPost is an entry of the user's community scrap list
type ScrappedPost struct {
	PostID       int64     `json:"postId"`
	CategoryName string    `json:"categoryName"`
	Title        string    `json:"title"`
	ViewCount    int       `json:"viewCount"`
	LikeCount    int       `json:"likeCount"`
	CreatedAt    Timestamp `json:"createdAt"`
}

// Request bodies

type ScrapQuestionRequest struct {
	QuestionID int64 `json:"questionId"`
	CustomerID int64 `json:"customerId"`
}

type ScrapPostRequest struct {
	PostID     int64 `json:"postId"`
	CustomerID int64 `json:"customerId"`
}

type LikePostRequest struct {
	PostID     int64 `json:"postId"`
	CustomerID int64 `json:"customerId"`
}

type AnswerRequest struct {
	BankerID int64  `json:"bankerId"`
	Content  string `json:"content"`
}

type QuestionRegistration struct {
	Title        string `json:"title"`
	Content      string `json:"content"`
	CustomerID   int64  `json:"customerId"`
	CategoryName string `json:"categoryName"`
	Location     string `json:"location"`
}

type PostRegistration struct {
	Title        string `json:"title"`
	CustomerID   int64  `json:"customerId"`
	CategoryName string `json:"categoryName"`
	Location     string `json:"location"`
	Content      string `json:"content"`
}

// Attachment is a file sent as a multipart "file" part.
type Attachment interface {
	FileName() string
	ContentType() string
	Open() (io.ReadCloser, error)
}

// ErrorResponse is the error body the server sends on failure
type ErrorResponse struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
}

// CustomerInfo is the customer's account information shown before editing
type CustomerInfo struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	Nickname      string `json:"nickname"`
	Phone         string `json:"phone"`
	BirthDate     string `json:"birthDate,omitempty"`
	Gender        string `json:"gender,omitempty"`
	Location      string `json:"location,omitempty"`
}

// CustomerInfoUpdate replaces the customer's editable account information
type CustomerInfoUpdate struct {
	Password  string `json:"password"`
	Nickname  string `json:"nickname"`
	BirthDate string `json:"birthDate,omitempty"`
	Gender    string `json:"gender,omitempty"`
	Location  string `json:"location,omitempty"`
	Phone     string `json:"phone"`
}

// BankerInfo is the banker's account information shown before editing
type BankerInfo struct {
	BankerName  string `json:"bankerName"`
	BankerEmail string `json:"bankerEmail"`
	BranchName  string `json:"branchName"`
}

// BankerInfoUpdate replaces the banker's editable account information
type BankerInfoUpdate struct {
	Password   string `json:"password"`
	BranchName string `json:"branchName"`
}

// BankerCard is the public profile card a banker shows to customers
type BankerCard struct {
	BankerID        int64    `json:"bankerId"`
	Name            string   `json:"name"`
	Specializations []string `json:"specializations"`
	Content         string   `json:"content"`
}

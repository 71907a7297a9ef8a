package api

import (
	"context"
	"fmt"

	"github.com/neighborbank/cli/pkg/logger"
)

// ScrapQuestion toggles a customer's scrap of a question. The server
// answers with a status message only.
func (c *Client) ScrapQuestion(ctx context.Context, req ScrapQuestionRequest) error {
	logger.Debug("Toggling question scrap", "question_id", req.QuestionID, "customer_id", req.CustomerID)

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		Post("/qna/scrap")

	return CheckResponse(resp, err)
}

// IsQuestionScrapped reports whether the customer has scrapped the question
func (c *Client) IsQuestionScrapped(ctx context.Context, customerID, questionID int64) (bool, error) {
	logger.Debug("Checking question scrap", "question_id", questionID, "customer_id", customerID)

	resp, err := c.http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/my/qna/scrap/%d/%d", customerID, questionID))
	if err := CheckResponse(resp, err); err != nil {
		return false, err
	}

	var scrapped bool
	if err := decodeBody(resp, &scrapped); err != nil {
		return false, err
	}
	return scrapped, nil
}

// ScrapPost toggles a customer's scrap of a community post
func (c *Client) ScrapPost(ctx context.Context, req ScrapPostRequest) error {
	logger.Debug("Toggling post scrap", "post_id", req.PostID, "customer_id", req.CustomerID)

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		Post("/post/scrap")

	return CheckResponse(resp, err)
}

// IsPostScrapped reports whether the customer has scrapped the post
func (c *Client) IsPostScrapped(ctx context.Context, customerID, postID int64) (bool, error) {
	logger.Debug("Checking post scrap", "post_id", postID, "customer_id", customerID)

	resp, err := c.http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/my/post/scrap/%d/%d", customerID, postID))
	if err := CheckResponse(resp, err); err != nil {
		return false, err
	}

	var scrapped bool
	if err := decodeBody(resp, &scrapped); err != nil {
		return false, err
	}
	return scrapped, nil
}

// LikePost toggles a like on a community post and returns the new like count
func (c *Client) LikePost(ctx context.Context, req LikePostRequest) (int, error) {
	logger.Debug("Toggling post like", "post_id", req.PostID, "customer_id", req.CustomerID)

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		Post("/post/dolike")
	if err := CheckResponse(resp, err); err != nil {
		return 0, err
	}

	var count int
	if err := decodeBody(resp, &count); err != nil {
		return 0, err
	}
	return count, nil
}

// GetScrappedQuestions retrieves the questions a customer has scrapped
func (c *Client) GetScrappedQuestions(ctx context.Context, customerID int64) ([]ScrappedQuestion, error) {
	logger.Debug("Fetching scrapped questions", "customer_id", customerID)

	var questions []ScrappedQuestion
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&questions).
		Get(fmt.Sprintf("/my/qna/scrapList/%d", customerID))
	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return questions, nil
}

// GetScrappedPosts retrieves the community posts a customer has scrapped
func (c *Client) GetScrappedPosts(ctx context.Context, customerID int64) ([]ScrappedPost, error) {
	logger.Debug("Fetching scrapped posts", "customer_id", customerID)

	var posts []ScrappedPost
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&posts).
		Get(fmt.Sprintf("/my/post/scrapList/%d", customerID))
	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return posts, nil
}

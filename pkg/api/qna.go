package api

import (
	"context"
	"fmt"

	"github.com/neighborbank/cli/pkg/logger"
)

// GetQnaList retrieves every question, newest first
func (c *Client) GetQnaList(ctx context.Context) ([]QnaSummary, error) {
	logger.Debug("Fetching Q&A list")

	var questions []QnaSummary
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&questions).
		Get("/qnalist")
	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return questions, nil
}

// GetQnaListByCategory retrieves the questions of one category
func (c *Client) GetQnaListByCategory(ctx context.Context, categoryID int) ([]QnaSummary, error) {
	logger.Debug("Fetching Q&A list", "category_id", categoryID)

	var questions []QnaSummary
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&questions).
		Get(fmt.Sprintf("/qnalist/%d", categoryID))
	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return questions, nil
}

// GetMyQuestions retrieves the questions a customer has asked
func (c *Client) GetMyQuestions(ctx context.Context, customerID int64) ([]QnaSummary, error) {
	logger.Debug("Fetching my questions", "customer_id", customerID)

	var questions []QnaSummary
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&questions).
		Get(fmt.Sprintf("/mypage/questions/%d", customerID))
	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return questions, nil
}

// GetQuestionDetail retrieves a question with its answer and comments
func (c *Client) GetQuestionDetail(ctx context.Context, questionID int64) (*QuestionDetail, error) {
	logger.Debug("Fetching question", "question_id", questionID)

	var detail QuestionDetail
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&detail).
		Get(fmt.Sprintf("/post/%d", questionID))
	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &detail, nil
}

// PostAnswer submits a banker's answer to a question
func (c *Client) PostAnswer(ctx context.Context, questionID int64, req AnswerRequest) error {
	logger.Debug("Posting answer", "question_id", questionID, "banker_id", req.BankerID)

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		Post(fmt.Sprintf("/post/answer/%d", questionID))

	return CheckResponse(resp, err)
}

// UpdateQuestion modifies the title, category or content of a question
func (c *Client) UpdateQuestion(ctx context.Context, questionID int64, req QuestionRegistration) error {
	logger.Debug("Updating question", "question_id", questionID)

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		Post(fmt.Sprintf("/qna/modify/%d", questionID))

	return CheckResponse(resp, err)
}

// DeleteQuestion deletes a question
func (c *Client) DeleteQuestion(ctx context.Context, questionID int64) error {
	logger.Debug("Deleting question", "question_id", questionID)

	resp, err := c.http.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/qna/delete/%d", questionID))

	return CheckResponse(resp, err)
}

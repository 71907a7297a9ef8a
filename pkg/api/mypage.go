package api

import (
	"context"
	"strconv"

	"github.com/neighborbank/cli/pkg/logger"
)

// GetCustomerInfo retrieves the customer's account information
func (c *Client) GetCustomerInfo(ctx context.Context, customerID int64) (*CustomerInfo, error) {
	logger.Debug("Fetching customer info", "customer_id", customerID)

	var info CustomerInfo
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("customerId", strconv.FormatInt(customerID, 10)).
		SetResult(&info).
		Get("/my/edit/info")
	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &info, nil
}

// UpdateCustomerInfo submits the customer's edited account information
func (c *Client) UpdateCustomerInfo(ctx context.Context, customerID int64, req CustomerInfoUpdate) error {
	logger.Debug("Updating customer info", "customer_id", customerID)

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("customerId", strconv.FormatInt(customerID, 10)).
		SetBody(req).
		Put("/my/edit/info/submit")

	return CheckResponse(resp, err)
}

// GetBankerInfo retrieves the banker's account information
func (c *Client) GetBankerInfo(ctx context.Context, bankerID int64) (*BankerInfo, error) {
	logger.Debug("Fetching banker info", "banker_id", bankerID)

	var info BankerInfo
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("bankerId", strconv.FormatInt(bankerID, 10)).
		SetResult(&info).
		Get("/my/bankers/edit/info")
	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &info, nil
}

// UpdateBankerInfo submits the banker's edited account information
func (c *Client) UpdateBankerInfo(ctx context.Context, bankerID int64, req BankerInfoUpdate) error {
	logger.Debug("Updating banker info", "banker_id", bankerID)

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("bankerId", strconv.FormatInt(bankerID, 10)).
		SetBody(req).
		Put("/my/bankers/edit/info/submit")

	return CheckResponse(resp, err)
}

// UpdateBankerCard replaces the banker's profile card. photo may be nil to
// keep the current picture.
func (c *Client) UpdateBankerCard(ctx context.Context, card BankerCard, photo Attachment) error {
	logger.Debug("Updating banker card", "banker_id", card.BankerID, "photo", photo != nil)

	var files []Attachment
	if photo != nil {
		files = append(files, photo)
	}
	return c.postForm(ctx, "/my/bankers/mypage/modifyProfile", "profile", card, files)
}

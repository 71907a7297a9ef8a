package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/neighborbank/cli/pkg/logger"
)

// GetCommunityList retrieves the community posts of a district
func (c *Client) GetCommunityList(ctx context.Context, location string) ([]CommunitySummary, error) {
	logger.Debug("Fetching community list", "location", location)

	var posts []CommunitySummary
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&posts).
		Get("/community/" + url.PathEscape(location))
	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return posts, nil
}

// GetCommunityDetail retrieves a community post with its comments
func (c *Client) GetCommunityDetail(ctx context.Context, postID int64) (*CommunityDetail, error) {
	logger.Debug("Fetching community post", "post_id", postID)

	var detail CommunityDetail
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&detail).
		Get(fmt.Sprintf("/community/detail/%d", postID))
	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &detail, nil
}

// DeleteCommunityPost deletes a community post
func (c *Client) DeleteCommunityPost(ctx context.Context, postID int64) error {
	logger.Debug("Deleting community post", "post_id", postID)

	resp, err := c.http.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/community/delete/%d", postID))

	return CheckResponse(resp, err)
}

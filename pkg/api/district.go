package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/neighborbank/cli/pkg/logger"
)

func districtPath(location, section string) string {
	return fmt.Sprintf("/district/%s/%s", url.PathEscape(location), section)
}

// GetRecentQuestions retrieves the newest questions asked in a district
func (c *Client) GetRecentQuestions(ctx context.Context, location string) ([]QnaSummary, error) {
	logger.Debug("Fetching recent district questions", "location", location)

	var questions []QnaSummary
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&questions).
		Get(districtPath(location, "recentQna"))
	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return questions, nil
}

// GetHotPosts retrieves the most engaged community posts of a district
func (c *Client) GetHotPosts(ctx context.Context, location string) ([]CommunitySummary, error) {
	logger.Debug("Fetching hot district posts", "location", location)

	var posts []CommunitySummary
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&posts).
		Get(districtPath(location, "hotPost"))
	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return posts, nil
}

// GetActiveUsers retrieves the most active commenters of a district
func (c *Client) GetActiveUsers(ctx context.Context, location string) ([]CustomerSummary, error) {
	logger.Debug("Fetching active district users", "location", location)

	var users []CustomerSummary
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&users).
		Get(districtPath(location, "activeUser"))
	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return users, nil
}

// GetHotKeywords retrieves the trending keywords of a district
func (c *Client) GetHotKeywords(ctx context.Context, location string) ([]Keyword, error) {
	logger.Debug("Fetching district keywords", "location", location)

	var keywords []Keyword
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&keywords).
		Get(districtPath(location, "keywords"))
	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return keywords, nil
}

// GetBankerProfiles retrieves the bankers serving a district
func (c *Client) GetBankerProfiles(ctx context.Context, location string) ([]BankerProfile, error) {
	logger.Debug("Fetching banker profiles", "location", location)

	var bankers []BankerProfile
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("location", location).
		SetResult(&bankers).
		Get("/bankers/profileList")
	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return bankers, nil
}

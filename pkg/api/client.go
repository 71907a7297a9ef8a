package api

import (
	"github.com/go-resty/resty/v2"
	"github.com/neighborbank/cli/pkg/client"
)

// Client calls the Neighbor Bank REST API. Every method takes a context so
// a view that goes away can abandon its requests.
type Client struct {
	http *resty.Client
}

// NewClient wraps an already configured resty client.
func NewClient(rc *resty.Client) *Client {
	return &Client{http: rc}
}

// Default returns a Client backed by the shared, config-driven HTTP client.
func Default() *Client {
	return NewClient(client.GetClient())
}

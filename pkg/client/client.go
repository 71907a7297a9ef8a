package client

import (
	"time"

	"github.com/go-resty/resty/v2"
	json "github.com/json-iterator/go"
	"github.com/neighborbank/cli/pkg/config"
	"github.com/neighborbank/cli/pkg/logger"
)

// UserAgent is sent with every request
const UserAgent = "NeighborBank-CLI/0.1.0"

var httpClient *resty.Client

// New builds a resty client for the given base URL with request/response logging.
func New(baseURL string, timeout time.Duration) *resty.Client {
	c := resty.New()

	c.SetBaseURL(baseURL)
	c.SetTimeout(timeout)
	c.SetHeader("User-Agent", UserAgent)
	c.SetHeader("Accept", "application/json")
	c.JSONMarshal = json.ConfigCompatibleWithStandardLibrary.Marshal
	c.JSONUnmarshal = json.ConfigCompatibleWithStandardLibrary.Unmarshal

	c.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logger.Debug("HTTP Request", "method", req.Method, "url", req.URL)
		return nil
	})

	c.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logger.Debug("HTTP Response",
			"method", resp.Request.Method,
			"url", resp.Request.URL,
			"status", resp.StatusCode(),
			"elapsed", resp.Time())
		return nil
	})

	return c
}

// Init initializes the HTTP client from configuration
func Init() {
	baseURL := config.GetString("api.base_url")
	timeout := time.Duration(config.GetInt("api.timeout")) * time.Second
	httpClient = New(baseURL, timeout)
}

// GetClient returns the HTTP client
func GetClient() *resty.Client {
	if httpClient == nil {
		Init()
	}
	return httpClient
}

// SetAuthToken sets the authorization token
func SetAuthToken(token string) {
	GetClient().SetAuthToken(token)
}

// ClearAuthToken clears the authorization token
func ClearAuthToken() {
	// Re-init the client to clear auth headers
	Init()
}

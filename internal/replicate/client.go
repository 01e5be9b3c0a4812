package replicate

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL         = "https://api.replicate.com/v1"
	defaultPollingTimeout  = 5 * time.Minute
	defaultPollingInterval = time.Second
)

// Config carries everything the client needs. Credentials are passed in
// explicitly; the client never reads the process environment.
type Config struct {
	Token      string
	BaseURL    string
	HTTPClient *http.Client

	// Polling knobs exist for tests; zero values use the defaults above.
	PollingTimeout  time.Duration
	PollingInterval time.Duration
}

type Client struct {
	cfg Config
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}
	if cfg.PollingTimeout <= 0 {
		cfg.PollingTimeout = defaultPollingTimeout
	}
	if cfg.PollingInterval <= 0 {
		cfg.PollingInterval = defaultPollingInterval
	}
	return &Client{cfg: cfg}
}

func (c *Client) baseURL() string {
	return strings.TrimRight(c.cfg.BaseURL, "/")
}

func (c *Client) predictionsURL() string {
	return c.baseURL() + "/predictions"
}

func (c *Client) modelPredictionsURL(owner, name string) string {
	return fmt.Sprintf("%s/models/%s/%s/predictions", c.baseURL(), owner, name)
}

func classifyNetworkErr(err error) string {
	if err == nil {
		return "network_error"
	}
	if errors.Is(err, context.Canceled) {
		return "canceled"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return "timeout"
	}
	return "network_error"
}

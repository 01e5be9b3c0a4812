package openai

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.openai.com/v1"

// Config carries everything the client needs. Credentials are passed in
// explicitly; the client never reads the process environment.
type Config struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

type Client struct {
	cfg Config
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 5 * time.Minute}
	}
	return &Client{cfg: cfg}
}

func (c *Client) imagesURL() string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + "/images/generations"
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    any    `json:"code"`
	} `json:"error"`
}

func stringifyCode(code any, fallback string) string {
	if v, ok := code.(string); ok && v != "" {
		return v
	}
	if fallback != "" {
		return fallback
	}
	return "unknown"
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

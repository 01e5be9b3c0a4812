// Package genimg normalizes two image-generation HTTP APIs, OpenAI's
// images endpoint and Replicate's predictions endpoint, behind one
// interface: supply a text prompt and options, receive saved image files.
package genimg

import (
	"context"
	"net/http"
	"time"

	"github.com/genimg/genimg/internal/openai"
	"github.com/genimg/genimg/internal/provider"
	"github.com/genimg/genimg/internal/replicate"
)

// Provider identifies an external image-generation API vendor.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderReplicate Provider = "replicate"
)

// Environment variables the CLI reads credentials from. The library itself
// never touches the environment; keys arrive through Config.
const (
	EnvOpenAIKey      = "OPENAI_API_KEY"
	EnvReplicateToken = "REPLICATE_API_TOKEN"
)

// ParseProvider maps a provider tag to a known Provider. An empty tag
// selects OpenAI.
func ParseProvider(s string) (Provider, error) {
	switch Provider(s) {
	case "":
		return ProviderOpenAI, nil
	case ProviderOpenAI:
		return ProviderOpenAI, nil
	case ProviderReplicate:
		return ProviderReplicate, nil
	}
	return "", &UnsupportedProviderError{Provider: s}
}

// Options are the provider-neutral generation options. Fields a provider
// does not support are ignored when mapping to its payload.
type Options struct {
	Prompt   string
	Provider Provider
	Model    string
	Size     string

	// OpenAI only.
	Quality     string
	Format      string // png, jpeg or webp
	Compression *int   // 0-100, jpeg/webp only
	Background  string

	// Replicate only: extra model inputs merged into the prediction input.
	ExtraInputs map[string]any

	Count int
	Debug bool
}

// Request is one generation call: options plus the output target.
type Request struct {
	Options

	// OutputDir is created if missing; empty means the current directory.
	OutputDir string
	// Filename, when set, overrides the prompt-derived base name.
	Filename string

	Timeout time.Duration
}

// Config wires the client. Credentials are explicit: resolve them from the
// environment (or anywhere else) at the process boundary and pass them in.
type Config struct {
	OpenAIKey      string
	ReplicateToken string

	OpenAIBaseURL    string
	ReplicateBaseURL string

	HTTPClient *http.Client
}

type openaiBackend interface {
	GenerateImages(ctx context.Context, p provider.OpenAIPayload) ([]provider.Image, error)
}

type replicateBackend interface {
	GenerateImages(ctx context.Context, p provider.ReplicatePayload) ([]provider.Image, error)
}

// Client generates images and saves them to disk.
type Client struct {
	cfg       Config
	openai    openaiBackend
	replicate replicateBackend
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		openai: openai.NewClient(openai.Config{
			APIKey:     cfg.OpenAIKey,
			BaseURL:    cfg.OpenAIBaseURL,
			HTTPClient: cfg.HTTPClient,
		}),
		replicate: replicate.NewClient(replicate.Config{
			Token:      cfg.ReplicateToken,
			BaseURL:    cfg.ReplicateBaseURL,
			HTTPClient: cfg.HTTPClient,
		}),
	}
}

func applyTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

package genimg

import (
	"context"
	"fmt"

	"github.com/genimg/genimg/internal/log"
	"github.com/genimg/genimg/internal/output"
	"github.com/genimg/genimg/internal/provider"
)

// Generate runs one generation call end to end: map options to the
// provider payload, execute the request, then save every returned image.
// It returns the saved absolute paths in the provider's output order.
// Files written before a failing step are kept.
func (c *Client) Generate(ctx context.Context, req Request) ([]string, error) {
	ctx, cancel := applyTimeout(ctx, req.Timeout)
	defer cancel()

	pl, err := buildPayload(req.Options)
	if err != nil {
		return nil, err
	}

	if err := c.checkCredential(pl); err != nil {
		return nil, err
	}

	logger := log.FromContextOrDiscard(ctx)
	if req.Debug {
		logger.Debug("built provider payload", "provider", pl.ProviderName(), "payload", fmt.Sprintf("%+v", pl))
	}

	images, err := c.dispatch(ctx, pl)
	if err != nil {
		return nil, &ProviderRequestError{Provider: Provider(pl.ProviderName()), Cause: err}
	}

	outDir := req.OutputDir
	if outDir == "" {
		outDir = "."
	}
	// The format option is an OpenAI capability; Replicate outputs always
	// save as png.
	ext := "png"
	if p, ok := pl.(provider.OpenAIPayload); ok && p.OutputFormat != "" {
		ext = p.OutputFormat
	}

	paths := make([]string, 0, len(images))
	for i, img := range images {
		path, err := output.Save(outDir, req.Filename, req.Prompt, i, ext, img.Bytes)
		if err != nil {
			return paths, &FilesystemError{Path: path, Cause: err}
		}
		logger.Debug("saved image", "path", path, "bytes", len(img.Bytes), "media_type", img.MediaType)
		paths = append(paths, path)
	}
	return paths, nil
}

func (c *Client) checkCredential(pl provider.Payload) error {
	switch pl.(type) {
	case provider.OpenAIPayload:
		if c.cfg.OpenAIKey == "" {
			return &MissingCredentialError{Provider: ProviderOpenAI, EnvVar: EnvOpenAIKey}
		}
	case provider.ReplicatePayload:
		if c.cfg.ReplicateToken == "" {
			return &MissingCredentialError{Provider: ProviderReplicate, EnvVar: EnvReplicateToken}
		}
	}
	return nil
}

// dispatch is the single place the payload union is unpacked.
func (c *Client) dispatch(ctx context.Context, pl provider.Payload) ([]provider.Image, error) {
	switch p := pl.(type) {
	case provider.OpenAIPayload:
		return c.openai.GenerateImages(ctx, p)
	case provider.ReplicatePayload:
		return c.replicate.GenerateImages(ctx, p)
	default:
		return nil, &UnsupportedProviderError{Provider: pl.ProviderName()}
	}
}

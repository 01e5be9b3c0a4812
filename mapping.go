package genimg

import (
	"strconv"
	"strings"

	"github.com/genimg/genimg/internal/provider"
)

// Canonical defaults. Older provider defaults (dall-e-3, "standard"
// quality) remain selectable explicitly but are never defaulted to.
const (
	DefaultOpenAIModel    = "gpt-image-1"
	DefaultOpenAISize     = "1024x1024"
	DefaultOpenAIQuality  = "auto"
	DefaultReplicateModel = "stability-ai/sdxl:39ed52f2a78e934b3ba6e2a89f5b1c712de7dfea535525255b1aa35c5565e08b"

	defaultDimension = 1024
)

var validFormats = map[string]bool{"png": true, "jpeg": true, "webp": true}

// buildPayload translates provider-neutral options into the payload variant
// for the target provider. Only fields meaningful to that provider are
// populated; everything else is dropped here so provider-specific names
// never leak past this boundary.
func buildPayload(opts Options) (provider.Payload, error) {
	if strings.TrimSpace(opts.Prompt) == "" {
		return nil, &InvalidOptionError{Option: "prompt", Reason: "must not be empty"}
	}
	if opts.Count < 0 {
		return nil, &InvalidOptionError{Option: "count", Reason: "must be positive"}
	}
	n := opts.Count
	if n == 0 {
		n = 1
	}

	p, err := ParseProvider(string(opts.Provider))
	if err != nil {
		return nil, err
	}

	switch p {
	case ProviderOpenAI:
		pl, err := buildOpenAIPayload(opts, n)
		if err != nil {
			return nil, err
		}
		return pl, nil
	case ProviderReplicate:
		pl, err := buildReplicatePayload(opts, n)
		if err != nil {
			return nil, err
		}
		return pl, nil
	}
	return nil, &UnsupportedProviderError{Provider: string(opts.Provider)}
}

func buildOpenAIPayload(opts Options, n int) (provider.OpenAIPayload, error) {
	out := provider.OpenAIPayload{
		Model:   opts.Model,
		Prompt:  opts.Prompt,
		Size:    opts.Size,
		Quality: opts.Quality,
		N:       n,
	}
	if out.Model == "" {
		out.Model = DefaultOpenAIModel
	}
	if out.Size == "" {
		out.Size = DefaultOpenAISize
	}
	if out.Quality == "" {
		out.Quality = DefaultOpenAIQuality
	}

	if opts.Format != "" {
		if !validFormats[opts.Format] {
			return provider.OpenAIPayload{}, &InvalidOptionError{Option: "format", Reason: "must be png, jpeg or webp"}
		}
		out.OutputFormat = opts.Format
	}
	if opts.Compression != nil {
		if *opts.Compression < 0 || *opts.Compression > 100 {
			return provider.OpenAIPayload{}, &InvalidOptionError{Option: "compression", Reason: "must be between 0 and 100"}
		}
		out.OutputCompression = opts.Compression
	}
	if opts.Background != "" {
		out.Background = opts.Background
	}
	return out, nil
}

func buildReplicatePayload(opts Options, n int) (provider.ReplicatePayload, error) {
	model := opts.Model
	if model == "" {
		model = DefaultReplicateModel
	}
	owner, name, version, err := parseReplicateModel(model)
	if err != nil {
		return provider.ReplicatePayload{}, err
	}

	width, height := parseSize(opts.Size)

	return provider.ReplicatePayload{
		Owner:      owner,
		Name:       name,
		Version:    version,
		Prompt:     opts.Prompt,
		Width:      width,
		Height:     height,
		NumOutputs: n,
		Extra:      opts.ExtraInputs,
	}, nil
}

// parseReplicateModel splits "owner/model" or "owner/model:version".
func parseReplicateModel(model string) (owner, name, version string, err error) {
	ref := model
	if i := strings.IndexByte(ref, ':'); i >= 0 {
		ref, version = ref[:i], ref[i+1:]
	}
	owner, name, ok := strings.Cut(ref, "/")
	if !ok || owner == "" || name == "" {
		return "", "", "", &InvalidOptionError{Option: "model", Reason: "replicate models must look like owner/model or owner/model:version"}
	}
	return owner, name, version, nil
}

// parseSize splits a WIDTHxHEIGHT string. Absent or unparsable sizes fall
// back to 1024 for both dimensions.
func parseSize(size string) (width, height int) {
	width, height = defaultDimension, defaultDimension
	w, h, ok := strings.Cut(size, "x")
	if !ok {
		return width, height
	}
	pw, errW := strconv.Atoi(w)
	ph, errH := strconv.Atoi(h)
	if errW != nil || errH != nil || pw <= 0 || ph <= 0 {
		return defaultDimension, defaultDimension
	}
	return pw, ph
}

package provider

// Image is a single generated image, already decoded to raw bytes.
type Image struct {
	Bytes     []byte
	MediaType string
}

// Payload is the request body shape for one specific provider. It is a
// sealed union: exactly one variant exists per supported provider, and each
// variant carries only the fields that provider understands.
type Payload interface {
	ProviderName() string
}

// OpenAIPayload maps onto POST /v1/images/generations. Images come back
// inline as base64.
type OpenAIPayload struct {
	Model   string `json:"model"`
	Prompt  string `json:"prompt"`
	Size    string `json:"size"`
	Quality string `json:"quality"`
	N       int    `json:"n"`

	// Attached only when explicitly supplied by the caller.
	OutputFormat      string `json:"output_format,omitempty"`
	OutputCompression *int   `json:"output_compression,omitempty"`
	Background        string `json:"background,omitempty"`
}

func (OpenAIPayload) ProviderName() string { return "openai" }

// ReplicatePayload maps onto the predictions API. Images come back as
// remote URLs that must each be fetched separately.
type ReplicatePayload struct {
	// Owner/Name identify the model route; Version, when non-empty, pins a
	// specific version and switches the request to the versioned endpoint.
	Owner   string
	Name    string
	Version string

	Prompt     string
	Width      int
	Height     int
	NumOutputs int

	// Extra holds caller-supplied model inputs merged into the prediction
	// input map. Reserved keys are rejected before a payload is built.
	Extra map[string]any
}

func (ReplicatePayload) ProviderName() string { return "replicate" }

// Input assembles the prediction input map sent to Replicate.
func (p ReplicatePayload) Input() map[string]any {
	in := map[string]any{
		"prompt":      p.Prompt,
		"width":       p.Width,
		"height":      p.Height,
		"num_outputs": p.NumOutputs,
	}
	for k, v := range p.Extra {
		in[k] = v
	}
	return in
}

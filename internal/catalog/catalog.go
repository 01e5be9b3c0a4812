// Package catalog lists the image models each provider is known to serve.
// The list is informational: any model identifier the provider accepts can
// still be passed through explicitly.
package catalog

import "github.com/samber/lo"

type Model struct {
	ID       string
	Name     string
	Provider string
	Sizes    []string
	Default  bool
}

var models = []Model{
	{
		ID:       "gpt-image-1",
		Name:     "GPT Image 1",
		Provider: "openai",
		Sizes:    []string{"1024x1024", "1536x1024", "1024x1536"},
		Default:  true,
	},
	{
		ID:       "dall-e-3",
		Name:     "DALL-E 3",
		Provider: "openai",
		Sizes:    []string{"1024x1024", "1792x1024", "1024x1792"},
	},
	{
		ID:       "dall-e-2",
		Name:     "DALL-E 2",
		Provider: "openai",
		Sizes:    []string{"256x256", "512x512", "1024x1024"},
	},
	{
		ID:       "stability-ai/sdxl",
		Name:     "Stable Diffusion XL",
		Provider: "replicate",
		Sizes:    []string{"1024x1024", "1152x896", "896x1152"},
		Default:  true,
	},
	{
		ID:       "black-forest-labs/flux-schnell",
		Name:     "FLUX.1 [schnell]",
		Provider: "replicate",
		Sizes:    []string{"1024x1024"},
	},
	{
		ID:       "black-forest-labs/flux-1.1-pro",
		Name:     "FLUX 1.1 [pro]",
		Provider: "replicate",
		Sizes:    []string{"1024x1024"},
	},
}

// All returns every catalog entry.
func All() []Model {
	return append([]Model(nil), models...)
}

// ByProvider returns the entries for one provider, default model first.
func ByProvider(provider string) []Model {
	filtered := lo.Filter(models, func(m Model, _ int) bool {
		return m.Provider == provider
	})
	defaults, rest := lo.FilterReject(filtered, func(m Model, _ int) bool {
		return m.Default
	})
	return append(defaults, rest...)
}

// Providers returns the distinct provider tags present in the catalog.
func Providers() []string {
	return lo.Uniq(lo.Map(models, func(m Model, _ int) string {
		return m.Provider
	}))
}

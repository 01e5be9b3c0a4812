package genimg

import (
	"github.com/genimg/genimg/internal/catalog"
	"github.com/samber/lo"
)

// ModelInfo describes one catalog entry.
type ModelInfo struct {
	ID       string
	Name     string
	Provider Provider
	Sizes    []string
	Default  bool
}

// Models lists the known image models for a provider, default first. An
// empty provider tag lists every provider's models.
func Models(providerTag string) ([]ModelInfo, error) {
	var entries []catalog.Model
	if providerTag == "" {
		entries = catalog.All()
	} else {
		p, err := ParseProvider(providerTag)
		if err != nil {
			return nil, err
		}
		entries = catalog.ByProvider(string(p))
	}

	return lo.Map(entries, func(m catalog.Model, _ int) ModelInfo {
		return ModelInfo{
			ID:       m.ID,
			Name:     m.Name,
			Provider: Provider(m.Provider),
			Sizes:    m.Sizes,
			Default:  m.Default,
		}
	}), nil
}

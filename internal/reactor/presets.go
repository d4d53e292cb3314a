package reactor

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var presetsYAML []byte

// Presets returns the named parameter sets shipped with the service,
// the prefilled defaults a caller can start from.
func Presets() (map[string]ReactionParameters, error) {
	presets := make(map[string]ReactionParameters)
	if err := yaml.Unmarshal(presetsYAML, &presets); err != nil {
		return nil, fmt.Errorf("parsing presets: %w", err)
	}
	return presets, nil
}

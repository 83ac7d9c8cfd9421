package mixture

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

var (
	// ErrPresetsNotFound is returned when no presets.toml exists yet.
	ErrPresetsNotFound = errors.New("presets.toml not found")
	// ErrPresetEmpty is returned for a preset with no components.
	ErrPresetEmpty = errors.New("preset has no components")
)

// Preset is one named mixture from presets.toml. Components use the
// same "formula:proportion" syntax as CLI input.
type Preset struct {
	Description string   `toml:"description,omitempty"`
	Components  []string `toml:"components"`
}

// Presets maps preset names to their definitions, e.g.
//
//	[thermite]
//	description = "classic iron-aluminium thermite"
//	components = ["Fe2O3:75", "Al:25"]
type Presets map[string]Preset

// LoadPresets reads and validates a presets.toml file.
func LoadPresets(path string) (Presets, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, ErrPresetsNotFound
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets: %w", err)
	}

	var presets Presets
	if err := toml.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}

	for name, p := range presets {
		if len(p.Components) == 0 {
			return nil, fmt.Errorf("preset %q: %w", name, ErrPresetEmpty)
		}
	}
	return presets, nil
}

// Get resolves a preset name into its component list. Component strings
// that do not parse are skipped, like malformed mixture-file lines.
func (p Presets) Get(name string) ([]Component, error) {
	preset, ok := p[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q", name)
	}

	var components []Component
	for _, s := range preset.Components {
		if c, ok := ParseLine(s); ok {
			components = append(components, c)
		}
	}
	if len(components) == 0 {
		return nil, fmt.Errorf("preset %q: %w", name, ErrPresetEmpty)
	}
	return components, nil
}

// Names returns the defined preset names in unspecified order.
func (p Presets) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	return names
}

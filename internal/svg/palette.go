package svg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// FerryStyle is the style tag with a dedicated stroke colour.
const FerryStyle = "ferry"

// Palette maps style tags to stroke colours ("#rrggbb").
type Palette struct {
	Default string            `yaml:"default"`
	Ferry   string            `yaml:"ferry"`
	Tags    map[string]string `yaml:"tags"`
}

// DefaultPalette strokes everything red except ferries, which are blue.
func DefaultPalette() Palette {
	return Palette{
		Default: "#c80a10",
		Ferry:   "#105ac8",
	}
}

// Stroke returns the colour for a style tag.
func (p Palette) Stroke(style string) string {
	if c, ok := p.Tags[style]; ok && c != "" {
		return c
	}
	if style == FerryStyle && p.Ferry != "" {
		return p.Ferry
	}
	return p.Default
}

// ParsePalette reads YAML overrides on top of DefaultPalette.
func ParsePalette(data []byte) (Palette, error) {
	p := DefaultPalette()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Palette{}, fmt.Errorf("parse palette: %w", err)
	}
	if p.Default == "" {
		p.Default = DefaultPalette().Default
	}
	return p, nil
}

// LoadPalette reads a YAML palette file. An empty path yields the default.
func LoadPalette(path string) (Palette, error) {
	if path == "" {
		return DefaultPalette(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Palette{}, fmt.Errorf("load palette: %w", err)
	}
	return ParsePalette(data)
}

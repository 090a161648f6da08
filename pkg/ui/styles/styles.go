// Package styles defines the visual styling of unbrew's terminal output.
//
// Styles have semantic names (Removing, Found, Dependency, Formula, Error)
// and are defined in the embedded styles.yaml with adaptive colors that
// follow the terminal's light or dark background. Each Styles value is bound
// to one writer through its own lipgloss renderer, so output going to a pipe
// or a buffer is rendered as plain text.
package styles

import (
	_ "embed"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

// Styles renders named styles for one writer.
type Styles struct {
	renderer *lipgloss.Renderer
	registry map[string]lipgloss.Style
}

// Parse decodes a styles definition.
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse styles data: %w", err)
	}
	return &config, nil
}

// New builds the embedded styles for w. When plain is true no escape
// sequences are emitted regardless of what w is.
func New(w io.Writer, plain bool) *Styles {
	config, err := Parse(embeddedStyles)
	if err != nil {
		// Unparseable styles degrade to plain output.
		config = &Config{}
	}
	return NewFromConfig(w, plain, config)
}

// NewFromConfig builds styles from an explicit definition.
func NewFromConfig(w io.Writer, plain bool, config *Config) *Styles {
	renderer := lipgloss.NewRenderer(w)
	if plain {
		renderer.SetColorProfile(termenv.Ascii)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(config.Colors))
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	registry := make(map[string]lipgloss.Style, len(config.Styles))
	for name, def := range config.Styles {
		registry[name] = buildStyle(renderer, colors, def)
	}

	return &Styles{renderer: renderer, registry: registry}
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(renderer *lipgloss.Renderer, colors map[string]lipgloss.AdaptiveColor, def StyleDef) lipgloss.Style {
	style := renderer.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if def.Foreground != "" {
		style = style.Foreground(lookupColor(colors, def.Foreground))
	}
	if def.Background != "" {
		style = style.Background(lookupColor(colors, def.Background))
	}

	return style
}

// lookupColor resolves a named color, treating unknown names as literal
// color values such as "#FF0000" or "205".
func lookupColor(colors map[string]lipgloss.AdaptiveColor, name string) lipgloss.TerminalColor {
	if color, ok := colors[name]; ok {
		return color
	}
	return lipgloss.Color(name)
}

// Render applies the named style to text. Unknown names render text as is.
func (s *Styles) Render(name, text string) string {
	style, ok := s.registry[name]
	if !ok {
		return text
	}
	return style.Render(text)
}

// Has reports whether a style with that name is defined.
func (s *Styles) Has(name string) bool {
	_, ok := s.registry[name]
	return ok
}

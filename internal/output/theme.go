package output

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"quizcore/internal/logger"
)

//go:embed themes/default.yaml
var defaultThemeData []byte

// themeConfig is the shape of a theme YAML file.
type themeConfig struct {
	Name   string                 `yaml:"name"`
	Styles map[string]styleConfig `yaml:"styles"`
}

// styleConfig defines the visual styling for one semantic element.
type styleConfig struct {
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Border     bool   `yaml:"border,omitempty"`
}

// ThemeProvider implements StyleProvider backed by lipgloss styles loaded
// from an embedded theme definition.
type ThemeProvider struct {
	name   string
	styles map[string]lipgloss.Style
}

// lipglossStyle adapts a lipgloss.Style to the TextStyle interface.
type lipglossStyle struct {
	style lipgloss.Style
}

func (l lipglossStyle) Render(text string) string {
	return l.style.Render(text)
}

// NewThemeProvider builds the default theme provider. A malformed embedded
// theme is a packaging mistake; it is logged and an empty provider is
// returned so the printers fall back to plain text.
func NewThemeProvider() *ThemeProvider {
	provider, err := loadTheme(defaultThemeData)
	if err != nil {
		logger.Error("failed to load embedded theme", "error", err)
		return &ThemeProvider{styles: map[string]lipgloss.Style{}}
	}
	return provider
}

func loadTheme(data []byte) (*ThemeProvider, error) {
	var config themeConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing theme: %w", err)
	}

	styles := make(map[string]lipgloss.Style, len(config.Styles))
	for semantic, sc := range config.Styles {
		styles[semantic] = createStyle(sc)
	}

	return &ThemeProvider{name: config.Name, styles: styles}, nil
}

func createStyle(config styleConfig) lipgloss.Style {
	style := lipgloss.NewStyle()

	if config.Foreground != "" {
		style = style.Foreground(lipgloss.Color(config.Foreground))
	}
	if config.Background != "" {
		style = style.Background(lipgloss.Color(config.Background))
	}
	if config.Bold {
		style = style.Bold(true)
	}
	if config.Italic {
		style = style.Italic(true)
	}
	if config.Underline {
		style = style.Underline(true)
	}
	if config.Border {
		style = style.Border(lipgloss.DoubleBorder()).Padding(0, 3)
	}

	return style
}

// Name returns the theme's identifier.
func (t *ThemeProvider) Name() string {
	return t.name
}

// GetStyle implements StyleProvider.GetStyle. Unknown semantics render
// unstyled.
func (t *ThemeProvider) GetStyle(semantic string) TextStyle {
	if style, ok := t.styles[semantic]; ok {
		return lipglossStyle{style: style}
	}
	return lipglossStyle{style: lipgloss.NewStyle()}
}

// IsAvailable implements StyleProvider.IsAvailable.
func (t *ThemeProvider) IsAvailable() bool {
	return len(t.styles) > 0
}

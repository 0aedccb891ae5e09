package output

// PlainTextStyle implements TextStyle for plain text output without any
// styling. Used as the fallback when no StyleProvider is available.
type PlainTextStyle struct {
	prefix string
}

// NewPlainTextStyle creates a plain text style with an optional semantic
// prefix.
func NewPlainTextStyle(prefix string) *PlainTextStyle {
	return &PlainTextStyle{prefix: prefix}
}

// Render implements TextStyle.Render for plain text output.
func (p *PlainTextStyle) Render(text string) string {
	if p.prefix != "" {
		return p.prefix + text
	}
	return text
}

// bannerTextStyle renders banner text as a bracketed line when no styling
// is available.
type bannerTextStyle struct{}

func (bannerTextStyle) Render(text string) string {
	return "== " + text + " =="
}

// PlainStyleProvider implements StyleProvider for plain text output with
// semantic prefixes, keeping notices distinguishable on non-terminal
// streams.
type PlainStyleProvider struct{}

// NewPlainStyleProvider creates a new plain style provider.
func NewPlainStyleProvider() *PlainStyleProvider {
	return &PlainStyleProvider{}
}

// GetStyle implements StyleProvider.GetStyle with semantic prefixes.
func (p *PlainStyleProvider) GetStyle(semantic string) TextStyle {
	switch semantic {
	case string(SemanticSuccess):
		return NewPlainTextStyle("")
	case string(SemanticWarning):
		return NewPlainTextStyle("warning: ")
	case string(SemanticError):
		return NewPlainTextStyle("error: ")
	case string(SemanticBanner):
		return bannerTextStyle{}
	default:
		return NewPlainTextStyle("")
	}
}

// IsAvailable implements StyleProvider.IsAvailable.
func (p *PlainStyleProvider) IsAvailable() bool {
	return true
}

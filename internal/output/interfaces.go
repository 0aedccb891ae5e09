// Package output provides the line-oriented output sink for quiz sessions.
// A Printer is bound to one session's stream and writes lines with optional
// semantic styling. Styling is injected through the StyleProvider interface,
// so the package depends on no concrete theme implementation and falls back
// to plain text when no provider is available.
package output

// StyleProvider is implemented by theme providers to supply styled text
// rendering. The output package depends only on this interface.
type StyleProvider interface {
	// GetStyle returns a TextStyle for the given semantic type, such as
	// "info", "success", "error", "prompt" or "banner".
	GetStyle(semantic string) TextStyle

	// IsAvailable reports whether the provider is ready to supply styles,
	// allowing the printer to fall back to plain text.
	IsAvailable() bool
}

// TextStyle renders text with styling. Implemented by lipgloss-backed
// styles and by the plain fallback.
type TextStyle interface {
	Render(text string) string
}

// SemanticType names the semantic meaning of a line for consistent styling.
type SemanticType string

const (
	// SemanticPlain is text without any semantic meaning.
	SemanticPlain SemanticType = "plain"
	// SemanticInfo is informational text.
	SemanticInfo SemanticType = "info"
	// SemanticSuccess is success or confirmation text.
	SemanticSuccess SemanticType = "success"
	// SemanticWarning is warning text.
	SemanticWarning SemanticType = "warning"
	// SemanticError is error notice text.
	SemanticError SemanticType = "error"
	// SemanticPrompt is the command or question prompt text.
	SemanticPrompt SemanticType = "prompt"
	// SemanticBanner is large emphasis text for greetings and scores.
	SemanticBanner SemanticType = "banner"
)

package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Printer is the output sink bound to one session's stream. It supports both
// plain and styled rendering and is safe for concurrent use.
type Printer struct {
	styleProvider StyleProvider
	writer        io.Writer
	forcePlain    bool

	mu sync.Mutex
}

// NewPrinter creates a new Printer with the given options.
// By default it writes plain text to os.Stdout.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{
		writer: os.Stdout,
	}

	for _, opt := range options {
		opt(p)
	}

	return p
}

// Println writes a plain line.
func (p *Printer) Println(text string) {
	p.output(SemanticPlain, text, true)
}

// Printf writes formatted plain text without an implicit newline.
func (p *Printer) Printf(format string, args ...interface{}) {
	p.output(SemanticPlain, fmt.Sprintf(format, args...), false)
}

// Info writes an informational line.
func (p *Printer) Info(text string) {
	p.output(SemanticInfo, text, true)
}

// Success writes a success line (typically green).
func (p *Printer) Success(text string) {
	p.output(SemanticSuccess, text, true)
}

// Warning writes a warning line (typically yellow).
func (p *Printer) Warning(text string) {
	p.output(SemanticWarning, text, true)
}

// Error writes an error notice line (typically red).
func (p *Printer) Error(text string) {
	p.output(SemanticError, text, true)
}

// Prompt writes prompt text without a trailing newline, so the reply is
// typed on the same line.
func (p *Printer) Prompt(text string) {
	p.output(SemanticPrompt, text, false)
}

// Banner writes text with banner emphasis. The banner style carries its own
// framing; the plain fallback renders a bracketed line.
func (p *Printer) Banner(text string) {
	p.output(SemanticBanner, text, true)
}

// output renders one write through the configured style provider.
func (p *Printer) output(semantic SemanticType, text string, addNewline bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var style TextStyle
	if !p.forcePlain && p.styleProvider != nil && p.styleProvider.IsAvailable() {
		style = p.styleProvider.GetStyle(string(semantic))
	} else {
		style = NewPlainStyleProvider().GetStyle(string(semantic))
	}

	result := style.Render(text)
	if addNewline && !strings.HasSuffix(result, "\n") {
		result += "\n"
	}

	// Write errors are deliberately dropped: the session loop detects a
	// dead transport on the next read.
	_, _ = fmt.Fprint(p.writer, result)
}

// SetWriter changes the output writer. Useful for tests.
func (p *Printer) SetWriter(writer io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.writer = writer
}

// IsStylable reports whether the printer can apply styles.
func (p *Printer) IsStylable() bool {
	return !p.forcePlain && p.styleProvider != nil && p.styleProvider.IsAvailable()
}

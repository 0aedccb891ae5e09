package output

import "io"

// Option is a functional option for configuring Printer instances.
type Option func(*Printer)

// WithStyles configures the printer to use the provided StyleProvider.
// If the provider is nil or not available, the printer falls back to plain
// text.
func WithStyles(provider StyleProvider) Option {
	return func(p *Printer) {
		if provider != nil && provider.IsAvailable() {
			p.styleProvider = provider
		}
	}
}

// WithWriter configures the printer to write to the given writer, typically
// the session's connection. Default is os.Stdout.
func WithWriter(writer io.Writer) Option {
	return func(p *Printer) {
		if writer != nil {
			p.writer = writer
		}
	}
}

// PlainText forces plain text output, ignoring any StyleProvider. Used for
// non-terminal streams and deterministic test output.
func PlainText() Option {
	return func(p *Printer) {
		p.forcePlain = true
	}
}

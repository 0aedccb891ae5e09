// Package session owns one connection's command loop: it greets the
// client, reads lines, tokenizes them into a command and an argument,
// dispatches to the registered handler and re-prompts after each handler
// completes. It also provides the question prompt primitive that the
// interactive commands compose from.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"quizcore/internal/commands"
	_ "quizcore/internal/commands/builtin" // register the quiz commands
	"quizcore/internal/logger"
	"quizcore/internal/store"
	"quizcore/pkg/quiztypes"
)

// ErrClosed is returned by Ask when the session's input ended before a
// reply arrived. It also covers transport failures; callers give up on the
// interaction and the loop terminates.
var ErrClosed = errors.New("session closed")

// Session is the live state of one connected client's command loop. One
// goroutine runs one session; no state is shared across sessions other
// than the item store.
type Session struct {
	id      string
	scanner *bufio.Scanner
	printer quiztypes.Printer
	store   quiztypes.ItemStore
	rng     *rand.Rand

	quitting bool
	closed   bool
}

// Option is a functional option for configuring Session instances.
type Option func(*Session)

// WithRand injects the session's random source, used by the play round.
// Tests inject a seeded source for deterministic draws.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// New creates a session reading lines from input and writing through
// printer. The store is shared across sessions.
func New(input io.Reader, printer quiztypes.Printer, st quiztypes.ItemStore, opts ...Option) *Session {
	s := &Session{
		id:      uuid.New().String(),
		scanner: bufio.NewScanner(input),
		printer: printer,
		store:   st,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return s
}

// ID returns the session's connection identifier.
func (s *Session) ID() string {
	return s.id
}

// Store returns the shared item store.
func (s *Session) Store() quiztypes.ItemStore {
	return s.store
}

// Printer returns the output sink bound to this session's stream.
func (s *Session) Printer() quiztypes.Printer {
	return s.printer
}

// Rand returns this session's random source.
func (s *Session) Rand() *rand.Rand {
	return s.rng
}

// Quit marks the session for clean termination after the current handler
// returns.
func (s *Session) Quit() {
	s.quitting = true
}

// Ask writes promptText and blocks this session until a full line arrives,
// returning it trimmed. There is no timeout: a client that never answers
// parks this session's goroutine until it disconnects.
func (s *Session) Ask(promptText string) (string, error) {
	s.printer.Prompt(promptText)
	line, err := s.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// AskWithDefault behaves like Ask but shows the current value inline; an
// empty reply keeps it. This is the pre-fill used by edit, rendered as a
// hint because a network stream cannot write into the client's line buffer.
func (s *Session) AskWithDefault(promptText, current string) (string, error) {
	if current != "" {
		promptText = fmt.Sprintf("%s[%s] ", promptText, current)
	}
	reply, err := s.Ask(promptText)
	if err != nil {
		return "", err
	}
	if reply == "" {
		return current, nil
	}
	return reply, nil
}

// Run executes the command loop until quit, end of input or a transport
// failure. It never returns an error: session failures must not affect the
// listening service.
func (s *Session) Run() {
	s.printer.Banner("CORE Quiz")
	s.printer.Println("Type 'help' to see the available commands.")

	for {
		s.printer.Prompt("quiz> ")

		line, err := s.readLine()
		if err != nil {
			if !errors.Is(err, ErrClosed) {
				logger.Warn("session transport failed", "session", s.id, "error", err)
			}
			logger.Debug("session input ended", "session", s.id)
			return
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			// Empty line: re-prompt silently.
			continue
		}

		token := strings.ToLower(fields[0])
		arg := ""
		if len(fields) > 1 {
			// Extra tokens beyond the first argument are ignored.
			arg = fields[1]
		}

		cmd, ok := commands.GlobalRegistry.Get(token)
		if !ok {
			s.printer.Error(fmt.Sprintf("Unknown command: '%s'", token))
			s.printer.Println("Use 'help' to see the available commands.")
			continue
		}

		s.dispatch(cmd, arg)

		if s.closed {
			return
		}
		if s.quitting {
			s.printer.Println("Goodbye!")
			return
		}
	}
}

// dispatch runs exactly one handler to completion. Errors and panics are
// caught here: they become an error notice on the session's output and the
// loop re-prompts, so a handler can never leave the session un-prompted or
// crash the server.
func (s *Session) dispatch(cmd quiztypes.Command, arg string) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("command panicked", "session", s.id, "command", cmd.Name(), "panic", r)
			s.printer.Error(fmt.Sprintf("The %s command failed unexpectedly.", cmd.Name()))
		}
	}()

	logger.Debug("dispatching command", "session", s.id, "command", cmd.Name(), "arg", arg)

	if err := cmd.Execute(s, arg); err != nil {
		s.reportError(cmd, err)
	}
}

// reportError turns a handler error into notices on the session's output.
func (s *Session) reportError(cmd quiztypes.Command, err error) {
	if s.closed {
		// The transport is gone; there is nobody left to notify.
		return
	}

	var vErr *store.ValidationError
	if errors.As(err, &vErr) {
		for _, field := range vErr.Fields {
			s.printer.Error(field.Message)
		}
		return
	}

	if errors.Is(err, commands.ErrMissingID) {
		s.printer.Error("Missing id argument.")
		s.printer.Println("Usage: " + cmd.Usage())
		return
	}

	if errors.Is(err, commands.ErrInvalidID) || errors.Is(err, store.ErrNotFound) {
		s.printer.Error(err.Error())
		return
	}

	logger.Error("command failed", "session", s.id, "command", cmd.Name(), "error", err)
	s.printer.Error(err.Error())
}

// readLine blocks until a full line arrives. End of input and transport
// errors mark the session closed.
func (s *Session) readLine() (string, error) {
	if s.closed {
		return "", ErrClosed
	}
	if !s.scanner.Scan() {
		s.closed = true
		if err := s.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading line: %w", err)
		}
		return "", ErrClosed
	}
	return s.scanner.Text(), nil
}

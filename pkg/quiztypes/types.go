// Package quiztypes defines the shared types and interfaces for quizcore.
// It holds the data model and the contracts between the session loop, the
// command handlers, and their collaborators, so that internal packages can
// depend on each other through interfaces instead of concrete types.
package quiztypes

import "math/rand"

// Item is one question/answer trivia record. The id is assigned by the
// store; question and answer are non-empty after trimming and the question
// text is unique across the store.
type Item struct {
	ID       int64
	Question string
	Answer   string
}

// ItemStore is the persistence interface consumed by command handlers.
// Each call is a single atomic operation; no multi-call transaction spans a
// user interaction, so an item can vanish between a fetch and a later save.
type ItemStore interface {
	// ListAll returns every item in store order.
	ListAll() ([]Item, error)

	// GetByID returns the item with the given id, or an error satisfying
	// errors.Is(err, store.ErrNotFound) when no such item exists.
	GetByID(id int64) (Item, error)

	// Create validates and persists a new item, returning it with its
	// assigned id.
	Create(question, answer string) (Item, error)

	// Update replaces the question and answer of an existing item in place.
	Update(id int64, question, answer string) (Item, error)

	// DeleteByID removes the item with the given id.
	DeleteByID(id int64) error
}

// Printer is the line-oriented output sink bound to one session's stream.
// Implementations may apply semantic styling or ignore the hints entirely.
type Printer interface {
	// Println writes a plain line.
	Println(text string)

	// Printf writes formatted plain text without an implicit newline.
	Printf(format string, args ...interface{})

	// Info, Success, Warning and Error write one line with the
	// corresponding semantic style hint.
	Info(text string)
	Success(text string)
	Warning(text string)
	Error(text string)

	// Prompt writes prompt text without a trailing newline.
	Prompt(text string)

	// Banner writes text with banner emphasis, used for the greeting and
	// for score announcements.
	Banner(text string)
}

// Session is the live state of one connected client's command loop. It is
// the execution environment handed to every command handler.
type Session interface {
	// ID returns the session's connection identifier.
	ID() string

	// Store returns the item store shared by all sessions.
	Store() ItemStore

	// Printer returns the output sink bound to this session's stream.
	Printer() Printer

	// Ask writes promptText and blocks this session (only) until a full
	// line arrives, returning it trimmed of surrounding whitespace. A
	// transport failure or end of input is returned as an error and marks
	// the session closed.
	Ask(promptText string) (string, error)

	// AskWithDefault behaves like Ask but shows the current value inline;
	// an empty reply keeps it.
	AskWithDefault(promptText, current string) (string, error)

	// Rand returns this session's random source, used by the play round
	// for its draw order.
	Rand() *rand.Rand

	// Quit marks the session for clean termination after the current
	// handler returns.
	Quit()
}

// Command is the behavior bound to one recognized command name. Commands
// register themselves with the global registry during package init.
type Command interface {
	// Name returns the primary dispatch token.
	Name() string

	// Aliases returns alternative dispatch tokens, possibly empty.
	Aliases() []string

	// Description returns a one-line summary for the help listing.
	Description() string

	// Usage returns the invocation syntax, e.g. "show <id>".
	Usage() string

	// Execute runs the command within the given session. The argument is
	// the second whitespace-separated token of the input line, or "" when
	// none was supplied. Returned errors are reported to the session's
	// output by the dispatch boundary; they never terminate the loop.
	Execute(session Session, arg string) error
}

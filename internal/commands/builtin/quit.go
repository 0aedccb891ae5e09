package builtin

import (
	"fmt"

	"quizcore/internal/commands"
	"quizcore/pkg/quiztypes"
)

// QuitCommand implements the quit command, closing the session cleanly.
type QuitCommand struct{}

// Name returns the command name "quit".
func (c *QuitCommand) Name() string {
	return "quit"
}

// Aliases returns the short form "q".
func (c *QuitCommand) Aliases() []string {
	return []string{"q"}
}

// Description returns a brief description of the quit command.
func (c *QuitCommand) Description() string {
	return "Close the session."
}

// Usage returns the invocation syntax for the quit command.
func (c *QuitCommand) Usage() string {
	return "q|quit"
}

// Execute marks the session for termination. Only this session ends; the
// server keeps serving other connections.
func (c *QuitCommand) Execute(session quiztypes.Session, _ string) error {
	session.Quit()
	return nil
}

func init() {
	if err := commands.GlobalRegistry.Register(&QuitCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register quit command: %v", err))
	}
}

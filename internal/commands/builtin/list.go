package builtin

import (
	"fmt"

	"quizcore/internal/commands"
	"quizcore/pkg/quiztypes"
)

// ListCommand implements the list command, enumerating all stored items.
type ListCommand struct{}

// Name returns the command name "list".
func (c *ListCommand) Name() string {
	return "list"
}

// Aliases returns no aliases for list.
func (c *ListCommand) Aliases() []string {
	return nil
}

// Description returns a brief description of the list command.
func (c *ListCommand) Description() string {
	return "List the existing quiz items."
}

// Usage returns the invocation syntax for the list command.
func (c *ListCommand) Usage() string {
	return "list"
}

// Execute prints one line per item in store order. An empty store prints
// nothing.
func (c *ListCommand) Execute(session quiztypes.Session, _ string) error {
	items, err := session.Store().ListAll()
	if err != nil {
		return err
	}

	p := session.Printer()
	for _, item := range items {
		p.Printf(" [%d]: %s\n", item.ID, item.Question)
	}
	return nil
}

func init() {
	if err := commands.GlobalRegistry.Register(&ListCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register list command: %v", err))
	}
}

package builtin

import (
	"fmt"

	"quizcore/internal/commands"
	"quizcore/pkg/quiztypes"
)

// DeleteCommand implements the delete command.
type DeleteCommand struct{}

// Name returns the command name "delete".
func (c *DeleteCommand) Name() string {
	return "delete"
}

// Aliases returns no aliases for delete.
func (c *DeleteCommand) Aliases() []string {
	return nil
}

// Description returns a brief description of the delete command.
func (c *DeleteCommand) Description() string {
	return "Delete the given item."
}

// Usage returns the invocation syntax for the delete command.
func (c *DeleteCommand) Usage() string {
	return "delete <id>"
}

// Execute resolves the id argument and deletes the item.
func (c *DeleteCommand) Execute(session quiztypes.Session, arg string) error {
	id, err := commands.ParseID(arg)
	if err != nil {
		return err
	}

	if err := session.Store().DeleteByID(id); err != nil {
		return err
	}

	session.Printer().Success(fmt.Sprintf("Deleted item %d.", id))
	return nil
}

func init() {
	if err := commands.GlobalRegistry.Register(&DeleteCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register delete command: %v", err))
	}
}

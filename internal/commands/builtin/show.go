package builtin

import (
	"fmt"

	"quizcore/internal/commands"
	"quizcore/pkg/quiztypes"
)

// ShowCommand implements the show command, printing one item's question and
// answer.
type ShowCommand struct{}

// Name returns the command name "show".
func (c *ShowCommand) Name() string {
	return "show"
}

// Aliases returns no aliases for show.
func (c *ShowCommand) Aliases() []string {
	return nil
}

// Description returns a brief description of the show command.
func (c *ShowCommand) Description() string {
	return "Show the question and the answer of the given item."
}

// Usage returns the invocation syntax for the show command.
func (c *ShowCommand) Usage() string {
	return "show <id>"
}

// Execute resolves the id argument and prints the item.
func (c *ShowCommand) Execute(session quiztypes.Session, arg string) error {
	id, err := commands.ParseID(arg)
	if err != nil {
		return err
	}

	item, err := session.Store().GetByID(id)
	if err != nil {
		return err
	}

	session.Printer().Printf(" [%d]: %s => %s\n", item.ID, item.Question, item.Answer)
	return nil
}

func init() {
	if err := commands.GlobalRegistry.Register(&ShowCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register show command: %v", err))
	}
}

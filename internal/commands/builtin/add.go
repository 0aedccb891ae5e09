package builtin

import (
	"fmt"

	"quizcore/internal/commands"
	"quizcore/pkg/quiztypes"
)

// AddCommand implements the add command. It asks interactively for a
// question and then an answer, and creates the item.
type AddCommand struct{}

// Name returns the command name "add".
func (c *AddCommand) Name() string {
	return "add"
}

// Aliases returns no aliases for add.
func (c *AddCommand) Aliases() []string {
	return nil
}

// Description returns a brief description of the add command.
func (c *AddCommand) Description() string {
	return "Add a new quiz item interactively."
}

// Usage returns the invocation syntax for the add command.
func (c *AddCommand) Usage() string {
	return "add"
}

// Execute asks for the question and the answer in sequence, then persists
// the new item. Validation failures surface from the store with per-field
// messages.
func (c *AddCommand) Execute(session quiztypes.Session, _ string) error {
	question, err := session.Ask("Enter a question: ")
	if err != nil {
		return err
	}

	answer, err := session.Ask("Enter the answer: ")
	if err != nil {
		return err
	}

	item, err := session.Store().Create(question, answer)
	if err != nil {
		return err
	}

	session.Printer().Success(fmt.Sprintf("Added [%d]: %s => %s", item.ID, item.Question, item.Answer))
	return nil
}

func init() {
	if err := commands.GlobalRegistry.Register(&AddCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register add command: %v", err))
	}
}

package builtin

import (
	"fmt"

	"quizcore/internal/commands"
	"quizcore/pkg/quiztypes"
)

// EditCommand implements the edit command. It fetches the item, asks for a
// replacement question and answer with the current text pre-filled, and
// saves the result under the same id.
type EditCommand struct{}

// Name returns the command name "edit".
func (c *EditCommand) Name() string {
	return "edit"
}

// Aliases returns no aliases for edit.
func (c *EditCommand) Aliases() []string {
	return nil
}

// Description returns a brief description of the edit command.
func (c *EditCommand) Description() string {
	return "Edit the given item."
}

// Usage returns the invocation syntax for the edit command.
func (c *EditCommand) Usage() string {
	return "edit <id>"
}

// Execute rewrites an existing item. The fetch-then-save window is not
// isolated: if the item vanishes in between, the save reports not found.
func (c *EditCommand) Execute(session quiztypes.Session, arg string) error {
	id, err := commands.ParseID(arg)
	if err != nil {
		return err
	}

	item, err := session.Store().GetByID(id)
	if err != nil {
		return err
	}

	question, err := session.AskWithDefault("Enter a question: ", item.Question)
	if err != nil {
		return err
	}

	answer, err := session.AskWithDefault("Enter the answer: ", item.Answer)
	if err != nil {
		return err
	}

	updated, err := session.Store().Update(id, question, answer)
	if err != nil {
		return err
	}

	session.Printer().Success(fmt.Sprintf("Changed [%d] to: %s => %s", updated.ID, updated.Question, updated.Answer))
	return nil
}

func init() {
	if err := commands.GlobalRegistry.Register(&EditCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register edit command: %v", err))
	}
}

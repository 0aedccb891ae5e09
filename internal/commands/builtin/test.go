package builtin

import (
	"fmt"

	"quizcore/internal/commands"
	"quizcore/internal/game"
	"quizcore/pkg/quiztypes"
)

// TestCommand implements the test command: it asks one item's question and
// checks the reply against the stored answer.
type TestCommand struct{}

// Name returns the command name "test".
func (c *TestCommand) Name() string {
	return "test"
}

// Aliases returns no aliases for test.
func (c *TestCommand) Aliases() []string {
	return nil
}

// Description returns a brief description of the test command.
func (c *TestCommand) Description() string {
	return "Try to answer the given item."
}

// Usage returns the invocation syntax for the test command.
func (c *TestCommand) Usage() string {
	return "test <id>"
}

// Execute asks the item's question and announces whether the trimmed,
// case-insensitive reply matches the stored answer.
func (c *TestCommand) Execute(session quiztypes.Session, arg string) error {
	id, err := commands.ParseID(arg)
	if err != nil {
		return err
	}

	item, err := session.Store().GetByID(id)
	if err != nil {
		return err
	}

	reply, err := session.Ask(item.Question + "? ")
	if err != nil {
		return err
	}

	p := session.Printer()
	if game.Match(reply, item.Answer) {
		p.Success("Your answer is correct.")
		p.Banner("CORRECT")
	} else {
		p.Error("Your answer is incorrect.")
		p.Println("The correct answer is: " + item.Answer)
		p.Banner("INCORRECT")
	}
	return nil
}

func init() {
	if err := commands.GlobalRegistry.Register(&TestCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register test command: %v", err))
	}
}

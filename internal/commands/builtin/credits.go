package builtin

import (
	"fmt"

	"quizcore/internal/commands"
	"quizcore/pkg/quiztypes"
)

// CreditsCommand implements the credits command.
type CreditsCommand struct{}

// Name returns the command name "credits".
func (c *CreditsCommand) Name() string {
	return "credits"
}

// Aliases returns no aliases for credits.
func (c *CreditsCommand) Aliases() []string {
	return nil
}

// Description returns a brief description of the credits command.
func (c *CreditsCommand) Description() string {
	return "Show the authors."
}

// Usage returns the invocation syntax for the credits command.
func (c *CreditsCommand) Usage() string {
	return "credits"
}

// Execute prints the static author line.
func (c *CreditsCommand) Execute(session quiztypes.Session, _ string) error {
	p := session.Printer()
	p.Println("Authors:")
	p.Success("The quizcore contributors.")
	return nil
}

func init() {
	if err := commands.GlobalRegistry.Register(&CreditsCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register credits command: %v", err))
	}
}

// Package builtin implements the quiz session commands. Each command
// registers itself with the global registry during package init; the
// session loop imports this package for its side effects.
package builtin

import (
	"fmt"

	"quizcore/internal/commands"
	"quizcore/pkg/quiztypes"
)

// HelpCommand implements the help command, printing the command summary.
type HelpCommand struct{}

// Name returns the command name "help".
func (c *HelpCommand) Name() string {
	return "help"
}

// Aliases returns the short form "h".
func (c *HelpCommand) Aliases() []string {
	return []string{"h"}
}

// Description returns a brief description of the help command.
func (c *HelpCommand) Description() string {
	return "Show this help."
}

// Usage returns the invocation syntax for the help command.
func (c *HelpCommand) Usage() string {
	return "h|help"
}

// Execute prints one summary line per registered command.
func (c *HelpCommand) Execute(session quiztypes.Session, _ string) error {
	p := session.Printer()
	p.Println("Commands:")
	for _, cmd := range commands.GlobalRegistry.GetAll() {
		p.Printf("  %s - %s\n", cmd.Usage(), cmd.Description())
	}
	return nil
}

func init() {
	if err := commands.GlobalRegistry.Register(&HelpCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register help command: %v", err))
	}
}

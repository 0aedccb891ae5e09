package builtin

import (
	"fmt"

	"quizcore/internal/commands"
	"quizcore/internal/game"
	"quizcore/pkg/quiztypes"
)

// PlayCommand implements the play command, running one quiz round over all
// stored items.
type PlayCommand struct{}

// Name returns the command name "play".
func (c *PlayCommand) Name() string {
	return "play"
}

// Aliases returns the short form "p".
func (c *PlayCommand) Aliases() []string {
	return []string{"p"}
}

// Description returns a brief description of the play command.
func (c *PlayCommand) Description() string {
	return "Play all items in random order."
}

// Usage returns the invocation syntax for the play command.
func (c *PlayCommand) Usage() string {
	return "p|play"
}

// Execute snapshots the store and hands control to the round scheduler.
func (c *PlayCommand) Execute(session quiztypes.Session, _ string) error {
	items, err := session.Store().ListAll()
	if err != nil {
		return err
	}

	round := game.NewRound(items, session.Rand())
	return round.Play(session)
}

func init() {
	if err := commands.GlobalRegistry.Register(&PlayCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register play command: %v", err))
	}
}

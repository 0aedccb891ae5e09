// Package game implements the quiz round scheduler behind the play command
// and the answer matching shared with the test command.
package game

import "strings"

// Match reports whether a reply matches the stored answer. Both sides are
// trimmed of surrounding whitespace and compared case-insensitively.
func Match(reply, answer string) bool {
	return strings.EqualFold(strings.TrimSpace(reply), strings.TrimSpace(answer))
}

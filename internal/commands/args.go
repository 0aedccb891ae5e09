package commands

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrMissingID is reported when a command that requires an id argument
// received none.
var ErrMissingID = errors.New("missing id argument")

// ErrInvalidID is reported when an id argument is not parseable as an
// integer.
var ErrInvalidID = errors.New("id is not a number")

// ParseID resolves a command's id argument. The store is never touched when
// the argument is missing or malformed.
func ParseID(arg string) (int64, error) {
	if arg == "" {
		return 0, ErrMissingID
	}
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", arg, ErrInvalidID)
	}
	return id, nil
}

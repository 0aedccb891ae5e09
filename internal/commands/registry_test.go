package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizcore/pkg/quiztypes"
)

type fakeCommand struct {
	name    string
	aliases []string
}

func (f *fakeCommand) Name() string                           { return f.name }
func (f *fakeCommand) Aliases() []string                      { return f.aliases }
func (f *fakeCommand) Description() string                    { return "fake" }
func (f *fakeCommand) Usage() string                          { return f.name }
func (f *fakeCommand) Execute(_ quiztypes.Session, _ string) error { return nil }

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&fakeCommand{name: "play", aliases: []string{"p"}}))

	cmd, ok := r.Get("play")
	require.True(t, ok)
	assert.Equal(t, "play", cmd.Name())

	cmd, ok = r.Get("p")
	require.True(t, ok)
	assert.Equal(t, "play", cmd.Name())

	_, ok = r.Get("nope")
	assert.False(t, ok)
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&fakeCommand{name: "help", aliases: []string{"h"}}))

	assert.Error(t, r.Register(&fakeCommand{name: "help"}))
	assert.Error(t, r.Register(&fakeCommand{name: "h"}))
	assert.Error(t, r.Register(&fakeCommand{name: "hello", aliases: []string{"h"}}))
	assert.Error(t, r.Register(&fakeCommand{name: ""}))
}

func TestRegistry_GetAllSorted(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&fakeCommand{name: "show"}))
	require.NoError(t, r.Register(&fakeCommand{name: "add"}))
	require.NoError(t, r.Register(&fakeCommand{name: "list"}))

	all := r.GetAll()
	require.Len(t, all, 3)
	assert.Equal(t, "add", all[0].Name())
	assert.Equal(t, "list", all[1].Name())
	assert.Equal(t, "show", all[2].Name())
}

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		want    int64
		wantErr error
	}{
		{"valid id", "3", 3, nil},
		{"missing", "", 0, ErrMissingID},
		{"not a number", "abc", 0, ErrInvalidID},
		{"trailing garbage", "3x", 0, ErrInvalidID},
		{"negative is numeric", "-1", -1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseID(tt.arg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

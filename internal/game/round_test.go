package game_test

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizcore/internal/game"
	"quizcore/internal/output"
	"quizcore/internal/session"
	"quizcore/internal/testutils"
	"quizcore/pkg/quiztypes"
)

// newRoundSession builds a session whose replies come from the given
// script, writing plain output into the returned buffer.
func newRoundSession(replies string, st quiztypes.ItemStore) (*session.Session, *bytes.Buffer) {
	var buf bytes.Buffer
	printer := output.NewPrinter(output.WithWriter(&buf), output.PlainText())
	return session.New(strings.NewReader(replies), printer, st), &buf
}

func sameAnswerItems(n int) []quiztypes.Item {
	items := make([]quiztypes.Item, n)
	for i := range items {
		items[i] = quiztypes.Item{
			ID:       int64(i + 1),
			Question: "question " + string(rune('a'+i)),
			Answer:   "yes",
		}
	}
	return items
}

func TestRound_AllCorrect(t *testing.T) {
	items := sameAnswerItems(3)
	s, buf := newRoundSession("yes\nyes\nyes\n", testutils.NewMemStore(items...))

	round := game.NewRound(items, rand.New(rand.NewSource(1)))
	require.NoError(t, round.Play(s))

	assert.Equal(t, 3, round.Score())
	out := buf.String()
	assert.Equal(t, 3, strings.Count(out, "? "))
	assert.Contains(t, out, "Correct - 1 so far.")
	assert.Contains(t, out, "Correct - 3 so far.")
	assert.Contains(t, out, "Nothing left to ask.")
	assert.Contains(t, out, "Round over. Final score:")
	assert.Contains(t, out, "== 3 ==")
}

func TestRound_NoRepeatsWithinRound(t *testing.T) {
	items := sameAnswerItems(5)
	s, buf := newRoundSession(strings.Repeat("yes\n", 5), testutils.NewMemStore(items...))

	round := game.NewRound(items, rand.New(rand.NewSource(7)))
	require.NoError(t, round.Play(s))

	out := buf.String()
	for _, item := range items {
		assert.Equal(t, 1, strings.Count(out, item.Question+"? "),
			"each question must be asked exactly once")
	}
}

func TestRound_WrongAnswerEndsRound(t *testing.T) {
	items := sameAnswerItems(4)
	// Two correct replies, then a wrong one: the round must stop after the
	// third question with score 2.
	s, buf := newRoundSession("yes\nyes\nnope\n", testutils.NewMemStore(items...))

	round := game.NewRound(items, rand.New(rand.NewSource(3)))
	require.NoError(t, round.Play(s))

	assert.Equal(t, 2, round.Score())
	out := buf.String()
	assert.Equal(t, 3, strings.Count(out, "? "))
	assert.Contains(t, out, "Incorrect.")
	assert.Contains(t, out, "The correct answer is: yes")
	assert.Contains(t, out, "== 2 ==")
	assert.NotContains(t, out, "Nothing left to ask.")
}

func TestRound_FirstAnswerWrong(t *testing.T) {
	items := sameAnswerItems(2)
	s, buf := newRoundSession("nope\n", testutils.NewMemStore(items...))

	round := game.NewRound(items, rand.New(rand.NewSource(5)))
	require.NoError(t, round.Play(s))

	assert.Equal(t, 0, round.Score())
	assert.Contains(t, buf.String(), "== 0 ==")
}

func TestRound_EmptyStore(t *testing.T) {
	s, buf := newRoundSession("", testutils.NewMemStore())

	round := game.NewRound(nil, rand.New(rand.NewSource(1)))
	require.NoError(t, round.Play(s))

	assert.Equal(t, 0, round.Score())
	out := buf.String()
	assert.Contains(t, out, "Nothing left to ask.")
	assert.Contains(t, out, "== 0 ==")
}

func TestRound_TransportFailureSurfaces(t *testing.T) {
	items := sameAnswerItems(3)
	// Input ends after the first reply: the second Ask must fail and the
	// error must surface to the caller.
	s, _ := newRoundSession("yes\n", testutils.NewMemStore(items...))

	round := game.NewRound(items, rand.New(rand.NewSource(2)))
	err := round.Play(s)
	assert.ErrorIs(t, err, session.ErrClosed)
	assert.Equal(t, 1, round.Score())
}

func TestRound_DoesNotMutateInput(t *testing.T) {
	items := sameAnswerItems(3)
	s, _ := newRoundSession("yes\nyes\nyes\n", testutils.NewMemStore(items...))

	round := game.NewRound(items, rand.New(rand.NewSource(9)))
	require.NoError(t, round.Play(s))

	// The round snapshots the slice; the caller's copy stays intact.
	require.Len(t, items, 3)
	for i, item := range items {
		assert.Equal(t, int64(i+1), item.ID)
	}
}

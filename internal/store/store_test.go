package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_CreateAndGet(t *testing.T) {
	s := newTestStore(t)

	item, err := s.Create("Capital de Italia", "Roma")
	require.NoError(t, err)
	assert.NotZero(t, item.ID)
	assert.Equal(t, "Capital de Italia", item.Question)
	assert.Equal(t, "Roma", item.Answer)

	got, err := s.GetByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, item, got)
}

func TestStore_CreateTrimsFields(t *testing.T) {
	s := newTestStore(t)

	item, err := s.Create("  spaced question  ", "\tspaced answer \n")
	require.NoError(t, err)
	assert.Equal(t, "spaced question", item.Question)
	assert.Equal(t, "spaced answer", item.Answer)
}

func TestStore_CreateValidation(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		name     string
		question string
		answer   string
		fields   []string
	}{
		{"empty question", "", "Roma", []string{"question"}},
		{"empty answer", "Capital de Italia", "", []string{"answer"}},
		{"whitespace only", "   ", " \t ", []string{"question", "answer"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Create(tt.question, tt.answer)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			require.Len(t, vErr.Fields, len(tt.fields))
			for i, field := range tt.fields {
				assert.Equal(t, field, vErr.Fields[i].Field)
			}
		})
	}
}

func TestStore_CreateDuplicateQuestion(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Create("Capital de Italia", "Roma")
	require.NoError(t, err)

	_, err = s.Create("Capital de Italia", "Milán")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Fields, 1)
	assert.Equal(t, "question", vErr.Fields[0].Field)
}

func TestStore_GetByIDNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetByID(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_ListAllOrder(t *testing.T) {
	s := newTestStore(t)

	first, err := s.Create("q1", "a1")
	require.NoError(t, err)
	second, err := s.Create("q2", "a2")
	require.NoError(t, err)

	items, err := s.ListAll()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, second.ID, items[1].ID)
}

func TestStore_ListAllEmpty(t *testing.T) {
	s := newTestStore(t)

	items, err := s.ListAll()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStore_Update(t *testing.T) {
	s := newTestStore(t)

	item, err := s.Create("old question", "old answer")
	require.NoError(t, err)

	updated, err := s.Update(item.ID, "new question", "new answer")
	require.NoError(t, err)
	assert.Equal(t, item.ID, updated.ID)

	got, err := s.GetByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "new question", got.Question)
	assert.Equal(t, "new answer", got.Answer)
}

func TestStore_UpdateNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Update(7, "q", "a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_UpdateDuplicateQuestion(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Create("q1", "a1")
	require.NoError(t, err)
	second, err := s.Create("q2", "a2")
	require.NoError(t, err)

	_, err = s.Update(second.ID, "q1", "a2")
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestStore_DeleteByID(t *testing.T) {
	s := newTestStore(t)

	item, err := s.Create("q", "a")
	require.NoError(t, err)

	require.NoError(t, s.DeleteByID(item.ID))

	_, err = s.GetByID(item.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.DeleteByID(item.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_SeedIfEmpty(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SeedIfEmpty())
	items, err := s.ListAll()
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, "Capital de Italia", items[0].Question)
	assert.Equal(t, "Roma", items[0].Answer)

	// Seeding again must not duplicate.
	require.NoError(t, s.SeedIfEmpty())
	items, err = s.ListAll()
	require.NoError(t, err)
	assert.Len(t, items, 4)
}

func TestValidationError_Message(t *testing.T) {
	vErr := &ValidationError{}
	vErr.add("question", "the question cannot be empty")
	vErr.add("answer", "the answer cannot be empty")
	assert.Equal(t, "the question cannot be empty; the answer cannot be empty", vErr.Error())
	assert.False(t, errors.Is(vErr, ErrNotFound))
}

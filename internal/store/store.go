// Package store persists quiz items in SQLite. It implements the
// quiztypes.ItemStore interface consumed by the command handlers; every
// method is a single atomic database operation.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"

	"quizcore/internal/logger"
	"quizcore/pkg/quiztypes"
)

// SQLiteStore is the item store backed by a SQLite database file.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and ensures the
// schema exists. Use ":memory:" for an ephemeral store.
func Open(path string) (*SQLiteStore, error) {
	logger.Debug("opening item database", "path", path)
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			question TEXT NOT NULL UNIQUE,
			answer TEXT NOT NULL
		);
	`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ListAll returns every item in store order.
func (s *SQLiteStore) ListAll() ([]quiztypes.Item, error) {
	rows, err := s.db.Query("SELECT id, question, answer FROM items ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []quiztypes.Item
	for rows.Next() {
		var item quiztypes.Item
		if err := rows.Scan(&item.ID, &item.Question, &item.Answer); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// GetByID returns the item with the given id or ErrNotFound.
func (s *SQLiteStore) GetByID(id int64) (quiztypes.Item, error) {
	var item quiztypes.Item
	err := s.db.QueryRow("SELECT id, question, answer FROM items WHERE id = ?", id).
		Scan(&item.ID, &item.Question, &item.Answer)
	if errors.Is(err, sql.ErrNoRows) {
		return quiztypes.Item{}, fmt.Errorf("no item for id %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return quiztypes.Item{}, err
	}
	return item, nil
}

// Create validates and inserts a new item, returning it with its assigned
// id.
func (s *SQLiteStore) Create(question, answer string) (quiztypes.Item, error) {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if err := validate(question, answer); err != nil {
		return quiztypes.Item{}, err
	}

	result, err := s.db.Exec("INSERT INTO items (question, answer) VALUES (?, ?)", question, answer)
	if err != nil {
		return quiztypes.Item{}, wrapConstraint(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return quiztypes.Item{}, err
	}

	return quiztypes.Item{ID: id, Question: question, Answer: answer}, nil
}

// Update replaces the question and answer of an existing item in place.
// Returns ErrNotFound when the id no longer exists, which covers the item
// vanishing between a handler's fetch and this save.
func (s *SQLiteStore) Update(id int64, question, answer string) (quiztypes.Item, error) {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if err := validate(question, answer); err != nil {
		return quiztypes.Item{}, err
	}

	result, err := s.db.Exec("UPDATE items SET question = ?, answer = ? WHERE id = ?", question, answer, id)
	if err != nil {
		return quiztypes.Item{}, wrapConstraint(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return quiztypes.Item{}, err
	}
	if affected == 0 {
		return quiztypes.Item{}, fmt.Errorf("no item for id %d: %w", id, ErrNotFound)
	}

	return quiztypes.Item{ID: id, Question: question, Answer: answer}, nil
}

// DeleteByID removes the item with the given id or returns ErrNotFound.
func (s *SQLiteStore) DeleteByID(id int64) error {
	result, err := s.db.Exec("DELETE FROM items WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("no item for id %d: %w", id, ErrNotFound)
	}

	return nil
}

// validate checks the non-empty invariant on both fields after trimming.
// Uniqueness is enforced by the schema, not re-checked here.
func validate(question, answer string) error {
	vErr := &ValidationError{}
	if question == "" {
		vErr.add("question", "the question cannot be empty")
	}
	if answer == "" {
		vErr.add("answer", "the answer cannot be empty")
	}
	if len(vErr.Fields) > 0 {
		return vErr
	}
	return nil
}

// wrapConstraint converts a UNIQUE constraint violation on the question
// column into a field-level ValidationError.
func wrapConstraint(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		vErr := &ValidationError{}
		vErr.add("question", "this question already exists")
		return vErr
	}
	return err
}

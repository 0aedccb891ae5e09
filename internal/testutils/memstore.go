// Package testutils provides test doubles shared by the session, command
// and game tests.
package testutils

import (
	"fmt"
	"strings"
	"sync"

	"quizcore/internal/store"
	"quizcore/pkg/quiztypes"
)

// MemStore is an in-memory quiztypes.ItemStore mirroring the SQLite
// store's validation semantics: trimmed non-empty fields and a unique
// question. When Err is set, every operation fails with it.
type MemStore struct {
	mu     sync.Mutex
	items  []quiztypes.Item
	nextID int64

	// Err forces every operation to fail, for boundary tests.
	Err error
}

// NewMemStore creates a store pre-populated with the given items. Items
// without an id get sequential ids starting at 1.
func NewMemStore(items ...quiztypes.Item) *MemStore {
	m := &MemStore{nextID: 1}
	for _, item := range items {
		if item.ID == 0 {
			item.ID = m.nextID
		}
		if item.ID >= m.nextID {
			m.nextID = item.ID + 1
		}
		m.items = append(m.items, item)
	}
	return m
}

// Len returns the number of stored items.
func (m *MemStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// ListAll implements quiztypes.ItemStore.
func (m *MemStore) ListAll() ([]quiztypes.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	items := make([]quiztypes.Item, len(m.items))
	copy(items, m.items)
	return items, nil
}

// GetByID implements quiztypes.ItemStore.
func (m *MemStore) GetByID(id int64) (quiztypes.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return quiztypes.Item{}, m.Err
	}
	for _, item := range m.items {
		if item.ID == id {
			return item, nil
		}
	}
	return quiztypes.Item{}, fmt.Errorf("no item for id %d: %w", id, store.ErrNotFound)
}

// Create implements quiztypes.ItemStore.
func (m *MemStore) Create(question, answer string) (quiztypes.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return quiztypes.Item{}, m.Err
	}

	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if err := m.validate(question, answer, 0); err != nil {
		return quiztypes.Item{}, err
	}

	item := quiztypes.Item{ID: m.nextID, Question: question, Answer: answer}
	m.nextID++
	m.items = append(m.items, item)
	return item, nil
}

// Update implements quiztypes.ItemStore.
func (m *MemStore) Update(id int64, question, answer string) (quiztypes.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return quiztypes.Item{}, m.Err
	}

	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if err := m.validate(question, answer, id); err != nil {
		return quiztypes.Item{}, err
	}

	for i, item := range m.items {
		if item.ID == id {
			m.items[i].Question = question
			m.items[i].Answer = answer
			return m.items[i], nil
		}
	}
	return quiztypes.Item{}, fmt.Errorf("no item for id %d: %w", id, store.ErrNotFound)
}

// DeleteByID implements quiztypes.ItemStore.
func (m *MemStore) DeleteByID(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	for i, item := range m.items {
		if item.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no item for id %d: %w", id, store.ErrNotFound)
}

func (m *MemStore) validate(question, answer string, selfID int64) error {
	vErr := &store.ValidationError{}
	if question == "" {
		vErr.Fields = append(vErr.Fields, store.FieldError{Field: "question", Message: "the question cannot be empty"})
	}
	if answer == "" {
		vErr.Fields = append(vErr.Fields, store.FieldError{Field: "answer", Message: "the answer cannot be empty"})
	}
	for _, item := range m.items {
		if item.Question == question && item.ID != selfID {
			vErr.Fields = append(vErr.Fields, store.FieldError{Field: "question", Message: "this question already exists"})
			break
		}
	}
	if len(vErr.Fields) > 0 {
		return vErr
	}
	return nil
}

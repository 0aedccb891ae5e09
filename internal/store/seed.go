package store

import (
	"quizcore/internal/logger"
	"quizcore/pkg/quiztypes"
)

// defaultItems is the starter set inserted into an empty store so a fresh
// deployment has something to play with.
var defaultItems = []quiztypes.Item{
	{Question: "Capital de Italia", Answer: "Roma"},
	{Question: "Capital de Francia", Answer: "París"},
	{Question: "Capital de España", Answer: "Madrid"},
	{Question: "Capital de Portugal", Answer: "Lisboa"},
}

// SeedIfEmpty inserts the starter items when the store holds nothing.
// A non-empty store is left untouched.
func (s *SQLiteStore) SeedIfEmpty() error {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM items").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	logger.Info("seeding empty item store", "items", len(defaultItems))
	for _, item := range defaultItems {
		if _, err := s.Create(item.Question, item.Answer); err != nil {
			return err
		}
	}
	return nil
}

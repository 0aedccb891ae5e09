// Package commands provides command registration and lookup for quizcore.
// It manages a global registry of commands keyed by name and alias; the
// session loop resolves each input line against it.
package commands

import (
	"fmt"
	"sort"
	"sync"

	"quizcore/pkg/quiztypes"
)

// Registry manages command registration and lookup. It is thread-safe;
// registration happens during package init, lookups happen from every
// session goroutine.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]quiztypes.Command
	aliases  map[string]string
}

// NewRegistry creates an empty command registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]quiztypes.Command),
		aliases:  make(map[string]string),
	}
}

// Register adds a command and its aliases to the registry. Returns an error
// if the name is empty or if any name or alias is already taken.
func (r *Registry) Register(cmd quiztypes.Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := cmd.Name()
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if r.taken(name) {
		return fmt.Errorf("command %s already registered", name)
	}
	for _, alias := range cmd.Aliases() {
		if r.taken(alias) {
			return fmt.Errorf("alias %s of command %s already registered", alias, name)
		}
	}

	r.commands[name] = cmd
	for _, alias := range cmd.Aliases() {
		r.aliases[alias] = name
	}
	return nil
}

func (r *Registry) taken(name string) bool {
	if _, exists := r.commands[name]; exists {
		return true
	}
	_, exists := r.aliases[name]
	return exists
}

// Get resolves a dispatch token, either a command name or an alias.
func (r *Registry) Get(token string) (quiztypes.Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if name, ok := r.aliases[token]; ok {
		token = name
	}
	cmd, exists := r.commands[token]
	return cmd, exists
}

// GetAll returns all registered commands sorted by name. The returned slice
// is a copy and can be safely modified.
func (r *Registry) GetAll() []quiztypes.Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]quiztypes.Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		all = append(all, cmd)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Name() < all[j].Name()
	})
	return all
}

// GlobalRegistry is the global command registry instance. Commands register
// themselves with it during initialization.
var GlobalRegistry = NewRegistry()

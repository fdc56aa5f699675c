// Package registry provides a global registry of player strategies.
// Strategies register themselves in init() functions, allowing the CLI and
// configuration to refer to them by ID without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/vovakirdan/connectn/internal/connectn"
)

// Options carries everything a strategy may need to build a player.
// Strategies ignore the fields they have no use for.
type Options struct {
	// Name is the player's display name.
	Name string

	// Seed feeds deterministic strategies. 0 means seed from the clock.
	Seed int64

	// In and Out are the player's terminal streams (stdin/stdout locally,
	// the session channel over SSH).
	In  io.Reader
	Out io.Writer
}

// Factory creates a player from options.
type Factory func(opts Options) (connectn.Player, error)

// StrategyInfo contains metadata about a registered strategy.
type StrategyInfo struct {
	ID          string
	Description string
	// Interactive strategies need a human at In/Out.
	Interactive bool
}

type entry struct {
	info    StrategyInfo
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a strategy to the registry.
// Panics if a strategy with the same ID is already registered.
func Register(info StrategyInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: strategy %q already registered", info.ID))
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// List returns every registered strategy, sorted by ID.
func List() []StrategyInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]StrategyInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds a player with the strategy registered under id.
func Create(id string, opts Options) (connectn.Player, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown strategy %q", id)
	}
	p, err := e.factory(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", id, err)
	}
	return p, nil
}

// Exists checks if a strategy with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

// Lookup returns the metadata of a registered strategy.
func Lookup(id string) (StrategyInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

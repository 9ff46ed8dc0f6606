// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the session
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// Game is the contract every game engine implements.
// Engines contain pure logic; the session owns timing, input and presentation.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "snake").
	ID() string

	// Title returns the name shown in the menu (e.g., "Flappy Bird").
	Title() string

	// Reset discards all state and starts a fresh run.
	Reset()

	// Interval returns the minimum time between two Steps, in milliseconds.
	Interval() int64

	// Sample is called on every session poll, whether or not a Step follows.
	// Engines that buffer input between steps do it here.
	Sample(in core.InputFrame)

	// Step advances the simulation by one tick.
	// Once the returned state reports GameOver, the engine state is frozen.
	Step(in core.InputFrame) core.StepResult

	// Render clears dst and draws the current state. It does not present.
	Render(dst core.Display)

	// State returns the current game state.
	State() core.GameState
}

// Deps are the collaborators handed to a game factory.
type Deps struct {
	Config config.Config
	RNG    core.RNG
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
	Slot  int // Position in the menu
}

// Factory is a function that creates a new instance of a game.
type Factory func(deps Deps) Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a game factory to the registry at the given menu slot.
// Typically called from a game's init() function.
// Panics if the ID or the slot is already taken.
func Register(id, title string, slot int, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	for _, e := range entries {
		if e.info.Slot == slot {
			panic(fmt.Sprintf("registry: slot %d already taken by %q", slot, e.info.ID))
		}
	}

	entries[id] = entry{
		info:    GameInfo{ID: id, Title: title, Slot: slot},
		factory: f,
	}
}

// List returns information about all registered games, in menu order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Slot < result[j].Slot
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string, deps Deps) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return e.factory(deps), nil
}

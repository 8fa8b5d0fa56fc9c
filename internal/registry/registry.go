// Package registry provides a global registry of front ends.
// Front ends register themselves in init() functions, so the command line
// can discover and open them without hardcoded dependencies; a front end
// that is not compiled in (see the sdl and ebiten build tags) simply never
// registers.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pong-clone/internal/config"
	"github.com/vovakirdan/pong-clone/internal/games/pong"
	"github.com/vovakirdan/pong-clone/internal/platform"
)

// Backend is a front end: it owns the window (or terminal), supplies input
// and draws frames for a pong.Game.
type Backend interface {
	platform.KeySource
	platform.EventSource
	platform.Renderer
	platform.TextRenderer

	// Run drives the game until it stops, ctx is cancelled or the front end
	// fails. It blocks.
	Run(ctx context.Context, g *pong.Game) error

	// Close releases the window, renderer and fonts.
	Close() error
}

// Info contains metadata about a registered front end.
type Info struct {
	Name  string
	Title string
}

// Factory opens a front end. Failures should be *platform.InitError.
type Factory func(cfg config.Config, logger *log.Logger) (Backend, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a front end factory to the registry.
// Typically called from a front end's init() function.
// Panics if a front end with the same name is already registered.
func Register(name, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", name))
	}

	factories[name] = f
	titles[name] = title
}

// List returns information about all registered front ends, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for name := range factories {
		result = append(result, Info{
			Name:  name,
			Title: titles[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Open creates the named front end.
// Returns an error wrapping platform.ErrUnknownBackend if the name is not
// registered.
func Open(name string, cfg config.Config, logger *log.Logger) (Backend, error) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: %w %q", platform.ErrUnknownBackend, name)
	}

	return f(cfg, logger)
}

// Exists checks if a front end with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}

// Logging is implemented by front ends that redirect the game's logging
// while they run, typically because they own the terminal.
type Logging interface {
	Logger() *log.Logger
}

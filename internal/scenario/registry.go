package scenario

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"gridscape/internal/engine"
	"gridscape/internal/scenarioid"
)

var (
	ErrExists   = errors.New("scenario already registered")
	ErrNotFound = errors.New("scenario not found")
)

// Options select how a scenario instance is assembled.
type Options struct {
	// POV is the view spec string, "global" when empty.
	POV string
	// Task picks among a scenario's tasks, 1-based. Zero means the
	// scenario default.
	Task int
	// Random shuffles goal placement on every reset, where the
	// scenario supports it.
	Random bool
	// Seed initializes the scenario's random stream.
	Seed int64
}

// BuildFunc assembles a fresh engine for one scenario.
type BuildFunc func(opts Options) (*engine.Engine, error)

// Spec describes a registered scenario.
type Spec struct {
	Name     string
	Summary  string
	Width    int
	Height   int
	MinSteps int
	MaxSteps int
	Tasks    int
	Build    BuildFunc
}

var registry = struct {
	mu sync.RWMutex
	m  map[string]Spec
}{m: make(map[string]Spec)}

// Register adds a scenario under its normalized name.
func Register(spec Spec) error {
	name := scenarioid.Normalize(spec.Name)
	if name == "" {
		return errors.New("scenario name is required")
	}
	if spec.Build == nil {
		return errors.New("scenario build func is required")
	}
	spec.Name = name

	registry.mu.Lock()
	defer registry.mu.Unlock()
	if _, ok := registry.m[name]; ok {
		return fmt.Errorf("%w: %s", ErrExists, name)
	}
	registry.m[name] = spec
	return nil
}

func mustRegister(spec Spec) {
	if err := Register(spec); err != nil {
		panic(err)
	}
}

// Get looks a scenario up by name or alias.
func Get(name string) (Spec, error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	spec, ok := registry.m[scenarioid.Normalize(name)]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return spec, nil
}

// List returns every registered scenario, sorted by name.
func List() []Spec {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	specs := make([]Spec, 0, len(registry.m))
	for _, spec := range registry.m {
		specs = append(specs, spec)
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].Name < specs[j].Name })
	return specs
}

// Build instantiates a registered scenario with the given options.
func Build(name string, opts Options) (*engine.Engine, error) {
	spec, err := Get(name)
	if err != nil {
		return nil, err
	}
	if opts.Task < 0 || opts.Task > spec.Tasks {
		return nil, fmt.Errorf("scenario %s has %d task(s), got task %d", spec.Name, spec.Tasks, opts.Task)
	}
	return spec.Build(opts)
}

package app

import (
	"fmt"
	"log/slog"

	puremvc "github.com/littlespex/puremvc-go-multicore-framework"
)

// Module is the interface application packages implement to contribute
// their factories to the registry.
type Module interface {
	Register(r *Registry)
}

// Registry maps the factory names used in manifests to the Go
// constructors that implement them.
type Registry struct {
	Commands  map[string]func() puremvc.Command
	Proxies   map[string]func() puremvc.Proxy
	Mediators map[string]func() puremvc.Mediator
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		Commands:  make(map[string]func() puremvc.Command),
		Proxies:   make(map[string]func() puremvc.Proxy),
		Mediators: make(map[string]func() puremvc.Mediator),
	}
}

// RegisterCommand registers a command factory. Duplicate names are a
// programmer error and panic.
func (r *Registry) RegisterCommand(name string, factory func() puremvc.Command) {
	if _, exists := r.Commands[name]; exists {
		panic(fmt.Sprintf("command factory with name '%s' already registered", name))
	}
	slog.Debug("Registering command factory.", "name", name)
	r.Commands[name] = factory
}

// RegisterProxy registers a proxy factory. Duplicate names are a
// programmer error and panic.
func (r *Registry) RegisterProxy(name string, factory func() puremvc.Proxy) {
	if _, exists := r.Proxies[name]; exists {
		panic(fmt.Sprintf("proxy factory with name '%s' already registered", name))
	}
	slog.Debug("Registering proxy factory.", "name", name)
	r.Proxies[name] = factory
}

// RegisterMediator registers a mediator factory. Duplicate names are a
// programmer error and panic.
func (r *Registry) RegisterMediator(name string, factory func() puremvc.Mediator) {
	if _, exists := r.Mediators[name]; exists {
		panic(fmt.Sprintf("mediator factory with name '%s' already registered", name))
	}
	slog.Debug("Registering mediator factory.", "name", name)
	r.Mediators[name] = factory
}

package puremvc

import (
	"fmt"
	"log/slog"
	"sync"
)

// Controller is the per-core command registry. It maps notification
// names to command factories and subscribes itself to the core's View
// so that sending a mapped notification executes a fresh command
// instance.
type Controller struct {
	key        string
	commandMap map[string]func() Command
	view       *View
	logger     *slog.Logger
}

var (
	controllerMu        sync.Mutex
	controllerInstances = map[string]*Controller{}
)

// NewController constructs the Controller for key and claims the key
// in the multiton map. It panics if the key is already in use; callers
// that want get-or-create semantics use GetController.
func NewController(key string) *Controller {
	controllerMu.Lock()
	defer controllerMu.Unlock()
	if _, exists := controllerInstances[key]; exists {
		panic(fmt.Sprintf("puremvc: controller instance for multiton key '%s' already constructed", key))
	}
	c := newController(key)
	controllerInstances[key] = c
	return c
}

// GetController returns the Controller for key, constructing it on
// first use.
func GetController(key string) *Controller {
	controllerMu.Lock()
	defer controllerMu.Unlock()
	if c, ok := controllerInstances[key]; ok {
		return c
	}
	c := newController(key)
	controllerInstances[key] = c
	return c
}

// RemoveController releases key from the multiton map.
func RemoveController(key string) {
	controllerMu.Lock()
	defer controllerMu.Unlock()
	delete(controllerInstances, key)
}

func newController(key string) *Controller {
	return &Controller{
		key:        key,
		commandMap: make(map[string]func() Command),
		view:       GetView(key),
		logger:     slog.Default().With("core", key),
	}
}

// Key returns the multiton key this Controller was constructed for.
func (c *Controller) Key() string { return c.key }

// RegisterCommand maps notificationName to a command factory. The
// first registration for a name wires one controller-bound observer
// into the View; later registrations for the same name replace the
// factory without adding another observer.
func (c *Controller) RegisterCommand(notificationName string, factory func() Command) {
	if _, exists := c.commandMap[notificationName]; !exists {
		c.view.RegisterObserver(notificationName, NewObserver(c.ExecuteCommand, c))
	}
	c.commandMap[notificationName] = factory
	c.logger.Debug("Registered command.", "notification", notificationName)
}

// ExecuteCommand constructs and runs the command mapped to the
// notification's name. Unmapped names are a silent no-op.
func (c *Controller) ExecuteCommand(note Notification) {
	factory, ok := c.commandMap[note.Name]
	if !ok {
		return
	}
	command := factory()
	command.InitializeNotifier(c.key)
	command.Execute(note)
}

// HasCommand reports whether a command is registered for
// notificationName.
func (c *Controller) HasCommand(notificationName string) bool {
	_, ok := c.commandMap[notificationName]
	return ok
}

// RemoveCommand unmaps notificationName and removes the controller's
// observer for it from the View. Unknown names are a no-op.
func (c *Controller) RemoveCommand(notificationName string) {
	if _, exists := c.commandMap[notificationName]; !exists {
		return
	}
	c.view.RemoveObserver(notificationName, c)
	delete(c.commandMap, notificationName)
	c.logger.Debug("Removed command.", "notification", notificationName)
}

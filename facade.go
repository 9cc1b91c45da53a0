package puremvc

import (
	"fmt"
	"sync"
)

// Facade aggregates a core's Model, View, and Controller behind one
// surface. Application code generally talks to the facade only; the
// three registries remain reachable for code that needs them.
type Facade struct {
	key        string
	model      *Model
	view       *View
	controller *Controller
}

var (
	facadeMu        sync.Mutex
	facadeInstances = map[string]*Facade{}
)

// NewFacade constructs the Facade for key, along with the core's
// Model, View, and Controller if they do not exist yet, and claims the
// key in the multiton map. It panics if the key is already in use;
// callers that want get-or-create semantics use GetFacade.
func NewFacade(key string) *Facade {
	facadeMu.Lock()
	defer facadeMu.Unlock()
	if _, exists := facadeInstances[key]; exists {
		panic(fmt.Sprintf("puremvc: facade instance for multiton key '%s' already constructed", key))
	}
	f := newFacade(key)
	facadeInstances[key] = f
	return f
}

// GetFacade returns the Facade for key, constructing it on first use.
func GetFacade(key string) *Facade {
	facadeMu.Lock()
	defer facadeMu.Unlock()
	if f, ok := facadeInstances[key]; ok {
		return f
	}
	f := newFacade(key)
	facadeInstances[key] = f
	return f
}

func newFacade(key string) *Facade {
	return &Facade{
		key:        key,
		model:      GetModel(key),
		view:       GetView(key),
		controller: GetController(key),
	}
}

// HasCore reports whether a facade has been constructed for key.
func HasCore(key string) bool {
	facadeMu.Lock()
	defer facadeMu.Unlock()
	_, ok := facadeInstances[key]
	return ok
}

// RemoveCore releases the Model, View, Controller, and Facade for key,
// allowing a fresh core to be constructed under it later. References
// still held by the caller keep working but are detached from the key.
func RemoveCore(key string) {
	RemoveModel(key)
	RemoveView(key)
	RemoveController(key)
	facadeMu.Lock()
	defer facadeMu.Unlock()
	delete(facadeInstances, key)
}

// Key returns the multiton key this Facade was constructed for.
func (f *Facade) Key() string { return f.key }

// RegisterCommand maps a notification name to a command factory.
func (f *Facade) RegisterCommand(notificationName string, factory func() Command) {
	f.controller.RegisterCommand(notificationName, factory)
}

// RemoveCommand unmaps a notification name from its command.
func (f *Facade) RemoveCommand(notificationName string) {
	f.controller.RemoveCommand(notificationName)
}

// HasCommand reports whether a command is mapped to notificationName.
func (f *Facade) HasCommand(notificationName string) bool {
	return f.controller.HasCommand(notificationName)
}

// RegisterProxy stores a proxy with the core's Model.
func (f *Facade) RegisterProxy(proxy Proxy) {
	f.model.RegisterProxy(proxy)
}

// RetrieveProxy returns the proxy registered under name, or nil.
func (f *Facade) RetrieveProxy(name string) Proxy {
	return f.model.RetrieveProxy(name)
}

// RemoveProxy removes and returns the proxy registered under name, or
// nil.
func (f *Facade) RemoveProxy(name string) Proxy {
	return f.model.RemoveProxy(name)
}

// HasProxy reports whether a proxy is registered under name.
func (f *Facade) HasProxy(name string) bool {
	return f.model.HasProxy(name)
}

// RegisterMediator stores a mediator with the core's View.
func (f *Facade) RegisterMediator(mediator Mediator) {
	f.view.RegisterMediator(mediator)
}

// RetrieveMediator returns the mediator registered under name, or nil.
func (f *Facade) RetrieveMediator(name string) Mediator {
	return f.view.RetrieveMediator(name)
}

// RemoveMediator removes and returns the mediator registered under
// name, or nil.
func (f *Facade) RemoveMediator(name string) Mediator {
	return f.view.RemoveMediator(name)
}

// HasMediator reports whether a mediator is registered under name.
func (f *Facade) HasMediator(name string) bool {
	return f.view.HasMediator(name)
}

// SendNotification creates a Notification and broadcasts it through
// the core's View, reaching mapped commands and interested mediators
// synchronously, on the caller's stack.
func (f *Facade) SendNotification(name string, body any, noteType string) {
	f.NotifyObservers(Notification{Name: name, Body: body, Type: noteType})
}

// NotifyObservers broadcasts an already-built notification.
func (f *Facade) NotifyObservers(note Notification) {
	f.view.NotifyObservers(note)
}

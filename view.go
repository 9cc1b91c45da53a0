package puremvc

import (
	"fmt"
	"log/slog"
	"sync"
)

// View is the per-core mediator registry and synchronous notification
// bus. It maintains two parallel mappings: mediators by name, and
// ordered observer lists by notification name. The two stay consistent
// under registration and removal, including removal triggered from
// inside an in-flight delivery.
type View struct {
	key         string
	mediatorMap map[string]Mediator
	observerMap map[string][]*Observer
	logger      *slog.Logger
}

var (
	viewMu        sync.Mutex
	viewInstances = map[string]*View{}
)

// NewView constructs the View for key and claims the key in the
// multiton map. It panics if the key is already in use; callers that
// want get-or-create semantics use GetView.
func NewView(key string) *View {
	viewMu.Lock()
	defer viewMu.Unlock()
	if _, exists := viewInstances[key]; exists {
		panic(fmt.Sprintf("puremvc: view instance for multiton key '%s' already constructed", key))
	}
	v := newView(key)
	viewInstances[key] = v
	return v
}

// GetView returns the View for key, constructing it on first use.
func GetView(key string) *View {
	viewMu.Lock()
	defer viewMu.Unlock()
	if v, ok := viewInstances[key]; ok {
		return v
	}
	v := newView(key)
	viewInstances[key] = v
	return v
}

// RemoveView releases key from the multiton map. A still-held
// reference to the removed View keeps working but is no longer
// reachable by key, and the key may be reconstructed.
func RemoveView(key string) {
	viewMu.Lock()
	defer viewMu.Unlock()
	delete(viewInstances, key)
}

func newView(key string) *View {
	return &View{
		key:         key,
		mediatorMap: make(map[string]Mediator),
		observerMap: make(map[string][]*Observer),
		logger:      slog.Default().With("core", key),
	}
}

// Key returns the multiton key this View was constructed for.
func (v *View) Key() string { return v.key }

// RegisterObserver appends observer to the list for notificationName,
// creating the list if absent. There is no deduplication: registering
// the same observer twice yields two deliveries per notification.
func (v *View) RegisterObserver(notificationName string, observer *Observer) {
	v.observerMap[notificationName] = append(v.observerMap[notificationName], observer)
}

// RemoveObserver removes the most recently registered observer whose
// context is notifyContext from the list for notificationName. At most
// one observer is removed per call. When the list empties, the
// notification name is deleted from the map entirely; the map never
// holds an empty list.
func (v *View) RemoveObserver(notificationName string, notifyContext any) {
	observers := v.observerMap[notificationName]
	for i := len(observers) - 1; i >= 0; i-- {
		if observers[i].CompareNotifyContext(notifyContext) {
			observers = append(observers[:i], observers[i+1:]...)
			break
		}
	}
	if len(observers) == 0 {
		delete(v.observerMap, notificationName)
		return
	}
	v.observerMap[notificationName] = observers
}

// NotifyObservers synchronously delivers note to every observer
// registered for its name, in registration order. Absence of observers
// is not an error; the call is then a no-op.
//
// Delivery iterates a snapshot of the list taken up front, so a
// handler may register or remove observers for the same name without
// perturbing the delivery in progress.
func (v *View) NotifyObservers(note Notification) {
	observers, ok := v.observerMap[note.Name]
	if !ok {
		return
	}
	snapshot := make([]*Observer, len(observers))
	copy(snapshot, observers)
	for _, observer := range snapshot {
		observer.NotifyObserver(note)
	}
}

// RegisterMediator stores mediator under its name and subscribes it to
// every notification name in its interest list. A single Observer
// instance, wrapping the mediator's HandleNotification, is shared
// across all interests. If a mediator with the same name is already
// registered the call is a no-op; it must be removed before a
// replacement can be registered.
func (v *View) RegisterMediator(mediator Mediator) {
	name := mediator.MediatorName()
	if _, exists := v.mediatorMap[name]; exists {
		v.logger.Debug("Mediator name already registered, ignoring.", "name", name)
		return
	}

	mediator.InitializeNotifier(v.key)
	v.mediatorMap[name] = mediator

	interests := mediator.ListNotificationInterests()
	if len(interests) > 0 {
		observer := NewObserver(mediator.HandleNotification, mediator)
		for _, interest := range interests {
			v.RegisterObserver(interest, observer)
		}
	}

	v.logger.Debug("Registered mediator.", "name", name, "interests", len(interests))
	mediator.OnRegister()
}

// RetrieveMediator returns the mediator registered under name, or nil.
func (v *View) RetrieveMediator(name string) Mediator {
	return v.mediatorMap[name]
}

// HasMediator reports whether a mediator is registered under name.
func (v *View) HasMediator(name string) bool {
	_, ok := v.mediatorMap[name]
	return ok
}

// RemoveMediator removes the mediator registered under name,
// unsubscribing it from every interest it was registered for, and
// returns it. It returns nil, with no side effects, when the name is
// unknown. The mediator's OnRemove hook fires after it has left both
// maps.
func (v *View) RemoveMediator(name string) Mediator {
	mediator, ok := v.mediatorMap[name]
	if !ok {
		return nil
	}

	for _, interest := range mediator.ListNotificationInterests() {
		v.RemoveObserver(interest, mediator)
	}
	delete(v.mediatorMap, name)

	v.logger.Debug("Removed mediator.", "name", name)
	mediator.OnRemove()
	return mediator
}

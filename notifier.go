package puremvc

// Notifier is the capability to send notifications into the core its
// owner is registered with. It is implemented by proxies, mediators,
// and commands via an embedded BaseNotifier.
//
// InitializeNotifier is called exactly once, by the registering Model,
// View, or Controller, before any SendNotification call. Application
// code never calls it directly.
type Notifier interface {
	InitializeNotifier(key string)
	SendNotification(name string, body any, noteType string)
}

// BaseNotifier implements Notifier by resolving the Facade for its
// multiton key lazily on first use and caching it. It carries no
// back-reference to the owning core until then, so proxies, mediators,
// and commands can be constructed before the core exists.
type BaseNotifier struct {
	key    string
	facade *Facade
}

// InitializeNotifier binds the notifier to a core. Re-binding drops
// any cached facade.
func (n *BaseNotifier) InitializeNotifier(key string) {
	n.key = key
	n.facade = nil
}

// Key returns the multiton key this notifier is bound to, or the empty
// string before initialization.
func (n *BaseNotifier) Key() string { return n.key }

// Facade returns the facade of the bound core, resolving it through
// the multiton map on first call. It panics if the notifier has not
// been initialized: that means the owner was never registered with a
// Model, View, or Controller.
func (n *BaseNotifier) Facade() *Facade {
	if n.facade == nil {
		if n.key == "" {
			panic("puremvc: notifier used before InitializeNotifier")
		}
		n.facade = GetFacade(n.key)
	}
	return n.facade
}

// SendNotification creates a Notification and hands it to the bound
// core for synchronous dispatch to commands and mediators.
func (n *BaseNotifier) SendNotification(name string, body any, noteType string) {
	n.Facade().SendNotification(name, body, noteType)
}

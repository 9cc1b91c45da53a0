package puremvc

// Observer pairs a notification handler with the context object it is
// bound to. The context is held only so the View can find the observer
// again during removal; the Observer neither owns nor manages the
// context's lifetime.
type Observer struct {
	notify  func(Notification)
	context any
}

// NewObserver creates an Observer delivering to notify on behalf of
// notifyContext.
func NewObserver(notify func(Notification), notifyContext any) *Observer {
	return &Observer{notify: notify, context: notifyContext}
}

// NotifyObserver delivers note to the stored handler.
func (o *Observer) NotifyObserver(note Notification) {
	o.notify(note)
}

// CompareNotifyContext reports whether object is the context this
// observer was created with. The comparison is by identity, not by
// structure: two distinct contexts with equal contents do not match.
func (o *Observer) CompareNotifyContext(object any) bool {
	return o.context == object
}

package puremvc

// Mediator is a named adapter between a view-layer component and the
// notification bus. It declares the notification names it wants to
// receive; the View queries that list once, at registration time, so a
// mediator cannot change its subscriptions afterwards without being
// removed and re-registered.
//
// Application mediators embed *BaseMediator and override
// ListNotificationInterests, HandleNotification, and the lifecycle
// hooks as needed.
type Mediator interface {
	Notifier

	// MediatorName returns the name the mediator is registered under.
	// It must be stable for the mediator's lifetime.
	MediatorName() string

	ViewComponent() any
	SetViewComponent(component any)

	// ListNotificationInterests returns the notification names this
	// mediator wants delivered to HandleNotification.
	ListNotificationInterests() []string

	HandleNotification(note Notification)

	// OnRegister is invoked by the View once registration completes.
	OnRegister()

	// OnRemove is invoked by the View once the mediator is removed.
	OnRemove()
}

// DefaultMediatorName is used when a mediator is constructed without a
// name.
const DefaultMediatorName = "Mediator"

// BaseMediator is a ready-made Mediator implementation with no
// interests and no-op hooks.
type BaseMediator struct {
	BaseNotifier
	name      string
	component any
}

// NewBaseMediator creates a mediator for the given view component
// under the given name.
func NewBaseMediator(name string, viewComponent any) *BaseMediator {
	if name == "" {
		name = DefaultMediatorName
	}
	return &BaseMediator{name: name, component: viewComponent}
}

func (m *BaseMediator) MediatorName() string { return m.name }

func (m *BaseMediator) ViewComponent() any { return m.component }

func (m *BaseMediator) SetViewComponent(component any) { m.component = component }

func (m *BaseMediator) ListNotificationInterests() []string { return nil }

func (m *BaseMediator) HandleNotification(Notification) {}

func (m *BaseMediator) OnRegister() {}

func (m *BaseMediator) OnRemove() {}

package puremvc

// Proxy is a named holder of model data, registered with a core's
// Model. Application proxies embed *BaseProxy and override the hooks
// they care about.
type Proxy interface {
	Notifier

	// ProxyName returns the name the proxy is registered under. It
	// must be stable for the proxy's lifetime.
	ProxyName() string

	Data() any
	SetData(data any)

	// OnRegister is invoked by the Model once the proxy is stored.
	OnRegister()

	// OnRemove is invoked by the Model once the proxy is removed.
	OnRemove()
}

// DefaultProxyName is used when a proxy is constructed without a name.
const DefaultProxyName = "Proxy"

// BaseProxy is a ready-made Proxy implementation with no-op lifecycle
// hooks.
type BaseProxy struct {
	BaseNotifier
	name string
	data any
}

// NewBaseProxy creates a proxy holding data under the given name.
func NewBaseProxy(name string, data any) *BaseProxy {
	if name == "" {
		name = DefaultProxyName
	}
	return &BaseProxy{name: name, data: data}
}

func (p *BaseProxy) ProxyName() string { return p.name }

func (p *BaseProxy) Data() any { return p.data }

func (p *BaseProxy) SetData(data any) { p.data = data }

func (p *BaseProxy) OnRegister() {}

func (p *BaseProxy) OnRemove() {}

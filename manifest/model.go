package manifest

// Model is the format-agnostic representation of everything the loaded
// manifest files declared. Core order follows declaration order across
// files.
type Model struct {
	Cores []*CoreSpec
}

// CoreSpec describes one core to be assembled at startup.
type CoreSpec struct {
	App       string
	Key       string
	Startup   string
	Commands  []CommandSpec
	Proxies   []ProxySpec
	Mediators []MediatorSpec
}

// CommandSpec maps a notification name to a command factory name.
type CommandSpec struct {
	Notification string
	Handler      string
}

// ProxySpec names a proxy, its factory, and optional seed data already
// converted to native Go values.
type ProxySpec struct {
	Name    string
	Factory string
	Data    any
}

// MediatorSpec names a mediator and its factory.
type MediatorSpec struct {
	Name    string
	Factory string
}

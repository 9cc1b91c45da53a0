package puremvc

import (
	"fmt"
	"log/slog"
	"sync"
)

// Model is the per-core proxy registry. It is the same keyed-singleton
// pattern as View, without observer bookkeeping.
type Model struct {
	key      string
	proxyMap map[string]Proxy
	logger   *slog.Logger
}

var (
	modelMu        sync.Mutex
	modelInstances = map[string]*Model{}
)

// NewModel constructs the Model for key and claims the key in the
// multiton map. It panics if the key is already in use; callers that
// want get-or-create semantics use GetModel.
func NewModel(key string) *Model {
	modelMu.Lock()
	defer modelMu.Unlock()
	if _, exists := modelInstances[key]; exists {
		panic(fmt.Sprintf("puremvc: model instance for multiton key '%s' already constructed", key))
	}
	m := newModel(key)
	modelInstances[key] = m
	return m
}

// GetModel returns the Model for key, constructing it on first use.
func GetModel(key string) *Model {
	modelMu.Lock()
	defer modelMu.Unlock()
	if m, ok := modelInstances[key]; ok {
		return m
	}
	m := newModel(key)
	modelInstances[key] = m
	return m
}

// RemoveModel releases key from the multiton map.
func RemoveModel(key string) {
	modelMu.Lock()
	defer modelMu.Unlock()
	delete(modelInstances, key)
}

func newModel(key string) *Model {
	return &Model{
		key:      key,
		proxyMap: make(map[string]Proxy),
		logger:   slog.Default().With("core", key),
	}
}

// Key returns the multiton key this Model was constructed for.
func (m *Model) Key() string { return m.key }

// RegisterProxy stores proxy under its name and invokes its OnRegister
// hook. Registering a second proxy under an in-use name silently
// overwrites the first without invoking its removal hook. This is
// deliberately asymmetric with View.RegisterMediator, which no-ops on
// a duplicate name; callers that care must check HasProxy first.
func (m *Model) RegisterProxy(proxy Proxy) {
	proxy.InitializeNotifier(m.key)
	m.proxyMap[proxy.ProxyName()] = proxy
	m.logger.Debug("Registered proxy.", "name", proxy.ProxyName())
	proxy.OnRegister()
}

// RetrieveProxy returns the proxy registered under name, or nil.
func (m *Model) RetrieveProxy(name string) Proxy {
	return m.proxyMap[name]
}

// HasProxy reports whether a proxy is registered under name.
func (m *Model) HasProxy(name string) bool {
	_, ok := m.proxyMap[name]
	return ok
}

// RemoveProxy removes and returns the proxy registered under name,
// invoking its OnRemove hook. It returns nil, with no side effects,
// when the name is unknown.
func (m *Model) RemoveProxy(name string) Proxy {
	proxy, ok := m.proxyMap[name]
	if !ok {
		return nil
	}
	delete(m.proxyMap, name)
	m.logger.Debug("Removed proxy.", "name", name)
	proxy.OnRemove()
	return proxy
}

package manifest

import (
	"github.com/zclconf/go-cty/cty"
)

// document is the top-level HCL structure of a manifest file.
type document struct {
	Applications []*applicationBlock `hcl:"application,block"`
}

// applicationBlock groups the cores of one application.
type applicationBlock struct {
	Name  string       `hcl:"name,label"`
	Cores []*coreBlock `hcl:"core,block"`
}

// coreBlock declares one core: its multiton key, the notification sent
// once wiring completes, and the commands, proxies, and mediators to
// register, in declaration order.
type coreBlock struct {
	Key       string           `hcl:"key,label"`
	Startup   string           `hcl:"startup,optional"`
	Commands  []*commandBlock  `hcl:"command,block"`
	Proxies   []*proxyBlock    `hcl:"proxy,block"`
	Mediators []*mediatorBlock `hcl:"mediator,block"`
}

// commandBlock maps a notification name to a registered command
// factory.
type commandBlock struct {
	Notification string `hcl:"notification,label"`
	Handler      string `hcl:"handler"`
}

// proxyBlock names a registered proxy factory and optional seed data.
type proxyBlock struct {
	Name    string    `hcl:"name,label"`
	Factory string    `hcl:"factory"`
	Data    cty.Value `hcl:"data,optional"`
}

// mediatorBlock names a registered mediator factory.
type mediatorBlock struct {
	Name    string `hcl:"name,label"`
	Factory string `hcl:"factory"`
}

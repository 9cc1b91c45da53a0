// Package puremvc implements the PureMVC MultiCore framework: a set of
// keyed Model/View/Controller registries plus a synchronous
// Observer/Notification messaging layer that lets registered objects
// communicate without direct references to each other.
//
// Any number of independent "cores" can coexist in one process. A core
// is addressed by its multiton key: GetFacade, GetModel, GetView, and
// GetController return the single instance for a key, constructing it
// on first use. Constructing a second instance for a live key is a
// programmer error and panics.
//
// A core is single-threaded by design. Notification delivery is a
// plain synchronous fan-out on the caller's stack, and re-entrant
// mutation from inside a delivery (a mediator removing itself in
// response to the very notification it is handling, for example) is
// isolated structurally, by snapshotting observer lists before
// iteration, not by locking. The multiton factory maps themselves are
// process-wide shared state and are safe for concurrent use.
package puremvc

// Package app bootstraps PureMVC applications from a manifest. The
// binary contributes factories for its commands, proxies, and
// mediators through Modules; the manifest declares which of those go
// into which core. NewApp loads the manifest, registers the modules,
// and runs a strict parity check between the two before Start builds
// anything, so a manifest naming a factory the binary never registered
// fails at startup rather than mid-run.
package app

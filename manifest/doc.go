// Package manifest loads declarative application manifests. A manifest
// describes one or more cores — which commands, proxies, and mediators
// each one is wired with, and which notification kicks it off — so an
// application binary only contributes factories and lets the
// bootstrapper assemble the cores.
//
// Manifests are HCL:
//
//	application "roster" {
//	  core "roster" {
//	    startup = "app/startup"
//
//	    command "app/startup" {
//	      handler = "Startup"
//	    }
//
//	    proxy "rosterProxy" {
//	      factory = "RosterProxy"
//	      data    = { title = "Crew" }
//	    }
//
//	    mediator "terminalMediator" {
//	      factory = "TerminalMediator"
//	    }
//	  }
//	}
//
// Loading translates the HCL into a format-agnostic model with native
// Go values, which the app package validates against the registered
// factories before building anything.
package manifest

package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	puremvc "github.com/littlespex/puremvc-go-multicore-framework"
)

// moduleFunc adapts a function to the Module interface.
type moduleFunc func(r *Registry)

func (f moduleFunc) Register(r *Registry) { f(r) }

type stubCommand struct {
	puremvc.SimpleCommand
	executions *int
}

func (c *stubCommand) Execute(puremvc.Notification) { *c.executions++ }

type stubMediator struct {
	*puremvc.BaseMediator
	interests []string
	handled   *int
}

func (m *stubMediator) ListNotificationInterests() []string { return m.interests }

func (m *stubMediator) HandleNotification(puremvc.Notification) { *m.handled++ }

func writeManifest(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRegistryPanicsOnDuplicateFactory(t *testing.T) {
	r := NewRegistry()

	r.RegisterCommand("C", func() puremvc.Command { return &stubCommand{} })
	assert.Panics(t, func() {
		r.RegisterCommand("C", func() puremvc.Command { return &stubCommand{} })
	})

	r.RegisterProxy("P", func() puremvc.Proxy { return puremvc.NewBaseProxy("p", nil) })
	assert.Panics(t, func() {
		r.RegisterProxy("P", func() puremvc.Proxy { return puremvc.NewBaseProxy("p", nil) })
	})

	r.RegisterMediator("M", func() puremvc.Mediator { return puremvc.NewBaseMediator("m", nil) })
	assert.Panics(t, func() {
		r.RegisterMediator("M", func() puremvc.Mediator { return puremvc.NewBaseMediator("m", nil) })
	})
}

func TestNewAppPanicsOnUnregisteredFactory(t *testing.T) {
	path := writeManifest(t, fmt.Sprintf(`
application "t" {
  core "%s" {
    command "go" {
      handler = "Missing"
    }
  }
}
`, t.Name()))

	assert.PanicsWithError(t,
		"manifest validation failed:\n  - core '"+t.Name()+"': command 'go' names unregistered handler 'Missing'",
		func() {
			NewApp(io.Discard, &Config{ManifestPath: path})
		})
}

func TestNewAppPanicsOnMissingManifest(t *testing.T) {
	assert.Panics(t, func() {
		NewApp(io.Discard, &Config{ManifestPath: filepath.Join(t.TempDir(), "absent.hcl")})
	})
}

func TestAppStartBuildsCores(t *testing.T) {
	key := t.Name()
	t.Cleanup(func() { puremvc.RemoveCore(key) })

	path := writeManifest(t, fmt.Sprintf(`
application "t" {
  core "%s" {
    startup = "app/startup"

    command "app/startup" {
      handler = "Startup"
    }

    proxy "store" {
      factory = "Store"
      data    = { title = "Things" }
    }

    mediator "watcher" {
      factory = "Watcher"
    }
  }
}
`, key))

	executions := 0
	handled := 0
	mod := moduleFunc(func(r *Registry) {
		r.RegisterCommand("Startup", func() puremvc.Command {
			return &stubCommand{executions: &executions}
		})
		r.RegisterProxy("Store", func() puremvc.Proxy {
			return puremvc.NewBaseProxy("store", nil)
		})
		r.RegisterMediator("Watcher", func() puremvc.Mediator {
			return &stubMediator{
				BaseMediator: puremvc.NewBaseMediator("watcher", nil),
				interests:    []string{"app/startup"},
				handled:      &handled,
			}
		})
	})

	a := NewApp(io.Discard, &Config{ManifestPath: path}, mod)
	require.NoError(t, a.Start(context.Background()))

	facade := puremvc.GetFacade(key)
	assert.True(t, facade.HasCommand("app/startup"))
	assert.True(t, facade.HasMediator("watcher"))

	proxy := facade.RetrieveProxy("store")
	require.NotNil(t, proxy)
	assert.Equal(t, map[string]any{"title": "Things"}, proxy.Data())

	assert.Equal(t, 1, executions, "startup command runs exactly once")
	assert.Equal(t, 1, handled, "mediator sees the startup notification")

	t.Run("starting an already-live core fails", func(t *testing.T) {
		err := a.Start(context.Background())
		assert.ErrorContains(t, err, "already constructed")
	})

	t.Run("Stop releases the core", func(t *testing.T) {
		a.Stop()
		assert.False(t, puremvc.HasCore(key))
	})
}

func TestAppStartRejectsNameMismatch(t *testing.T) {
	key := t.Name()
	t.Cleanup(func() { puremvc.RemoveCore(key) })

	path := writeManifest(t, fmt.Sprintf(`
application "t" {
  core "%s" {
    proxy "declared" {
      factory = "Store"
    }
  }
}
`, key))

	mod := moduleFunc(func(r *Registry) {
		r.RegisterProxy("Store", func() puremvc.Proxy {
			return puremvc.NewBaseProxy("something-else", nil)
		})
	})

	a := NewApp(io.Discard, &Config{ManifestPath: path}, mod)
	err := a.Start(context.Background())
	assert.ErrorContains(t, err, "manifest declares 'declared'")
}

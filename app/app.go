package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	puremvc "github.com/littlespex/puremvc-go-multicore-framework"
	"github.com/littlespex/puremvc-go-multicore-framework/internal/ctxlog"
	"github.com/littlespex/puremvc-go-multicore-framework/manifest"
)

// Config holds everything an App needs to bootstrap.
type Config struct {
	ManifestPath string
	LogFormat    string
	LogLevel     string
}

// App encapsulates an application's manifest, factory registry, and
// logger.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	reg    *Registry
	model  *manifest.Model
}

// NewApp loads the manifest, registers the given modules, and
// validates factory parity. It returns a fully initialized App with
// its own isolated logger. Manifest load or validation failures are
// fatal startup errors and panic; callers that want a clean exit
// message recover at the top level.
func NewApp(outW io.Writer, cfg *Config, modules ...Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := manifest.Load(ctx, cfg.ManifestPath)
	if err != nil {
		panic(fmt.Errorf("failed to load application manifest: %w", err))
	}

	reg := NewRegistry()
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All application modules registered.", "count", len(modules))

	if err := validate(ctx, model, reg); err != nil {
		// A mismatch between manifest and code is a programmer error.
		panic(err)
	}

	return &App{
		outW:   outW,
		logger: logger,
		reg:    reg,
		model:  model,
	}
}

// Start builds every core the manifest declares: commands first, then
// proxies, then mediators, each in declaration order, followed by the
// core's startup notification if one is named. A factory whose product
// reports a different name than the manifest declares is an error, as
// is a core key that is already live.
func (a *App) Start(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	for _, core := range a.model.Cores {
		if puremvc.HasCore(core.Key) {
			return fmt.Errorf("core '%s' is already constructed", core.Key)
		}
		facade := puremvc.GetFacade(core.Key)

		for _, c := range core.Commands {
			facade.RegisterCommand(c.Notification, a.reg.Commands[c.Handler])
		}
		for _, p := range core.Proxies {
			proxy := a.reg.Proxies[p.Factory]()
			if proxy.ProxyName() != p.Name {
				return fmt.Errorf("core '%s': factory '%s' produced proxy '%s', manifest declares '%s'",
					core.Key, p.Factory, proxy.ProxyName(), p.Name)
			}
			if p.Data != nil {
				proxy.SetData(p.Data)
			}
			facade.RegisterProxy(proxy)
		}
		for _, m := range core.Mediators {
			mediator := a.reg.Mediators[m.Factory]()
			if mediator.MediatorName() != m.Name {
				return fmt.Errorf("core '%s': factory '%s' produced mediator '%s', manifest declares '%s'",
					core.Key, m.Factory, mediator.MediatorName(), m.Name)
			}
			facade.RegisterMediator(mediator)
		}

		if core.Startup != "" {
			facade.SendNotification(core.Startup, nil, "")
		}
		logger.Info("Core started.", "app", core.App, "core", core.Key)
	}
	return nil
}

// Stop tears down every core the manifest declares, releasing their
// multiton keys.
func (a *App) Stop() {
	for _, core := range a.model.Cores {
		puremvc.RemoveCore(core.Key)
		a.logger.Debug("Core removed.", "core", core.Key)
	}
}

// Registry returns the application's factory registry. This is
// primarily for testing.
func (a *App) Registry() *Registry {
	return a.reg
}

// Logger returns the application's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/littlespex/puremvc-go-multicore-framework/internal/ctxlog"
	"github.com/littlespex/puremvc-go-multicore-framework/manifest"
)

// validate performs a strict parity check between the manifest and the
// registered factories: every handler and factory name a core block
// references must exist in the registry. All misses are reported at
// once.
func validate(ctx context.Context, model *manifest.Model, reg *Registry) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, core := range model.Cores {
		for _, c := range core.Commands {
			if _, ok := reg.Commands[c.Handler]; !ok {
				errs = append(errs, fmt.Sprintf("core '%s': command '%s' names unregistered handler '%s'", core.Key, c.Notification, c.Handler))
			}
		}
		for _, p := range core.Proxies {
			if _, ok := reg.Proxies[p.Factory]; !ok {
				errs = append(errs, fmt.Sprintf("core '%s': proxy '%s' names unregistered factory '%s'", core.Key, p.Name, p.Factory))
			}
		}
		for _, m := range core.Mediators {
			if _, ok := reg.Mediators[m.Factory]; !ok {
				errs = append(errs, fmt.Sprintf("core '%s': mediator '%s' names unregistered factory '%s'", core.Key, m.Name, m.Factory))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("manifest validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	logger.Debug("Manifest validation passed.", "cores", len(model.Cores))
	return nil
}

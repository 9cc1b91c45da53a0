package manifest

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/littlespex/puremvc-go-multicore-framework/internal/ctxlog"
	"github.com/littlespex/puremvc-go-multicore-framework/internal/fsutil"
)

// Load reads manifest files from the given paths (files or directories
// searched recursively for .hcl files) and translates them into the
// format-agnostic model. A core key declared twice, in any file, is an
// error.
func Load(ctx context.Context, paths ...string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, path := range paths {
		found, err := fsutil.CollectFiles(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to locate manifest files at %s: %w", path, err)
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no manifest files found at %v", paths)
	}
	logger.Debug("Found manifest files to load.", "files", files)

	parser := hclparse.NewParser()
	model := &Model{}
	declaredIn := make(map[string]string)

	for _, path := range files {
		hclFile, diags := parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse manifest file %s: %w", path, diags)
		}

		var doc document
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &doc); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode manifest file %s: %w", path, diags)
		}

		for _, app := range doc.Applications {
			for _, core := range app.Cores {
				if prev, dup := declaredIn[core.Key]; dup {
					return nil, fmt.Errorf("core '%s' declared in both %s and %s", core.Key, prev, path)
				}
				declaredIn[core.Key] = path

				spec, err := translateCore(app.Name, core)
				if err != nil {
					return nil, fmt.Errorf("invalid core '%s' in %s: %w", core.Key, path, err)
				}
				model.Cores = append(model.Cores, spec)
			}
		}
		logger.Debug("Loaded manifest file.", "file", path)
	}

	logger.Info("Application manifest loaded.", "cores", len(model.Cores))
	return model, nil
}

// translateCore converts the HCL-specific core block into the agnostic
// model, converting proxy seed data to native Go values.
func translateCore(appName string, core *coreBlock) (*CoreSpec, error) {
	spec := &CoreSpec{
		App:     appName,
		Key:     core.Key,
		Startup: core.Startup,
	}
	for _, c := range core.Commands {
		spec.Commands = append(spec.Commands, CommandSpec{
			Notification: c.Notification,
			Handler:      c.Handler,
		})
	}
	for _, p := range core.Proxies {
		data, err := FromCtyValue(p.Data)
		if err != nil {
			return nil, fmt.Errorf("proxy '%s': %w", p.Name, err)
		}
		spec.Proxies = append(spec.Proxies, ProxySpec{
			Name:    p.Name,
			Factory: p.Factory,
			Data:    data,
		})
	}
	for _, m := range core.Mediators {
		spec.Mediators = append(spec.Mediators, MediatorSpec{
			Name:    m.Name,
			Factory: m.Factory,
		})
	}
	return spec, nil
}

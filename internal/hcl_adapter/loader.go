package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/amazingnumbers/internal/config"
	"github.com/vk/amazingnumbers/internal/ctxlog"
	"github.com/vk/amazingnumbers/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot lists every attribute a settings file may contain. Anything else
// is rejected by gohcl.
type fileRoot struct {
	Prompt    hcl.Expression `hcl:"prompt,optional"`
	Banner    hcl.Expression `hcl:"banner,optional"`
	LogLevel  hcl.Expression `hcl:"log_level,optional"`
	LogFormat hcl.Expression `hcl:"log_format,optional"`
}

// Load parses every .hcl file found under paths and merges them into one
// Settings value. Later files override attributes set by earlier ones.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	settings := &config.Settings{}

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		fileSettings, err := l.translate(ctx, &root)
		if err != nil {
			return nil, fmt.Errorf("invalid settings in %s: %w", file, err)
		}
		fileSettings.Sources = []string{file}
		settings.Merge(fileSettings)
		logger.Debug("Settings loaded from HCL file.", "file", file)
	}

	logger.Debug("HCL loading complete.", "files", len(settings.Sources))
	return settings, nil
}

// translate converts the raw attribute expressions of one file into Settings.
func (l *Loader) translate(ctx context.Context, root *fileRoot) (*config.Settings, error) {
	s := &config.Settings{}
	if err := decodeAttr(ctx, root.Prompt, "prompt", cty.String, &s.Prompt); err != nil {
		return nil, err
	}
	if err := decodeAttr(ctx, root.Banner, "banner", cty.Bool, &s.Banner); err != nil {
		return nil, err
	}
	if err := decodeAttr(ctx, root.LogLevel, "log_level", cty.String, &s.LogLevel); err != nil {
		return nil, err
	}
	if err := decodeAttr(ctx, root.LogFormat, "log_format", cty.String, &s.LogFormat); err != nil {
		return nil, err
	}
	return s, nil
}

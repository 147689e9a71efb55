package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/amazingnumbers/internal/config"
	"github.com/vk/amazingnumbers/internal/ctxlog"
	"github.com/vk/amazingnumbers/internal/presenter"
	"github.com/vk/amazingnumbers/internal/registry"
	"github.com/vk/amazingnumbers/internal/search"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	config    *Config
	registry  *registry.Registry
	engine    *search.Engine
	presenter *presenter.Presenter
}

// NewApp is the constructor for the main application. User-facing output
// goes to outW and logs to logW. It panics on a broken configuration file
// or an inconsistent property catalog, both of which are startup errors.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) *App {
	cfg := *appConfig

	// Flags decide the level until the settings file has been read.
	bootLevel := cfg.LogLevel
	if bootLevel == "" {
		bootLevel = defaultLogLevel
	}
	logger := newLogger(bootLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	if cfg.ConfigPath != "" {
		settings, err := loader.Load(ctx, cfg.ConfigPath)
		if err != nil {
			panic(fmt.Errorf("failed to load configuration: %w", err))
		}
		cfg.ApplySettings(settings)
		logger.Debug("Settings file applied.", "sources", settings.Sources)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		panic(fmt.Errorf("invalid configuration: %w", err))
	}

	logger = newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.", "level", cfg.LogLevel, "format", cfg.LogFormat)

	reg := registry.New()
	if err := reg.ValidateRegistry(ctx); err != nil {
		// This is a programmer error, so we panic.
		panic(err)
	}

	return &App{
		outW:      outW,
		logger:    logger,
		config:    &cfg,
		registry:  reg,
		engine:    search.New(reg),
		presenter: presenter.New(outW, reg),
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Config returns the resolved configuration.
func (a *App) Config() *Config {
	return a.config
}

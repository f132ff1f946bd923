// Package app implements the application layer for ninjify.
package app

import (
	"context"

	"go.trai.ch/ninjify/internal/core/domain"
	"go.trai.ch/ninjify/internal/core/ports"
	"go.trai.ch/ninjify/internal/engine/ninja"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	graphLoader  ports.GraphLoader
	generator    *ninja.Generator
	stamper      ports.Stamper
	log          ports.Logger
}

// New creates a new App instance.
func New(
	configLoader ports.ConfigLoader,
	graphLoader ports.GraphLoader,
	generator *ninja.Generator,
	stamper ports.Stamper,
	log ports.Logger,
) *App {
	return &App{
		configLoader: configLoader,
		graphLoader:  graphLoader,
		generator:    generator,
		stamper:      stamper,
		log:          log,
	}
}

// GenerateOptions carries per-invocation overrides of the configuration
// file. Zero values leave the configured setting in place.
type GenerateOptions struct {
	ConfigPath    string
	GraphPath     string
	OutputDir     string
	Suffix        string
	RemoteExecDir string
	NumJobs       int
}

// Generate translates the configured graph dump into the build description
// and wrapper script, then stamps the artifacts.
func (a *App) Generate(ctx context.Context, opts GenerateOptions) error {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	cfg = applyOverrides(cfg, opts)

	if cfg.GraphPath == "" {
		return domain.ErrGraphNotSpecified
	}

	graph, ev, err := a.graphLoader.Load(cfg.GraphPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load dependency graph")
	}

	if err := a.generator.Generate(ctx, graph, ev, cfg); err != nil {
		return zerr.Wrap(err, "generation failed")
	}

	if err := a.stamper.Stamp(ctx, cfg); err != nil {
		return zerr.Wrap(err, "failed to stamp artifacts")
	}

	a.log.Info("wrote " + cfg.NinjaPath() + " and " + cfg.ScriptPath())
	return nil
}

func applyOverrides(cfg domain.Config, opts GenerateOptions) domain.Config {
	if opts.GraphPath != "" {
		cfg.GraphPath = opts.GraphPath
	}
	if opts.OutputDir != "" {
		cfg.OutputDir = opts.OutputDir
	}
	if opts.Suffix != "" {
		cfg.Suffix = opts.Suffix
	}
	if opts.RemoteExecDir != "" {
		cfg.RemoteExecDir = opts.RemoteExecDir
	}
	if opts.NumJobs > 0 {
		cfg.NumJobs = opts.NumJobs
	}
	return cfg
}

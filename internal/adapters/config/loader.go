// Package config provides the configuration loader for ninjify.
package config

import (
	"os"
	"runtime"

	"go.trai.ch/ninjify/internal/core/domain"
	"go.trai.ch/ninjify/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	log ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{log: log}
}

// Load reads the configuration file at the given path. A missing file is
// not an error; the defaults are returned instead.
func (l *Loader) Load(path string) (domain.Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if os.IsNotExist(err) {
			l.log.Info("no configuration file found, using defaults")
			return cfg, nil
		}
		return domain.Config{}, zerr.Wrap(err, "failed to read config file")
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to parse config file")
	}

	if fc.Graph != "" {
		cfg.GraphPath = fc.Graph
	}
	if fc.OutputDir != "" {
		cfg.OutputDir = fc.OutputDir
	}
	if fc.Suffix != "" {
		cfg.Suffix = fc.Suffix
	}
	if fc.RemoteExecDir != "" {
		cfg.RemoteExecDir = fc.RemoteExecDir
	}
	if fc.Jobs > 0 {
		cfg.NumJobs = fc.Jobs
	}

	return cfg, nil
}

func defaults() domain.Config {
	return domain.Config{
		NumJobs: runtime.NumCPU(),
	}
}

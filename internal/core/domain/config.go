package domain

import "path/filepath"

// DefaultShell is used for the wrapper shebang when the evaluator resolves
// SHELL to an empty value.
const DefaultShell = "/bin/sh"

// Config carries the global generation settings. Generation is a pure
// function of (graph, evaluator, Config); nothing is read from process-wide
// state.
type Config struct {
	// GraphPath is the evaluated dependency-graph dump to translate.
	GraphPath string

	// OutputDir is where the generated artifacts are written. Empty means
	// the current directory.
	OutputDir string

	// Suffix namespaces the generated artifact filenames, e.g. "-android"
	// yields build-android.ninja and ninja-android.sh.
	Suffix string

	// RemoteExecDir, when non-empty, enables remote compilation: eligible
	// compile commands are prefixed with "<RemoteExecDir>/gomacc" and the
	// build description declares a concurrency-limited local pool for the
	// rest.
	RemoteExecDir string

	// NumJobs sizes the local pool when remote compilation is enabled.
	NumJobs int
}

// NinjaFilename returns the build-description filename, e.g. "build.ninja".
func (c Config) NinjaFilename() string {
	return "build" + c.Suffix + ".ninja"
}

// ScriptFilename returns the shell-wrapper filename, e.g. "ninja.sh".
func (c Config) ScriptFilename() string {
	return "ninja" + c.Suffix + ".sh"
}

// NinjaPath returns the build-description path under OutputDir.
func (c Config) NinjaPath() string {
	return filepath.Join(c.OutputDir, c.NinjaFilename())
}

// ScriptPath returns the shell-wrapper path under OutputDir.
func (c Config) ScriptPath() string {
	return filepath.Join(c.OutputDir, c.ScriptFilename())
}

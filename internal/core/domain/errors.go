package domain

import "go.trai.ch/zerr"

var (
	// ErrDuplicateOutput is returned when adding a node whose output name
	// already exists in the graph.
	ErrDuplicateOutput = zerr.New("duplicate output")

	// ErrTargetNotFound is returned when a requested root target does not
	// exist in the graph.
	ErrTargetNotFound = zerr.New("target not found")

	// ErrGraphNotSpecified is returned when neither the configuration file
	// nor the command line names a graph dump to translate.
	ErrGraphNotSpecified = zerr.New("no graph dump specified")

	// ErrDepfileOutputMissing reports a command that requests dependency
	// generation (-MD/-MMD) but carries neither -MF nor -o, so no depfile
	// path can be inferred. Generation continues without a depfile.
	ErrDepfileOutputMissing = zerr.New("cannot infer depfile output")

	// ErrRecursiveVariable is returned when variable expansion exceeds the
	// nesting limit, which indicates a self-referencing definition.
	ErrRecursiveVariable = zerr.New("recursive variable reference")

	// ErrUnsupportedFunction is returned when a recipe references an
	// evaluator function the pre-evaluated dump cannot provide, such as
	// $(shell ...).
	ErrUnsupportedFunction = zerr.New("unsupported function in pre-evaluated graph")
)

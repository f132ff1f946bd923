// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/ninjify/internal/core/domain"

// Evaluator is the boundary to the upstream build-language evaluator. It
// resolves a node's recipe into concrete commands and answers variable and
// export-table queries.
//
//go:generate go run go.uber.org/mock/mockgen -source=evaluator.go -destination=mocks/mock_evaluator.go -package=mocks
type Evaluator interface {
	// EvalCommands resolves the node's recipe into concrete commands, with
	// variable and macro expansion already applied.
	EvalCommands(node *domain.DepNode) ([]domain.Command, error)

	// EvalVar returns the fully resolved value of a named variable, or the
	// empty string if it is undefined.
	EvalVar(name string) string

	// Exports returns the ordered environment export table.
	Exports() []domain.ExportEntry

	// SuppressIO puts the evaluator into an I/O-suppressing mode for the
	// duration of generation. The returned restore function must always be
	// called, typically via defer, so the mode is restored even when
	// generation fails partway.
	SuppressIO() (restore func())
}

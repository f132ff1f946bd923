package ports

import "go.trai.ch/ninjify/internal/core/domain"

// GraphLoader reads an evaluated dependency-graph dump and exposes it as a
// node arena plus the evaluator boundary backing it.
//
//go:generate go run go.uber.org/mock/mockgen -source=graph_loader.go -destination=mocks/mock_graph_loader.go -package=mocks
type GraphLoader interface {
	// Load reads the dump at the given path.
	Load(path string) (*domain.Graph, Evaluator, error)
}

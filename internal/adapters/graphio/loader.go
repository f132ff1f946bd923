// Package graphio loads evaluated dependency-graph dumps from disk.
package graphio

import (
	"encoding/json"
	"os"

	"go.trai.ch/ninjify/internal/core/domain"
	"go.trai.ch/ninjify/internal/core/ports"
	"go.trai.ch/zerr"
)

// Loader implements ports.GraphLoader for JSON graph dumps.
type Loader struct {
	log ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{log: log}
}

// Load reads the dump at the given path and returns the node arena plus an
// evaluator over the dump's variable and export tables.
func (l *Loader) Load(path string) (*domain.Graph, ports.Evaluator, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to read graph dump")
	}

	var dump dumpFile
	if err := json.Unmarshal(data, &dump); err != nil {
		return nil, nil, zerr.Wrap(err, "failed to parse graph dump")
	}

	g, err := buildGraph(&dump)
	if err != nil {
		return nil, nil, err
	}

	return g, newEvaluator(dump.Vars, dump.Exports), nil
}

// buildGraph turns the dump into a node arena. Declared targets are added
// first so NodeIDs follow declaration order; dependency names without a
// declaration become bare source leaves.
func buildGraph(dump *dumpFile) (*domain.Graph, error) {
	g := domain.NewGraph()

	for _, t := range dump.Targets {
		_, err := g.AddNode(domain.DepNode{
			Output:  domain.Intern(t.Output),
			Recipe:  t.Recipe,
			IsPhony: t.Phony,
		})
		if err != nil {
			return nil, err
		}
	}

	// Create leaves for every referenced but undeclared name before any
	// node pointers are taken; AddNode may relocate the arena.
	for _, t := range dump.Targets {
		for _, name := range t.Deps {
			if err := ensureNode(g, name); err != nil {
				return nil, err
			}
		}
		for _, name := range t.OrderOnlys {
			if err := ensureNode(g, name); err != nil {
				return nil, err
			}
		}
	}

	for _, t := range dump.Targets {
		id, _ := g.Lookup(domain.Intern(t.Output))
		node := g.Node(id)
		node.Deps = resolveNames(g, t.Deps)
		node.OrderOnlys = resolveNames(g, t.OrderOnlys)
	}

	roots, err := resolveRoots(g, dump)
	if err != nil {
		return nil, err
	}
	g.Roots = roots

	return g, nil
}

func ensureNode(g *domain.Graph, name string) error {
	sym := domain.Intern(name)
	if _, ok := g.Lookup(sym); ok {
		return nil
	}
	_, err := g.AddNode(domain.DepNode{Output: sym})
	return err
}

func resolveNames(g *domain.Graph, names []string) []domain.NodeID {
	if len(names) == 0 {
		return nil
	}
	ids := make([]domain.NodeID, len(names))
	for i, name := range names {
		ids[i], _ = g.Lookup(domain.Intern(name))
	}
	return ids
}

// resolveRoots returns the requested roots, or every declared target that
// no other target depends on when the dump names none.
func resolveRoots(g *domain.Graph, dump *dumpFile) ([]domain.NodeID, error) {
	if len(dump.Roots) > 0 {
		roots := make([]domain.NodeID, len(dump.Roots))
		for i, name := range dump.Roots {
			id, ok := g.Lookup(domain.Intern(name))
			if !ok {
				return nil, zerr.With(domain.ErrTargetNotFound, "target", name)
			}
			roots[i] = id
		}
		return roots, nil
	}

	depended := make(map[domain.NodeID]bool)
	for _, t := range dump.Targets {
		for _, id := range resolveNames(g, t.Deps) {
			depended[id] = true
		}
		for _, id := range resolveNames(g, t.OrderOnlys) {
			depended[id] = true
		}
	}

	var roots []domain.NodeID
	for i := range dump.Targets {
		id := domain.NodeID(i)
		if !depended[id] {
			roots = append(roots, id)
		}
	}
	return roots, nil
}

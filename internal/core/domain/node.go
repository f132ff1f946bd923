// Package domain contains the core domain models for the evaluated
// dependency graph and its translation into a ninja build description.
package domain

import "go.trai.ch/zerr"

// NodeID is an index into a Graph's node arena. Nodes reference each other
// by NodeID rather than by pointer, so a dependency shared by multiple
// parents is stored exactly once.
type NodeID int32

// InvalidNode is the zero-value sentinel for a missing node reference.
const InvalidNode NodeID = -1

// DepNode is one target in the evaluated dependency graph.
//
// Deps are required dependencies: they trigger a rebuild of this node when
// they change. OrderOnlys must exist before this node builds but do not
// propagate rebuilds. Recipe holds the node's raw command lines in the
// source shell dialect, before command evaluation.
type DepNode struct {
	Output     Symbol
	Deps       []NodeID
	OrderOnlys []NodeID
	Recipe     []string
	IsPhony    bool
}

// Command is one evaluated build step of a node. IgnoreError marks a step
// whose failure must not abort the remaining steps of the same node.
type Command struct {
	Cmd         string
	IgnoreError bool
}

// Graph is an arena of DepNodes indexed by NodeID, with a lookup table from
// output name to node. Cycles are assumed absent; they are rejected by the
// upstream evaluator before a graph ever reaches this component.
type Graph struct {
	nodes []DepNode
	index map[Symbol]NodeID

	// Roots are the targets generation starts from, in request order.
	Roots []NodeID
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		index: make(map[Symbol]NodeID),
	}
}

// AddNode appends a node to the arena and returns its NodeID.
// It returns an error if a node with the same output already exists.
func (g *Graph) AddNode(n DepNode) (NodeID, error) {
	if _, exists := g.index[n.Output]; exists {
		return InvalidNode, zerr.With(ErrDuplicateOutput, "output", n.Output.String())
	}
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, n)
	g.index[n.Output] = id
	return id, nil
}

// Node returns the node stored at the given id. The pointer stays valid
// only until the next AddNode call.
func (g *Graph) Node(id NodeID) *DepNode {
	return &g.nodes[id]
}

// Lookup returns the NodeID of the node with the given output name.
func (g *Graph) Lookup(output Symbol) (NodeID, bool) {
	id, ok := g.index[output]
	return id, ok
}

// Len returns the number of nodes in the arena.
func (g *Graph) Len() int {
	return len(g.nodes)
}

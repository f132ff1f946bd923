package domain

// ExportEntry is one directive of the environment export table carried over
// from the upstream evaluator. Entries are ordered; the generated shell
// wrapper replays them in order. Export false means the variable is unset.
type ExportEntry struct {
	Name   Symbol
	Export bool
}

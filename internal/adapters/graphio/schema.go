package graphio

// dumpFile mirrors the JSON structure of an evaluated dependency-graph dump.
type dumpFile struct {
	Targets []targetDTO       `json:"targets"`
	Vars    map[string]string `json:"vars"`
	Exports []exportDTO       `json:"exports"`
	Roots   []string          `json:"roots"`
}

// targetDTO is one declared target in the dump. Dependencies reference
// other targets by output name; names without a declaration become source
// leaves.
type targetDTO struct {
	Output     string   `json:"output"`
	Deps       []string `json:"deps"`
	OrderOnlys []string `json:"order_onlys"`
	Recipe     []string `json:"recipe"`
	Phony      bool     `json:"phony"`
}

// exportDTO is one environment export directive.
type exportDTO struct {
	Name   string `json:"name"`
	Export bool   `json:"export"`
}

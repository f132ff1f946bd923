package graphio

import (
	"strings"

	"go.trai.ch/ninjify/internal/core/domain"
	"go.trai.ch/zerr"
)

// maxExpandDepth bounds nested variable expansion. A definition chain this
// deep is a self-reference.
const maxExpandDepth = 32

// evaluator implements ports.Evaluator over the dump's variable and export
// tables. Recipes are pre-evaluated except for variable references and the
// recipe-line prefix characters.
type evaluator struct {
	vars       map[string]string
	exports    []domain.ExportEntry
	suppressed int
}

func newEvaluator(vars map[string]string, exports []exportDTO) *evaluator {
	entries := make([]domain.ExportEntry, len(exports))
	for i, e := range exports {
		entries[i] = domain.ExportEntry{
			Name:   domain.Intern(e.Name),
			Export: e.Export,
		}
	}
	return &evaluator{
		vars:    vars,
		exports: entries,
	}
}

// EvalCommands resolves the node's recipe into concrete commands. The
// leading "-" marks a step whose failure is ignored; "@" and "+" only
// affect echoing and dry runs upstream and are stripped here.
func (e *evaluator) EvalCommands(node *domain.DepNode) ([]domain.Command, error) {
	cmds := make([]domain.Command, 0, len(node.Recipe))
	for _, line := range node.Recipe {
		line = strings.TrimLeft(line, " \t")

		ignoreError := false
		for len(line) > 0 {
			if line[0] == '-' {
				ignoreError = true
			} else if line[0] != '@' && line[0] != '+' {
				break
			}
			line = line[1:]
		}

		expanded, err := e.expand(line, 0)
		if err != nil {
			return nil, zerr.With(err, "output", node.Output.String())
		}
		cmds = append(cmds, domain.Command{
			Cmd:         expanded,
			IgnoreError: ignoreError,
		})
	}
	return cmds, nil
}

// EvalVar returns the fully resolved value of a named variable, or the
// empty string if it is undefined or self-referencing.
func (e *evaluator) EvalVar(name string) string {
	val, err := e.expand(e.vars[name], 0)
	if err != nil {
		return ""
	}
	return val
}

// Exports returns the ordered environment export table.
func (e *evaluator) Exports() []domain.ExportEntry {
	return e.exports
}

// SuppressIO enters the I/O-suppressing mode used during generation. Calls
// nest; the mode is left when every restore function has run.
func (e *evaluator) SuppressIO() (restore func()) {
	e.suppressed++
	return func() {
		e.suppressed--
	}
}

// expand resolves $(name), ${name}, $x and $$ references in s. Function
// calls such as $(shell ...) cannot be served from a pre-evaluated dump
// and are rejected.
func (e *evaluator) expand(s string, depth int) (string, error) {
	if depth > maxExpandDepth {
		return "", domain.ErrRecursiveVariable
	}
	if !strings.ContainsRune(s, '$') {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '$' {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(s) {
			b.WriteByte('$')
			break
		}

		i++
		switch next := s[i]; next {
		case '$':
			b.WriteByte('$')
		case '(', '{':
			closer := byte(')')
			if next == '{' {
				closer = '}'
			}
			end := matchingClose(s, i+1, next, closer)
			if end < 0 {
				return "", zerr.With(zerr.New("unterminated variable reference"), "input", s)
			}
			name := s[i+1 : end]
			i = end
			if idx := strings.IndexAny(name, " \t"); idx >= 0 {
				return "", zerr.With(domain.ErrUnsupportedFunction, "function", name[:idx])
			}
			val, err := e.expand(e.vars[name], depth+1)
			if err != nil {
				return "", err
			}
			b.WriteString(val)
		default:
			val, err := e.expand(e.vars[string(next)], depth+1)
			if err != nil {
				return "", err
			}
			b.WriteString(val)
		}
	}
	return b.String(), nil
}

// matchingClose returns the index of the closer byte matching the opener
// just before start, or -1 when unbalanced.
func matchingClose(s string, start int, opener, closer byte) int {
	depth := 1
	for i := start; i < len(s); i++ {
		switch s[i] {
		case opener:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

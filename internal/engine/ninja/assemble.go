package ninja

import (
	"strings"

	"go.trai.ch/ninjify/internal/core/domain"
)

// assembleCommands composes the node's evaluated commands into a single
// shell line in g.cmd. It reports whether the node's rule should run in the
// shared local pool: remote compilation is configured but none of the
// node's commands could be dispatched remotely.
//
// Commands are joined with " && ", or " ; " when the previous command
// tolerates failure so its non-zero exit does not abort the chain. With
// more than one command each is wrapped in a sub-shell to preserve the
// working-directory and variable scoping of the original multi-step rule,
// unless it already starts with '('.
func (g *Generator) assembleCommands(cmds []domain.Command) bool {
	usedRemote := false
	prevIgnoreError := false
	g.cmd.reset()

	for i, c := range cmds {
		if g.cmd.len() > 0 {
			if prevIgnoreError {
				g.cmd.writeString(" ; ")
			} else {
				g.cmd.writeString(" && ")
			}
		}
		prevIgnoreError = c.IgnoreError

		in := strings.TrimLeft(c.Cmd, leadingSpace)

		needsSubshell := len(cmds) > 1
		if strings.HasPrefix(in, "(") {
			needsSubshell = false
		}
		if needsSubshell {
			g.cmd.writeByte('(')
		}

		translated := translateCommand(&g.cmd, in)
		if translated.empty() {
			g.cmd.writeString("true")
		} else if g.remoteCmd != "" && isRemoteCompileCommand(g.cmd.view(translated)) {
			g.cmd.insert(translated.start, g.remoteCmd)
			usedRemote = true
		}

		if i == len(cmds)-1 && c.IgnoreError {
			g.cmd.writeString(" ; true")
		}

		if needsSubshell {
			g.cmd.writeByte(')')
		}
	}

	return g.remoteCmd != "" && !usedRemote
}

// isRemoteCompileCommand reports whether a translated command is an
// Android-toolchain compile invocation eligible for remote dispatch: a
// prebuilt gcc/clang family binary with a " -c " flag.
func isRemoteCompileCommand(cmd string) bool {
	rest, ok := strings.CutPrefix(cmd, "prebuilts/")
	if !ok {
		return false
	}
	if r, ok := strings.CutPrefix(rest, "gcc/"); ok {
		rest = r
	} else if r, ok := strings.CutPrefix(rest, "clang/"); ok {
		rest = r
	} else {
		return false
	}

	i := strings.IndexByte(rest, ' ')
	if i < 0 {
		return false
	}
	cc := rest[:i]
	if !strings.HasSuffix(cc, "gcc") && !strings.HasSuffix(cc, "g++") &&
		!strings.HasSuffix(cc, "clang") && !strings.HasSuffix(cc, "clang++") {
		return false
	}

	return strings.Contains(rest[i:], " -c ")
}

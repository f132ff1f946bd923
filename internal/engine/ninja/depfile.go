package ninja

import (
	"strings"

	"go.trai.ch/ninjify/internal/core/domain"
	"go.trai.ch/zerr"
)

// DepfileFromCommand inspects a fully assembled command and infers the path
// of the dependency file the compiler will write, if any. The command must
// end with a single sentinel space; flag values are terminated by it.
//
// ok false with a nil error means the command simply does not generate a
// dependency file. A non-nil error reports a command that asks for one
// (-MD/-MMD) but names neither -MF nor -o; callers log it and emit the node
// without a depfile declaration.
func DepfileFromCommand(cmd string) (depfile string, ok bool, err error) {
	if len(cmd) == 0 || cmd[len(cmd)-1] != ' ' {
		panic("ninja: depfile command lacks the trailing sentinel space")
	}

	depfile, ok, err = depfileFromFlags(cmd)
	if !ok || err != nil {
		return "", false, err
	}

	// llvm-rs-cc accepts the -MD flags but never writes a dep file.
	if strings.Contains(cmd, "bin/llvm-rs-cc ") {
		return "", false, nil
	}

	// Some Android rules post-process the dep file into a sibling .P file;
	// when the command mentions one, that is the file ninja must read.
	p := stripExt(depfile) + ".P"
	if strings.Contains(cmd, p) {
		return p, true, nil
	}

	// For assembly sources gcc skips the C preprocessor and with it the
	// dep-file flags, so a .s sibling means no file will be written.
	as := "/" + stripExt(basename(depfile)) + ".s"
	if strings.Contains(cmd, as) {
		return "", false, nil
	}

	return depfile, true, nil
}

func depfileFromFlags(cmd string) (string, bool, error) {
	if !strings.Contains(cmd, " -MD ") && !strings.Contains(cmd, " -MMD ") {
		return "", false, nil
	}

	if mf := flagArg(cmd, " -MF "); mf != "" {
		return mf, true, nil
	}

	o := flagArg(cmd, " -o ")
	if o == "" {
		return "", false, zerr.With(domain.ErrDepfileOutputMissing, "command", cmd)
	}
	return stripExt(o) + ".d", true, nil
}

// flagArg returns the value following the given flag, or "" when the flag
// is absent. Repeated occurrences of the flag are skipped so the last one
// wins. The caller guarantees the command ends with a sentinel space, so a
// value without a terminating space is an internal invariant failure.
func flagArg(cmd, flag string) string {
	i := strings.Index(cmd, flag)
	if i < 0 {
		return ""
	}

	val := trimLeftSpace(cmd[i+len(flag):])
	for {
		j := strings.Index(val, flag)
		if j < 0 {
			break
		}
		val = trimLeftSpace(val[j+len(flag):])
	}

	end := strings.IndexByte(val, ' ')
	if end < 0 {
		panic("ninja: flag value not terminated by the sentinel space: " + flag)
	}
	return val[:end]
}

func trimLeftSpace(s string) string {
	return strings.TrimLeft(s, leadingSpace)
}

// stripExt drops the extension of the final path element, if there is one.
func stripExt(s string) string {
	i := strings.LastIndexByte(s, '.')
	if i < 0 || i < strings.LastIndexByte(s, '/') {
		return s
	}
	return s[:i]
}

func basename(s string) string {
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		return s[i+1:]
	}
	return s
}

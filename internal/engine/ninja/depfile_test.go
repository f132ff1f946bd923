package ninja

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepfileFromCommand(t *testing.T) {
	tests := []struct {
		name    string
		cmd     string
		want    string
		wantOK  bool
		wantErr bool
	}{
		{
			name:   "MMD With Output Flag",
			cmd:    "gcc -c a.c -MMD -o a.o ",
			want:   "a.d",
			wantOK: true,
		},
		{
			name:   "MF Overrides Output Flag",
			cmd:    "gcc -c a.c -MD -MF custom.d -o a.o ",
			want:   "custom.d",
			wantOK: true,
		},
		{
			name:   "Repeated MF Takes Last",
			cmd:    "gcc -c a.c -MD -MF first.d -MF second.d -o a.o ",
			want:   "second.d",
			wantOK: true,
		},
		{
			name:   "No Dep Flags",
			cmd:    "gcc -c a.c -o a.o ",
			wantOK: false,
		},
		{
			name:   "Output In Subdirectory",
			cmd:    "gcc -c src/a.c -MD -o out/obj/a.o ",
			want:   "out/obj/a.d",
			wantOK: true,
		},
		{
			name:    "Dep Flag Without Output",
			cmd:     "gcc -c a.c -MD ",
			wantOK:  false,
			wantErr: true,
		},
		{
			name:   "Resource Compiler Never Writes Depfile",
			cmd:    "prebuilts/sdk/bin/llvm-rs-cc -MD -o out/gen.o foo.rscript ",
			wantOK: false,
		},
		{
			name:   "Sibling P File Preferred",
			cmd:    "gcc -c a.c -MD -o obj/a.o && touch obj/a.P ",
			want:   "obj/a.P",
			wantOK: true,
		},
		{
			name:   "Assembly Source Ignores Dep Flags",
			cmd:    "gcc -c src/a.s -MD -o obj/a.o ",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := DepfileFromCommand(tt.cmd)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "cannot infer depfile")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDepfileFromCommand_MissingSentinelPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _, _ = DepfileFromCommand("gcc -c a.c -MD -o a.o")
	})
	assert.Panics(t, func() {
		_, _, _ = DepfileFromCommand("")
	})
}

func TestFlagArg(t *testing.T) {
	assert.Equal(t, "a.o", flagArg("gcc -c a.c -o a.o ", " -o "))
	assert.Equal(t, "", flagArg("gcc -c a.c ", " -o "))
	// An unterminated value violates the sentinel contract.
	assert.Panics(t, func() {
		flagArg("gcc -c a.c -o a.o", " -o ")
	})
}

func TestStripExt(t *testing.T) {
	assert.Equal(t, "a", stripExt("a.o"))
	assert.Equal(t, "out/a", stripExt("out/a.d"))
	assert.Equal(t, "noext", stripExt("noext"))
	// A dot in a directory name is not an extension.
	assert.Equal(t, "out.d/file", stripExt("out.d/file"))
}

package ninja

import (
	"testing"

	"github.com/google/shlex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ninjify/internal/core/domain"
)

func TestAssembleCommands(t *testing.T) {
	tests := []struct {
		name      string
		remoteCmd string
		cmds      []domain.Command
		want      string
		wantPool  bool
	}{
		{
			name: "Single Command No Subshell",
			cmds: []domain.Command{{Cmd: "echo hi"}},
			want: "echo hi",
		},
		{
			name: "Two Commands Joined With And",
			cmds: []domain.Command{{Cmd: "echo a"}, {Cmd: "echo b"}},
			want: "(echo a) && (echo b)",
		},
		{
			name: "Ignored Failure Joins With Semicolon",
			cmds: []domain.Command{{Cmd: "echo a", IgnoreError: true}, {Cmd: "echo b"}},
			want: "(echo a) ; (echo b)",
		},
		{
			name: "Last Command Ignored Gets Success Guard",
			cmds: []domain.Command{{Cmd: "echo a"}, {Cmd: "echo b", IgnoreError: true}},
			want: "(echo a) && (echo b ; true)",
		},
		{
			name: "Existing Parens Not Rewrapped",
			cmds: []domain.Command{{Cmd: "(cd sub && make)"}, {Cmd: "echo done"}},
			want: "(cd sub && make) && (echo done)",
		},
		{
			name: "Empty Command Becomes True",
			cmds: []domain.Command{{Cmd: "  ; "}, {Cmd: "echo b"}},
			want: "(true) && (echo b)",
		},
		{
			name: "Single Empty Command",
			cmds: []domain.Command{{Cmd: ""}},
			want: "true",
		},
		{
			name:      "Remote Compile Gets Prefix",
			remoteCmd: "/opt/goma/gomacc ",
			cmds: []domain.Command{
				{Cmd: "prebuilts/gcc/linux-x86/bin/arm-gcc -c a.c -o a.o"},
			},
			want:     "/opt/goma/gomacc prebuilts/gcc/linux-x86/bin/arm-gcc -c a.c -o a.o",
			wantPool: false,
		},
		{
			name:      "Non Compile Command Uses Local Pool",
			remoteCmd: "/opt/goma/gomacc ",
			cmds:      []domain.Command{{Cmd: "python gen.py"}},
			want:      "python gen.py",
			wantPool:  true,
		},
		{
			name:      "Mixed Commands Skip Local Pool",
			remoteCmd: "/opt/goma/gomacc ",
			cmds: []domain.Command{
				{Cmd: "mkdir -p out"},
				{Cmd: "prebuilts/clang/host/linux-x86/bin/clang++ -c a.cpp -o a.o"},
			},
			want:     "(mkdir -p out) && (/opt/goma/gomacc prebuilts/clang/host/linux-x86/bin/clang++ -c a.cpp -o a.o)",
			wantPool: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Generator{remoteCmd: tt.remoteCmd}
			gotPool := g.assembleCommands(tt.cmds)
			assert.Equal(t, tt.want, g.cmd.String())
			assert.Equal(t, tt.wantPool, gotPool)
		})
	}
}

// The assembled line must still tokenize the way the original quoted
// command did.
func TestAssembleCommands_Tokenization(t *testing.T) {
	g := &Generator{}
	g.assembleCommands([]domain.Command{{Cmd: `echo "hello world" done`}})

	tokens, err := shlex.Split(g.cmd.String())
	require.NoError(t, err)
	assert.Equal(t, []string{"echo", "hello world", "done"}, tokens)
}

func TestIsRemoteCompileCommand(t *testing.T) {
	tests := []struct {
		name string
		cmd  string
		want bool
	}{
		{name: "Prebuilt GCC", cmd: "prebuilts/gcc/linux-x86/bin/arm-gcc -c a.c -o a.o", want: true},
		{name: "Prebuilt Clang Plus Plus", cmd: "prebuilts/clang/host/linux-x86/bin/clang++ -c a.cpp -o a.o", want: true},
		{name: "No Prebuilt Prefix", cmd: "gcc -c a.c -o a.o", want: false},
		{name: "Wrong Toolchain Dir", cmd: "prebuilts/rust/bin/rustc -c a.rs", want: false},
		{name: "Not A Compiler", cmd: "prebuilts/gcc/linux-x86/bin/objcopy -c x", want: false},
		{name: "Link Step Without Dash C", cmd: "prebuilts/gcc/linux-x86/bin/arm-gcc -o a.out a.o", want: false},
		{name: "No Arguments", cmd: "prebuilts/gcc/bin/arm-gcc", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRemoteCompileCommand(tt.cmd))
		})
	}
}

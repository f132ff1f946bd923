package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		graphContent string
		args         func(tmpDir string) []string
		expectedExit int
	}{
		{
			name: "Success with valid graph",
			graphContent: `{
				"targets": [
					{"output": "a.o", "deps": ["a.c"], "recipe": ["gcc -c a.c -o a.o"]}
				],
				"roots": ["a.o"]
			}`,
			args: func(tmpDir string) []string {
				return []string{"ninjify", "generate", "-g", tmpDir + "/graph.json", "-o", tmpDir}
			},
			expectedExit: 0,
		},
		{
			name: "Error with missing graph",
			args: func(tmpDir string) []string {
				return []string{"ninjify", "generate", "-g", tmpDir + "/nonexistent.json", "-o", tmpDir}
			},
			expectedExit: 1,
		},
		{
			name: "Error without graph flag",
			args: func(tmpDir string) []string {
				return []string{"ninjify", "generate"}
			},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()

			if tt.graphContent != "" {
				err := os.WriteFile(tmpDir+"/graph.json", []byte(tt.graphContent), 0o600)
				require.NoError(t, err)
			}

			os.Args = tt.args(tmpDir)

			exitCode := run()
			assert.Equal(t, tt.expectedExit, exitCode)

			if tt.expectedExit == 0 {
				_, err := os.Stat(tmpDir + "/build.ninja")
				assert.NoError(t, err)
				_, err = os.Stat(tmpDir + "/ninja.sh")
				assert.NoError(t, err)
			}
		})
	}
}

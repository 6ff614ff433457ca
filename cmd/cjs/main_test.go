package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cjs/internal/app"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name         string
		files        map[string]string
		args         []string
		expectedExit int
		expectedOut  string
	}{
		{
			name: "Runs main file",
			files: map[string]string{
				"main.js":      `print(require("./lib/greet").hello("world"));`,
				"lib/greet.js": `exports.hello = function (who) { return "hello " + who; };`,
			},
			args:         []string{"run", "main.js"},
			expectedExit: 0,
			expectedOut:  "hello world\n",
		},
		{
			name: "Runs project main",
			files: map[string]string{
				"cjs.yaml": "main: app.js\n",
				"app.js":   `print("from project file");`,
			},
			args:         []string{"run"},
			expectedExit: 0,
			expectedOut:  "from project file\n",
		},
		{
			name:         "Missing main file",
			args:         []string{"run", "missing.js"},
			expectedExit: 1,
		},
		{
			name: "Script throws",
			files: map[string]string{
				"main.js": `throw new Error("nope");`,
			},
			args:         []string{"run", "main.js"},
			expectedExit: 1,
		},
		{
			name:         "Unknown command",
			args:         []string{"bogus"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")
			tmpDir := t.TempDir()
			for name, src := range tt.files {
				path := filepath.Join(tmpDir, name)
				require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
				require.NoError(t, os.WriteFile(path, []byte(src), 0o600))
			}

			out := &bytes.Buffer{}
			exitCode := run(context.Background(), tt.args, func(a *app.App) {
				a.WithOutput(out).WithWorkingDir(tmpDir)
			})
			assert.Equal(t, tt.expectedExit, exitCode)
			if tt.expectedOut != "" {
				assert.Equal(t, tt.expectedOut, out.String())
			}
		})
	}
}

package config_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cjs/internal/adapters/config"
	"go.trai.ch/cjs/internal/core/domain"
	"go.trai.ch/cjs/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T, files map[string]string) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	mem := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(mem, path, []byte(content), 0o644))
	}
	return config.NewLoader(mem, log)
}

func TestLoad_Success(t *testing.T) {
	l := newLoader(t, map[string]string{
		"/project/cjs.yaml": `
main: src/main.js
extensions: [".js", ".cjs", ""]
paths:
  - lib
  - /opt/shared.jar
debug: true
trace: true
`,
	})

	opts, err := l.Load("/project", "")
	require.NoError(t, err)
	assert.Equal(t, domain.Options{
		MainFile:   "/project/src/main.js",
		Extensions: []string{".js", ".cjs", ""},
		Paths:      []string{"/project/lib", "/opt/shared.jar"},
		Debug:      true,
		Trace:      true,
	}, opts)
}

func TestLoad_DiscoversParentProjectfile(t *testing.T) {
	l := newLoader(t, map[string]string{
		"/project/cjs.yaml": "main: main.js\n",
	})

	opts, err := l.Load("/project/src/deep", "")
	require.NoError(t, err)
	assert.Equal(t, "/project/main.js", opts.MainFile)
}

func TestLoad_MissingDefaultIsNotAnError(t *testing.T) {
	l := newLoader(t, nil)

	opts, err := l.Load("/project", "")
	require.NoError(t, err)
	assert.Equal(t, domain.Options{}, opts)
}

func TestLoad_EmptyFile(t *testing.T) {
	l := newLoader(t, map[string]string{"/project/cjs.yaml": ""})

	opts, err := l.Load("/project", "")
	require.NoError(t, err)
	assert.Equal(t, domain.Options{}, opts)
}

func TestLoad_ExplicitPath(t *testing.T) {
	l := newLoader(t, map[string]string{
		"/project/conf/dev.yaml": "main: ../main.js\ndebug: true\n",
	})

	opts, err := l.Load("/project", "conf/dev.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/project/main.js", opts.MainFile)
	assert.True(t, opts.Debug)
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	l := newLoader(t, nil)

	_, err := l.Load("/project", "/project/nope.yaml")
	require.ErrorIs(t, err, domain.ErrConfigReadFailed)

	var zErr *zerr.Error
	require.ErrorAs(t, err.(interface{ Unwrap() []error }).Unwrap()[1], &zErr)
	assert.Equal(t, "/project/nope.yaml", zErr.Metadata()["path"])
}

func TestLoad_Malformed(t *testing.T) {
	tests := map[string]string{
		"syntax":        "main: [unterminated\n",
		"unknown field": "main: main.js\nroots: [lib]\n",
		"wrong type":    "debug: [1, 2]\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			l := newLoader(t, map[string]string{"/project/cjs.yaml": content})

			_, err := l.Load("/project", "")
			require.ErrorIs(t, err, domain.ErrConfigParseFailed)
		})
	}
}

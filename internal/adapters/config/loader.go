// Package config provides the project file loader for cjs.
package config

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/cjs/internal/core/domain"
	"go.trai.ch/cjs/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.OptionsLoader = (*Loader)(nil)

// Loader implements ports.OptionsLoader using a YAML file.
type Loader struct {
	fs     afero.Fs
	logger ports.Logger
}

// NewLoader creates a new Loader reading from fsys.
func NewLoader(fsys afero.Fs, logger ports.Logger) *Loader {
	return &Loader{fs: fsys, logger: logger}
}

// Load reads bootstrap options from path, or from the nearest cjs.yaml at or
// above cwd when path is empty. Relative paths in the file are resolved
// against the file's directory.
func (l *Loader) Load(cwd, path string) (domain.Options, error) {
	if path == "" {
		found, ok := l.findProjectfile(cwd)
		if !ok {
			l.logger.Debug("no " + domain.ConfigFileName + " found above " + cwd)
			return domain.Options{}, nil
		}
		path = found
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return domain.Options{}, errors.Join(domain.ErrConfigReadFailed, zerr.With(err, "path", path))
	}

	file, err := parse(data)
	if err != nil {
		return domain.Options{}, errors.Join(domain.ErrConfigParseFailed, zerr.With(err, "path", path))
	}

	l.logger.Debug("loaded options from " + path)
	return file.toOptions(filepath.Dir(path)), nil
}

// findProjectfile walks from cwd to the file system root looking for cjs.yaml.
func (l *Loader) findProjectfile(cwd string) (string, bool) {
	dir := filepath.Clean(cwd)
	for {
		candidate := filepath.Join(dir, domain.ConfigFileName)
		if ok, err := afero.Exists(l.fs, candidate); err == nil && ok {
			if isDir, _ := afero.IsDir(l.fs, candidate); !isDir {
				return candidate, true
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func parse(data []byte) (Projectfile, error) {
	var file Projectfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return Projectfile{}, err
	}
	return file, nil
}

func (f Projectfile) toOptions(dir string) domain.Options {
	opts := domain.Options{
		MainFile:   absolute(dir, f.Main),
		Extensions: f.Extensions,
		Debug:      f.Debug,
		Trace:      f.Trace,
	}
	for _, p := range f.Paths {
		opts.Paths = append(opts.Paths, absolute(dir, p))
	}
	return opts
}

func absolute(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

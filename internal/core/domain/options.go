package domain

import "slices"

// Options are the bootstrap options recognized by initRequire.
type Options struct {
	// MainFile is the entry module. Required.
	MainFile string `yaml:"main"`
	// Extensions are tried in order when locating a module.
	Extensions []string `yaml:"extensions"`
	// Paths are extra search roots appended after the main file's directory.
	Paths []string `yaml:"paths"`
	// Debug enables resolution logging.
	Debug bool `yaml:"debug"`
	// Trace enables span export for module loads.
	Trace bool `yaml:"trace"`
}

// ExtensionsOrDefault returns Extensions, or DefaultExtensions when none are set.
func (o Options) ExtensionsOrDefault() []string {
	if len(o.Extensions) == 0 {
		return slices.Clone(DefaultExtensions)
	}
	return slices.Clone(o.Extensions)
}

// Merge returns o with every non-zero field of override applied on top.
// Debug and Trace are sticky: an override can enable them but not disable them.
func (o Options) Merge(override Options) Options {
	if override.MainFile != "" {
		o.MainFile = override.MainFile
	}
	if len(override.Extensions) > 0 {
		o.Extensions = slices.Clone(override.Extensions)
	}
	if len(override.Paths) > 0 {
		o.Paths = slices.Concat(o.Paths, override.Paths)
	}
	o.Debug = o.Debug || override.Debug
	o.Trace = o.Trace || override.Trace
	return o
}

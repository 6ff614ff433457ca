package domain

import "strings"

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "cjs.yaml"

	// ArchiveSeparator separates an archive path from an entry path in a location name.
	ArchiveSeparator = "!"

	// DebugPrefix is prepended to resolution debug messages.
	DebugPrefix = "[require] "
)

// ArchiveSuffixes are the root path suffixes that denote archive containers.
var ArchiveSuffixes = []string{".jar", ".zip"}

// DefaultExtensions are tried when the options do not name any.
var DefaultExtensions = []string{".js", ""}

// IsArchivePath reports whether path names an archive container.
func IsArchivePath(path string) bool {
	lower := strings.ToLower(path)
	for _, suffix := range ArchiveSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

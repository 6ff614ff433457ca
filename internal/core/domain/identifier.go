package domain

import "strings"

// ModuleID is the raw identifier passed to require.
// The zero value is not valid; use NewModuleID.
type ModuleID struct {
	raw string
}

// NewModuleID creates a ModuleID from a raw string.
func NewModuleID(raw string) (ModuleID, error) {
	if raw == "" {
		return ModuleID{}, ErrInvalidIdentifier
	}
	return ModuleID{raw: raw}, nil
}

// MustModuleID is like NewModuleID but panics on an empty string.
func MustModuleID(raw string) ModuleID {
	id, err := NewModuleID(raw)
	if err != nil {
		panic(err)
	}
	return id
}

// IsRelative reports whether the identifier starts with a dot.
func (id ModuleID) IsRelative() bool {
	return strings.HasPrefix(id.raw, ".")
}

// IsAbsolutePath reports whether the identifier is a rooted path or carries a drive letter.
func (id ModuleID) IsAbsolutePath() bool {
	if strings.HasPrefix(id.raw, "/") || strings.HasPrefix(id.raw, `\`) {
		return true
	}
	return len(id.raw) > 1 && id.raw[1] == ':'
}

// IsTopLevel reports whether the identifier is neither relative nor absolute.
func (id ModuleID) IsTopLevel() bool {
	return !id.IsRelative() && !id.IsAbsolutePath()
}

// String returns the raw identifier.
func (id ModuleID) String() string {
	return id.raw
}

// WithExtension returns the identifier with ext appended.
// A missing leading dot is added to ext. The identifier is returned unchanged
// when ext is empty or the identifier already ends with it.
func (id ModuleID) WithExtension(ext string) ModuleID {
	if ext == "" {
		return id
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if strings.HasSuffix(id.raw, ext) {
		return id
	}
	return ModuleID{raw: id.raw + ext}
}

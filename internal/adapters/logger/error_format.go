package logger

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// messager matches errors that report their own message without the chain,
// such as *zerr.Error.
type messager interface {
	Message() string
}

// metadataer matches errors that carry key-value metadata.
type metadataer interface {
	Metadata() map[string]any
}

// ErrorEntry is one level of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries flattens err into entries, outermost first.
// Empty messages are folded into the next entry, and joined errors are
// expanded in order.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	var pending map[string]any

	var walk func(error)
	walk = func(current error) {
		for current != nil {
			if joined, ok := current.(interface{ Unwrap() []error }); ok {
				for _, e := range joined.Unwrap() {
					walk(e)
				}
				return
			}

			m, ok := current.(messager)
			if !ok {
				entries = append(entries, ErrorEntry{Message: current.Error(), Metadata: pending})
				pending = nil
				return
			}

			meta := metadataOf(current)
			if m.Message() == "" {
				pending = mergeMetadata(pending, meta)
				current = errors.Unwrap(current)
				continue
			}
			entries = append(entries, ErrorEntry{Message: m.Message(), Metadata: mergeMetadata(pending, meta)})
			pending = nil
			current = errors.Unwrap(current)
		}
	}
	walk(err)
	return entries
}

func metadataOf(err error) map[string]any {
	if md, ok := err.(metadataer); ok {
		return md.Metadata()
	}
	return nil
}

func mergeMetadata(a, b map[string]any) map[string]any {
	if a == nil {
		return b
	}
	merged := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		merged[k] = v
	}
	for k, v := range b {
		merged[k] = v
	}
	return merged
}

// formatErrorEntries renders entries as an "Error:" line followed by an
// indented "Caused by:" list. Metadata keys are sorted.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		prefix, indent := "Error: ", "       "
		if i > 0 {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			prefix, indent = "    → ", "      "
		}

		lines = append(lines, prefix+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}

		keys := make([]string, 0, len(entry.Metadata))
		for k := range entry.Metadata {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, k, entry.Metadata[k]))
		}
	}

	return strings.Join(lines, "\n")
}

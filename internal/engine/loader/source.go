package loader

import (
	"errors"
	"io"
	"strings"

	"go.trai.ch/cjs/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	wrapperHead   = "(function (exports, module, require) {"
	wrapperTail   = "\n})"
	byteOrderMark = "\uFEFF"
)

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// readSource reads the full text of loc with line endings normalized to "\n".
// Every line break is kept, so line numbers in diagnostics match the file.
func readSource(loc domain.Location) (string, error) {
	rc, err := loc.Open()
	if err != nil {
		return "", readFailure(loc, err)
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", readFailure(loc, err)
	}

	text := strings.TrimPrefix(string(data), byteOrderMark)
	return lineEndings.Replace(text), nil
}

// wrap turns a module body into a function expression taking the injected bindings.
// The head shares the first line with the body so line numbers are unchanged.
func wrap(body string) string {
	return wrapperHead + body + wrapperTail
}

func readFailure(loc domain.Location, cause error) error {
	return errors.Join(domain.ErrReadFailure, zerr.With(cause, "location", loc.Name()))
}

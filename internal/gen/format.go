package gen

import (
	"github.com/pkg/errors"
	"golang.org/x/tools/imports"
)

// formatSource runs the goimports transformation over a rendered file.
// Besides canonical formatting this verifies that the output parses,
// so a template bug fails generation rather than the next build.
func formatSource(filename string, src []byte) ([]byte, error) {
	formatted, err := imports.Process(filename, src, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to format generated source")
	}
	return formatted, nil
}

// Package processors holds post-processors for generated output.
package processors

import (
	"fmt"
	"go/format"
	"path/filepath"
	"strings"

	"golang.org/x/tools/imports"
)

// GoImports tidies imports and formats generated Go sources. Documentation
// trees often ship runnable examples next to the pages; everything that is not
// a .go file passes through unchanged.
type GoImports struct {
	TabWidth  int
	TabIndent bool
	Comments  bool
}

func NewGoImports() *GoImports {
	return &GoImports{
		TabWidth:  8,
		TabIndent: true,
		Comments:  true,
	}
}

func (g *GoImports) Name() string {
	return "goimports"
}

// ProcessContent falls back to plain gofmt when goimports cannot resolve the
// file, and fails only when neither can parse it.
func (g *GoImports) ProcessContent(outputPath string, content []byte) ([]byte, error) {
	if !strings.EqualFold(filepath.Ext(outputPath), ".go") {
		return content, nil
	}

	formatted, err := imports.Process(outputPath, content, &imports.Options{
		Comments:  g.Comments,
		TabIndent: g.TabIndent,
		TabWidth:  g.TabWidth,
	})
	if err == nil {
		return formatted, nil
	}

	formatted, fmtErr := format.Source(content)
	if fmtErr != nil {
		return nil, fmt.Errorf("goimports: %w; gofmt: %w", err, fmtErr)
	}
	return formatted, nil
}

package engine

import (
	"io"
	"io/fs"

	"github.com/cpcf/sitegen/render"
)

// Template is a resolved template ready to render.
type Template interface {
	Render(w io.Writer) error
}

// TemplateLoader resolves a template by identifier. Any engine offering
// these two operations can drive a tree render.
type TemplateLoader interface {
	Load(name string) (Template, error)
}

type Context struct {
	// TmplFS is rooted at the template base; identifiers are relative to it.
	TmplFS     fs.FS
	Templates  TemplateLoader
	OutputRoot string
}

// NewContext renders with pongo2 templates loaded from tmplFS.
func NewContext(tmplFS fs.FS, outputRoot string) (Context, error) {
	set, err := render.New(tmplFS)
	if err != nil {
		return Context{}, err
	}

	return Context{
		TmplFS:     tmplFS,
		Templates:  setLoader{set},
		OutputRoot: outputRoot,
	}, nil
}

type setLoader struct {
	set *render.Set
}

func (l setLoader) Load(name string) (Template, error) {
	tmpl, err := l.set.Lookup(name)
	if err != nil {
		return nil, err
	}
	return tmpl, nil
}

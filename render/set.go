// Package render wraps pongo2 (Django/Jinja template syntax) behind the small
// contract the generator needs: resolve a template by identifier and render it
// to a writer.
//
// Identifiers are slash-separated paths relative to the fs.FS the Set was
// built from. The same rule applies inside templates, so a page under
// templates/sub extends its layout with
//
//	{% extends "templates/base.html" %}
package render

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/flosch/pongo2/v6"
)

var ErrNilFS = errors.New("render: template filesystem is nil")

type Set struct {
	set   *pongo2.TemplateSet
	cache *TemplateCache
}

// New builds a Set over fsys. Output is never HTML-escaped, names resolve
// from the root of fsys, and a single trailing newline is dropped from every
// template source.
func New(fsys fs.FS) (*Set, error) {
	if fsys == nil {
		return nil, ErrNilFS
	}
	if err := registerDefaultFilters(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return &Set{
		set:   pongo2.NewSet("sitegen", rootLoader{pongo2.NewFSLoader(fsys)}),
		cache: NewTemplateCache(),
	}, nil
}

// Lookup parses the template identified by name, or returns the cached parse.
// Syntax errors and unresolvable extends/include references fail here.
func (s *Set) Lookup(name string) (*Template, error) {
	tmpl, err := s.cache.Get(name, s.set.FromFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load template %s: %w", name, err)
	}
	return &Template{name: name, tmpl: tmpl}, nil
}

type Template struct {
	name string
	tmpl *pongo2.Template
}

func (t *Template) Name() string {
	return t.name
}

// Render executes the template with an empty context. Output is buffered by
// pongo2, so nothing reaches w when execution fails.
func (t *Template) Render(w io.Writer) error {
	if err := t.tmpl.ExecuteWriter(pongo2.Context{}, w); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", t.name, err)
	}
	return nil
}

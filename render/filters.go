package render

import (
	"fmt"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// DefaultFilters are the string helpers every template set can use, e.g.
// {{ "Getting Started"|slug }} -> getting-started.
var DefaultFilters = map[string]func(string) string{
	"slug":     slugify,
	"snake":    toSnakeCase,
	"kebab":    toKebabCase,
	"camel":    toCamelCase,
	"pascal":   toPascalCase,
	"humanize": humanize,
}

var (
	registerOnce sync.Once
	registerErr  error
)

// registerDefaultFilters installs DefaultFilters in pongo2's process-wide
// filter table and turns autoescaping off, which is also process-wide. Names
// pongo2 already knows are left alone.
func registerDefaultFilters() error {
	registerOnce.Do(func() {
		pongo2.SetAutoescape(false)

		for name, fn := range DefaultFilters {
			if pongo2.FilterExists(name) {
				continue
			}
			if err := pongo2.RegisterFilter(name, stringFilter(fn)); err != nil {
				registerErr = fmt.Errorf("register filter %q: %w", name, err)
				return
			}
		}
	})
	return registerErr
}

func stringFilter(fn func(string) string) pongo2.FilterFunction {
	return func(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		return pongo2.AsValue(fn(in.String())), nil
	}
}

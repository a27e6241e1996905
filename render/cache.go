package render

import (
	"sync"

	"github.com/flosch/pongo2/v6"
)

// TemplateCache keeps parsed templates by identifier so a layout shared by
// many pages is compiled once per set.
type TemplateCache struct {
	mu        sync.RWMutex
	templates map[string]*pongo2.Template
}

func NewTemplateCache() *TemplateCache {
	return &TemplateCache{
		templates: make(map[string]*pongo2.Template),
	}
}

// Get returns the cached template for name, calling load on a miss. Failed
// loads are not cached.
func (c *TemplateCache) Get(name string, load func(string) (*pongo2.Template, error)) (*pongo2.Template, error) {
	c.mu.RLock()
	if tmpl, exists := c.templates[name]; exists {
		c.mu.RUnlock()
		return tmpl, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if tmpl, exists := c.templates[name]; exists {
		return tmpl, nil
	}

	tmpl, err := load(name)
	if err != nil {
		return nil, err
	}

	c.templates[name] = tmpl
	return tmpl, nil
}

func (c *TemplateCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.templates)
}

package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed defaults.yaml
var defaultsYAML string

// Config describes one generation run. The command line tool does not read
// it from disk; the defaults compiled into the binary are the whole surface.
type Config struct {
	// SourceRoot is the template tree to walk, relative to TemplateBase.
	SourceRoot string `yaml:"source_root"`
	// TemplateBase is the directory template identifiers resolve against.
	TemplateBase string `yaml:"template_base"`
	// OutputRoot receives the mirrored tree.
	OutputRoot   string   `yaml:"output_root"`
	Ignore       []string `yaml:"ignore"`
	LogLevel     string   `yaml:"log_level"`
	AtomicWrites bool     `yaml:"atomic_writes"`
	GoImports    bool     `yaml:"goimports"`
}

// Default returns the configuration embedded at build time.
func Default() (Config, error) {
	var cfg Config
	if err := LoadYAMLFromString(defaultsYAML, &cfg); err != nil {
		return Config{}, fmt.Errorf("embedded defaults: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	root := path.Clean(c.SourceRoot)
	switch {
	case c.SourceRoot == "":
		errs = append(errs, errors.New("source_root is required"))
	case root == "." || !fs.ValidPath(root):
		errs = append(errs, fmt.Errorf("source_root %q must be a relative path below template_base", c.SourceRoot))
	}

	if c.TemplateBase == "" {
		errs = append(errs, errors.New("template_base is required"))
	}
	if c.OutputRoot == "" {
		errs = append(errs, errors.New("output_root is required"))
	}

	for _, ignored := range c.Ignore {
		if !strings.HasPrefix(path.Clean(ignored), root+"/") {
			errs = append(errs, fmt.Errorf("ignore entry %q is outside source_root %q", ignored, c.SourceRoot))
		}
	}

	return errors.Join(errs...)
}

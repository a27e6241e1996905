// Command sitegen renders the templates/ tree in the working directory into
// mirrored pages next to it. It takes no flags or arguments; the ignore list
// and paths are compiled in.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cpcf/sitegen/config"
	"github.com/cpcf/sitegen/debug"
	"github.com/cpcf/sitegen/engine"
	"github.com/cpcf/sitegen/processors"
	"github.com/cpcf/sitegen/write"
)

func main() {
	cfg, err := config.Default()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config, logOutput io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:          "sitegen",
		Short:        "Render the template tree into static pages",
		Long:         `Walks the template source root and renders every file, except the ignored layouts, to the same relative path under the output root.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(cfg, logOutput)
		},
	}
}

func generate(cfg config.Config, logOutput io.Writer) error {
	level, err := debug.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := debug.NewLogger(logOutput, level).With("run", uuid.NewString())

	ctx, err := engine.NewContext(os.DirFS(cfg.TemplateBase), cfg.OutputRoot)
	if err != nil {
		return fmt.Errorf("failed to set up templates: %w", err)
	}

	opts := []engine.Option{
		engine.WithLogger(logger),
		engine.WithWriter(write.NewBaseWriter(write.WriteOptions{Atomic: cfg.AtomicWrites})),
	}
	if cfg.GoImports {
		opts = append(opts, engine.WithPostProcessor(processors.NewGoImports()))
	}

	return engine.New(opts...).RenderTree(ctx, cfg.SourceRoot, engine.NewIgnoreSet(cfg.Ignore...))
}

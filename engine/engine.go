// Package engine renders a tree of templates into a mirrored output tree.
//
// Every file below the source directory is rendered to the same relative
// location under the output root, with the source directory's own name
// stripped: templates/sub/page.html becomes <output>/sub/page.html.
package engine

import (
	"log/slog"

	"github.com/cpcf/sitegen/postprocess"
	"github.com/cpcf/sitegen/write"
)

type Engine struct {
	logger         *slog.Logger
	writer         write.Writer
	postprocessors *postprocess.Chain
}

func New(opts ...Option) *Engine {
	e := &Engine{
		logger:         slog.Default(),
		writer:         write.NewBaseWriter(write.WriteOptions{}),
		postprocessors: postprocess.NewChain(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// RenderTree renders every file under sourceDir, skipping identifiers in
// ignore. sourceDir is a path inside ctx.TmplFS and must name a directory
// below its root. The first error aborts the run; files already written stay.
func (e *Engine) RenderTree(ctx Context, sourceDir string, ignore IgnoreSet) error {
	r := newRenderer(e.logger, e.writer, e.postprocessors)
	stats, err := r.renderTree(ctx, sourceDir, ignore)
	if err != nil {
		return err
	}

	e.logger.Info("generation complete",
		"source", sourceDir,
		"output", ctx.OutputRoot,
		"files", stats.Files,
		"dirs", stats.Dirs,
		"skipped", stats.Skipped,
	)
	return nil
}

// AddPostProcessor appends processor to the chain run on every rendered file.
func (e *Engine) AddPostProcessor(processor postprocess.Processor) {
	e.postprocessors.Add(processor)
}

func (e *Engine) AddPostProcessorFunc(fn func(outputPath string, content []byte) ([]byte, error)) {
	e.postprocessors.AddFunc(fn)
}

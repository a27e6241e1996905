package engine

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/cpcf/sitegen/postprocess"
	"github.com/cpcf/sitegen/write"
)

// Stats counts what a tree render produced and skipped.
type Stats struct {
	Files   int
	Dirs    int
	Skipped int
}

type renderer struct {
	logger         *slog.Logger
	writer         write.Writer
	postprocessors *postprocess.Chain
}

func newRenderer(logger *slog.Logger, writer write.Writer, postprocessors *postprocess.Chain) *renderer {
	return &renderer{
		logger:         logger,
		writer:         writer,
		postprocessors: postprocessors,
	}
}

func (r *renderer) renderTree(ctx Context, sourceDir string, ignore IgnoreSet) (Stats, error) {
	var stats Stats

	root := path.Clean(sourceDir)
	if root == "." || !fs.ValidPath(root) {
		return stats, fmt.Errorf("%w: %q must be a relative directory below the template base", ErrInvalidSourceDir, sourceDir)
	}

	if ctx.OutputRoot == "" {
		ctx.OutputRoot = "."
	}

	// The source directory itself mirrors onto the output root.
	if err := r.writer.MkdirAll(ctx.OutputRoot); err != nil {
		return stats, newError(ErrFilesystem, root, "failed to create output root", err)
	}

	err := r.renderDir(ctx, root, ignore, &stats)
	return stats, err
}

func (r *renderer) renderDir(ctx Context, dir string, ignore IgnoreSet, stats *Stats) error {
	entries, err := fs.ReadDir(ctx.TmplFS, dir)
	if err != nil {
		return newError(ErrFilesystem, dir, "failed to list directory", err)
	}

	for _, entry := range entries {
		fullPath := path.Join(dir, entry.Name())

		if ignore.Contains(fullPath) {
			r.logger.Debug("skipping ignored path", "path", fullPath)
			stats.Skipped++
			continue
		}

		isDir, err := r.isDir(ctx, fullPath, entry)
		if err != nil {
			return err
		}

		outputPath := r.resolveOutputPath(ctx, fullPath)

		if isDir {
			if err := r.writer.MkdirAll(outputPath); err != nil {
				return newError(ErrFilesystem, fullPath, "failed to create output directory", err)
			}
			stats.Dirs++

			if err := r.renderDir(ctx, fullPath, ignore, stats); err != nil {
				return err
			}
			continue
		}

		if err := r.renderFile(ctx, fullPath, outputPath); err != nil {
			return err
		}
		stats.Files++
	}

	return nil
}

// isDir follows symlinks so a linked directory is walked rather than loaded
// as a template.
func (r *renderer) isDir(ctx Context, fullPath string, entry fs.DirEntry) (bool, error) {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir(), nil
	}

	info, err := fs.Stat(ctx.TmplFS, fullPath)
	if err != nil {
		return false, newError(ErrFilesystem, fullPath, "failed to resolve symlink", err)
	}
	return info.IsDir(), nil
}

func (r *renderer) renderFile(ctx Context, templatePath, outputPath string) error {
	r.logger.Debug("rendering template", "path", templatePath)

	tmpl, err := ctx.Templates.Load(templatePath)
	if err != nil {
		return newError(ErrLookup, templatePath, "failed to load template", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Render(&buf); err != nil {
		return newError(ErrLookup, templatePath, "failed to render template", err)
	}
	content := buf.Bytes()

	if r.postprocessors.HasProcessors() {
		processed, err := r.postprocessors.Process(outputPath, content)
		if err != nil {
			r.logger.Warn("post-processing failed", "path", outputPath, "error", err)
		} else {
			content = processed
		}
	}

	if err := r.writer.Write(outputPath, content); err != nil {
		return newError(ErrFilesystem, templatePath, "failed to write output file", err)
	}

	r.logger.Info("rendered template", "template", templatePath, "output", outputPath)
	return nil
}

// resolveOutputPath drops the first segment of a template identifier and
// places the rest under the output root.
func (r *renderer) resolveOutputPath(ctx Context, templatePath string) string {
	_, rest, _ := strings.Cut(templatePath, "/")
	return filepath.Join(ctx.OutputRoot, filepath.FromSlash(rest))
}

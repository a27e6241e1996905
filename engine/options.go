package engine

import (
	"log/slog"

	"github.com/cpcf/sitegen/postprocess"
	"github.com/cpcf/sitegen/write"
)

type Option func(*Engine)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

func WithWriter(w write.Writer) Option {
	return func(e *Engine) {
		e.writer = w
	}
}

func WithPostProcessor(processor postprocess.Processor) Option {
	return func(e *Engine) {
		e.postprocessors.Add(processor)
	}
}

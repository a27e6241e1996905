// Package postprocess runs rendered output through an ordered list of content
// transforms before it is written.
//
// A processor receives the destination path so it can decide whether it
// applies. Processors that do not recognise the file must hand the content
// back untouched.
//
//	eng := engine.New(
//		engine.WithPostProcessor(processors.NewGoImports()),
//	)
package postprocess

import "fmt"

type Processor interface {
	ProcessContent(outputPath string, content []byte) ([]byte, error)
}

// Named is implemented by processors that want a readable name in errors.
type Named interface {
	Name() string
}

type ProcessorFunc func(outputPath string, content []byte) ([]byte, error)

func (f ProcessorFunc) ProcessContent(outputPath string, content []byte) ([]byte, error) {
	return f(outputPath, content)
}

// Chain applies processors in insertion order. The zero value is ready to use.
type Chain struct {
	processors []Processor
}

func NewChain(processors ...Processor) *Chain {
	c := &Chain{}
	for _, p := range processors {
		c.Add(p)
	}
	return c
}

func (c *Chain) Add(processor Processor) {
	if processor == nil {
		return
	}
	c.processors = append(c.processors, processor)
}

func (c *Chain) AddFunc(fn func(outputPath string, content []byte) ([]byte, error)) {
	c.Add(ProcessorFunc(fn))
}

// Process stops at the first failing processor.
func (c *Chain) Process(outputPath string, content []byte) ([]byte, error) {
	result := content
	for i, processor := range c.processors {
		processed, err := processor.ProcessContent(outputPath, result)
		if err != nil {
			return nil, fmt.Errorf("%s failed for %s: %w", processorName(i, processor), outputPath, err)
		}
		result = processed
	}
	return result, nil
}

func (c *Chain) HasProcessors() bool {
	return c != nil && len(c.processors) > 0
}

func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return len(c.processors)
}

func processorName(index int, p Processor) string {
	if named, ok := p.(Named); ok {
		return fmt.Sprintf("processor %q", named.Name())
	}
	return fmt.Sprintf("processor %d", index)
}

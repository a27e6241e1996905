package postprocess

import (
	"errors"
	"strings"
	"testing"
)

type prefixProcessor struct {
	prefix string
	named  bool
	err    error
}

func (p *prefixProcessor) ProcessContent(outputPath string, content []byte) ([]byte, error) {
	if p.err != nil {
		return nil, p.err
	}
	return []byte(p.prefix + string(content)), nil
}

type namedProcessor struct {
	prefixProcessor
}

func (n *namedProcessor) Name() string {
	return n.prefix
}

func TestChainOrder(t *testing.T) {
	tests := []struct {
		name       string
		processors []Processor
		want       string
	}{
		{
			name: "empty chain returns input",
			want: "body",
		},
		{
			name:       "single processor",
			processors: []Processor{&prefixProcessor{prefix: "a:"}},
			want:       "a:body",
		},
		{
			name: "processors apply in insertion order",
			processors: []Processor{
				&prefixProcessor{prefix: "a:"},
				&prefixProcessor{prefix: "b:"},
			},
			want: "b:a:body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain := NewChain(tt.processors...)
			got, err := chain.Process("index.html", []byte("body"))
			if err != nil {
				t.Fatalf("Process failed: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, string(got))
			}
		})
	}
}

func TestChainStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	called := false

	chain := NewChain(&prefixProcessor{err: boom})
	chain.AddFunc(func(outputPath string, content []byte) ([]byte, error) {
		called = true
		return content, nil
	})

	_, err := chain.Process("index.html", []byte("body"))
	if !errors.Is(err, boom) {
		t.Fatalf("Expected wrapped boom error, got %v", err)
	}
	if !strings.Contains(err.Error(), "processor 0") {
		t.Errorf("Expected processor index in error, got %q", err.Error())
	}
	if called {
		t.Error("Processors after a failure should not run")
	}
}

func TestChainNamedProcessorError(t *testing.T) {
	chain := NewChain(&namedProcessor{prefixProcessor{prefix: "minify", err: errors.New("bad input")}})

	_, err := chain.Process("site.css", []byte("x"))
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if !strings.Contains(err.Error(), `processor "minify"`) {
		t.Errorf("Expected processor name in error, got %q", err.Error())
	}
}

func TestChainNilSafety(t *testing.T) {
	var chain *Chain
	if chain.HasProcessors() {
		t.Error("nil chain should report no processors")
	}
	if chain.Len() != 0 {
		t.Errorf("nil chain should have length 0, got %d", chain.Len())
	}

	c := NewChain(nil)
	c.Add(nil)
	if c.Len() != 0 {
		t.Errorf("nil processors should be ignored, got length %d", c.Len())
	}
}

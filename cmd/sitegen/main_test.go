package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpcf/sitegen/config"
	"github.com/cpcf/sitegen/engine"
	sitegentest "github.com/cpcf/sitegen/testing"
)

func testConfig(t *testing.T, files map[string]string) (config.Config, string) {
	t.Helper()

	cfg, err := config.Default()
	if err != nil {
		t.Fatal(err)
	}

	base := t.TempDir()
	if err := sitegentest.WriteTree(base, files); err != nil {
		t.Fatal(err)
	}
	cfg.TemplateBase = base
	cfg.OutputRoot = t.TempDir()
	return cfg, base
}

func TestGenerateDefaults(t *testing.T) {
	cfg, _ := testConfig(t, map[string]string{
		"templates/base.html":           "<body>{% block content %}{% endblock %}</body>",
		"templates/index.html":          `{% extends "templates/base.html" %}{% block content %}<h1>Hi</h1>{% endblock %}`,
		"templates/examples/hello.go":   "package main\n\nfunc main() {\n\tfmt.Println(strings.ToUpper(\"hi\"))\n}",
		"templates/examples/readme.txt": "plain",
	})

	var logs bytes.Buffer
	cmd := newRootCmd(cfg, &logs)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	got, err := sitegentest.ReadTree(cfg.OutputRoot)
	if err != nil {
		t.Fatal(err)
	}

	if got["index.html"] != "<body><h1>Hi</h1></body>" {
		t.Errorf("Unexpected index.html: %q", got["index.html"])
	}
	if _, ok := got["base.html"]; ok {
		t.Error("base.html is ignored by default and must not be generated")
	}
	wantGo := "package main\n\nfunc main() {\n\tfmt.Println(strings.ToUpper(\"hi\"))\n}"
	if got["examples/hello.go"] != wantGo {
		t.Errorf("Go templates are written as rendered.\nExpected: %q\nGot: %q", wantGo, got["examples/hello.go"])
	}
	if got["examples/readme.txt"] != "plain" {
		t.Errorf("Unexpected readme.txt: %q", got["examples/readme.txt"])
	}

	if !strings.Contains(logs.String(), "run=") {
		t.Errorf("Expected run id on log lines, got %q", logs.String())
	}
}

func TestGenerateGoImportsEnabled(t *testing.T) {
	cfg, _ := testConfig(t, map[string]string{
		"templates/examples/hello.go": "package main\nimport \"fmt\"\nfunc main() {}\n",
	})
	cfg.GoImports = true

	if err := generate(cfg, io.Discard); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(cfg.OutputRoot, "examples", "hello.go"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(content), `"fmt"`) {
		t.Errorf("goimports should drop the unused import, got %q", content)
	}
	if !strings.HasSuffix(string(content), "func main() {}\n") {
		t.Errorf("Expected gofmt output, got %q", content)
	}
}

func TestGenerateAtomicWrites(t *testing.T) {
	cfg, _ := testConfig(t, map[string]string{"templates/index.html": "atomic"})
	cfg.AtomicWrites = true

	if err := generate(cfg, io.Discard); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(cfg.OutputRoot, "index.html"))
	if err != nil || string(content) != "atomic" {
		t.Errorf("Expected atomic output, got %q, %v", content, err)
	}
}

func TestGenerateReportsTemplateErrors(t *testing.T) {
	cfg, _ := testConfig(t, map[string]string{"templates/index.html": "{% if %}"})

	err := generate(cfg, io.Discard)
	if !errors.Is(err, engine.ErrLookup) {
		t.Fatalf("Expected ErrLookup, got %v", err)
	}
}

func TestGenerateInvalidLogLevel(t *testing.T) {
	cfg, _ := testConfig(t, map[string]string{"templates/index.html": "x"})
	cfg.LogLevel = "chatty"

	if err := generate(cfg, io.Discard); err == nil {
		t.Fatal("Expected error for invalid log level, got nil")
	}
}

func TestRootCmdRejectsArguments(t *testing.T) {
	cfg, _ := testConfig(t, map[string]string{"templates/index.html": "x"})

	cmd := newRootCmd(cfg, io.Discard)
	cmd.SetArgs([]string{"extra"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	if err := cmd.Execute(); err == nil {
		t.Fatal("Expected error for positional argument, got nil")
	}
	if _, err := os.Stat(filepath.Join(cfg.OutputRoot, "index.html")); !os.IsNotExist(err) {
		t.Errorf("Nothing should be generated when arguments are rejected, stat err: %v", err)
	}
}

package render

import (
	"strings"
	"testing"

	"github.com/flosch/pongo2/v6"
)

func TestCaseFilters(t *testing.T) {
	tests := []struct {
		input  string
		snake  string
		kebab  string
		camel  string
		pascal string
		slug   string
		human  string
	}{
		{"Getting Started", "getting_started", "getting-started", "gettingStarted", "GettingStarted", "getting-started", "Getting started"},
		{"HTTPServer2Go_api", "httpserver_2_go_api", "httpserver-2-go-api", "httpserver2GoApi", "Httpserver2GoApi", "httpserver-2-go-api", "Httpserver 2 go api"},
		{"what's new?", "what_s_new", "what-s-new", "whatSNew", "WhatSNew", "what-s-new", "What s new"},
		{"", "", "", "", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			checks := map[string][2]string{
				"snake":    {toSnakeCase(tt.input), tt.snake},
				"kebab":    {toKebabCase(tt.input), tt.kebab},
				"camel":    {toCamelCase(tt.input), tt.camel},
				"pascal":   {toPascalCase(tt.input), tt.pascal},
				"slug":     {slugify(tt.input), tt.slug},
				"humanize": {humanize(tt.input), tt.human},
			}
			for name, pair := range checks {
				if pair[0] != pair[1] {
					t.Errorf("%s(%q) = %q, want %q", name, tt.input, pair[0], pair[1])
				}
			}
		})
	}
}

func TestSlugifyDropsNonASCII(t *testing.T) {
	if got := slugify("Café Überblick"); got != "caf-berblick" {
		t.Errorf("slugify = %q, want %q", got, "caf-berblick")
	}
}

func TestDefaultFiltersRegistered(t *testing.T) {
	if err := registerDefaultFilters(); err != nil {
		t.Fatalf("registerDefaultFilters failed: %v", err)
	}

	for name := range DefaultFilters {
		if !pongo2.FilterExists(name) {
			t.Errorf("filter %q not registered", name)
		}
	}

	tpl, err := pongo2.FromString(`{{ "Release Notes"|kebab }}`)
	if err != nil {
		t.Fatal(err)
	}
	out, err := tpl.Execute(pongo2.Context{})
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "release-notes" {
		t.Errorf("Expected release-notes, got %q", out)
	}
}

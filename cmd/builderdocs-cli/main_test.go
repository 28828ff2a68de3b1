package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type fakePrompter struct {
	selects  map[string]string
	sections []string
	asked    []string
}

func (f *fakePrompter) Select(_ context.Context, message string, options []string, _ string) (string, error) {
	f.asked = append(f.asked, message)
	return f.selects[message], nil
}

func (f *fakePrompter) MultiSelect(_ context.Context, message string, _ []string) ([]string, error) {
	f.asked = append(f.asked, message)
	return f.sections, nil
}

func runCLI(t *testing.T, prompts prompter, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr, prompts)
	return code, stdout.String(), stderr.String()
}

func TestRunRendersBuilder(t *testing.T) {
	code, out, errOut := runCLI(t, nil, "--builder", "dialog", "--log-level", "none")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if !strings.Contains(out, "createDialog") {
		t.Fatalf("expected dialog markdown, got:\n%s", out)
	}
}

func TestRunPositionalBuilderAndSections(t *testing.T) {
	code, out, errOut := runCLI(t, nil, "tooltip", "-r", "json", "--sections", "keyboard", "--log-level", "none")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if !strings.Contains(out, `"keyboard"`) || strings.Contains(out, "closeOnPointerDown") {
		t.Fatalf("expected keyboard-only JSON, got:\n%s", out)
	}
}

func TestRunList(t *testing.T) {
	code, out, _ := runCLI(t, nil, "--list")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	want := "builders: dialog, tooltip\nrenderers: html, json, markdown, yaml\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestRunSchema(t *testing.T) {
	code, out, errOut := runCLI(t, nil, "--schema")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if !strings.Contains(out, `"BuilderData"`) {
		t.Fatalf("expected OpenAPI document, got:\n%s", out)
	}
}

func TestRunAllWritesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site")
	code, _, errOut := runCLI(t, nil, "--all", "--output", dir, "--renderer", "html")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	for _, name := range []string{"dialog.html", "tooltip.html"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
	if !strings.Contains(errOut, "msg=\"site written\"") {
		t.Fatalf("expected info log, got:\n%s", errOut)
	}
}

func TestRunInfersRendererFromOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "docs", "tooltip.yml")
	code, _, errOut := runCLI(t, nil, "--builder", "tooltip", "--output", out, "--log-level", "none")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(raw), "schemas:") {
		t.Fatalf("expected yaml output, got:\n%s", raw)
	}
}

func TestRunWithDataDirectory(t *testing.T) {
	dir := t.TempDir()
	doc := `{"builders":{"separator":{"schemas":[{"kind":"builder","title":"createSeparator"}],"features":[],"keyboard":[]}}}`
	if err := os.WriteFile(filepath.Join(dir, "separator.json"), []byte(doc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	code, out, errOut := runCLI(t, nil, "--data", dir, "--list")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if !strings.Contains(out, "separator") {
		t.Fatalf("expected separator in list, got:\n%s", out)
	}
}

func TestRunStandaloneWithTheme(t *testing.T) {
	dir := t.TempDir()
	manifest := `name: docs
version: 1.0.0
tokens:
  brand: "#0a0a0a"
assets:
  prefix: /static
  files:
    docs.stylesheet: docs.css
variants:
  dark:
    tokens:
      brand: "#fafafa"
`
	path := filepath.Join(dir, "theme.yaml")
	if err := os.WriteFile(path, []byte(manifest), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	code, out, errOut := runCLI(t, nil,
		"--builder", "dialog", "-r", "html", "--standalone",
		"--theme", path, "--theme-variant", "dark", "--log-level", "none",
	)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	for _, part := range []string{
		"<!DOCTYPE html>",
		"--brand: #fafafa;",
		`<link rel="stylesheet" href="/static/docs.css">`,
		`data-theme="docs" data-theme-variant="dark"`,
	} {
		if !strings.Contains(out, part) {
			t.Fatalf("expected %q in output:\n%s", part, out)
		}
	}

	if code, _, _ := runCLI(t, nil, "--builder", "dialog", "--theme", path, "--theme-variant", "sepia"); code != 1 {
		t.Fatalf("expected unknown variant to fail, got exit %d", code)
	}
	if code, _, _ := runCLI(t, nil, "--builder", "dialog", "--theme", filepath.Join(dir, "missing.yaml")); code != 1 {
		t.Fatalf("expected missing manifest to fail, got exit %d", code)
	}
}

func TestRunInteractive(t *testing.T) {
	prompts := &fakePrompter{
		selects:  map[string]string{"Builder": "tooltip", "Renderer": "yaml"},
		sections: []string{"features"},
	}
	code, out, errOut := runCLI(t, prompts, "--interactive", "--log-level", "none")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if diff := cmp.Diff([]string{"Builder", "Renderer", "Sections"}, prompts.asked); diff != "" {
		t.Fatalf("prompts mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(out, "features:") || strings.Contains(out, "closeDelay") {
		t.Fatalf("expected features-only YAML, got:\n%s", out)
	}
}

func TestRunErrors(t *testing.T) {
	cases := [][]string{
		{},
		{"--builder", "menu"},
		{"--builder", "dialog", "--renderer", "pdf"},
		{"--builder", "dialog", "--sections", "bogus"},
		{"--all"},
		{"--log-level", "loud", "--list"},
		{"--unknown-flag"},
		{"--builder", "dialog", "--theme-variant", "dark"},
	}
	for _, args := range cases {
		if code, _, _ := runCLI(t, nil, args...); code != 1 {
			t.Fatalf("args %v: expected exit 1, got %d", args, code)
		}
	}
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestQueryCommand(t *testing.T) {
	out, err := execute(t, "", "query")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if !strings.Contains(out, `_type == "hero-flex" => {`) {
		t.Fatalf("unexpected output: %s", out)
	}

	out, err = execute(t, "", "query", "--page", "--type", "landing")
	if err != nil {
		t.Fatalf("query --page: %v", err)
	}
	if !strings.HasPrefix(out, `*[_type == "landing"`) {
		t.Fatalf("unexpected page output: %s", out)
	}

	out, err = execute(t, "", "query", "--paths")
	if err != nil {
		t.Fatalf("query --paths: %v", err)
	}
	if !strings.Contains(out, "title\n") {
		t.Fatalf("expected title path: %s", out)
	}
}

func TestRenderCommand_File(t *testing.T) {
	out, err := execute(t, "", "render", "--source", "testdata/launch.yaml", "--renderer", "fragment")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "Launch week") || !strings.Contains(out, "<section") {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestRenderCommand_StdinToFile(t *testing.T) {
	output := filepath.Join(t.TempDir(), "hero.html")
	_, err := execute(t, `{"_type":"hero-flex","title":"From stdin"}`,
		"render", "--source", "-", "--output", output, "--stylesheet", "/site.css")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	html := string(data)
	if !strings.HasPrefix(html, "<!DOCTYPE html>") || !strings.Contains(html, "From stdin") {
		t.Fatalf("unexpected document: %s", html)
	}
	if !strings.Contains(html, `href="/site.css"`) {
		t.Fatalf("expected stylesheet link: %s", html)
	}
}

func TestRenderCommand_Preset(t *testing.T) {
	out, err := execute(t, "", "render", "--source", "testdata/launch.yaml", "--renderer", "fragment", "--preset", "testdata/preset.yaml")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "Preset title") {
		t.Fatalf("preset not applied: %s", out)
	}
}

func TestRenderCommand_Errors(t *testing.T) {
	cases := [][]string{
		{"render"},
		{"render", "--source", "testdata/missing.yaml"},
		{"render", "--source", "testdata/launch.yaml", "--renderer", "pdf"},
		{"render", "--source", "testdata/launch.yaml", "--theme", "aurora"},
		{"render", "--source", "https://example.test/hero.json"},
	}
	for _, args := range cases {
		if _, err := execute(t, "", args...); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

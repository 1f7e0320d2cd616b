package compiler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// fakeTool 写出一个模拟编译器的 shell 脚本并返回其路径。
func fakeTool(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-latex")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755); err != nil {
		t.Fatalf("write fake tool: %v", err)
	}
	return path
}

func TestCompile_ProducesPDF(t *testing.T) {
	tool := fakeTool(t, `printf 'fake-pdf-bytes' > resume.pdf`)
	c := New(tool, time.Minute)

	pdf, err := c.Compile(context.Background(), `\documentclass{article}`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if string(pdf) != "fake-pdf-bytes" {
		t.Fatalf("pdf bytes = %q", pdf)
	}
}

func TestCompile_MissingCommandIsUnavailable(t *testing.T) {
	c := New(filepath.Join(t.TempDir(), "definitely-not-installed"), time.Minute)

	_, err := c.Compile(context.Background(), "x")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestCompile_EmptyCommandIsUnavailable(t *testing.T) {
	c := Compiler{}

	_, err := c.Compile(context.Background(), "x")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestCompile_ToolFailureIsUnavailable(t *testing.T) {
	tool := fakeTool(t, `echo 'l.12 Undefined control sequence'; exit 1`)
	c := New(tool, time.Minute)

	_, err := c.Compile(context.Background(), "x")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestCompile_NoOutputIsUnavailable(t *testing.T) {
	tool := fakeTool(t, `exit 0`)
	c := New(tool, time.Minute)

	_, err := c.Compile(context.Background(), "x")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestCompile_TimeoutIsUnavailable(t *testing.T) {
	tool := fakeTool(t, `sleep 5`)
	c := New(tool, 50*time.Millisecond)

	start := time.Now()
	_, err := c.Compile(context.Background(), "x")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if time.Since(start) > 3*time.Second {
		t.Fatal("timeout did not interrupt the tool")
	}
}

func TestCompile_CleansWorkDir(t *testing.T) {
	var capturedDir string
	tool := fakeTool(t, `pwd > "$FAKE_LATEX_OUT"; printf 'pdf' > resume.pdf`)

	outFile := filepath.Join(t.TempDir(), "cwd.txt")
	t.Setenv("FAKE_LATEX_OUT", outFile)

	c := New(tool, time.Minute)
	if _, err := c.Compile(context.Background(), "x"); err != nil {
		t.Fatalf("compile: %v", err)
	}

	raw, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("read cwd capture: %v", err)
	}
	capturedDir = string(raw[:len(raw)-1])

	if _, err := os.Stat(capturedDir); !os.IsNotExist(err) {
		t.Fatalf("work dir %s must be removed after compile, stat err=%v", capturedDir, err)
	}
}

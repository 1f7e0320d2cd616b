// Package compiler 负责调用外部 LaTeX 工具链把生成的源码编译成 PDF。
// 编译是尽力而为的：工具缺失、退出失败或超时都以 ErrUnavailable 体现，
// 由调用方回落到仅返回源码。
package compiler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// ErrUnavailable 表示外部编译器不可用或本次编译失败。
var ErrUnavailable = errors.New("latex compiler unavailable")

const (
	sourceName = "resume.tex"
	outputName = "resume.pdf"

	defaultTimeout = 30 * time.Second
)

// Compiler 包装一次性的外部编译调用。零值不可用，必须指定 Command。
type Compiler struct {
	Command string
	Timeout time.Duration
}

// New 构造 Compiler；timeout 非正时使用默认超时。
func New(command string, timeout time.Duration) Compiler {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return Compiler{Command: command, Timeout: timeout}
}

// Compile 在独立的临时目录中执行一次编译并返回 PDF 字节。
// 临时目录在所有退出路径上都会被清理；只尝试一次，不做重试。
func (c Compiler) Compile(ctx context.Context, source string) (_ []byte, err error) {
	if strings.TrimSpace(c.Command) == "" {
		return nil, fmt.Errorf("%w: no command configured", ErrUnavailable)
	}

	workDir, err := os.MkdirTemp("", "resumetex-compile-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer func() {
		if removeErr := os.RemoveAll(workDir); removeErr != nil && err == nil {
			err = fmt.Errorf("clean temp dir: %w", removeErr)
		}
	}()

	sourcePath := filepath.Join(workDir, sourceName)
	if err := os.WriteFile(sourcePath, []byte(source), 0o600); err != nil {
		return nil, fmt.Errorf("write latex source: %w", err)
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, c.Command, "-interaction=nonstopmode", "-halt-on-error", sourceName)
	cmd.Dir = workDir
	output, runErr := cmd.CombinedOutput()
	if runErr != nil {
		if runCtx.Err() != nil {
			return nil, fmt.Errorf("%w: timed out after %s", ErrUnavailable, timeout)
		}
		return nil, fmt.Errorf("%w: %s: %s", ErrUnavailable, runErr, lastLines(output, 5))
	}

	pdf, err := os.ReadFile(filepath.Join(workDir, outputName))
	if err != nil {
		return nil, fmt.Errorf("%w: no pdf produced: %s", ErrUnavailable, err)
	}
	return pdf, nil
}

// lastLines 截取工具输出的末尾几行，供错误信息使用。
func lastLines(output []byte, n int) string {
	lines := strings.Split(strings.TrimSpace(string(output)), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.TrimSpace(strings.Join(lines, " "))
}

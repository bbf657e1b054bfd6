package git

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	errs "github.com/Tomas-vilte/MatePR/internal/errors"
)

// ShellRunner executes git command lines through the shell in a working
// directory, returning trimmed stdout on success or the captured error text
// (stderr preferred) on failure.
type ShellRunner struct{}

func NewShellRunner() *ShellRunner {
	return &ShellRunner{}
}

func (r *ShellRunner) Run(ctx context.Context, command string, dir string) (string, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", "git "+command)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return "", classifyFailure(detail, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

var toolMissingMarkers = []string{
	"command not found",
	"not recognized as an internal",
	"git: not found",
	"no such file or directory",
}

// classifyFailure distinguishes "git is missing" and "not a repository" from
// generic command failure, since each drives a different user-facing message.
func classifyFailure(detail string, err error) error {
	lower := strings.ToLower(detail)

	for _, marker := range toolMissingMarkers {
		if strings.Contains(lower, marker) {
			return errs.ErrToolUnavailable.WithContext("detail", detail)
		}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 127 {
		return errs.ErrToolUnavailable.WithContext("detail", detail)
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return errs.ErrToolUnavailable.WithContext("detail", detail)
	}

	if strings.Contains(lower, "not a git repository") {
		return errs.ErrNotARepository.WithContext("detail", detail)
	}

	return errs.NewCommandError(detail, err)
}

// Quote wraps an interpolated argument in double quotes, escaping the
// characters the shell would otherwise interpret.
func Quote(arg string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range arg {
		switch r {
		case '"', '\\', '$', '`':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}

package gitcli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// ErrGitNotFound indicates the git binary is not installed or not in PATH.
var ErrGitNotFound = errors.New("git binary not found")

// CommandError carries the failing git command line and its stderr so the
// tool boundary can surface both in a structured payload.
type CommandError struct {
	Cmd    []string
	Stderr string
	cause  error
}

func (e *CommandError) Error() string {
	cmd := strings.Join(e.Cmd, " ")
	if e.Stderr != "" {
		return fmt.Sprintf("git %s: %v: %s", cmd, e.cause, e.Stderr)
	}
	return fmt.Sprintf("git %s: %v", cmd, e.cause)
}

func (e *CommandError) Unwrap() error { return e.cause }

// Runner executes git subcommands with a per-command timeout. Each invocation
// spawns its own subprocess, so concurrent use is safe.
type Runner struct {
	Timeout time.Duration
}

func NewRunner(timeout time.Duration) Runner {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return Runner{Timeout: timeout}
}

func (r Runner) Git(ctx context.Context, dir string, args ...string) (string, error) {
	c := exec.CommandContext(ctx, "git", args...)
	c.Dir = dir
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr
	if err := c.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", ErrGitNotFound
		}
		return "", commandError(args, err, stderr.String())
	}
	done := make(chan error, 1)
	go func() { done <- c.Wait() }()
	select {
	case err := <-done:
		if err != nil {
			return "", commandError(args, err, stderr.String())
		}
		return stdout.String(), nil
	case <-time.After(r.Timeout):
		_ = c.Process.Kill()
		<-done
		return "", commandError(args, fmt.Errorf("command timed out after %s", r.Timeout), stderr.String())
	case <-ctx.Done():
		_ = c.Process.Kill()
		<-done
		cause := ctx.Err()
		if cause == nil {
			cause = errors.New("context canceled")
		}
		return "", commandError(args, cause, stderr.String())
	}
}

func commandError(args []string, cause error, stderr string) error {
	return &CommandError{
		Cmd:    append([]string{"git"}, args...),
		Stderr: strings.TrimSpace(stderr),
		cause:  cause,
	}
}

// EnsureInstalled verifies the git binary is invocable.
func (r Runner) EnsureInstalled(ctx context.Context) error {
	_, err := r.Git(ctx, "", "--version")
	return err
}

// EnsureWorkTree verifies dir lies inside a git working tree. Git reports the
// failure on stderr with a non-zero exit, which surfaces as a CommandError.
func (r Runner) EnsureWorkTree(ctx context.Context, dir string) error {
	_, err := r.Git(ctx, dir, "rev-parse", "--is-inside-work-tree")
	return err
}

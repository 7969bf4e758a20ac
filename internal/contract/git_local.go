package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine. Every invocation is bounded
// by a per-process timeout; a hung git process degrades to an error the
// pipeline treats as "no data", never as a crash.
type LocalGitClient struct {
	timeout time.Duration
}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
// A non-positive timeout falls back to the default.
func NewLocalGitClient(timeout time.Duration) *LocalGitClient {
	if timeout <= 0 {
		timeout = DefaultGitTimeout
	}
	return &LocalGitClient{timeout: timeout}
}

// Run executes a git command and returns its stdout output.
func (c *LocalGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	runCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.CommandContext(runCtx, "git", fullArgs...)
	out, err := cmd.Output()
	if runCtx.Err() != nil {
		return nil, fmt.Errorf("git '%v' timed out after %s", strings.Join(fullArgs, " "), c.timeout)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil, fmt.Errorf("git '%v' exit: %s", strings.Join(fullArgs, " "), strings.TrimSpace(string(exitErr.Stderr)))
	} else if err != nil {
		return nil, fmt.Errorf("git '%v' unknown: %w", strings.Join(fullArgs, " "), err)
	}
	return out, nil
}

// CommitLog implements the GitClient interface.
func (c *LocalGitClient) CommitLog(ctx context.Context, repoPath string, maxCount int) ([]byte, error) {
	args := []string{
		"log",
		fmt.Sprintf("--max-count=%d", maxCount),
		"--pretty=format:%H|%s|%ai|%an",
	}
	return c.Run(ctx, repoPath, args...)
}

// DiffRaw implements the GitClient interface with a zero-context diff so
// the output carries only changed lines.
func (c *LocalGitClient) DiffRaw(ctx context.Context, repoPath, refOld, refNew string) ([]byte, error) {
	return c.Run(ctx, repoPath, "diff", refOld, refNew, "--unified=0")
}

// HeadHash implements the GitClient interface.
func (c *LocalGitClient) HeadHash(ctx context.Context, repoPath string) (string, error) {
	out, err := c.Run(ctx, repoPath, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

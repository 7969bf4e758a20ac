// Package workspace materializes repository URLs into local directories.
package workspace

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
)

// browserURLPattern matches GitHub browser URLs that point at a branch or
// a path inside a repository, e.g.
// https://github.com/user/repo/tree/branch-name/sub/folder
var browserURLPattern = regexp.MustCompile(`^https?://github\.com/([^/]+)/([^/]+)/(tree|blob)/([^/]+)(.*)$`)

// ParseRepoURL extracts the clone URL, branch and subpath from a
// repository URL. Plain .git URLs and anything unrecognized pass through
// unchanged with empty branch and subpath.
func ParseRepoURL(url string) (cloneURL, branch, subpath string) {
	if strings.HasSuffix(url, ".git") {
		return url, "", ""
	}
	if m := browserURLPattern.FindStringSubmatch(url); m != nil {
		owner, repo := m[1], m[2]
		return fmt.Sprintf("https://github.com/%s/%s.git", owner, repo), m[4], strings.TrimPrefix(m[5], "/")
	}
	return url, "", ""
}

// Acquire materializes the repository URL into a local directory and
// returns its path with a cleanup function. A URL that is already a local
// git work tree is used in place with a no-op cleanup.
//
// On clone failure the temp directory is removed before returning, so no
// partial workspace is ever leaked.
func Acquire(ctx context.Context, repoURL string) (string, func(), error) {
	if isLocalWorkTree(repoURL) {
		return repoURL, func() {}, nil
	}

	cloneURL, branch, subpath := ParseRepoURL(repoURL)
	tempDir, err := os.MkdirTemp("", "driftgate-*")
	if err != nil {
		return "", nil, fmt.Errorf("create workspace dir: %w", err)
	}

	args := []string{"clone"}
	if branch != "" {
		args = append(args, "--branch", branch, "--single-branch")
	}
	args = append(args, cloneURL, tempDir)

	cmd := exec.CommandContext(ctx, "git", args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		Release(tempDir)
		return "", nil, fmt.Errorf("failed to clone repository %s: %v: %s", cloneURL, err, strings.TrimSpace(string(out)))
	}

	path := tempDir
	if subpath != "" {
		target := filepath.Join(tempDir, filepath.FromSlash(subpath))
		if info, statErr := os.Stat(target); statErr == nil && info.IsDir() {
			path = target
		}
	}
	return path, func() { Release(tempDir) }, nil
}

// Release removes an acquired workspace. Git object files are read-only on
// some platforms, so a failed removal retries after making the tree
// writable.
func Release(path string) {
	if path == "" {
		return
	}
	if err := os.RemoveAll(path); err == nil {
		return
	}
	_ = filepath.WalkDir(path, func(p string, _ os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		_ = os.Chmod(p, 0o700)
		return nil
	})
	_ = os.RemoveAll(path)
}

// isLocalWorkTree reports whether the given string is a local directory
// containing git metadata.
func isLocalWorkTree(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return false
	}
	_, err = os.Stat(filepath.Join(path, ".git"))
	return err == nil
}

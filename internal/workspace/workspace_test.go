package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRepoURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		cloneURL string
		branch   string
		subpath  string
	}{
		{
			name:     "plain git url",
			url:      "https://github.com/user/repo.git",
			cloneURL: "https://github.com/user/repo.git",
		},
		{
			name:     "browser tree url with branch",
			url:      "https://github.com/user/repo/tree/develop",
			cloneURL: "https://github.com/user/repo.git",
			branch:   "develop",
		},
		{
			name:     "browser tree url with subpath",
			url:      "https://github.com/user/repo/tree/main/services/api",
			cloneURL: "https://github.com/user/repo.git",
			branch:   "main",
			subpath:  "services/api",
		},
		{
			name:     "browser blob url",
			url:      "https://github.com/user/repo/blob/main/pkg",
			cloneURL: "https://github.com/user/repo.git",
			branch:   "main",
			subpath:  "pkg",
		},
		{
			name:     "plain repo page passes through",
			url:      "https://github.com/user/repo",
			cloneURL: "https://github.com/user/repo",
		},
		{
			name:     "local path passes through",
			url:      "/home/dev/project",
			cloneURL: "/home/dev/project",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cloneURL, branch, subpath := ParseRepoURL(tt.url)
			assert.Equal(t, tt.cloneURL, cloneURL)
			assert.Equal(t, tt.branch, branch)
			assert.Equal(t, tt.subpath, subpath)
		})
	}
}

func TestIsLocalWorkTree(t *testing.T) {
	root := t.TempDir()
	assert.False(t, isLocalWorkTree(root), "a directory without git metadata is not a work tree")

	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
	assert.True(t, isLocalWorkTree(root))

	assert.False(t, isLocalWorkTree(filepath.Join(root, "missing")))
}

func TestReleaseTolerance(t *testing.T) {
	assert.NotPanics(t, func() { Release("") })
	assert.NotPanics(t, func() { Release(filepath.Join(t.TempDir(), "never-created")) })

	dir := t.TempDir()
	target := filepath.Join(dir, "workspace")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "sub", "f.txt"), []byte("x"), 0o644))

	Release(target)
	_, err := os.Stat(target)
	assert.True(t, os.IsNotExist(err))
}

package git

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasGit(t *testing.T) {
	bin := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(bin, "git"), []byte("#!/bin/sh\n"), 0o755))

	t.Setenv("PATH", bin)
	assert.True(t, HasGit())

	t.Setenv("PATH", t.TempDir())
	assert.False(t, HasGit())
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "fatal: repository not found", firstLine("fatal: repository not found\nremote: see logs"))
	assert.Equal(t, "single line", firstLine("single line"))
	assert.Equal(t, "", firstLine(""))
}

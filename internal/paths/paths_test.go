package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pproenca/skai-sub000/internal/paths"
	"github.com/stretchr/testify/assert"
)

func TestClaudeDir(t *testing.T) {
	home, _ := os.UserHomeDir()
	assert.True(t, strings.HasPrefix(paths.ClaudeDir(), home))
	assert.True(t, strings.HasSuffix(paths.ClaudeDir(), ".claude"))
}

func TestGlobalSkills(t *testing.T) {
	assert.True(t, strings.HasPrefix(paths.GlobalSkills(), paths.ClaudeDir()))
	assert.True(t, strings.HasSuffix(paths.GlobalSkills(), "skills"))
}

func TestProjectSkills(t *testing.T) {
	got := paths.ProjectSkills("/work/repo")
	assert.Equal(t, filepath.Join("/work/repo", ".claude", "skills"), got)
}

func TestConfigFile(t *testing.T) {
	got := paths.ConfigFile()
	assert.True(t, strings.HasSuffix(got, filepath.Join("skai", "config.yaml")))
}

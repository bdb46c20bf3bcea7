package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pproenca/skai-sub000/internal/skill"
)

func writeSkill(t *testing.T, dir, name string, extra string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	doc := "---\nname: " + name + "\n" + extra + "---\nBody.\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, skill.Filename), []byte(doc), 0o644))
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, filepath.Join(root, "scratch"), "scratch", "")
	writeSkill(t, filepath.Join(root, "review", "code-review"), "code-review", "description: PR review\n")
	writeSkill(t, filepath.Join(root, "review", "refactor"), "refactor", "")
	writeSkill(t, filepath.Join(root, "docs", "changelog"), "changelog", "")

	// Noise that must be skipped: a file, a category with no skills, and
	// a directory whose manifest is invalid.
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("hi"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "misc", "broken"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "misc", "broken", skill.Filename), []byte("no frontmatter"), 0o644))

	entries, err := Discover(root, "global")
	require.NoError(t, err)
	require.Len(t, entries, 4)

	byKey := make(map[string]Entry, len(entries))
	for _, e := range entries {
		byKey[e.Key] = e
	}

	e, ok := byKey["global:review:code-review"]
	require.True(t, ok)
	assert.Equal(t, "review", e.Category)
	assert.Equal(t, "PR review", e.Skill.Description)
	assert.True(t, e.Skill.Enabled)

	e, ok = byKey["global::scratch"]
	require.True(t, ok)
	assert.Equal(t, "", e.Category)

	_, ok = byKey["global:docs:changelog"]
	assert.True(t, ok)
	_, ok = byKey["global:review:refactor"]
	assert.True(t, ok)
}

func TestDiscoverFrontmatterCategoryFallback(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, filepath.Join(root, "code-review"), "code-review", "metadata:\n  category: review\n")

	entries, err := Discover(root, "global")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "review", entries[0].Category)
	assert.Equal(t, "global:review:code-review", entries[0].Key)
}

func TestDiscoverDirectoryCategoryWins(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, filepath.Join(root, "review", "code-review"), "code-review", "metadata:\n  category: other\n")

	entries, err := Discover(root, "global")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "review", entries[0].Category)
}

func TestDiscoverDisabledSkill(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, filepath.Join(root, "review", "refactor"+skill.DisabledSuffix), "refactor", "")

	entries, err := Discover(root, "global")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].Skill.Enabled)
	assert.Equal(t, "refactor", entries[0].Name())
	assert.Equal(t, "global:review:refactor", entries[0].Key)
}

func TestDiscoverMissingRoot(t *testing.T) {
	entries, err := Discover(filepath.Join(t.TempDir(), "nope"), "global")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSkillsRoot(t *testing.T) {
	root := t.TempDir()
	assert.Equal(t, root, SkillsRoot(root))

	require.NoError(t, os.MkdirAll(filepath.Join(root, "skills"), 0o755))
	assert.Equal(t, filepath.Join(root, "skills"), SkillsRoot(root))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "global:review:x", Key("global", "review", "x"))
	assert.Equal(t, "project::x", Key("project", "", "x"))
}

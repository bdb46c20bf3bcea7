package source

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveOwnerRepo(t *testing.T) {
	src, err := Resolve("anthropics/skills")
	require.NoError(t, err)

	assert.Equal(t, "https://github.com/anthropics/skills.git", src.URL)
	assert.Equal(t, "anthropics/skills", src.Label)
	assert.True(t, src.Remote())
}

func TestResolvePassthroughURLs(t *testing.T) {
	cases := []struct {
		spec  string
		label string
	}{
		{"https://github.com/anthropics/skills.git", "anthropics/skills"},
		{"https://gitlab.com/group/repo", "group/repo"},
		{"git@github.com:anthropics/skills.git", "anthropics/skills"},
		{"http://example.com/team/repo.git", "team/repo"},
	}
	for _, tc := range cases {
		t.Run(tc.spec, func(t *testing.T) {
			src, err := Resolve(tc.spec)
			require.NoError(t, err)
			assert.Equal(t, tc.spec, src.URL)
			assert.Equal(t, tc.label, src.Label)
		})
	}
}

func TestResolveLocalDir(t *testing.T) {
	dir := t.TempDir()

	src, err := Resolve(dir)
	require.NoError(t, err)
	assert.False(t, src.Remote())
	assert.Equal(t, dir, src.Local)
	assert.Equal(t, filepath.Base(dir), src.Label)
}

func TestResolveUnsupported(t *testing.T) {
	for _, spec := range []string{"", "   ", "not a source", "a b/c"} {
		_, err := Resolve(spec)
		assert.ErrorIs(t, err, ErrUnsupported, spec)
	}
}

func TestFetchLocalUsedInPlace(t *testing.T) {
	dir := t.TempDir()
	src, err := Resolve(dir)
	require.NoError(t, err)

	f := &Fetcher{Clone: func(string, string) error {
		t.Fatal("local source must not clone")
		return nil
	}}
	got, cleanup, err := f.Fetch(src)
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	cleanup()
	_, statErr := os.Stat(dir)
	assert.NoError(t, statErr) // cleanup must not touch a local source
}

func TestFetchRemoteStagesAndCleansUp(t *testing.T) {
	src, err := Resolve("anthropics/skills")
	require.NoError(t, err)

	var clonedTo string
	f := &Fetcher{Clone: func(url, dst string) error {
		assert.Equal(t, src.URL, url)
		clonedTo = dst
		if err := os.MkdirAll(dst, 0o755); err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(dst, "README.md"), []byte("hi"), 0o644)
	}}

	dir, cleanup, err := f.Fetch(src)
	require.NoError(t, err)
	assert.Equal(t, clonedTo, dir)
	assert.Contains(t, filepath.Base(dir), "skai-")

	_, statErr := os.Stat(filepath.Join(dir, "README.md"))
	assert.NoError(t, statErr)

	cleanup()
	_, statErr = os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestFetchCloneFailure(t *testing.T) {
	src, err := Resolve("anthropics/skills")
	require.NoError(t, err)

	f := &Fetcher{Clone: func(url, dst string) error {
		return fmt.Errorf("repository not found")
	}}
	_, _, err = f.Fetch(src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anthropics/skills")
}

func TestFetchDistinctStagingDirs(t *testing.T) {
	src, err := Resolve("anthropics/skills")
	require.NoError(t, err)

	f := &Fetcher{Clone: func(url, dst string) error {
		return os.MkdirAll(dst, 0o755)
	}}

	a, cleanupA, err := f.Fetch(src)
	require.NoError(t, err)
	defer cleanupA()
	b, cleanupB, err := f.Fetch(src)
	require.NoError(t, err)
	defer cleanupB()

	assert.NotEqual(t, a, b)
}

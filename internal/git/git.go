package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// Run executes a git command in the given directory and returns trimmed
// combined output.
func Run(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return strings.TrimSpace(string(out)), err
	}
	return strings.TrimSpace(string(out)), nil
}

// ShallowClone clones src into dst at depth 1. Skill installs only read
// the tip of the tree, so history is never fetched.
func ShallowClone(src, dst string) error {
	out, err := Run("", "clone", "--depth", "1", src, dst)
	if err != nil {
		return fmt.Errorf("git clone %s: %s", src, firstLine(out))
	}
	return nil
}

// HasGit reports whether a git binary is on PATH.
func HasGit() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

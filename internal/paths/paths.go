package paths

import (
	"os"
	"path/filepath"
)

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// ClaudeDir returns ~/.claude.
func ClaudeDir() string {
	return filepath.Join(home(), ".claude")
}

// GlobalSkills returns ~/.claude/skills, the install target shared across
// projects.
func GlobalSkills() string {
	return filepath.Join(ClaudeDir(), "skills")
}

// ProjectSkills returns dir/.claude/skills, the per-project install target.
func ProjectSkills(dir string) string {
	return filepath.Join(dir, ".claude", "skills")
}

// ConfigFile returns the skai config file location, normally
// ~/.config/skai/config.yaml.
func ConfigFile() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = filepath.Join(home(), ".config")
	}
	return filepath.Join(base, "skai", "config.yaml")
}

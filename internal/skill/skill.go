package skill

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Filename is the manifest every skill directory must carry.
const Filename = "SKILL.md"

// DisabledSuffix marks an installed skill directory as disabled without
// removing it.
const DisabledSuffix = ".disabled"

// nameRE bounds skill names to safe directory names: lower-case, starting
// with a letter or digit, no path separators or dots.
var nameRE = regexp.MustCompile(`^[a-z0-9][a-z0-9-_]*$`)

// Meta is the YAML frontmatter of a SKILL.md. Name is required; everything
// else is optional.
type Meta struct {
	Name         string              `yaml:"name"`
	Description  string              `yaml:"description,omitempty"`
	Metadata     Metadata            `yaml:"metadata,omitempty"`
	Dependencies map[string][]string `yaml:"dependencies,omitempty"`
}

// Metadata carries optional classification fields from the frontmatter.
type Metadata struct {
	Category string `yaml:"category,omitempty"`
}

// Skill is one skill directory on disk.
type Skill struct {
	Meta
	Dir     string // directory holding SKILL.md
	Body    string // markdown after the frontmatter
	Enabled bool   // false when the directory name carries DisabledSuffix
}

// ValidName reports whether name is usable as a skill directory name.
func ValidName(name string) bool {
	return nameRE.MatchString(name)
}

// TrimDisabled strips the disabled suffix from a directory name.
func TrimDisabled(name string) string {
	return strings.TrimSuffix(name, DisabledSuffix)
}

// ParseDocument splits a SKILL.md into its frontmatter and markdown body.
// The document must open with a "---" fenced YAML block carrying at least
// a valid name.
func ParseDocument(content []byte) (Meta, string, error) {
	text := string(content)
	if !strings.HasPrefix(text, "---") {
		return Meta{}, "", fmt.Errorf("missing frontmatter")
	}

	rest := text[3:]
	idx := strings.IndexByte(rest, '\n')
	if idx < 0 {
		return Meta{}, "", fmt.Errorf("missing frontmatter")
	}
	rest = rest[idx+1:]

	end := strings.Index(rest, "\n---")
	if end < 0 {
		return Meta{}, "", fmt.Errorf("unterminated frontmatter")
	}

	var meta Meta
	if err := yaml.Unmarshal([]byte(rest[:end]), &meta); err != nil {
		return Meta{}, "", fmt.Errorf("parsing frontmatter: %w", err)
	}
	if meta.Name == "" {
		return Meta{}, "", fmt.Errorf("frontmatter missing name")
	}
	if !ValidName(meta.Name) {
		return Meta{}, "", fmt.Errorf("invalid skill name %q", meta.Name)
	}

	body := strings.TrimPrefix(rest[end+len("\n---"):], "\n")
	return meta, body, nil
}

// Load reads the skill rooted at dir. Enabled state comes from the
// directory name, not the frontmatter.
func Load(dir string) (*Skill, error) {
	data, err := os.ReadFile(filepath.Join(dir, Filename))
	if err != nil {
		return nil, err
	}
	meta, body, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Join(dir, Filename), err)
	}
	enabled := !strings.HasSuffix(filepath.Base(dir), DisabledSuffix)
	return &Skill{Meta: meta, Dir: dir, Body: body, Enabled: enabled}, nil
}

// DirName returns the skill's on-disk identity: the directory base without
// the disabled suffix. This is what install, rename, and remove operate
// on; the frontmatter name is advisory once a skill is on disk.
func (s *Skill) DirName() string {
	return TrimDisabled(filepath.Base(s.Dir))
}

// Category returns the frontmatter category, or "".
func (s *Skill) Category() string {
	return s.Metadata.Category
}

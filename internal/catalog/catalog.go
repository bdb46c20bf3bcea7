package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pproenca/skai-sub000/internal/skill"
)

// Entry is one discovered skill with its stable identity.
type Entry struct {
	Key      string // origin:category:name
	Origin   string // "global", "project", or a source label
	Category string // category directory, or frontmatter category
	Skill    *skill.Skill
}

// Name returns the entry's on-disk skill name.
func (e Entry) Name() string {
	return e.Skill.DirName()
}

// SkillsRoot returns root/skills when that directory exists, root
// otherwise. Skill repos usually keep their skills under a skills/
// subdirectory next to a README.
func SkillsRoot(root string) string {
	sub := filepath.Join(root, "skills")
	if fi, err := os.Stat(sub); err == nil && fi.IsDir() {
		return sub
	}
	return root
}

// Discover scans root for skills. Direct child directories carrying a
// SKILL.md are uncategorized skills; child directories without one are
// treated as category directories and scanned one level deep. Directories
// with a missing or invalid manifest are skipped, not reported.
func Discover(root, origin string) ([]Entry, error) {
	dirents, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading skills dir %s: %w", root, err)
	}

	var entries []Entry
	for _, d := range dirents {
		if !d.IsDir() {
			continue
		}
		dir := filepath.Join(root, d.Name())

		if hasManifest(dir) {
			if sk, err := skill.Load(dir); err == nil {
				entries = append(entries, newEntry(origin, "", sk))
			}
			continue
		}

		subs, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, s := range subs {
			if !s.IsDir() {
				continue
			}
			sdir := filepath.Join(dir, s.Name())
			if !hasManifest(sdir) {
				continue
			}
			if sk, err := skill.Load(sdir); err == nil {
				entries = append(entries, newEntry(origin, d.Name(), sk))
			}
		}
	}
	return entries, nil
}

// newEntry builds an entry, falling back to the frontmatter category when
// the skill sat directly under the root.
func newEntry(origin, category string, sk *skill.Skill) Entry {
	if category == "" {
		category = sk.Category()
	}
	return Entry{
		Key:      Key(origin, category, sk.DirName()),
		Origin:   origin,
		Category: category,
		Skill:    sk,
	}
}

// Key builds the stable identity origin:category:name. An uncategorized
// skill keeps its empty middle component.
func Key(origin, category, name string) string {
	return origin + ":" + category + ":" + name
}

func hasManifest(dir string) bool {
	fi, err := os.Stat(filepath.Join(dir, skill.Filename))
	return err == nil && fi.Mode().IsRegular()
}

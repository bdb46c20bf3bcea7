package installer

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pproenca/skai-sub000/internal/skill"
)

// ErrExists is returned when installing over an already installed skill
// without force.
var ErrExists = errors.New("skill already installed")

// ErrNotInstalled is returned when the named skill has no directory in
// the target, enabled or disabled.
var ErrNotInstalled = errors.New("skill not installed")

// Installer copies skill directories into a target and flips their
// enabled state by renaming. Every operation validates the skill name, so
// a crafted name can never escape the target.
type Installer struct {
	Target string
}

// New returns an installer rooted at target.
func New(target string) *Installer {
	return &Installer{Target: target}
}

// Install copies srcDir into the target under name. An existing install,
// enabled or disabled, is refused unless force is set; with force the old
// directory is removed first.
func (i *Installer) Install(srcDir, name string, force bool) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}

	if existing, ok := i.InstalledDir(name); ok {
		if !force {
			return "", fmt.Errorf("%w: %s", ErrExists, name)
		}
		if err := os.RemoveAll(existing); err != nil {
			return "", fmt.Errorf("replacing %s: %w", name, err)
		}
	}

	if err := os.MkdirAll(i.Target, 0o755); err != nil {
		return "", err
	}
	dst := filepath.Join(i.Target, name)
	if err := copyDir(srcDir, dst); err != nil {
		os.RemoveAll(dst)
		return "", fmt.Errorf("installing %s: %w", name, err)
	}
	return dst, nil
}

// Uninstall removes the named skill in whichever form it is installed.
func (i *Installer) Uninstall(name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	dir, ok := i.InstalledDir(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotInstalled, name)
	}
	return os.RemoveAll(dir)
}

// SetEnabled renames the skill between name and name.disabled. Already
// being in the desired state is a no-op.
func (i *Installer) SetEnabled(name string, enabled bool) error {
	if err := checkName(name); err != nil {
		return err
	}
	dir, ok := i.InstalledDir(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotInstalled, name)
	}

	want := filepath.Join(i.Target, name)
	if !enabled {
		want += skill.DisabledSuffix
	}
	if dir == want {
		return nil
	}
	return os.Rename(dir, want)
}

// InstalledDir resolves the on-disk directory for name, trying the
// enabled form first.
func (i *Installer) InstalledDir(name string) (string, bool) {
	candidates := []string{
		filepath.Join(i.Target, name),
		filepath.Join(i.Target, name+skill.DisabledSuffix),
	}
	for _, dir := range candidates {
		if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
			return dir, true
		}
	}
	return "", false
}

func checkName(name string) error {
	if !skill.ValidName(name) {
		return fmt.Errorf("invalid skill name %q", name)
	}
	return nil
}

// copyDir copies a directory tree preserving file modes. Symlinks and
// other irregular files are skipped.
func copyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		out := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(out, 0o755)
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		return copyFile(path, out, info.Mode().Perm())
	})
}

func copyFile(src, dst string, perm fs.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

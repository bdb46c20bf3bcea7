package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/pproenca/skai-sub000/internal/git"
)

// ErrUnsupported is returned when a source spec matches no known form.
var ErrUnsupported = errors.New("unsupported source")

// ownerRepoRE matches the github shorthand "owner/repo".
var ownerRepoRE = regexp.MustCompile(`^[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`)

// Source is a resolved skill source: either a remote URL to clone or an
// existing local directory.
type Source struct {
	Spec  string // as the user typed it
	URL   string // clone URL, "" for local sources
	Local string // absolute local path, "" for remote sources
	Label string // short display form, e.g. "anthropics/skills"
}

// Remote reports whether the source needs a fetch.
func (s Source) Remote() bool { return s.URL != "" }

// Resolve classifies a source spec. An existing local directory wins over
// every other interpretation; git and http(s) URLs pass through; the
// "owner/repo" shorthand expands to a github clone URL.
func Resolve(spec string) (Source, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Source{}, fmt.Errorf("%w: empty spec", ErrUnsupported)
	}

	if fi, err := os.Stat(spec); err == nil && fi.IsDir() {
		abs, err := filepath.Abs(spec)
		if err != nil {
			return Source{}, err
		}
		return Source{Spec: spec, Local: abs, Label: filepath.Base(abs)}, nil
	}

	if strings.HasPrefix(spec, "git@") ||
		strings.HasPrefix(spec, "http://") ||
		strings.HasPrefix(spec, "https://") {
		return Source{Spec: spec, URL: spec, Label: repoLabel(spec)}, nil
	}

	if ownerRepoRE.MatchString(spec) {
		return Source{
			Spec:  spec,
			URL:   "https://github.com/" + spec + ".git",
			Label: spec,
		}, nil
	}

	return Source{}, fmt.Errorf("%w: %q (want owner/repo, a git URL, or a local path)", ErrUnsupported, spec)
}

// repoLabel reduces a clone URL to its owner/repo tail for display.
func repoLabel(url string) string {
	s := strings.TrimSuffix(strings.TrimSuffix(url, "/"), ".git")
	if strings.HasPrefix(s, "git@") {
		if i := strings.LastIndex(s, ":"); i >= 0 {
			return s[i+1:]
		}
		return s
	}
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+3:]
		if j := strings.IndexByte(s, '/'); j >= 0 {
			return s[j+1:]
		}
	}
	return s
}

// Fetcher stages sources into readable directories. Clone is swappable so
// tests never shell out to git.
type Fetcher struct {
	Clone func(url, dst string) error
}

// NewFetcher returns a fetcher backed by a real shallow git clone.
func NewFetcher() *Fetcher {
	return &Fetcher{Clone: git.ShallowClone}
}

// Fetch returns a directory holding the source's content plus a cleanup
// func. Remote sources are cloned into a fresh staging directory under
// the system temp dir; local sources are used in place with a no-op
// cleanup. Callers must run cleanup on every path, including cancellation.
func (f *Fetcher) Fetch(src Source) (string, func(), error) {
	if src.Local != "" {
		return src.Local, func() {}, nil
	}

	dst := filepath.Join(os.TempDir(), "skai-"+uuid.NewString())
	if err := f.Clone(src.URL, dst); err != nil {
		os.RemoveAll(dst)
		return "", nil, fmt.Errorf("fetching %s: %w", src.Label, err)
	}
	return dst, func() { os.RemoveAll(dst) }, nil
}

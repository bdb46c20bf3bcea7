package deps

import (
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/google/shlex"
)

// Command is one merged package-manager invocation.
type Command struct {
	Manager  string
	Packages []string
}

// Conflict reports one package requested at different versions. The
// install command keeps the first-seen spec; the conflict is surfaced so
// the user can decide.
type Conflict struct {
	Manager  string
	Name     string
	Versions []string
}

// managerInvocations maps supported managers to their install invocation.
// Packages are appended as separate arguments.
var managerInvocations = map[string]string{
	"npm":  "npm install -g",
	"pip":  "pip install",
	"brew": "brew install",
	"go":   "go install",
}

// Supported reports whether the manager has a known install invocation.
func Supported(manager string) bool {
	_, ok := managerInvocations[manager]
	return ok
}

// Merge combines per-skill dependency blocks into one command per manager.
// Managers keep first-seen order, alphabetical within a single block;
// packages keep first-seen order with duplicate specs collapsed. Two specs
// naming the same package at different versions produce a conflict. A spec
// without a version never conflicts.
func Merge(blocks []map[string][]string) ([]Command, []Conflict) {
	var order []string
	packages := make(map[string][]string)
	seen := make(map[string]map[string]bool)
	versions := make(map[string]map[string][]string)

	for _, block := range blocks {
		managers := make([]string, 0, len(block))
		for manager := range block {
			managers = append(managers, manager)
		}
		sort.Strings(managers)

		for _, manager := range managers {
			specs := block[manager]
			if seen[manager] == nil {
				order = append(order, manager)
				seen[manager] = make(map[string]bool)
				versions[manager] = make(map[string][]string)
			}
			for _, spec := range specs {
				if spec == "" || seen[manager][spec] {
					continue
				}
				seen[manager][spec] = true
				packages[manager] = append(packages[manager], spec)

				name, version := splitSpec(spec)
				if version != "" {
					versions[manager][name] = append(versions[manager][name], version)
				}
			}
		}
	}

	var commands []Command
	var conflicts []Conflict
	for _, manager := range order {
		commands = append(commands, Command{Manager: manager, Packages: packages[manager]})
		for _, spec := range packages[manager] {
			name, version := splitSpec(spec)
			if version == "" {
				continue
			}
			if vs := versions[manager][name]; len(vs) > 1 && vs[0] == version {
				conflicts = append(conflicts, Conflict{Manager: manager, Name: name, Versions: vs})
			}
		}
	}
	return commands, conflicts
}

// splitSpec splits "name@version" at the last @. A leading @ belongs to a
// scoped package name, not a version.
func splitSpec(spec string) (name, version string) {
	if i := strings.LastIndex(spec, "@"); i > 0 {
		return spec[:i], spec[i+1:]
	}
	return spec, ""
}

// Line renders the full install command for display and confirmation.
func (c Command) Line() (string, error) {
	inv, ok := managerInvocations[c.Manager]
	if !ok {
		return "", fmt.Errorf("unknown package manager %q", c.Manager)
	}
	return inv + " " + strings.Join(c.Packages, " "), nil
}

// Runner executes merged install commands. Exec is swappable so tests
// never run a real package manager.
type Runner struct {
	Exec func(name string, args ...string) error
}

// NewRunner returns a runner that executes commands with the user's
// terminal attached.
func NewRunner() *Runner {
	return &Runner{Exec: func(name string, args ...string) error {
		cmd := exec.Command(name, args...)
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		return cmd.Run()
	}}
}

// Run executes one command: the manager invocation is shell-split and the
// package specs appended as arguments.
func (r *Runner) Run(c Command) error {
	inv, ok := managerInvocations[c.Manager]
	if !ok {
		return fmt.Errorf("unknown package manager %q", c.Manager)
	}
	argv, err := shlex.Split(inv)
	if err != nil {
		return fmt.Errorf("splitting %q: %w", inv, err)
	}
	argv = append(argv, c.Packages...)
	if err := r.Exec(argv[0], argv[1:]...); err != nil {
		return fmt.Errorf("%s install failed: %w", c.Manager, err)
	}
	return nil
}

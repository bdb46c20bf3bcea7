package main

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"
	"github.com/pproenca/skai-sub000/cmd/skai/tui"
	"github.com/pproenca/skai-sub000/internal/catalog"
	"github.com/pproenca/skai-sub000/internal/config"
	"github.com/pproenca/skai-sub000/internal/deps"
	"github.com/pproenca/skai-sub000/internal/git"
	"github.com/pproenca/skai-sub000/internal/installer"
	"github.com/pproenca/skai-sub000/internal/source"
	"github.com/spf13/cobra"
)

var addForce bool

var addCmd = &cobra.Command{
	Use:   "add <source>",
	Short: "Install skills from a repo or local path",
	Long: `Install skills from a source repo.
The source is an owner/repo shorthand, a git URL, or a local path.
Opens a picker over the skills the source provides; selected skills are
copied into the target dir.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureTTY(); err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log, flush, err := sessionLogger()
		if err != nil {
			return err
		}
		defer flush()

		src, err := source.Resolve(args[0])
		if err != nil {
			return err
		}
		if src.Remote() && !git.HasGit() {
			return errors.New("git not found on PATH")
		}

		dir, cleanup, err := fetchSource(source.NewFetcher(), src, runSpinner)
		if err != nil {
			return err
		}
		defer cleanup()

		entries, err := catalog.Discover(catalog.SkillsRoot(dir), src.Label)
		if err != nil {
			return err
		}
		log.Info("discovered skills", "source", src.Label, "count", len(entries))
		if len(entries) == 0 {
			fmt.Printf("No skills found in %s.\n", src.Label)
			return nil
		}

		title := fmt.Sprintf("Install skills from %s", src.Label)
		p := tea.NewProgram(tui.NewMultiSelect(title, skillItems(entries), pickTheme(cfg)), tea.WithAltScreen())
		finalModel, err := p.Run()
		if err != nil {
			return err
		}

		ms := finalModel.(tui.MultiSelect[catalog.Entry])
		if ms.Cancelled() {
			fmt.Println("Cancelled.")
			return nil
		}
		chosen := ms.Selection()
		log.Info("picker closed", "chosen", len(chosen))
		if len(chosen) == 0 {
			fmt.Println("Nothing selected.")
			return nil
		}

		target := resolveTarget(cfg)
		ok, err := confirm(
			fmt.Sprintf("Install %d skill(s) into %s?", len(chosen), target),
			"Each skill is copied as its own directory.",
		)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Cancelled.")
			return nil
		}

		inst := installer.New(target)
		installed := 0
		for _, e := range chosen {
			if _, err := inst.Install(e.Skill.Dir, e.Name(), addForce); err != nil {
				if errors.Is(err, installer.ErrExists) {
					fmt.Printf("  skipped %s (already installed, use --force to replace)\n", e.Name())
					continue
				}
				return fmt.Errorf("installing %s: %w", e.Name(), err)
			}
			fmt.Printf("  installed %s\n", e.Name())
			installed++
		}
		log.Info("install finished", "installed", installed, "target", target)
		fmt.Printf("Done. %d skill(s) installed into %s.\n", installed, target)

		return offerDependencies(cfg, log, chosen)
	},
}

// fetchSource stages the source, showing a spinner while a remote clone
// runs. An aborted spinner can leave the finished clone on disk, so its
// cleanup still runs before the abort error is returned.
func fetchSource(fetcher *source.Fetcher, src source.Source, spin func(title string, action func()) error) (string, func(), error) {
	var dir string
	var cleanup func()
	var fetchErr error
	fetch := func() { dir, cleanup, fetchErr = fetcher.Fetch(src) }
	if !src.Remote() {
		fetch()
		return dir, cleanup, fetchErr
	}
	if err := spin(fmt.Sprintf("Fetching %s...", src.Label), fetch); err != nil {
		if cleanup != nil {
			cleanup()
		}
		return "", nil, err
	}
	return dir, cleanup, fetchErr
}

// offerDependencies merges the dependency blocks of the chosen skills and
// runs each package-manager command after an explicit confirm. Without
// the package_managers config opt-in it only prints the commands.
func offerDependencies(cfg config.Config, log logr.Logger, chosen []catalog.Entry) error {
	var blocks []map[string][]string
	for _, e := range chosen {
		if len(e.Skill.Dependencies) > 0 {
			blocks = append(blocks, e.Skill.Dependencies)
		}
	}
	if len(blocks) == 0 {
		return nil
	}

	commands, conflicts := deps.Merge(blocks)
	for _, c := range conflicts {
		fmt.Printf("Warning: %s requested at versions %s; keeping the first.\n",
			c.Name, strings.Join(c.Versions, ", "))
	}
	runnable, skipped := supportedCommands(commands)
	for _, m := range skipped {
		fmt.Printf("Note: %s packages have no known install command; install them yourself.\n", m)
	}
	if len(runnable) == 0 {
		return nil
	}

	if !cfg.PackageManagers {
		fmt.Println("Selected skills declare package dependencies. To install them, run:")
		for _, c := range runnable {
			line, err := c.Line()
			if err != nil {
				return err
			}
			fmt.Println("  " + line)
		}
		fmt.Println("Set package_managers: true in the config to let skai run these.")
		return nil
	}

	runner := deps.NewRunner()
	for _, c := range runnable {
		line, err := c.Line()
		if err != nil {
			return err
		}
		ok, err := confirm("Run "+line+"?", "Installs packages the selected skills depend on.")
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := runner.Run(c); err != nil {
			return err
		}
		log.Info("dependencies installed", "manager", c.Manager, "packages", len(c.Packages))
	}
	return nil
}

// supportedCommands splits merged commands into those with a known install
// invocation and the skipped manager names.
func supportedCommands(commands []deps.Command) (runnable []deps.Command, skipped []string) {
	for _, c := range commands {
		if !deps.Supported(c.Manager) {
			skipped = append(skipped, c.Manager)
			continue
		}
		runnable = append(runnable, c)
	}
	return runnable, skipped
}

func init() {
	addCmd.Flags().BoolVar(&addForce, "force", false, "replace already-installed skills")
}

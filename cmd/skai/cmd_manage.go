package main

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pproenca/skai-sub000/cmd/skai/tui"
	"github.com/pproenca/skai-sub000/internal/catalog"
	"github.com/pproenca/skai-sub000/internal/installer"
	"github.com/spf13/cobra"
)

var manageCmd = &cobra.Command{
	Use:   "manage",
	Short: "Enable or disable installed skills",
	Long: `Toggle installed skills on and off.
Changes are staged in the prompt and applied together on confirm; a
disabled skill keeps its files under <name>.disabled.`,
	Args: cobra.NoArgs,
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

		entries, err := scanInstalled()
		if err != nil {
			return err
		}
		log.Info("scanned installed skills", "count", len(entries))
		if len(entries) == 0 {
			fmt.Println("No skills installed.")
			return nil
		}

		p := tea.NewProgram(tui.NewManager("Manage skills", managerRows(entries), pickTheme(cfg)), tea.WithAltScreen())
		finalModel, err := p.Run()
		if err != nil {
			return err
		}

		mgr := finalModel.(tui.Manager)
		if mgr.Cancelled() {
			fmt.Println("Cancelled.")
			return nil
		}
		changes := mgr.Changes()
		log.Info("manage closed", "pending", len(changes))
		if len(changes) == 0 {
			fmt.Println("No changes.")
			return nil
		}

		byKey := make(map[string]catalog.Entry, len(entries))
		for _, e := range entries {
			byKey[e.Key] = e
		}
		for key, enable := range changes {
			e, ok := byKey[key]
			if !ok {
				continue
			}
			inst := installer.New(filepath.Dir(e.Skill.Dir))
			if err := inst.SetEnabled(e.Name(), enable); err != nil {
				return fmt.Errorf("toggling %s: %w", e.Name(), err)
			}
			if enable {
				fmt.Printf("  enabled %s\n", e.Name())
			} else {
				fmt.Printf("  disabled %s\n", e.Name())
			}
		}
		log.Info("changes applied", "count", len(changes))
		fmt.Printf("Applied %d change(s).\n", len(changes))
		return nil
	},
}

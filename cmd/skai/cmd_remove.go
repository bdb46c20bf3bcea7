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

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Uninstall skills",
	Long:  "Pick installed skills to uninstall. Removal deletes the skill directory, including a disabled one.",
	Args:  cobra.NoArgs,
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

		p := tea.NewProgram(tui.NewMultiSelect("Remove skills", skillItems(entries), pickTheme(cfg)), tea.WithAltScreen())
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
		if len(chosen) == 0 {
			fmt.Println("Nothing selected.")
			return nil
		}

		ok, err := confirm(
			fmt.Sprintf("Remove %d skill(s)?", len(chosen)),
			"Deletes the skill directories. This cannot be undone.",
		)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Cancelled.")
			return nil
		}

		for _, e := range chosen {
			inst := installer.New(filepath.Dir(e.Skill.Dir))
			if err := inst.Uninstall(e.Name()); err != nil {
				return fmt.Errorf("removing %s: %w", e.Name(), err)
			}
			fmt.Printf("  removed %s\n", e.Name())
		}
		log.Info("skills removed", "count", len(chosen))
		fmt.Printf("Removed %d skill(s).\n", len(chosen))
		return nil
	},
}

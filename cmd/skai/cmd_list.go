package main

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed skills",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		entries, err := scanInstalled()
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No skills installed.")
			return nil
		}

		th := pickTheme(cfg)
		nameW, catW := len("NAME"), len("CATEGORY")
		for _, e := range entries {
			nameW = max(nameW, runewidth.StringWidth(e.Name()))
			catW = max(catW, runewidth.StringWidth(displayCategory(e.Category)))
		}
		nameW += 2
		catW += 2

		fmt.Println(th.Header.Render(
			runewidth.FillRight("NAME", nameW) +
				runewidth.FillRight("STATUS", 10) +
				runewidth.FillRight("CATEGORY", catW) +
				"SOURCE"))
		for _, e := range entries {
			status := th.Enabled.Render(runewidth.FillRight("enabled", 10))
			if !e.Skill.Enabled {
				status = th.Disabled.Render(runewidth.FillRight("disabled", 10))
			}
			fmt.Println(runewidth.FillRight(e.Name(), nameW) +
				status +
				th.Dim.Render(runewidth.FillRight(displayCategory(e.Category), catW)+e.Origin))
		}
		return nil
	},
}

func displayCategory(cat string) string {
	if cat == "" {
		return "-"
	}
	return cat
}

package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pproenca/skai-sub000/internal/catalog"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <name>",
	Short: "Show details of an installed skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		entries, err := scanInstalled()
		if err != nil {
			return err
		}

		name := args[0]
		var matches []catalog.Entry
		for _, e := range entries {
			if e.Name() == name {
				matches = append(matches, e)
			}
		}
		if len(matches) == 0 {
			return fmt.Errorf("skill %q is not installed", name)
		}

		th := pickTheme(cfg)
		for i, e := range matches {
			if i > 0 {
				fmt.Println()
			}
			status := "enabled"
			if !e.Skill.Enabled {
				status = "disabled"
			}
			fmt.Println(th.Title.Render(e.Name()))
			fmt.Printf("  %s %s\n", th.Dim.Render("status:"), status)
			fmt.Printf("  %s %s\n", th.Dim.Render("category:"), displayCategory(e.Category))
			fmt.Printf("  %s %s\n", th.Dim.Render("source:"), e.Origin)
			fmt.Printf("  %s %s\n", th.Dim.Render("path:"), e.Skill.Dir)
			for _, line := range dependencyLines(e.Skill.Dependencies) {
				fmt.Printf("  %s %s\n", th.Dim.Render("needs:"), line)
			}
			if e.Skill.Description != "" {
				fmt.Printf("\n  %s\n", e.Skill.Description)
			}
		}
		return nil
	},
}

// dependencyLines renders one "manager: spec, spec" line per manager in
// stable order.
func dependencyLines(dependencies map[string][]string) []string {
	managers := make([]string, 0, len(dependencies))
	for m := range dependencies {
		managers = append(managers, m)
	}
	sort.Strings(managers)

	var lines []string
	for _, m := range managers {
		lines = append(lines, fmt.Sprintf("%s: %s", m, strings.Join(dependencies[m], ", ")))
	}
	return lines
}

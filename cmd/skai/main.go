package main

import (
	"fmt"
	"os"

	"github.com/pproenca/skai-sub000/internal/config"
	"github.com/pproenca/skai-sub000/internal/paths"
	"github.com/spf13/cobra"
)

var version = "0.3.1"

var (
	flagTarget  string
	flagProject bool
	flagLogFile string
)

var rootCmd = &cobra.Command{
	Use:   "skai",
	Short: "Install and manage skills for coding agents",
	Long:  "skai installs skill directories (SKILL.md plus supporting files) from git repos or local paths and manages which ones are enabled.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listCmd.RunE(cmd, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("skai %s\n", version)
	},
}

// loadConfig reads the user config file, tolerating a missing one.
func loadConfig() (config.Config, error) {
	return config.Load(paths.ConfigFile())
}

// resolveTarget picks the install dir: --target wins, then --project, then
// the configured default, then the global skills dir.
func resolveTarget(cfg config.Config) string {
	if flagTarget != "" {
		return flagTarget
	}
	if flagProject || cfg.Target == "project" {
		return paths.ProjectSkills(".")
	}
	return paths.GlobalSkills()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagTarget, "target", "", "install dir (overrides the default target)")
	rootCmd.PersistentFlags().BoolVar(&flagProject, "project", false, "operate on ./.claude/skills instead of the global dir")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "append a debug log to this file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(manageCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(infoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

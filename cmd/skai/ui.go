package main

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/x/term"
	"github.com/go-logr/logr"
	"github.com/muesli/termenv"
	"github.com/pproenca/skai-sub000/cmd/skai/tui"
	"github.com/pproenca/skai-sub000/internal/config"
	"github.com/pproenca/skai-sub000/internal/logging"
)

// ensureTTY refuses interactive commands when stdin or stdout is piped.
func ensureTTY() error {
	if !term.IsTerminal(os.Stdin.Fd()) || !term.IsTerminal(os.Stdout.Fd()) {
		return errors.New("interactive command requires a terminal")
	}
	return nil
}

// pickTheme maps the configured theme to a palette, probing the terminal
// background on "auto".
func pickTheme(cfg config.Config) tui.Theme {
	switch cfg.Theme {
	case "dark":
		return tui.DefaultTheme(true)
	case "light":
		return tui.DefaultTheme(false)
	}
	return tui.DefaultTheme(termenv.HasDarkBackground())
}

// sessionLogger returns the --log-file logger, or a no-op one when the
// flag is unset.
func sessionLogger() (logr.Logger, func(), error) {
	if flagLogFile == "" {
		return logging.Noop(), func() {}, nil
	}
	return logging.New(flagLogFile)
}

// runSpinner shows a spinner titled title while action runs. Command flows
// take it as a parameter so tests can drive them without a terminal.
func runSpinner(title string, action func()) error {
	return spinner.New().Title(title).Action(action).Run()
}

// confirm asks a yes/no question. Aborting the form counts as no.
func confirm(title, description string) (bool, error) {
	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Value(&ok),
		),
	).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return ok, nil
}

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// phase tracks a prompt's lifecycle. Prompts start active and move to
// exactly one terminal phase; no transitions leave a terminal phase.
type phase int

const (
	phaseActive phase = iota
	phaseSubmit
	phaseCancel
)

// flashDuration is how long the "search cleared" acknowledgement shows.
const flashDuration = 900 * time.Millisecond

// flashExpireMsg ends a search-clear flash. Seq identifies which clear
// scheduled it; prompts drop the message when the sequence is stale.
type flashExpireMsg struct{ Seq int }

// flashCmd schedules the flash expiry for the given sequence number.
func flashCmd(seq int) tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashExpireMsg{Seq: seq}
	})
}

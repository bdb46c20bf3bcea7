package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// ToggleState is the rendered state of a manager row: the two settled
// states plus the two staged ones.
type ToggleState int

const (
	ToggleEnabled ToggleState = iota
	ToggleDisabled
	TogglePendingOn
	TogglePendingOff
)

// KeyHint is one "Key: action" pair for the footer line.
type KeyHint struct {
	Key  string
	Desc string
}

// Truncate shortens plain text to the given display width, appending an
// ellipsis when something was cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// RenderTitle renders the prompt title line.
func RenderTitle(th Theme, title string) string {
	return th.Title.Render(title)
}

// RenderSummary renders the single line shown once a prompt reaches a
// terminal state.
func RenderSummary(th Theme, ok bool, text string) string {
	if ok {
		return th.Summary.Render("✓ " + text)
	}
	return th.CancelSummary.Render("✗ " + text)
}

// RenderSearchBox renders the search line: the flash acknowledgement right
// after a clear, a dim placeholder when idle, or the typed term.
func RenderSearchBox(th Theme, box Box) string {
	label := th.SearchLabel.Render("Search: ")
	if box.Flashing() {
		return label + th.SearchFlash.Render("cleared")
	}
	if !box.Active() {
		return label + th.Dim.Render("type to filter")
	}
	return label + th.SearchTerm.Render(box.Term()) + th.Dim.Render("▌")
}

// RenderStatusLine renders left- and right-aligned text padded to width.
// Both sides may carry styling; the gap math uses ANSI-aware widths.
func RenderStatusLine(left, right string, width int) string {
	gap := width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// RenderScrollAbove renders the hidden-above indicator, or "" when nothing
// is hidden.
func RenderScrollAbove(th Theme, n int) string {
	if n <= 0 {
		return ""
	}
	return th.Dim.Render(fmt.Sprintf("  ↑ %d more above", n))
}

// RenderScrollBelow renders the hidden-below indicator, or "" when nothing
// is hidden.
func RenderScrollBelow(th Theme, n int) string {
	if n <= 0 {
		return ""
	}
	return th.Dim.Render(fmt.Sprintf("  ↓ %d more below", n))
}

// RenderGroupRow renders a group header row with its expansion glyph and
// selected/total tally.
func RenderGroupRow(th Theme, current, expanded bool, label string, c Count) string {
	glyph := th.GlyphCollapsed
	if expanded {
		glyph = th.GlyphExpanded
	}
	line := fmt.Sprintf("%s %s (%d/%d)", glyph, label, c.Selected, c.Total)
	if current {
		return th.Cursor.Render("> ") + th.Cursor.Render(line)
	}
	return "  " + th.Header.Render(line)
}

// RenderCheckRow renders one pick-many leaf row: cursor marker, checkbox,
// highlighted label padded to the name column, and dimmed hint.
func RenderCheckRow(th Theme, current, selected bool, indent int, label, hint, term string, width int) string {
	marker := "  "
	if current {
		marker = th.Cursor.Render("> ")
	}

	box := th.Unselected.Render(th.GlyphUnchecked)
	if selected {
		box = th.Selected.Render(th.GlyphChecked)
	}

	base := lipgloss.NewStyle()
	if current {
		base = th.Cursor
	}

	pad := strings.Repeat(" ", indent)
	nameW := nameColWidth(width)
	name := Truncate(label, nameW)
	fill := strings.Repeat(" ", nameW-runewidth.StringWidth(name))

	line := marker + box + " " + pad + highlightLabel(th, name, term, base) + fill
	if hint != "" {
		hintW := width - nameW - indent - 8
		line += "  " + th.Dim.Render(Truncate(hint, hintW))
	}
	return line
}

// RenderToggleRow renders one manager row: cursor marker, toggle glyph,
// highlighted name, status column, and dimmed source.
func RenderToggleRow(th Theme, current bool, state ToggleState, label, source, term string, width int) string {
	marker := "  "
	if current {
		marker = th.Cursor.Render("> ")
	}

	glyph, status, style := toggleParts(th, state)

	base := lipgloss.NewStyle()
	if current {
		base = th.Cursor
	}

	nameW := nameColWidth(width)
	name := Truncate(label, nameW)
	fill := strings.Repeat(" ", nameW-runewidth.StringWidth(name))

	line := marker + style.Render(glyph) + " " +
		highlightLabel(th, name, term, base) + fill + "  " +
		style.Render(padRight(status, statusColWidth)) + "  " +
		th.Dim.Render(Truncate(source, width-nameW-statusColWidth-12))
	return line
}

// RenderColumnHeader renders the manager's column header aligned with
// RenderToggleRow.
func RenderColumnHeader(th Theme, width int) string {
	nameW := nameColWidth(width)
	return th.Dim.Render("      " + padRight("NAME", nameW) + "  " +
		padRight("STATUS", statusColWidth) + "  SOURCE")
}

// RenderFooter renders the keyboard hint line.
func RenderFooter(th Theme, hints []KeyHint) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, th.FooterKey.Render(h.Key)+th.Footer.Render(": "+h.Desc))
	}
	return strings.Join(parts, th.Footer.Render(" · "))
}

// statusColWidth fits the longest status word, "will disable".
const statusColWidth = 12

// nameColWidth sizes the name column from the frame width.
func nameColWidth(width int) int {
	w := width * 2 / 5
	if w < 16 {
		w = 16
	}
	if w > 40 {
		w = 40
	}
	return w
}

// highlightLabel styles a label in base while marking the first term match,
// keeping the mark and the surrounding segments as separately closed styles
// so the base style is not cut short by the mark's reset sequence.
func highlightLabel(th Theme, text, term string, base lipgloss.Style) string {
	if term == "" {
		return base.Render(text)
	}
	start, end := indexFold(text, term)
	if start < 0 {
		return base.Render(text)
	}
	out := th.Match.Render(text[start:end])
	if start > 0 {
		out = base.Render(text[:start]) + out
	}
	if end < len(text) {
		out += base.Render(text[end:])
	}
	return out
}

// toggleParts maps a toggle state to its glyph, status word, and style.
func toggleParts(th Theme, state ToggleState) (glyph, status string, style lipgloss.Style) {
	switch state {
	case ToggleEnabled:
		return th.GlyphEnabled, "enabled", th.Enabled
	case TogglePendingOn:
		return th.GlyphPendingOn, "will enable", th.PendingOn
	case TogglePendingOff:
		return th.GlyphPendingOff, "will disable", th.PendingOff
	default:
		return th.GlyphDisabled, "disabled", th.Disabled
	}
}

func padRight(s string, width int) string {
	n := width - runewidth.StringWidth(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}

package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Theme bundles every style and glyph the prompts render with. It is passed
// into each prompt at construction so render output carries no package-level
// color state and tests can assert against a known palette.
type Theme struct {
	// Title is used for the prompt title line.
	Title lipgloss.Style

	// Summary is used for the final line after submit.
	Summary lipgloss.Style

	// CancelSummary is used for the final line after cancel.
	CancelSummary lipgloss.Style

	// SearchLabel and SearchTerm style the "Search:" prefix and the typed term.
	SearchLabel lipgloss.Style
	SearchTerm  lipgloss.Style

	// SearchFlash styles the brief acknowledgement after a search clear.
	SearchFlash lipgloss.Style

	// ActiveTab, InactiveTab, and DisabledTab style the tab bar segments.
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	DisabledTab lipgloss.Style

	// Header styles group rows and the manager column header.
	Header lipgloss.Style

	// Cursor styles the "> " marker and the label on the cursor row.
	Cursor lipgloss.Style

	// Selected and Unselected style checkbox glyphs.
	Selected   lipgloss.Style
	Unselected lipgloss.Style

	// Enabled, Disabled, PendingOn, and PendingOff style the manager's four
	// toggle states.
	Enabled    lipgloss.Style
	Disabled   lipgloss.Style
	PendingOn  lipgloss.Style
	PendingOff lipgloss.Style

	// Match highlights the first search-term occurrence inside a label.
	Match lipgloss.Style

	// Dim styles hints, metadata, and non-cursor rows' secondary text.
	Dim lipgloss.Style

	// Footer styles the keyboard shortcut line; FooterKey highlights the keys.
	Footer    lipgloss.Style
	FooterKey lipgloss.Style

	// Glyphs used by row rendering.
	GlyphChecked    string
	GlyphUnchecked  string
	GlyphEnabled    string
	GlyphDisabled   string
	GlyphPendingOn  string
	GlyphPendingOff string
	GlyphExpanded   string
	GlyphCollapsed  string
}

// flavor is the slice of the catppuccin palette API the theme reads.
type flavor interface {
	Base() catppuccin.Color
	Surface0() catppuccin.Color
	Text() catppuccin.Color
	Subtext0() catppuccin.Color
	Overlay0() catppuccin.Color
	Blue() catppuccin.Color
	Green() catppuccin.Color
	Red() catppuccin.Color
	Yellow() catppuccin.Color
	Mauve() catppuccin.Color
}

// DefaultTheme builds the standard theme from the catppuccin palette,
// Mocha when dark is true and Latte otherwise.
func DefaultTheme(dark bool) Theme {
	if dark {
		return newTheme(catppuccin.Mocha)
	}
	return newTheme(catppuccin.Latte)
}

func newTheme(f flavor) Theme {
	base := lipgloss.Color(f.Base().Hex)
	surface0 := lipgloss.Color(f.Surface0().Hex)
	text := lipgloss.Color(f.Text().Hex)
	subtext0 := lipgloss.Color(f.Subtext0().Hex)
	overlay0 := lipgloss.Color(f.Overlay0().Hex)
	blue := lipgloss.Color(f.Blue().Hex)
	green := lipgloss.Color(f.Green().Hex)
	red := lipgloss.Color(f.Red().Hex)
	yellow := lipgloss.Color(f.Yellow().Hex)
	mauve := lipgloss.Color(f.Mauve().Hex)

	return Theme{
		Title:         lipgloss.NewStyle().Foreground(mauve).Bold(true),
		Summary:       lipgloss.NewStyle().Foreground(green),
		CancelSummary: lipgloss.NewStyle().Foreground(overlay0),

		SearchLabel: lipgloss.NewStyle().Foreground(subtext0),
		SearchTerm:  lipgloss.NewStyle().Foreground(text).Bold(true),
		SearchFlash: lipgloss.NewStyle().Foreground(yellow).Italic(true),

		ActiveTab:   lipgloss.NewStyle().Foreground(base).Background(blue).Padding(0, 1).Bold(true),
		InactiveTab: lipgloss.NewStyle().Foreground(text).Background(surface0).Padding(0, 1),
		DisabledTab: lipgloss.NewStyle().Foreground(overlay0).Background(surface0).Padding(0, 1),

		Header: lipgloss.NewStyle().Foreground(mauve).Bold(true),
		Cursor: lipgloss.NewStyle().Foreground(text).Bold(true),

		Selected:   lipgloss.NewStyle().Foreground(green),
		Unselected: lipgloss.NewStyle().Foreground(text),

		Enabled:    lipgloss.NewStyle().Foreground(green),
		Disabled:   lipgloss.NewStyle().Foreground(overlay0),
		PendingOn:  lipgloss.NewStyle().Foreground(yellow),
		PendingOff: lipgloss.NewStyle().Foreground(red),

		Match: lipgloss.NewStyle().Foreground(yellow).Underline(true),
		Dim:   lipgloss.NewStyle().Foreground(overlay0),

		Footer:    lipgloss.NewStyle().Foreground(subtext0),
		FooterKey: lipgloss.NewStyle().Foreground(yellow).Bold(true),

		GlyphChecked:    "[x]",
		GlyphUnchecked:  "[ ]",
		GlyphEnabled:    "[●]",
		GlyphDisabled:   "[ ]",
		GlyphPendingOn:  "[+]",
		GlyphPendingOff: "[-]",
		GlyphExpanded:   "▾",
		GlyphCollapsed:  "▸",
	}
}

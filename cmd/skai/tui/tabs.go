package tui

import (
	"fmt"
	"strings"
)

// TabAll is the ID of the synthetic leading tab that shows every category.
// It is never disabled.
const TabAll = "all"

// Tab is one category view. Badge is the live match count during a search
// and -1 when no search is active. Disabled marks a tab whose filtered
// result set is empty; it only dims the label, the tab stays reachable
// unless the owning TabSet opts into skipping.
type Tab struct {
	ID       string
	Label    string
	Badge    int
	Disabled bool
}

// TabSet holds the ordered tabs, the active index, and one scroll window
// per tab so switching away and back restores the exact cursor position.
type TabSet struct {
	tabs         []Tab
	active       int
	windows      map[string]*Window
	skipDisabled bool
}

// NewTabSet builds the tab list from category names with the synthetic
// "all" tab first. Every tab gets its own window of maxVisible rows.
func NewTabSet(categories []string, maxVisible int) TabSet {
	tabs := make([]Tab, 0, len(categories)+1)
	tabs = append(tabs, Tab{ID: TabAll, Label: "All", Badge: -1})
	for _, name := range categories {
		tabs = append(tabs, Tab{ID: name, Label: name, Badge: -1})
	}
	windows := make(map[string]*Window, len(tabs))
	for _, tab := range tabs {
		w := NewWindow(maxVisible)
		windows[tab.ID] = &w
	}
	return TabSet{tabs: tabs, windows: windows}
}

// SetSkipDisabled makes Next and Prev hop over disabled tabs.
func (t *TabSet) SetSkipDisabled(v bool) {
	t.skipDisabled = v
}

// Len returns the number of tabs including the "all" tab.
func (t TabSet) Len() int { return len(t.tabs) }

// Tabs returns the tabs in display order.
func (t TabSet) Tabs() []Tab { return t.tabs }

// Active returns the active tab.
func (t TabSet) Active() Tab { return t.tabs[t.active] }

// ActiveID returns the active tab's ID.
func (t TabSet) ActiveID() string { return t.tabs[t.active].ID }

// ActiveWindow returns the active tab's scroll window.
func (t *TabSet) ActiveWindow() *Window {
	return t.windows[t.tabs[t.active].ID]
}

// Next switches to the next tab, wrapping from last to first.
func (t *TabSet) Next() { t.cycle(1) }

// Prev switches to the previous tab, wrapping from first to last.
func (t *TabSet) Prev() { t.cycle(-1) }

func (t *TabSet) cycle(dir int) {
	if len(t.tabs) < 2 {
		return
	}
	for i := 0; i < len(t.tabs); i++ {
		t.active = (t.active + dir + len(t.tabs)) % len(t.tabs)
		if !t.skipDisabled || !t.tabs[t.active].Disabled {
			return
		}
	}
}

// SetBadges applies match counts during a search: each tab shows its count
// and a tab with zero matches is disabled, except the "all" tab.
func (t *TabSet) SetBadges(counts map[string]int) {
	for i := range t.tabs {
		n := counts[t.tabs[i].ID]
		t.tabs[i].Badge = n
		t.tabs[i].Disabled = n == 0 && t.tabs[i].ID != TabAll
	}
}

// ClearBadges removes badges and disabled flags when the search ends.
func (t *TabSet) ClearBadges() {
	for i := range t.tabs {
		t.tabs[i].Badge = -1
		t.tabs[i].Disabled = false
	}
}

// Resize rebuilds every tab's window at a new height, keeping cursor
// positions. Callers reset the active window against the current row count
// afterwards.
func (t *TabSet) Resize(maxVisible int) {
	for id, old := range t.windows {
		w := NewWindow(maxVisible)
		w.cursor = old.cursor
		w.offset = old.offset
		t.windows[id] = &w
	}
}

// View renders the tab bar as one line. A set with only the "all" tab
// renders nothing; there is no choice to present.
func (t TabSet) View(th Theme) string {
	if len(t.tabs) < 2 {
		return ""
	}
	parts := make([]string, 0, len(t.tabs))
	for i, tab := range t.tabs {
		label := tab.Label
		if tab.Badge >= 0 {
			label = fmt.Sprintf("%s (%d)", tab.Label, tab.Badge)
		}
		switch {
		case i == t.active:
			parts = append(parts, th.ActiveTab.Render(label))
		case tab.Disabled:
			parts = append(parts, th.DisabledTab.Render(label))
		default:
			parts = append(parts, th.InactiveTab.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

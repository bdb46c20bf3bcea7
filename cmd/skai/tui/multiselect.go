package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Prompt frame defaults used until the terminal reports its size.
const (
	defaultMaxVisible = 10
	defaultFrameWidth = 80

	// chromeHeight is the number of non-row lines in a prompt frame:
	// title, search, tab bar, status, two indicators, and the footer.
	chromeHeight = 8
)

// msRow is one visible row of the pick-many prompt: either a group header
// or a leaf entry at some indent depth.
type msRow[T any] struct {
	group bool
	item  Item[T]
	depth int
	entry Entry[T]
}

// MultiSelect is the pick-many prompt: browse a catalog tree, filter it,
// and toggle items into a selection committed on enter. It implements
// tea.Model; run it with tea.NewProgram and read the result with
// Cancelled and Selection.
type MultiSelect[T any] struct {
	title    string
	items    []Item[T]
	index    *Index[T]
	tabs     TabSet
	box      Box
	expanded map[string]bool
	selected map[string]bool
	rows     []msRow[T]
	theme    Theme
	width    int
	phase    phase
}

// NewMultiSelect builds the prompt for a catalog tree. All groups start
// expanded and nothing is selected.
func NewMultiSelect[T any](title string, items []Item[T], th Theme) MultiSelect[T] {
	cat := Categorize(items)
	names := make([]string, 0, len(cat.Groups))
	for _, g := range cat.Groups {
		names = append(names, g.Name)
	}

	expanded := make(map[string]bool)
	var mark func(items []Item[T])
	mark = func(items []Item[T]) {
		for _, it := range items {
			if it.IsGroup() {
				expanded[it.ID] = true
				mark(it.Children)
			}
		}
	}
	mark(items)

	m := MultiSelect[T]{
		title:    title,
		items:    items,
		index:    NewIndex(cat),
		tabs:     NewTabSet(names, defaultMaxVisible),
		expanded: expanded,
		selected: make(map[string]bool),
		theme:    th,
		width:    defaultFrameWidth,
	}
	m.rows = m.buildRows()
	return m
}

// Preselect marks the given option IDs as selected before the prompt runs.
func (m *MultiSelect[T]) Preselect(ids ...string) {
	for _, id := range ids {
		if _, ok := m.index.ByID(id); ok {
			m.selected[id] = true
		}
	}
}

// Submitted reports whether the user confirmed the selection.
func (m MultiSelect[T]) Submitted() bool { return m.phase == phaseSubmit }

// Cancelled reports whether the user aborted the prompt.
func (m MultiSelect[T]) Cancelled() bool { return m.phase == phaseCancel }

// Selection returns the selected values in catalog order, independent of
// the filter and tab state at submit time.
func (m MultiSelect[T]) Selection() []T {
	var out []T
	for _, e := range m.index.All() {
		if m.selected[e.ID] {
			out = append(out, e.Value)
		}
	}
	return out
}

// SelectedCount returns the number of selected items.
func (m MultiSelect[T]) SelectedCount() int { return len(m.selected) }

// Init implements tea.Model.
func (m MultiSelect[T]) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m MultiSelect[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		visible := msg.Height - chromeHeight
		if visible < 3 {
			visible = 3
		}
		m.tabs.Resize(visible)
		m.refresh()
		return m, nil

	case flashExpireMsg:
		m.box.ExpireFlash(msg.Seq)
		return m, nil

	case tea.KeyMsg:
		if m.phase != phaseActive {
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c":
			return m.finish(phaseCancel)
		case "esc":
			// Two-stage cancel: an active search absorbs the first esc.
			if m.box.Clear() {
				m.refresh()
				return m, nil
			}
			return m.finish(phaseCancel)
		case "enter":
			return m.finish(phaseSubmit)
		case "up":
			m.tabs.ActiveWindow().Move(-1, len(m.rows))
		case "down":
			m.tabs.ActiveWindow().Move(1, len(m.rows))
		case "pgup":
			m.tabs.ActiveWindow().Page(-1, len(m.rows))
		case "pgdown":
			m.tabs.ActiveWindow().Page(1, len(m.rows))
		case "tab":
			m.tabs.Next()
			m.refresh()
		case "shift+tab":
			m.tabs.Prev()
			m.refresh()
		case "right":
			m.setExpanded(true)
		case "left":
			m.setExpanded(false)
		case " ":
			m.toggleCurrent()
		case "ctrl+a":
			m.markVisible(true)
		case "ctrl+n":
			m.markVisible(false)
		default:
			changed, cmd := m.box.HandleKey(msg)
			if changed {
				m.refresh()
			}
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m MultiSelect[T]) View() string {
	th := m.theme
	var b strings.Builder
	b.WriteString(RenderTitle(th, m.title) + "\n")

	switch m.phase {
	case phaseSubmit:
		b.WriteString(RenderSummary(th, true, fmt.Sprintf("%d selected", len(m.selected))) + "\n")
		return b.String()
	case phaseCancel:
		b.WriteString(RenderSummary(th, false, "cancelled") + "\n")
		return b.String()
	}

	b.WriteString(RenderSearchBox(th, m.box) + "\n")
	if bar := m.tabs.View(th); bar != "" {
		b.WriteString(bar + "\n")
	}

	left := th.Footer.Render(fmt.Sprintf("%d selected", len(m.selected)))
	right := th.Dim.Render(fmt.Sprintf("%d skills", len(m.index.All())))
	b.WriteString(RenderStatusLine(left, right, m.width) + "\n")

	if len(m.rows) == 0 {
		if m.box.Active() {
			b.WriteString(th.Dim.Render("  No matches.") + "\n")
		} else {
			b.WriteString(th.Dim.Render("  No skills available.") + "\n")
		}
	} else {
		w := m.tabs.ActiveWindow()
		count := len(m.rows)
		above, below := w.Indicators(count)
		if s := RenderScrollAbove(th, above); s != "" {
			b.WriteString(s + "\n")
		}
		start, end := w.VisibleRange(count)
		for i := start; i < end; i++ {
			row := m.rows[i]
			current := i == w.Cursor()
			if row.group {
				c := CountSelected(row.item, m.selected)
				b.WriteString(RenderGroupRow(th, current, m.expanded[row.item.ID], row.item.Label, c) + "\n")
				continue
			}
			b.WriteString(RenderCheckRow(th, current, m.selected[row.entry.ID], row.depth*2,
				row.entry.Label, row.entry.Hint, m.box.Term(), m.width) + "\n")
		}
		if s := RenderScrollBelow(th, below); s != "" {
			b.WriteString(s + "\n")
		}
	}

	b.WriteString(RenderFooter(th, []KeyHint{
		{Key: "Space", Desc: "toggle"},
		{Key: "Enter", Desc: "confirm"},
		{Key: "Tab", Desc: "category"},
		{Key: "Ctrl+A", Desc: "all"},
		{Key: "Ctrl+N", Desc: "none"},
		{Key: "Esc", Desc: "cancel"},
	}))
	return b.String()
}

// finish moves the prompt into a terminal phase and abandons any pending
// flash so a late tick cannot mutate finished state.
func (m MultiSelect[T]) finish(p phase) (tea.Model, tea.Cmd) {
	m.phase = p
	m.box.Invalidate()
	return m, tea.Quit
}

// refresh rebuilds the visible rows and tab badges after any mutation of
// the search term, active tab, or expansion state, then reclamps the
// active window against the new row count.
func (m *MultiSelect[T]) refresh() {
	m.rows = m.buildRows()
	if m.box.Active() {
		m.tabs.SetBadges(m.index.MatchCounts(m.box.Term()))
	} else {
		m.tabs.ClearBadges()
	}
	m.tabs.ActiveWindow().Reset(len(m.rows))
}

// buildRows computes the visible row list for the active tab and term.
// Without a search the "all" tab shows the tree with group headers; other
// tabs show their leaves flat. During a search every tab shows its
// matching leaves flat, so toggling always hits what is on screen.
func (m *MultiSelect[T]) buildRows() []msRow[T] {
	term := m.box.Term()
	tabID := m.tabs.ActiveID()

	if term == "" && tabID == TabAll {
		flat := Flatten(m.items, m.expanded)
		rows := make([]msRow[T], 0, len(flat))
		for _, n := range flat {
			if n.Item.IsGroup() {
				rows = append(rows, msRow[T]{group: true, item: n.Item, depth: n.Depth})
				continue
			}
			e, ok := m.index.ByID(n.Item.ID)
			if !ok {
				continue
			}
			rows = append(rows, msRow[T]{item: n.Item, depth: n.Depth, entry: e})
		}
		return rows
	}

	scope := m.index.All()
	if tabID != TabAll {
		scope = m.index.Group(tabID)
	}
	matched := Filter(scope, term)
	rows := make([]msRow[T], 0, len(matched))
	for _, e := range matched {
		rows = append(rows, msRow[T]{entry: e})
	}
	return rows
}

// toggleCurrent flips the row under the cursor: a leaf toggles its own
// membership, a group header selects all of its leaves unless every one is
// already selected, in which case it deselects them all.
func (m *MultiSelect[T]) toggleCurrent() {
	if len(m.rows) == 0 {
		return
	}
	row := m.rows[m.tabs.ActiveWindow().Cursor()]
	if !row.group {
		id := row.entry.ID
		if m.selected[id] {
			delete(m.selected, id)
		} else {
			m.selected[id] = true
		}
		return
	}

	ids := CollectLeafIDs(row.item)
	all := len(ids) > 0
	for _, id := range ids {
		if !m.selected[id] {
			all = false
			break
		}
	}
	for _, id := range ids {
		if all {
			delete(m.selected, id)
		} else {
			m.selected[id] = true
		}
	}
}

// markVisible selects or deselects every leaf row currently visible under
// the active tab and filter.
func (m *MultiSelect[T]) markVisible(selected bool) {
	for _, row := range m.rows {
		if row.group {
			continue
		}
		if selected {
			m.selected[row.entry.ID] = true
		} else {
			delete(m.selected, row.entry.ID)
		}
	}
}

// setExpanded expands or collapses the group under the cursor. Leaf rows
// ignore left/right.
func (m *MultiSelect[T]) setExpanded(expand bool) {
	if len(m.rows) == 0 {
		return
	}
	row := m.rows[m.tabs.ActiveWindow().Cursor()]
	if !row.group || m.expanded[row.item.ID] == expand {
		return
	}
	if expand {
		m.expanded[row.item.ID] = true
	} else {
		delete(m.expanded, row.item.ID)
	}
	m.refresh()
}

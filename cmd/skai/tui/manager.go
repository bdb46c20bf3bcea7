package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ManagerEntry is one row of the toggle-pending prompt. Enabled is the
// state on disk when the prompt started; it never changes while the prompt
// runs. Staged flips live in the pending map until the caller applies them.
type ManagerEntry struct {
	Key         string // stable identity, e.g. "global:review/code-review"
	Label       string
	Description string
	Category    string // tab grouping; empty entries appear under "all" only
	Source      string // origin shown in the source column
	Enabled     bool
}

// Manager is the toggle-pending prompt: it stages enable/disable flips
// against the original states and hands the caller only the net changes on
// submit. It implements tea.Model.
type Manager struct {
	title   string
	entries []ManagerEntry
	index   *Index[ManagerEntry]
	tabs    TabSet
	box     Box
	pending map[string]bool
	rows    []Entry[ManagerEntry]
	theme   Theme
	width   int
	phase   phase
}

// NewManager builds the prompt over the scanned entries. Tabs are created
// from the distinct categories in first-seen order.
func NewManager(title string, entries []ManagerEntry, th Theme) Manager {
	var cat Categorized[ManagerEntry]
	groupIdx := make(map[string]int)
	for _, e := range entries {
		opt := Option[ManagerEntry]{
			ID:          e.Key,
			Label:       e.Label,
			Hint:        e.Source,
			Description: e.Description,
			Value:       e,
		}
		if e.Category == "" {
			cat.Ungrouped = append(cat.Ungrouped, opt)
			continue
		}
		i, ok := groupIdx[e.Category]
		if !ok {
			cat.Groups = append(cat.Groups, Category[ManagerEntry]{Name: e.Category})
			i = len(cat.Groups) - 1
			groupIdx[e.Category] = i
		}
		cat.Groups[i].Options = append(cat.Groups[i].Options, opt)
	}

	names := make([]string, 0, len(cat.Groups))
	for _, g := range cat.Groups {
		names = append(names, g.Name)
	}

	m := Manager{
		title:   title,
		entries: entries,
		index:   NewIndex(cat),
		tabs:    NewTabSet(names, defaultMaxVisible),
		pending: make(map[string]bool),
		theme:   th,
		width:   defaultFrameWidth,
	}
	m.rows = m.buildRows()
	return m
}

// Submitted reports whether the user confirmed the staged changes.
func (m Manager) Submitted() bool { return m.phase == phaseSubmit }

// Cancelled reports whether the user aborted the prompt.
func (m Manager) Cancelled() bool { return m.phase == phaseCancel }

// Entries returns the entries the prompt was built over.
func (m Manager) Entries() []ManagerEntry { return m.entries }

// Changes returns the staged net changes: key to desired state, holding a
// key only when the desired state differs from the original.
func (m Manager) Changes() map[string]bool { return m.pending }

// PendingCount returns the number of staged changes.
func (m Manager) PendingCount() int { return len(m.pending) }

// Init implements tea.Model.
func (m Manager) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Manager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		visible := msg.Height - chromeHeight - 1 // column header
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
		case " ":
			m.toggleCurrent()
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
func (m Manager) View() string {
	th := m.theme
	var b strings.Builder
	b.WriteString(RenderTitle(th, m.title) + "\n")

	switch m.phase {
	case phaseSubmit:
		text := "no changes"
		if n := len(m.pending); n > 0 {
			text = fmt.Sprintf("%d %s staged", n, plural("change", n))
		}
		b.WriteString(RenderSummary(th, true, text) + "\n")
		return b.String()
	case phaseCancel:
		b.WriteString(RenderSummary(th, false, "cancelled") + "\n")
		return b.String()
	}

	b.WriteString(RenderSearchBox(th, m.box) + "\n")
	if bar := m.tabs.View(th); bar != "" {
		b.WriteString(bar + "\n")
	}

	left := th.Dim.Render("no pending changes")
	if n := len(m.pending); n > 0 {
		left = th.PendingOn.Render(fmt.Sprintf("%d pending %s", n, plural("change", n)))
	}
	on, total := m.enabledCounts()
	right := th.Dim.Render(fmt.Sprintf("%d/%d enabled", on, total))
	b.WriteString(RenderStatusLine(left, right, m.width) + "\n")

	b.WriteString(RenderColumnHeader(th, m.width) + "\n")

	if len(m.rows) == 0 {
		if m.box.Active() {
			b.WriteString(th.Dim.Render("  No matches.") + "\n")
		} else {
			b.WriteString(th.Dim.Render("  No skills installed.") + "\n")
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
			e := m.rows[i].Value
			b.WriteString(RenderToggleRow(th, i == w.Cursor(), m.stateOf(e),
				e.Label, e.Source, m.box.Term(), m.width) + "\n")
		}
		if s := RenderScrollBelow(th, below); s != "" {
			b.WriteString(s + "\n")
		}
	}

	b.WriteString(RenderFooter(th, []KeyHint{
		{Key: "Space", Desc: "toggle"},
		{Key: "Enter", Desc: "apply"},
		{Key: "Tab", Desc: "category"},
		{Key: "Esc", Desc: "cancel"},
	}))
	return b.String()
}

// finish moves the prompt into a terminal phase and abandons any pending
// flash.
func (m Manager) finish(p phase) (tea.Model, tea.Cmd) {
	m.phase = p
	m.box.Invalidate()
	return m, tea.Quit
}

// refresh rebuilds the visible rows and badges after a term or tab
// mutation, then reclamps the active window.
func (m *Manager) refresh() {
	m.rows = m.buildRows()
	if m.box.Active() {
		m.tabs.SetBadges(m.index.MatchCounts(m.box.Term()))
	} else {
		m.tabs.ClearBadges()
	}
	m.tabs.ActiveWindow().Reset(len(m.rows))
}

// buildRows returns the active tab's entries filtered by the term.
func (m *Manager) buildRows() []Entry[ManagerEntry] {
	scope := m.index.All()
	if id := m.tabs.ActiveID(); id != TabAll {
		scope = m.index.Group(id)
	}
	return Filter(scope, m.box.Term())
}

// toggleCurrent stages a flip of the row under the cursor. Toggling back
// to the original state removes the key, so the map always holds exactly
// the net changes.
func (m *Manager) toggleCurrent() {
	if len(m.rows) == 0 {
		return
	}
	e := m.rows[m.tabs.ActiveWindow().Cursor()].Value
	next := !m.effective(e)
	if next == e.Enabled {
		delete(m.pending, e.Key)
	} else {
		m.pending[e.Key] = next
	}
}

// effective returns the staged state when one exists, the original
// otherwise.
func (m Manager) effective(e ManagerEntry) bool {
	if v, ok := m.pending[e.Key]; ok {
		return v
	}
	return e.Enabled
}

// stateOf maps an entry to its rendered toggle state.
func (m Manager) stateOf(e ManagerEntry) ToggleState {
	v, staged := m.pending[e.Key]
	switch {
	case staged && v:
		return TogglePendingOn
	case staged:
		return TogglePendingOff
	case e.Enabled:
		return ToggleEnabled
	default:
		return ToggleDisabled
	}
}

// enabledCounts tallies effective enabled states across all entries.
func (m Manager) enabledCounts() (on, total int) {
	for _, e := range m.entries {
		total++
		if m.effective(e) {
			on++
		}
	}
	return on, total
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

package tui

import (
	"strings"
	"unicode"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// maxSearchTerm caps the accumulated search term length.
const maxSearchTerm = 50

// Entry is the searchable view of one option. The lower-cased haystack is
// computed once at construction and reused on every keystroke.
type Entry[T any] struct {
	ID          string
	Label       string
	Hint        string
	Description string
	Value       T

	searchable string
}

// NewEntry precomputes the searchable text for one option.
func NewEntry[T any](opt Option[T]) Entry[T] {
	return Entry[T]{
		ID:          opt.ID,
		Label:       opt.Label,
		Hint:        opt.Hint,
		Description: opt.Description,
		Value:       opt.Value,
		searchable:  strings.ToLower(opt.Label + "|" + opt.Hint + "|" + opt.Description),
	}
}

// NewEntries precomputes searchable entries for a whole option list.
func NewEntries[T any](opts []Option[T]) []Entry[T] {
	entries := make([]Entry[T], 0, len(opts))
	for _, opt := range opts {
		entries = append(entries, NewEntry(opt))
	}
	return entries
}

// Matches reports whether the entry contains the term, case-insensitively.
// An empty term matches everything.
func (e Entry[T]) Matches(term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(e.searchable, strings.ToLower(term))
}

// Filter returns the entries containing term, preserving order. An empty
// term returns the input slice unchanged.
func Filter[T any](entries []Entry[T], term string) []Entry[T] {
	if term == "" {
		return entries
	}
	needle := strings.ToLower(term)
	var out []Entry[T]
	for _, e := range entries {
		if strings.Contains(e.searchable, needle) {
			out = append(out, e)
		}
	}
	return out
}

// Highlight wraps the first case-insensitive occurrence of term inside text
// with the mark style, preserving the original casing. Text is returned
// unchanged when the term is empty or absent. Only the first occurrence is
// marked.
func Highlight(text, term string, mark lipgloss.Style) string {
	if term == "" {
		return text
	}
	start, end := indexFold(text, term)
	if start < 0 {
		return text
	}
	return text[:start] + mark.Render(text[start:end]) + text[end:]
}

// indexFold locates the first occurrence of term in text under the same
// lower-cased comparison Matches and Filter use, returning the byte range
// of the match in text, or (-1, -1) when absent. Lowering can change a
// rune's byte length, so offsets into the lowered copy are mapped back to
// text rather than used to slice it.
func indexFold(text, term string) (start, end int) {
	needle := strings.ToLower(term)
	var lowered strings.Builder
	lowered.Grow(len(text))
	// offsets[i] is the offset in text of the rune behind lowered byte i;
	// one extra entry closes the final range.
	offsets := make([]int, 0, len(text)+1)
	for i, r := range text {
		lr := unicode.ToLower(r)
		for n := utf8.RuneLen(lr); n > 0; n-- {
			offsets = append(offsets, i)
		}
		lowered.WriteRune(lr)
	}
	offsets = append(offsets, len(text))
	i := strings.Index(lowered.String(), needle)
	if i < 0 {
		return -1, -1
	}
	return offsets[i], offsets[i+len(needle)]
}

// Index holds the precomputed entries of a catalog, grouped by category,
// plus the match-count memo for tab badges.
type Index[T any] struct {
	all     []Entry[T]
	names   []string
	byGroup map[string][]Entry[T]
	byID    map[string]Entry[T]

	countsTerm  string
	counts      map[string]int
	countsValid bool
}

// NewIndex builds an index from a categorized catalog. Entries appear in
// catalog order: ungrouped leaves first, then each group.
func NewIndex[T any](cat Categorized[T]) *Index[T] {
	ix := &Index[T]{
		byGroup: make(map[string][]Entry[T]),
		byID:    make(map[string]Entry[T]),
	}
	add := func(e Entry[T]) {
		ix.all = append(ix.all, e)
		ix.byID[e.ID] = e
	}
	for _, e := range NewEntries(cat.Ungrouped) {
		add(e)
	}
	for _, g := range cat.Groups {
		ix.names = append(ix.names, g.Name)
		entries := NewEntries(g.Options)
		ix.byGroup[g.Name] = entries
		for _, e := range entries {
			add(e)
		}
	}
	return ix
}

// All returns every entry in catalog order.
func (ix *Index[T]) All() []Entry[T] { return ix.all }

// Group returns the entries of one named group.
func (ix *Index[T]) Group(name string) []Entry[T] { return ix.byGroup[name] }

// GroupNames returns the group names in catalog order.
func (ix *Index[T]) GroupNames() []string { return ix.names }

// ByID looks an entry up by option ID.
func (ix *Index[T]) ByID(id string) (Entry[T], bool) {
	e, ok := ix.byID[id]
	return e, ok
}

// MatchCounts returns the per-group match counts for term, keyed by group
// name, plus the total under TabAll. The result is memoized by term and
// recomputed only when the term changes.
func (ix *Index[T]) MatchCounts(term string) map[string]int {
	if ix.countsValid && ix.countsTerm == term {
		return ix.counts
	}
	counts := make(map[string]int, len(ix.names)+1)
	counts[TabAll] = len(Filter(ix.all, term))
	for _, name := range ix.names {
		counts[name] = len(Filter(ix.byGroup[name], term))
	}
	ix.countsTerm = term
	ix.counts = counts
	ix.countsValid = true
	return counts
}

// Box accumulates the search term from raw key events. Accepted characters
// are lower-cased [a-z0-9-_./] up to maxSearchTerm; backspace trims the
// last character; ctrl+u clears the whole term and starts the flash
// acknowledgement. Every mutation bumps flashSeq so a tick scheduled for an
// earlier state is ignored when it arrives.
type Box struct {
	term     string
	flashing bool
	flashSeq int
}

// Term returns the current search term (always lower-case).
func (b Box) Term() string { return b.term }

// Active reports whether a search term is present.
func (b Box) Active() bool { return b.term != "" }

// Flashing reports whether the cleared acknowledgement is showing.
func (b Box) Flashing() bool { return b.flashing }

// HandleKey applies one key event to the term. It reports whether the term
// changed (callers must rebuild their filtered view) and returns the flash
// expiry command after a clear.
func (b *Box) HandleKey(msg tea.KeyMsg) (changed bool, cmd tea.Cmd) {
	switch msg.Type {
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if b.appendRune(r) {
				changed = true
			}
		}
		return changed, nil
	case tea.KeyBackspace:
		if b.term == "" {
			return false, nil
		}
		b.term = b.term[:len(b.term)-1]
		b.dropFlash()
		return true, nil
	case tea.KeyCtrlU:
		if b.term == "" {
			return false, nil
		}
		b.term = ""
		b.flashSeq++
		b.flashing = true
		return true, flashCmd(b.flashSeq)
	}
	return false, nil
}

// Clear empties the term without a flash, reporting whether it was set.
// Used by the first stage of a two-stage cancel.
func (b *Box) Clear() bool {
	if b.term == "" {
		return false
	}
	b.term = ""
	b.dropFlash()
	return true
}

// ExpireFlash ends the flash for the given sequence number. Stale numbers
// left over from an earlier clear are ignored.
func (b *Box) ExpireFlash(seq int) bool {
	if b.flashing && seq == b.flashSeq {
		b.flashing = false
		return true
	}
	return false
}

// Invalidate abandons any pending flash. Called on every terminal
// transition so a late tick cannot touch a finished prompt.
func (b *Box) Invalidate() {
	b.flashSeq++
	b.flashing = false
}

func (b *Box) appendRune(r rune) bool {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	valid := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') ||
		r == '-' || r == '_' || r == '.' || r == '/'
	if !valid || len(b.term) >= maxSearchTerm {
		return false
	}
	b.term += string(r)
	b.dropFlash()
	return true
}

func (b *Box) dropFlash() {
	b.flashSeq++
	b.flashing = false
}

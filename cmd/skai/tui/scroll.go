package tui

// Window is the cursor+viewport pair shared by every list prompt. It knows
// nothing about the list content; callers pass the current item count to
// each operation and the window keeps the invariant
// offset <= cursor <= offset+maxVisible-1 whenever the count is nonzero.
type Window struct {
	cursor     int
	offset     int
	maxVisible int
}

// NewWindow returns a window showing at most maxVisible rows. A
// non-positive maxVisible is treated as 1.
func NewWindow(maxVisible int) Window {
	if maxVisible < 1 {
		maxVisible = 1
	}
	return Window{maxVisible: maxVisible}
}

// Cursor returns the current cursor index.
func (w Window) Cursor() int { return w.cursor }

// Offset returns the index of the first visible row.
func (w Window) Offset() int { return w.offset }

// MaxVisible returns the window height in rows.
func (w Window) MaxVisible() int { return w.maxVisible }

// Move shifts the cursor by delta (usually ±1), clamped to [0, count-1],
// then scrolls so the cursor stays visible. No-op when count is zero.
func (w *Window) Move(delta, count int) {
	if count == 0 {
		return
	}
	w.cursor += delta
	w.clamp(count)
}

// Page shifts the cursor by a full window in the given direction (±1).
func (w *Window) Page(dir, count int) {
	w.Move(dir*w.maxVisible, count)
}

// Reset clamps the cursor into the new count and recomputes the offset.
// Called whenever the underlying list changes size, e.g. after a filter.
func (w *Window) Reset(count int) {
	if count == 0 {
		w.cursor = 0
		w.offset = 0
		return
	}
	w.clamp(count)
}

// VisibleRange returns the half-open row range [start, end) to render.
func (w Window) VisibleRange(count int) (start, end int) {
	start = w.offset
	end = w.offset + w.maxVisible
	if end > count {
		end = count
	}
	if start > end {
		start = end
	}
	return start, end
}

// Indicators returns how many rows are hidden above and below the window.
func (w Window) Indicators(count int) (above, below int) {
	above = w.offset
	if above > count {
		above = count
	}
	below = count - (w.offset + w.maxVisible)
	if below < 0 {
		below = 0
	}
	return above, below
}

// clamp bounds the cursor to [0, count-1] and drags the offset so the
// cursor sits inside the visible window.
func (w *Window) clamp(count int) {
	if w.cursor < 0 {
		w.cursor = 0
	}
	if w.cursor > count-1 {
		w.cursor = count - 1
	}
	if w.cursor < w.offset {
		w.offset = w.cursor
	}
	if w.cursor >= w.offset+w.maxVisible {
		w.offset = w.cursor - w.maxVisible + 1
	}
	maxOffset := count - w.maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if w.offset > maxOffset {
		w.offset = maxOffset
	}
	if w.offset < 0 {
		w.offset = 0
	}
}

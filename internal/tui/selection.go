package tui

// SelectionState describes where the result-list cursor is.
type SelectionState int

const (
	// SelectionClosed means no result list is showing.
	SelectionClosed SelectionState = iota
	// SelectionOpen means the list is showing with no row selected.
	SelectionOpen
	// SelectionSelected means the list is showing with a row selected.
	SelectionSelected
)

// Selection is the result-list cursor state machine. Transitions are pure;
// event binding lives in the App update loop.
type Selection struct {
	state SelectionState
	index int
	count int
}

// Show opens the list over n results with no selection. n may be zero
// (the "no results" state is still an open list).
func (s Selection) Show(n int) Selection {
	return Selection{state: SelectionOpen, count: n}
}

// Dismiss closes the list and clears any selection.
func (s Selection) Dismiss() Selection {
	return Selection{}
}

// Down moves the selection toward the end of the list. From no selection it
// lands on the first row; at the last row it stays put (no wrap down).
func (s Selection) Down() Selection {
	if s.state == SelectionClosed || s.count == 0 {
		return s
	}
	if s.state == SelectionOpen {
		s.state = SelectionSelected
		s.index = 0
		return s
	}
	if s.index < s.count-1 {
		s.index++
	}
	return s
}

// Up moves the selection toward the start of the list. From the first row
// (and from no selection) it wraps to the last row.
func (s Selection) Up() Selection {
	if s.state == SelectionClosed || s.count == 0 {
		return s
	}
	if s.state == SelectionOpen || s.index == 0 {
		s.state = SelectionSelected
		s.index = s.count - 1
		return s
	}
	s.index--
	return s
}

// Activate resolves the current selection. ok is false when nothing is
// selected (activation is a no-op then); otherwise it returns the selected
// row and the closed state.
func (s Selection) Activate() (next Selection, row int, ok bool) {
	if s.state != SelectionSelected {
		return s, 0, false
	}
	return Selection{}, s.index, true
}

// State returns the current state.
func (s Selection) State() SelectionState {
	return s.state
}

// Index returns the selected row. Only meaningful in SelectionSelected.
func (s Selection) Index() int {
	return s.index
}

// Open reports whether the list is showing.
func (s Selection) Open() bool {
	return s.state != SelectionClosed
}

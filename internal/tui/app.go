// Package tui implements the interactive search UI: a debounced query
// input, a ranked result list, and the selection state machine that drives
// it.
package tui

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nholste/docdex/internal/docs"
	"github.com/nholste/docdex/internal/index"
	"github.com/nholste/docdex/internal/search"
)

// DefaultDebounce is the pause after the last keystroke before a search
// runs.
const DefaultDebounce = 300 * time.Millisecond

// HistoryRecorder receives best-effort usage records. Failures are ignored;
// history must never break search.
type HistoryRecorder interface {
	RecordSearch(query string, hits int) error
	RecordVisit(recordID, title, url string) error
}

// debounceMsg fires when a pending debounce timer elapses. Only the message
// carrying the latest sequence number triggers a search; earlier timers are
// superseded by later keystrokes.
type debounceMsg struct {
	seq   int
	query string
}

// App is the main bubbletea model for interactive search.
type App struct {
	index   *index.Index
	history HistoryRecorder
	open    func(url string) error
	keys    KeyMap
	styles  Styles

	input       textinput.Model
	results     []search.Result
	suggestions []*docs.Page
	sel         Selection

	seq      int // debounce sequence, bumped on every input change
	debounce time.Duration
	status   string

	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Index    *index.Index
	History  HistoryRecorder        // optional
	Opener   func(url string) error // optional, nil disables opening
	Debounce time.Duration          // optional, DefaultDebounce if zero
	Keys     *KeyMap                // optional, uses default if nil
	Styles   *Styles                // optional, uses default if nil
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	debounce := params.Debounce
	if debounce == 0 {
		debounce = DefaultDebounce
	}

	input := textinput.New()
	input.Placeholder = "Search the docs..."
	input.CharLimit = 128
	input.Width = 48
	input.Focus()

	return App{
		index:    params.Index,
		history:  params.History,
		open:     params.Opener,
		keys:     keys,
		styles:   styles,
		input:    input,
		debounce: debounce,
		width:    80,
		height:   24,
	}
}

// Results returns the current result list.
func (a App) Results() []search.Result {
	return a.results
}

// Selection returns the current selection state.
func (a App) Selection() Selection {
	return a.sel
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case debounceMsg:
		return a.handleDebounce(msg)

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

// handleKey routes raw key events to the selection machine, the input, or
// app-level actions.
func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Focus):
		// Idempotent: refocusing an already focused input does nothing.
		if !a.input.Focused() {
			a.input.Focus()
		}
		a.input.CursorEnd()
		return a, nil

	case key.Matches(msg, a.keys.Blur):
		// Leaving the widget closes the list without clearing the query.
		a.input.Blur()
		a.sel = a.sel.Dismiss()
		return a, nil

	case key.Matches(msg, a.keys.Dismiss):
		if a.sel.Open() {
			a.sel = a.sel.Dismiss()
			return a, nil
		}
		return a, tea.Quit

	case key.Matches(msg, a.keys.Down):
		a.sel = a.sel.Down()
		return a, nil

	case key.Matches(msg, a.keys.Up):
		a.sel = a.sel.Up()
		return a, nil

	case key.Matches(msg, a.keys.Activate):
		return a.activate()

	case key.Matches(msg, a.keys.YankURL):
		if a.sel.State() == SelectionSelected {
			r := a.results[a.sel.Index()]
			if err := clipboard.WriteAll(r.URL()); err == nil {
				a.status = "Yanked " + r.URL()
			}
		}
		return a, nil
	}

	// "/" focuses the search from the list, but types normally once the
	// input has focus.
	if !a.input.Focused() {
		if msg.Type == tea.KeyRunes && string(msg.Runes) == "/" {
			a.input.Focus()
			a.input.CursorEnd()
		}
		return a, nil
	}

	before := a.input.Value()
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	if a.input.Value() != before {
		return a.queueSearch(cmd)
	}
	return a, cmd
}

// queueSearch schedules a debounced search for the current input value.
// Each change bumps the sequence number so that stale timers no-op.
func (a App) queueSearch(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	a.seq++
	a.status = ""

	query := strings.TrimSpace(a.input.Value())
	if len([]rune(query)) < search.MinQueryLen {
		a.results = nil
		a.suggestions = nil
		a.sel = a.sel.Dismiss()
		return a, cmd
	}

	seq := a.seq
	tick := tea.Tick(a.debounce, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq, query: query}
	})
	return a, tea.Batch(cmd, tick)
}

// handleDebounce runs the search when the latest timer fires.
func (a App) handleDebounce(msg debounceMsg) (tea.Model, tea.Cmd) {
	if msg.seq != a.seq {
		return a, nil // superseded by a later keystroke
	}
	if strings.TrimSpace(a.input.Value()) != msg.query {
		return a, nil
	}

	a.results = search.Search(a.index, msg.query)
	a.sel = a.sel.Show(len(a.results))

	if len(a.results) == 0 {
		a.suggestions = search.Suggest(a.index, msg.query, 3)
	} else {
		a.suggestions = nil
	}

	if a.history != nil {
		_ = a.history.RecordSearch(msg.query, len(a.results))
	}
	return a, nil
}

// activate resolves the current selection into opening its URL.
func (a App) activate() (tea.Model, tea.Cmd) {
	next, row, ok := a.sel.Activate()
	if !ok {
		return a, nil
	}

	r := a.results[row]
	a.sel = next

	if a.open != nil {
		if err := a.open(r.URL()); err != nil {
			a.status = "Could not open " + r.URL()
			return a, nil
		}
	}
	if a.history != nil {
		_ = a.history.RecordVisit(r.ID(), r.Title(), r.URL())
	}
	a.status = "Opened " + r.Title()
	return a, nil
}

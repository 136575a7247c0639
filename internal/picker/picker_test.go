package picker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nholste/docdex/internal/docs"
	"github.com/nholste/docdex/internal/search"
)

func testResults() []search.Result {
	return []search.Result{
		{Kind: docs.KindPage, Page: &docs.Page{ID: "quick-start", Title: "Quick Start Guide", URL: "/quick-start"}, Score: 159},
		{Kind: docs.KindPage, Page: &docs.Page{ID: "installation", Title: "Installation", URL: "/installation"}, Score: 88},
		{Kind: docs.KindSection, Section: &docs.Section{ID: "s1", Title: "Install docdex", URL: "/quick-start#install"}, Score: 50},
	}
}

func TestPicker_InitialState(t *testing.T) {
	p := New(testResults(), "install")

	if p.cursor != 0 {
		t.Errorf("expected cursor at 0, got %d", p.cursor)
	}
	if len(p.results) != 3 {
		t.Errorf("expected 3 results, got %d", len(p.results))
	}
}

func TestPicker_NavigateDown(t *testing.T) {
	p := New(testResults(), "install")

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	newModel, _ := p.Update(msg)
	p = newModel.(Picker)

	if p.cursor != 1 {
		t.Errorf("expected cursor at 1, got %d", p.cursor)
	}
}

func TestPicker_DownClampsAtEnd(t *testing.T) {
	p := New(testResults(), "install")
	p.cursor = 2

	msg := tea.KeyMsg{Type: tea.KeyDown}
	newModel, _ := p.Update(msg)
	p = newModel.(Picker)

	if p.cursor != 2 {
		t.Errorf("expected cursor to stay at 2, got %d", p.cursor)
	}
}

func TestPicker_UpWrapsFromTop(t *testing.T) {
	p := New(testResults(), "install")

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
	newModel, _ := p.Update(msg)
	p = newModel.(Picker)

	if p.cursor != 2 {
		t.Errorf("expected wrap to last index 2, got %d", p.cursor)
	}
}

func TestPicker_SelectItem(t *testing.T) {
	p := New(testResults(), "install")
	p.cursor = 1

	msg := tea.KeyMsg{Type: tea.KeyEnter}
	newModel, cmd := p.Update(msg)
	p = newModel.(Picker)

	if !p.selected {
		t.Error("expected selected to be true after Enter")
	}
	if cmd == nil {
		t.Error("expected quit command after selection")
	}
	if got := p.Selected(); got == nil || got.ID() != "installation" {
		t.Errorf("expected installation selected, got %v", got)
	}
}

func TestPicker_ViewNeutralizesControlCharacters(t *testing.T) {
	results := []search.Result{
		{
			Kind:         docs.KindPage,
			Page:         &docs.Page{ID: "q", Title: "Quick\x1b[2J Start", URL: "/q\x1b[0m"},
			Score:        50,
			MatchedTerms: []string{"start"},
		},
	}
	p := New(results, "st\x1bart")

	view := p.View()
	if strings.Contains(view, "\x1b[2J") {
		t.Error("expected clear-screen sequence stripped from title")
	}
	if strings.Contains(view, "/q\x1b") {
		t.Error("expected escape sequence stripped from URL")
	}
	if !strings.Contains(view, "\x1b[1;4mStart\x1b[22;24m") {
		t.Error("expected matched term highlighted in sanitized title")
	}
}

func TestPicker_ViewShowsParentForSections(t *testing.T) {
	results := []search.Result{
		{
			Kind:    docs.KindSection,
			Section: &docs.Section{ID: "s1", Title: "Install docdex", URL: "/quick-start#install"},
			Parent:  &docs.Page{ID: "quick-start", Title: "Quick Start Guide"},
			Score:   50,
		},
	}
	p := New(results, "install")

	view := p.View()
	if !strings.Contains(view, "Quick Start Guide › ") {
		t.Errorf("expected parent page context in view, got %q", view)
	}
}

func TestPicker_Cancel(t *testing.T) {
	p := New(testResults(), "install")

	msg := tea.KeyMsg{Type: tea.KeyEsc}
	newModel, cmd := p.Update(msg)
	p = newModel.(Picker)

	if !p.cancelled {
		t.Error("expected cancelled to be true after Esc")
	}
	if cmd == nil {
		t.Error("expected quit command after cancel")
	}
	if p.Selected() != nil {
		t.Error("expected nil selection when cancelled")
	}
}

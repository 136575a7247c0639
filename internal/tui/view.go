package tui

import (
	"fmt"
	"strings"

	"github.com/nholste/docdex/internal/docs"
	"github.com/nholste/docdex/internal/search"
)

// View implements tea.Model.
func (a App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("docdex"))
	b.WriteString("  ")
	b.WriteString(a.styles.Desc.Render(fmt.Sprintf("%d pages · %d sections",
		len(a.index.Pages()), len(a.index.Sections()))))
	b.WriteString("\n\n")

	b.WriteString(a.input.View())
	b.WriteString("\n")

	if a.sel.Open() {
		b.WriteString("\n")
		if len(a.results) == 0 {
			b.WriteString(a.renderNoResults())
		} else {
			for i, r := range a.results {
				b.WriteString(a.renderResult(r, i == a.selectedIndex()))
			}
		}
	}

	if a.status != "" {
		b.WriteString("\n")
		b.WriteString(a.styles.Desc.Render(a.status))
		b.WriteString("\n")
	}

	b.WriteString(a.renderFooter())
	return a.styles.App.Render(b.String())
}

// selectedIndex returns the selected row, or -1 when nothing is selected.
func (a App) selectedIndex() int {
	if a.sel.State() != SelectionSelected {
		return -1
	}
	return a.sel.Index()
}

// renderResult paints one result row: badge, optional parent page context,
// highlighted title, then description and URL lines.
func (a App) renderResult(r search.Result, selected bool) string {
	cursor := "  "
	titleStyle := a.styles.Item
	if selected {
		cursor = "> "
		titleStyle = a.styles.ItemSelected
	}

	var parent string
	if r.Kind == docs.KindSection && r.Parent != nil {
		parent = a.styles.Parent.Render(SanitizeText(r.Parent.Title) + " › ")
	}

	title := HighlightMatches(r.Title(), r.MatchedTerms)

	var b strings.Builder
	b.WriteString(cursor)
	b.WriteString(a.styles.Badge.Render(badgeGlyph(r)))
	b.WriteString(" ")
	b.WriteString(parent)
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	if desc := r.Description(); desc != "" {
		b.WriteString("     ")
		b.WriteString(a.styles.Desc.Render(HighlightMatches(desc, r.MatchedTerms)))
		b.WriteString("\n")
	}
	b.WriteString("     ")
	b.WriteString(a.styles.URL.Render(SanitizeText(r.URL())))
	b.WriteString("\n")

	return b.String()
}

// renderNoResults paints the zero-hit state with fuzzy title suggestions as
// a fallback destination.
func (a App) renderNoResults() string {
	var b strings.Builder
	b.WriteString(a.styles.NoResults.Render(
		fmt.Sprintf("No results for %q", SanitizeText(strings.TrimSpace(a.input.Value())))))
	b.WriteString("\n")

	if len(a.suggestions) > 0 {
		b.WriteString(a.styles.NoResults.Render("Did you mean:"))
		b.WriteString("\n")
		for _, p := range a.suggestions {
			b.WriteString("  ")
			b.WriteString(a.styles.Suggestion.Render(SanitizeText(p.Title)))
			b.WriteString("  ")
			b.WriteString(a.styles.URL.Render(SanitizeText(p.URL)))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(a.styles.NoResults.Render("Try different keywords, or browse the docs index."))
		b.WriteString("\n")
	}
	return b.String()
}

// renderFooter paints key hints, plus a keyword hint when the last query
// token is an indexed keyword.
func (a App) renderFooter() string {
	hints := "ctrl+k focus  ↑/↓ select  enter open  ctrl+y yank  esc close  ctrl+c quit"

	if tokens := search.Tokenize(a.input.Value()); len(tokens) > 0 {
		last := tokens[len(tokens)-1]
		if entries := a.index.KeywordEntries(last); len(entries) > 0 {
			hints = fmt.Sprintf("keyword %q · %d records   %s", last, len(entries), hints)
		}
	}

	return a.styles.Help.Render(hints)
}

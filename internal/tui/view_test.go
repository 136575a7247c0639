package tui

import (
	"strings"
	"testing"

	"github.com/nholste/docdex/internal/docs"
	"github.com/nholste/docdex/internal/index"
	"github.com/nholste/docdex/internal/search"
	"gotest.tools/v3/assert"
)

func viewAfterSearch(t *testing.T, query string) App {
	t.Helper()
	a := NewApp(AppParams{Index: index.Build(docs.DefaultCorpus())})
	a = typeString(t, a, query)
	return fireDebounce(t, a)
}

func TestView_RendersResultList(t *testing.T) {
	a := viewAfterSearch(t, "quick start")
	view := a.View()

	assert.Assert(t, strings.Contains(view, "Quick Start Guide"), "view: %s", view)
	assert.Assert(t, strings.Contains(view, "https://docdex.dev/quick-start"), "view: %s", view)
}

func TestView_HighlightsMatchedTerms(t *testing.T) {
	a := viewAfterSearch(t, "quick")
	view := a.View()

	assert.Assert(t, strings.Contains(view, matchOn+"Quick"+matchOff), "view: %s", view)
}

func TestView_CategoryBadge(t *testing.T) {
	a := viewAfterSearch(t, "quick start")
	view := a.View()

	// Quick Start Guide carries the getting-started badge.
	assert.Assert(t, strings.Contains(view, categoryGlyphs[docs.CategoryGettingStarted]), "view: %s", view)
}

func TestView_NoResultsAffordance(t *testing.T) {
	a := viewAfterSearch(t, "zqzqzq")
	view := a.View()

	assert.Assert(t, strings.Contains(view, "No results for"), "view: %s", view)
}

func TestView_KeywordHintInFooter(t *testing.T) {
	a := viewAfterSearch(t, "faq")
	view := a.View()

	assert.Assert(t, strings.Contains(view, `keyword "faq"`), "view: %s", view)
}

func TestBadgeGlyph_FallbackChain(t *testing.T) {
	page := search.Result{Kind: docs.KindPage, Page: &docs.Page{Category: docs.CategoryGuide}}
	assert.Equal(t, badgeGlyph(page), categoryGlyphs[docs.CategoryGuide])

	uncategorized := search.Result{Kind: docs.KindPage, Page: &docs.Page{}}
	assert.Equal(t, badgeGlyph(uncategorized), kindGlyphs[docs.KindPage])

	unknownCategory := search.Result{Kind: docs.KindPage, Page: &docs.Page{Category: "not-a-category"}}
	assert.Equal(t, badgeGlyph(unknownCategory), kindGlyphs[docs.KindPage])

	section := search.Result{Kind: docs.KindSection, Section: &docs.Section{}}
	assert.Equal(t, badgeGlyph(section), kindGlyphs[docs.KindSection])
}

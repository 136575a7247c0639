package tui

import (
	"github.com/nholste/docdex/internal/docs"
	"github.com/nholste/docdex/internal/search"
)

// categoryGlyphs maps page categories to their list badge.
var categoryGlyphs = map[docs.Category]string{
	docs.CategoryGettingStarted: "➜",
	docs.CategoryGuide:          "✎",
	docs.CategoryReference:      "☰",
	docs.CategoryIntegration:    "⚙",
	docs.CategorySupport:        "?",
}

// kindGlyphs is the per-record-type fallback.
var kindGlyphs = map[docs.Kind]string{
	docs.KindPage:    "▪",
	docs.KindSection: "§",
}

const defaultGlyph = "·"

// badgeGlyph picks a result's badge: category first, then record type,
// then a default.
func badgeGlyph(r search.Result) string {
	if r.Kind == docs.KindPage && r.Page.Category != "" {
		if g, ok := categoryGlyphs[r.Page.Category]; ok {
			return g
		}
	}
	if g, ok := kindGlyphs[r.Kind]; ok {
		return g
	}
	return defaultGlyph
}

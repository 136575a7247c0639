package search

import (
	"github.com/nholste/docdex/internal/docs"
	"github.com/nholste/docdex/internal/index"
	"github.com/sahilm/fuzzy"
)

// pageTitles implements fuzzy.Source over the indexed pages.
type pageTitles []docs.Page

func (pt pageTitles) String(i int) string {
	return pt[i].Title
}

func (pt pageTitles) Len() int {
	return len(pt)
}

// Suggest fuzzy-matches the query against page titles and returns up to
// limit pages, best match first. It backs the "no results" state with a
// fallback destination and never influences the ranking of scored results.
func Suggest(idx *index.Index, query string, limit int) []*docs.Page {
	if !idx.Loaded() || query == "" {
		return nil
	}

	titles := pageTitles(idx.Pages())
	matches := fuzzy.FindFrom(query, titles)

	var pages []*docs.Page
	for _, m := range matches {
		pages = append(pages, &titles[m.Index])
		if limit > 0 && len(pages) == limit {
			break
		}
	}
	return pages
}

// Package index builds the immutable in-memory search index over a corpus.
package index

import (
	"strings"

	"github.com/nholste/docdex/internal/docs"
)

// Entry points a normalized keyword back at the record that carries it.
type Entry struct {
	Kind         docs.Kind
	Page         *docs.Page
	Section      *docs.Section
	PriorityHint int // page priority, 0 for sections
}

// Index is the process-lifetime search index. It is built once from a
// corpus and never mutated afterwards; replacing the corpus means building
// a fresh Index.
type Index struct {
	pages    []docs.Page
	sections []docs.Section
	keywords map[string][]Entry
	pageByID map[string]*docs.Page
	loaded   bool
}

// Build constructs an Index from the given corpus. It is deterministic and
// cannot fail. The loaded flag is set as the final step; queries against an
// index whose flag is unset are no-ops.
func Build(corpus *docs.Corpus) *Index {
	idx := &Index{
		pages:    corpus.Pages,
		sections: corpus.Sections,
		keywords: make(map[string][]Entry),
		pageByID: make(map[string]*docs.Page, len(corpus.Pages)),
	}

	for i := range idx.pages {
		p := &idx.pages[i]
		idx.pageByID[p.ID] = p
		for _, kw := range p.Keywords {
			k := strings.ToLower(kw)
			idx.keywords[k] = append(idx.keywords[k], Entry{
				Kind:         docs.KindPage,
				Page:         p,
				PriorityHint: p.Priority,
			})
		}
	}

	for i := range idx.sections {
		s := &idx.sections[i]
		for _, kw := range s.Keywords {
			k := strings.ToLower(kw)
			idx.keywords[k] = append(idx.keywords[k], Entry{
				Kind:    docs.KindSection,
				Section: s,
			})
		}
	}

	idx.loaded = true
	return idx
}

// Loaded reports whether the index has finished building.
func (idx *Index) Loaded() bool {
	return idx != nil && idx.loaded
}

// Pages returns the indexed pages in dataset order.
func (idx *Index) Pages() []docs.Page {
	return idx.pages
}

// Sections returns the indexed sections in dataset order.
func (idx *Index) Sections() []docs.Section {
	return idx.sections
}

// PageByID finds a page by ID, returns nil if not found.
func (idx *Index) PageByID(id string) *docs.Page {
	return idx.pageByID[id]
}

// KeywordEntries returns the records indexed under the given keyword
// (case-insensitive), or nil if none.
func (idx *Index) KeywordEntries(keyword string) []Entry {
	return idx.keywords[strings.ToLower(keyword)]
}

// Keywords returns the number of distinct normalized keywords in the index.
func (idx *Index) Keywords() int {
	return len(idx.keywords)
}

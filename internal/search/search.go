// Package search ranks corpus records against free-text queries.
package search

import (
	"sort"
	"strings"

	"github.com/nholste/docdex/internal/docs"
	"github.com/nholste/docdex/internal/index"
)

const (
	// MinQueryLen is the minimum trimmed query length (in runes) that
	// triggers a search. Shorter queries are treated as "no query".
	MinQueryLen = 2

	// MaxResults caps the number of results returned per query.
	MaxResults = 10
)

// Scoring weights. Rules are additive and applied in this order; none
// short-circuits another.
const (
	weightTitleExact   = 100 // full query string contained in the title
	weightTitleToken   = 50  // per token contained in the title
	weightDescToken    = 20  // per token contained in the description
	weightKeywordToken = 30  // per (token, keyword) pair with the token in the keyword
	weightPrefixFuzzy  = 10  // per token (len >= 3) whose 3-char prefix is in the title
)

// Result is one ranked match.
type Result struct {
	Kind         docs.Kind
	Page         *docs.Page
	Section      *docs.Section
	Parent       *docs.Page // owning page for sections, nil when unresolved
	Score        int        // always >= 1, zero-score records are excluded
	MatchedTerms []string   // query tokens found in title, description or keywords
}

// Title returns the result's display title regardless of kind.
func (r Result) Title() string {
	if r.Kind == docs.KindSection {
		return r.Section.Title
	}
	return r.Page.Title
}

// URL returns the result's destination regardless of kind.
func (r Result) URL() string {
	if r.Kind == docs.KindSection {
		return r.Section.URL
	}
	return r.Page.URL
}

// Description returns the result's display description regardless of kind.
func (r Result) Description() string {
	if r.Kind == docs.KindSection {
		return r.Section.Description
	}
	return r.Page.Description
}

// ID returns the result's record ID regardless of kind.
func (r Result) ID() string {
	if r.Kind == docs.KindSection {
		return r.Section.ID
	}
	return r.Page.ID
}

// Search scores every page and section in the index against rawQuery and
// returns up to MaxResults matches, best first. It is a pure function of
// (index, rawQuery): the same inputs always yield the same ordered results.
// It returns nil when the index is not loaded or the trimmed query is
// shorter than MinQueryLen.
func Search(idx *index.Index, rawQuery string) []Result {
	if !idx.Loaded() {
		return nil
	}

	query := strings.TrimSpace(rawQuery)
	if len([]rune(query)) < MinQueryLen {
		return nil
	}

	full := strings.ToLower(query)
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return nil
	}

	var results []Result

	pages := idx.Pages()
	for i := range pages {
		p := &pages[i]
		score := scoreFields(p.Title, p.Description, p.Keywords, p.Priority, tokens, full)
		if score <= 0 {
			continue
		}
		results = append(results, Result{
			Kind:         docs.KindPage,
			Page:         p,
			Score:        score,
			MatchedTerms: matchedTerms(p.Title, p.Description, p.Keywords, tokens),
		})
	}

	sections := idx.Sections()
	for i := range sections {
		s := &sections[i]
		score := scoreFields(s.Title, s.Description, s.Keywords, 0, tokens, full)
		if score <= 0 {
			continue
		}
		results = append(results, Result{
			Kind:         docs.KindSection,
			Section:      s,
			Parent:       idx.PageByID(s.PageID),
			Score:        score,
			MatchedTerms: matchedTerms(s.Title, s.Description, s.Keywords, tokens),
		})
	}

	// Stable sort so equal scores keep dataset order (pages before sections).
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return results
}

// Tokenize splits a query on whitespace runs into lowercase tokens,
// discarding empties.
func Tokenize(query string) []string {
	parts := strings.Fields(query)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		tokens = append(tokens, strings.ToLower(p))
	}
	return tokens
}

// scoreFields applies the weighted scoring rules to one record's fields.
func scoreFields(title, description string, keywords []string, priority int, tokens []string, full string) int {
	titleLower := strings.ToLower(title)
	descLower := strings.ToLower(description)

	score := 0

	if strings.Contains(titleLower, full) {
		score += weightTitleExact
	}

	for _, tok := range tokens {
		if strings.Contains(titleLower, tok) {
			score += weightTitleToken
		}
		if strings.Contains(descLower, tok) {
			score += weightDescToken
		}
		for _, kw := range keywords {
			if strings.Contains(strings.ToLower(kw), tok) {
				score += weightKeywordToken
			}
		}
		// Coarse typo tolerance: a token's 3-char prefix found in the
		// title still counts for a little.
		if r := []rune(tok); len(r) >= 3 && strings.Contains(titleLower, string(r[:3])) {
			score += weightPrefixFuzzy
		}
	}

	// Priority boosts records that already matched; it never makes a
	// non-matching record visible on its own.
	if score > 0 {
		score += priority
	}

	return score
}

// matchedTerms returns the subset of tokens found anywhere in the record's
// searchable text, in token order.
func matchedTerms(title, description string, keywords []string, tokens []string) []string {
	blob := strings.ToLower(title + " " + description + " " + strings.Join(keywords, " "))
	var matched []string
	for _, tok := range tokens {
		if strings.Contains(blob, tok) {
			matched = append(matched, tok)
		}
	}
	return matched
}

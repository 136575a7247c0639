package docs

// Kind distinguishes pages and sections in mixed record lists.
type Kind int

const (
	KindPage Kind = iota
	KindSection
)

// String returns the kind as its wire/display name.
func (k Kind) String() string {
	if k == KindSection {
		return "section"
	}
	return "page"
}

// Category tags a page for badge selection and coarse grouping.
type Category string

// The fixed set of page categories.
const (
	CategoryGettingStarted Category = "getting-started"
	CategoryGuide          Category = "guide"
	CategoryReference      Category = "reference"
	CategoryIntegration    Category = "integration"
	CategorySupport        Category = "support"
)

// Page represents a searchable documentation page.
type Page struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Category    Category `json:"category,omitempty"`
	Priority    int      `json:"priority,omitempty"` // higher = more important, added to the match score
}

// Section represents a searchable anchor within a page.
// PageID is a back-reference only; a section whose PageID resolves to no
// page is still searchable, it just renders without parent context.
type Section struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	PageID      string   `json:"pageId"`
}

// Corpus holds the full record set the index is built from.
type Corpus struct {
	Pages    []Page    `json:"pages"`
	Sections []Section `json:"sections"`
}

// NewCorpus creates an empty Corpus with initialized slices.
func NewCorpus() *Corpus {
	return &Corpus{
		Pages:    []Page{},
		Sections: []Section{},
	}
}

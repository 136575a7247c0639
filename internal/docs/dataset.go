package docs

// DefaultCorpus returns the built-in record set: the docdex documentation
// itself. It is used whenever no authored corpus has been imported.
func DefaultCorpus() *Corpus {
	return &Corpus{
		Pages: []Page{
			{
				ID:          "home",
				Title:       "docdex Documentation",
				URL:         "https://docdex.dev/",
				Description: "Search your documentation from the terminal.",
				Keywords:    []string{"docdex", "documentation", "overview", "home"},
				Category:    CategoryGettingStarted,
				Priority:    10,
			},
			{
				ID:          "quick-start",
				Title:       "Quick Start Guide",
				URL:         "https://docdex.dev/quick-start",
				Description: "Install docdex and run your first search in under a minute.",
				Keywords:    []string{"quick", "start", "installation", "setup", "tutorial"},
				Category:    CategoryGettingStarted,
				Priority:    9,
			},
			{
				ID:          "installation",
				Title:       "Installation",
				URL:         "https://docdex.dev/installation",
				Description: "Install docdex with go install, Homebrew, or a prebuilt binary.",
				Keywords:    []string{"install", "installation", "download", "upgrade", "homebrew"},
				Category:    CategoryGettingStarted,
				Priority:    8,
			},
			{
				ID:          "configuration",
				Title:       "Configuration",
				URL:         "https://docdex.dev/configuration",
				Description: "All configuration options: browser command, debounce, result limit.",
				Keywords:    []string{"config", "configuration", "settings", "options", "json"},
				Category:    CategoryGuide,
				Priority:    7,
			},
			{
				ID:          "search-syntax",
				Title:       "Search & Ranking",
				URL:         "https://docdex.dev/search-syntax",
				Description: "How queries are tokenized and how results are scored and ranked.",
				Keywords:    []string{"search", "query", "ranking", "score", "tokens"},
				Category:    CategoryReference,
				Priority:    6,
			},
			{
				ID:          "corpus-authoring",
				Title:       "Authoring a Corpus",
				URL:         "https://docdex.dev/corpus-authoring",
				Description: "Write a corpus by hand or import one from static HTML pages.",
				Keywords:    []string{"corpus", "authoring", "import", "html", "pages", "sections"},
				Category:    CategoryGuide,
				Priority:    6,
			},
			{
				ID:          "keybindings",
				Title:       "Keyboard Shortcuts",
				URL:         "https://docdex.dev/keybindings",
				Description: "Every key binding in the interactive search UI.",
				Keywords:    []string{"keys", "shortcuts", "keybindings", "navigation", "vim"},
				Category:    CategoryReference,
				Priority:    5,
			},
			{
				ID:          "history",
				Title:       "Search History",
				URL:         "https://docdex.dev/history",
				Description: "Where searches and visited pages are recorded, and how to clear them.",
				Keywords:    []string{"history", "visits", "recent", "privacy"},
				Category:    CategoryGuide,
				Priority:    4,
			},
			{
				ID:          "troubleshooting",
				Title:       "Troubleshooting",
				URL:         "https://docdex.dev/troubleshooting",
				Description: "Common problems and how to diagnose them.",
				Keywords:    []string{"troubleshooting", "errors", "problems", "debug"},
				Category:    CategorySupport,
				Priority:    4,
			},
			{
				ID:          "faq",
				Title:       "FAQ & Community",
				URL:         "https://docdex.dev/faq",
				Description: "Frequently asked questions and where to get help.",
				Keywords:    []string{"faq", "questions", "community", "help"},
				Category:    CategorySupport,
				Priority:    3,
			},
		},
		Sections: []Section{
			{
				ID:          "quick-start-install",
				Title:       "Install docdex",
				URL:         "https://docdex.dev/quick-start#install",
				Description: "One-line install with go install.",
				Keywords:    []string{"install", "go install", "binary"},
				PageID:      "quick-start",
			},
			{
				ID:          "quick-start-first-search",
				Title:       "Your First Search",
				URL:         "https://docdex.dev/quick-start#first-search",
				Description: "Run docdex with a query and open the top result.",
				Keywords:    []string{"first", "search", "query", "open"},
				PageID:      "quick-start",
			},
			{
				ID:          "configuration-file",
				Title:       "The Config File",
				URL:         "https://docdex.dev/configuration#file",
				Description: "Location and format of config.json.",
				Keywords:    []string{"config", "file", "json", "path"},
				PageID:      "configuration",
			},
			{
				ID:          "configuration-browser",
				Title:       "Browser Command",
				URL:         "https://docdex.dev/configuration#browser",
				Description: "Override which browser opens selected results.",
				Keywords:    []string{"browser", "open", "command", "xdg-open"},
				PageID:      "configuration",
			},
			{
				ID:          "search-scoring",
				Title:       "Scoring Rules",
				URL:         "https://docdex.dev/search-syntax#scoring",
				Description: "The weighted rules that rank title, description and keyword matches.",
				Keywords:    []string{"scoring", "weights", "ranking", "relevance"},
				PageID:      "search-syntax",
			},
			{
				ID:          "search-no-results",
				Title:       "When Nothing Matches",
				URL:         "https://docdex.dev/search-syntax#no-results",
				Description: "The no-results state and fuzzy title suggestions.",
				Keywords:    []string{"no results", "empty", "suggestions", "fuzzy"},
				PageID:      "search-syntax",
			},
			{
				ID:          "corpus-import-html",
				Title:       "Importing HTML Pages",
				URL:         "https://docdex.dev/corpus-authoring#import-html",
				Description: "Build a corpus from a directory of static HTML documentation.",
				Keywords:    []string{"import", "html", "meta", "headings"},
				PageID:      "corpus-authoring",
			},
			{
				ID:          "history-clearing",
				Title:       "Clearing History",
				URL:         "https://docdex.dev/history#clearing",
				Description: "Delete the history database to start fresh.",
				Keywords:    []string{"clear", "delete", "history", "database"},
				PageID:      "history",
			},
			{
				ID:          "faq-no-results",
				Title:       "Why do I get no results?",
				URL:         "https://docdex.dev/faq#no-results",
				Description: "Queries under two characters are ignored; check your corpus.",
				Keywords:    []string{"no results", "minimum", "query length"},
				PageID:      "faq",
			},
		},
	}
}

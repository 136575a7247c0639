package main

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nholste/docdex/internal/importer"
	"github.com/nholste/docdex/internal/index"
	"github.com/nholste/docdex/internal/picker"
	"github.com/nholste/docdex/internal/search"
	"github.com/nholste/docdex/internal/storage"
	"github.com/nholste/docdex/internal/tui"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "help", "--help", "-h":
			printHelp()
			return
		case "import":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: docdex import <dir> [baseURL]\n")
				os.Exit(1)
			}
			baseURL := ""
			if len(os.Args) >= 4 {
				baseURL = os.Args[3]
			}
			runImport(os.Args[2], baseURL)
			return
		case "export":
			var outputPath string
			if len(os.Args) >= 3 {
				outputPath = os.Args[2]
			}
			runExport(outputPath)
			return
		case "history":
			runHistory()
			return
		default:
			// Treat as search query (join all remaining args)
			query := strings.Join(os.Args[1:], " ")
			runQuickSearch(query)
			return
		}
	}

	// No args - run the interactive search TUI
	runTUI()
}

func printHelp() {
	help := `docdex - documentation search from the terminal

Usage:
  docdex                    Open interactive search
  docdex <query>            Quick search → select → open
  docdex import <dir> [url] Build the corpus from HTML docs pages
  docdex export [path]      Write the active corpus as JSON
  docdex history            Show recent searches and visits
  docdex help               Show this help

Interactive Keybindings:
  type        Search as you type (debounced)
  ↑/↓         Move selection (↑ wraps from the top)
  Enter       Open selected result in the browser
  ctrl+k, /   Focus the search input
  ctrl+y      Copy selected URL to clipboard
  Tab         Leave the search widget
  Esc         Close results (query kept) / quit
  ctrl+c      Quit

Data Storage:
  ~/.config/docdex/corpus.json   Active corpus (built-in docs if absent)
  ~/.config/docdex/config.json   Configuration
  ~/.config/docdex/history.db    Search and visit history
`
	fmt.Print(help)
}

// loadIndex loads the active corpus and builds the search index.
func loadIndex() *index.Index {
	corpusPath, err := storage.DefaultCorpusPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting corpus path: %v\n", err)
		os.Exit(1)
	}

	corpus, err := storage.NewJSONStorage(corpusPath).Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading corpus: %v\n", err)
		os.Exit(1)
	}

	return index.Build(corpus)
}

// openHistory opens the history database. History is best-effort: a nil
// return just disables recording.
func openHistory() *storage.History {
	path, err := storage.DefaultHistoryPath()
	if err != nil {
		return nil
	}
	h, err := storage.NewHistory(path)
	if err != nil {
		return nil
	}
	return h
}

// loadConfig loads the configuration, creating it with defaults on first
// run.
func loadConfig() *storage.Config {
	configPath, err := storage.DefaultConfigFilePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting config path: %v\n", err)
		os.Exit(1)
	}
	config, err := storage.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return config
}

// runTUI runs the interactive search UI.
func runTUI() {
	idx := loadIndex()
	config := loadConfig()

	hist := openHistory()
	if hist != nil {
		defer hist.Close()
	}

	params := tui.AppParams{
		Index:    idx,
		Opener:   opener(config.BrowserCommand),
		Debounce: time.Duration(config.DebounceMs) * time.Millisecond,
	}
	if hist != nil {
		params.History = hist
	}

	app := tui.NewApp(params)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}

// runQuickSearch performs a one-shot search and opens the selected result.
func runQuickSearch(query string) {
	idx := loadIndex()
	config := loadConfig()

	results := search.Search(idx, query)

	if len(results) == 0 {
		fmt.Printf("No results for '%s'\n", query)
		for _, p := range search.Suggest(idx, query, 3) {
			fmt.Printf("  did you mean: %s  %s\n", p.Title, p.URL)
		}
		os.Exit(0)
	}

	var selected *search.Result

	if len(results) == 1 {
		// Single result - select it directly
		selected = &results[0]
		fmt.Printf("Opening: %s\n", selected.Title())
	} else {
		// Multiple results - show picker
		p := picker.New(results, query)
		program := tea.NewProgram(p)
		finalModel, err := program.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running picker: %v\n", err)
			os.Exit(1)
		}

		finalPicker := finalModel.(picker.Picker)
		if finalPicker.Cancelled() {
			os.Exit(0)
		}
		selected = finalPicker.Selected()
	}

	if selected == nil {
		os.Exit(0)
	}

	if hist := openHistory(); hist != nil {
		_ = hist.RecordSearch(query, len(results))
		_ = hist.RecordVisit(selected.ID(), selected.Title(), selected.URL())
		hist.Close()
	}

	if err := openURL(selected.URL(), config.BrowserCommand); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", selected.URL(), err)
		os.Exit(1)
	}
}

// runImport builds a corpus from a directory of HTML pages and makes it
// the active corpus.
func runImport(dir, baseURL string) {
	if baseURL == "" {
		baseURL = "file://" + dir
	}

	corpus, err := importer.ImportDir(dir, baseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing docs: %v\n", err)
		os.Exit(1)
	}
	if len(corpus.Pages) == 0 {
		fmt.Fprintf(os.Stderr, "No HTML pages found in %s\n", dir)
		os.Exit(1)
	}

	corpusPath, err := storage.DefaultCorpusPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting corpus path: %v\n", err)
		os.Exit(1)
	}
	if err := storage.NewJSONStorage(corpusPath).Save(corpus); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving corpus: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Imported %d pages, %d sections to %s\n",
		len(corpus.Pages), len(corpus.Sections), corpusPath)
}

// runExport writes the active corpus as JSON for editing.
func runExport(outputPath string) {
	if outputPath == "" {
		outputPath = "docdex-corpus.json"
	}

	corpusPath, err := storage.DefaultCorpusPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting corpus path: %v\n", err)
		os.Exit(1)
	}
	corpus, err := storage.NewJSONStorage(corpusPath).Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading corpus: %v\n", err)
		os.Exit(1)
	}

	if err := storage.NewJSONStorage(outputPath).Save(corpus); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing corpus: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exported %d pages, %d sections to %s\n",
		len(corpus.Pages), len(corpus.Sections), outputPath)
}

// runHistory prints recent searches and visits.
func runHistory() {
	hist := openHistory()
	if hist == nil {
		fmt.Fprintf(os.Stderr, "Error opening history\n")
		os.Exit(1)
	}
	defer hist.Close()

	searches, err := hist.RecentSearches(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading history: %v\n", err)
		os.Exit(1)
	}
	visits, err := hist.RecentVisits(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading history: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent searches:")
	if len(searches) == 0 {
		fmt.Println("  (none)")
	}
	for _, s := range searches {
		fmt.Printf("  %s  %q (%d hits)\n", s.CreatedAt.Format("2006-01-02 15:04"), s.Query, s.Hits)
	}

	fmt.Println("Recent visits:")
	if len(visits) == 0 {
		fmt.Println("  (none)")
	}
	for _, v := range visits {
		fmt.Printf("  %s  %s  %s\n", v.VisitedAt.Format("2006-01-02 15:04"), v.Title, v.URL)
	}
}

// opener returns the navigation side effect used by the TUI, honoring a
// configured browser command.
func opener(browserCommand string) func(string) error {
	return func(url string) error {
		return openURL(url, browserCommand)
	}
}

// openURL opens a URL in the configured or default browser.
func openURL(url, browserCommand string) error {
	var cmd *exec.Cmd
	if browserCommand != "" {
		cmd = exec.Command(browserCommand, url)
	} else {
		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", url)
		case "linux":
			cmd = exec.Command("xdg-open", url)
		case "windows":
			cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
		}
	}
	if cmd != nil {
		return cmd.Start()
	}
	return nil
}

// Package importer builds a corpus from static HTML documentation pages.
package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nholste/docdex/internal/docs"
	"golang.org/x/net/html"
)

// ParseHTMLDoc parses one documentation page into a Page plus the Sections
// found under its h2 headings. slug becomes the page ID and the prefix for
// section IDs; url is the page's destination.
func ParseHTMLDoc(r io.Reader, slug, url string) (docs.Page, []docs.Section, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return docs.Page{}, nil, err
	}

	page := docs.Page{
		ID:  slug,
		URL: url,
	}
	var sections []docs.Section

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "title":
				if page.Title == "" {
					page.Title = getTextContent(n)
				}
				return

			case "meta":
				switch strings.ToLower(getAttr(n, "name")) {
				case "description":
					page.Description = strings.TrimSpace(getAttr(n, "content"))
				case "keywords":
					page.Keywords = splitKeywords(getAttr(n, "content"))
				}
				return

			case "body":
				if cat := getAttr(n, "data-category"); cat != "" {
					page.Category = docs.Category(cat)
				}
				if prio := getAttr(n, "data-priority"); prio != "" {
					if p, err := strconv.Atoi(prio); err == nil {
						page.Priority = p
					}
				}
				// Fall through to children for the headings.

			case "h2":
				// Only anchored headings become sections.
				anchor := getAttr(n, "id")
				title := getTextContent(n)
				if anchor != "" && title != "" {
					sections = append(sections, docs.Section{
						ID:          slug + "-" + anchor,
						Title:       title,
						URL:         url + "#" + anchor,
						Description: followingText(n),
						Keywords:    splitWords(title),
						PageID:      slug,
					})
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)

	if page.Title == "" {
		page.Title = slug
	}
	if len(page.Keywords) == 0 {
		// A page always needs a match surface.
		page.Keywords = splitWords(page.Title)
	}

	return page, sections, nil
}

// ImportDir parses every .html file in dir (non-recursive) into one corpus.
// File names become page slugs; URLs are baseURL/slug.
func ImportDir(dir, baseURL string) (*docs.Corpus, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	corpus := docs.NewCorpus()
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}

		slug := strings.TrimSuffix(entry.Name(), ".html")
		url := strings.TrimSuffix(baseURL, "/") + "/" + slug

		f, err := os.Open(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", entry.Name(), err)
		}
		page, sections, err := ParseHTMLDoc(f, slug, url)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", entry.Name(), err)
		}

		corpus.Pages = append(corpus.Pages, page)
		corpus.Sections = append(corpus.Sections, sections...)
	}

	return corpus, nil
}

// getTextContent returns the text content of a node.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// getAttr returns the value of the named attribute, or "".
func getAttr(n *html.Node, name string) string {
	for _, attr := range n.Attr {
		if strings.EqualFold(attr.Key, name) {
			return attr.Val
		}
	}
	return ""
}

// followingText returns the text of the first paragraph following a
// heading, used as the section description.
func followingText(n *html.Node) string {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode && strings.ToLower(s.Data) == "p" {
			return getTextContent(s)
		}
	}
	return ""
}

// splitKeywords splits a meta keywords attribute on commas.
func splitKeywords(content string) []string {
	var keywords []string
	for _, k := range strings.Split(content, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}

// splitWords lowercases a title into keyword words.
func splitWords(title string) []string {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(title)) {
		words = append(words, strings.Trim(w, ".,:;?!"))
	}
	return words
}

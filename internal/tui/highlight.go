package tui

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ANSI toggles for matched spans, kept separate from lipgloss styles so a
// highlighted run never resets the enclosing line style.
const (
	matchOn  = "\033[1;4m"
	matchOff = "\033[22;24m"
)

// SanitizeText drops control characters (C0, DEL and C1, ESC included) so
// record content can never inject terminal escape sequences into the view.
func SanitizeText(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f || (r >= 0x80 && r <= 0x9f) {
			return -1
		}
		return r
	}, s)
}

// HighlightMatches returns text with every case-insensitive occurrence of
// the given terms wrapped in a bold/underline span. The text is sanitized
// first; span marking is a separate second step and never re-interprets the
// sanitized content.
func HighlightMatches(text string, terms []string) string {
	text = SanitizeText(text)
	if len(terms) == 0 || text == "" {
		return text
	}

	// Lowercase rune by rune so offsets stay aligned with the original.
	runes := []rune(text)
	lowerRunes := make([]rune, len(runes))
	for i, r := range runes {
		lowerRunes[i] = unicode.ToLower(r)
	}
	lower := string(lowerRunes)

	marked := make([]bool, len(runes))
	for _, term := range terms {
		t := strings.ToLower(term)
		if t == "" {
			continue
		}
		tLen := utf8.RuneCountInString(t)
		for from := 0; ; {
			i := strings.Index(lower[from:], t)
			if i < 0 {
				break
			}
			off := utf8.RuneCountInString(lower[:from+i])
			for j := off; j < off+tLen && j < len(marked); j++ {
				marked[j] = true
			}
			from += i + len(t)
		}
	}

	var b strings.Builder
	inMatch := false
	for i, r := range runes {
		if marked[i] && !inMatch {
			b.WriteString(matchOn)
			inMatch = true
		} else if !marked[i] && inMatch {
			b.WriteString(matchOff)
			inMatch = false
		}
		b.WriteRune(r)
	}
	if inMatch {
		b.WriteString(matchOff)
	}
	return b.String()
}

package tui

import (
	"strings"
	"testing"
)

func TestSanitizeText_StripsEscapeSequences(t *testing.T) {
	got := SanitizeText("red\x1b[31malert\x1b[0m")
	if strings.ContainsRune(got, 0x1b) {
		t.Errorf("expected ESC to be stripped, got %q", got)
	}
	if got != "red[31malert[0m" {
		t.Errorf("expected literal remainder, got %q", got)
	}
}

func TestSanitizeText_KeepsPrintableText(t *testing.T) {
	in := "Quick Start Guide › §"
	if got := SanitizeText(in); got != in {
		t.Errorf("expected %q unchanged, got %q", in, got)
	}
}

func TestHighlightMatches_WrapsCaseInsensitively(t *testing.T) {
	got := HighlightMatches("Quick Start Guide", []string{"quick"})

	want := matchOn + "Quick" + matchOff + " Start Guide"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestHighlightMatches_MergesOverlappingTerms(t *testing.T) {
	got := HighlightMatches("Start", []string{"sta", "tart"})

	// Overlapping spans merge into one wrapped run.
	want := matchOn + "Start" + matchOff
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestHighlightMatches_MultipleOccurrences(t *testing.T) {
	got := HighlightMatches("go go go", []string{"go"})

	want := matchOn + "go" + matchOff + " " + matchOn + "go" + matchOff + " " + matchOn + "go" + matchOff
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestHighlightMatches_HostileTitleStaysInert(t *testing.T) {
	// Markup-looking content renders literally; the matched substring is
	// still highlighted and no control characters survive.
	title := "<img src=x onerror=alert(1)>\x1b[2J"
	got := HighlightMatches(title, []string{"onerror"})

	if !strings.Contains(got, matchOn+"onerror"+matchOff) {
		t.Errorf("expected onerror to be highlighted, got %q", got)
	}
	stripped := strings.ReplaceAll(strings.ReplaceAll(got, matchOn, ""), matchOff, "")
	if strings.ContainsRune(stripped, 0x1b) {
		t.Errorf("expected no record-supplied escapes, got %q", got)
	}
	if !strings.Contains(got, "<img src=x ") {
		t.Errorf("expected markup to render literally, got %q", got)
	}
}

func TestHighlightMatches_NoTerms(t *testing.T) {
	if got := HighlightMatches("plain", nil); got != "plain" {
		t.Errorf("expected unchanged text, got %q", got)
	}
}

package websearch

import (
	"strings"
	"testing"
	"time"
)

func TestSimplifyQuery(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"what is photosynthesis", "photosynthesis"},
		{"explain the krebs cycle", "the krebs cycle"},
		{"tell me about mars", "mars"},
		{"latest go release", "go release"},
		{"photosynthesis", "photosynthesis"},
		{"  Describe black holes  ", "black holes"},
	}
	for _, tc := range cases {
		if got := SimplifyQuery(tc.in); got != tc.want {
			t.Errorf("SimplifyQuery(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestExtractURLs(t *testing.T) {
	text := "See https://example.com/a and (https://example.com/b) plus www.example.org/page for details."
	got := ExtractURLs(text)
	want := []string{"https://example.com/a", "https://example.com/b", "http://www.example.org/page"}
	if len(got) != len(want) {
		t.Fatalf("urls = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("url %d = %q, want %q", i, got[i], want[i])
		}
	}

	if got := ExtractURLs("no links here"); len(got) != 0 {
		t.Errorf("urls = %v", got)
	}
}

func TestFormatAsContext(t *testing.T) {
	got := FormatAsContext(Outcome{Text: "summary text", Provider: "duckduckgo-json"})
	want := "**Search Result (via duckduckgo-json):**\n\nsummary text"
	if got != want {
		t.Errorf("FormatAsContext = %q", got)
	}
	if got := FormatAsContext(Outcome{Provider: "none"}); got != "" {
		t.Errorf("empty outcome = %q", got)
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Setenv("WEB_SEARCH_ENABLED", "false")
	t.Setenv("WEB_SEARCH_MAX_RESULTS", "7")
	t.Setenv("WEB_SEARCH_TIMEOUT", "3")
	t.Setenv("WEB_SEARCH_CACHE_TTL", "60")

	cfg := DefaultConfig()
	if cfg.Enabled {
		t.Error("enabled override ignored")
	}
	if cfg.MaxResults != 7 || cfg.Timeout != 3*time.Second || cfg.CacheTTL != time.Minute {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestUsable(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"**Go**: a programming language designed at Google", true},
		{"", false},
		{"   ", false},
		{"No results found for 'xyz'", false},
		{"Web search error: boom", false},
		{"server returned 403", false},
		{"Access Forbidden by upstream", false},
	}
	for _, tc := range cases {
		if got := usable(tc.text); got != tc.want {
			t.Errorf("usable(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestConsistencyFilter(t *testing.T) {
	long := strings.Repeat("a", maxSnippetLen+1)
	got := consistencyFilter([]string{"alpha", "", "alpha", long, "beta"})
	if len(got) != 2 || got[0] != "alpha" || got[1] != "beta" {
		t.Errorf("filtered = %v", got)
	}
}

func TestSummarize(t *testing.T) {
	texts := []string{
		"Go is a programming language designed at Google. It is statically typed and compiled. Bananas are yellow fruit.",
	}
	got := Summarize(texts, "go programming language", 2)
	if got == "" {
		t.Fatal("empty summary")
	}
	lines := strings.Split(got, "\n")
	if len(lines) > 2 {
		t.Errorf("too many bullets: %q", got)
	}
	for _, l := range lines {
		if !strings.HasPrefix(l, "- ") {
			t.Errorf("bullet %q missing prefix", l)
		}
		if !strings.HasSuffix(l, ".") && !strings.HasSuffix(l, "!") && !strings.HasSuffix(l, "?") {
			t.Errorf("bullet %q missing terminal punctuation", l)
		}
	}
	if !strings.Contains(lines[0], "programming language") {
		t.Errorf("query-relevant sentence not ranked first: %q", got)
	}
}

func TestSummarize_Empty(t *testing.T) {
	if got := Summarize(nil, "q", 3); got != "" {
		t.Errorf("Summarize(nil) = %q", got)
	}
	if got := Summarize([]string{"text here"}, "q", 0); got != "" {
		t.Errorf("zero bullets = %q", got)
	}
}

package websearch

// #region imports
import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/danielpatrickdp/tutor-agents/go-router/internal/llmclient"
)

// #endregion

// #region searcher

const (
	cacheSize     = 128
	maxSnippetLen = 4000
)

// Searcher fans a query out across the configured providers, filters and
// summarizes what comes back, and caches aggregated outcomes for a short
// TTL. When every provider comes up empty, an OpenAI completion generates a
// best-effort summary instead.
type Searcher struct {
	cfg       Config
	providers []Provider
	cache     *expirable.LRU[string, Outcome]
	llm       *llmclient.Client
}

// NewSearcher wires the default provider set: SerpAPI when a key is
// available at search time, DuckDuckGo always.
func NewSearcher(cfg Config, llm *llmclient.Client) *Searcher {
	return &Searcher{
		cfg: cfg,
		providers: []Provider{
			NewSerpAPI(cfg.Timeout),
			NewDuckDuckGo(cfg.Timeout),
		},
		cache: expirable.NewLRU[string, Outcome](cacheSize, nil, cfg.CacheTTL),
		llm:   llm,
	}
}

// NewSearcherWithProviders creates a Searcher over an explicit provider
// list. Used for testing without network access.
func NewSearcherWithProviders(cfg Config, llm *llmclient.Client, providers ...Provider) *Searcher {
	s := NewSearcher(cfg, llm)
	s.providers = providers
	return s
}

// #endregion

// #region search

type fanResult struct {
	provider string
	text     string
	err      error
}

// Search aggregates all providers for one query. The apiKey doubles as the
// SerpAPI credential when SERPAPI_KEY is unset and as the OpenAI credential
// for the generative fallback and summary polish.
func (s *Searcher) Search(ctx context.Context, query, apiKey string) Outcome {
	query = strings.TrimSpace(query)
	if !s.cfg.Enabled || query == "" {
		return Outcome{Text: fmt.Sprintf("No results found for '%s'", query), Provider: "none"}
	}

	key := fmt.Sprintf("%s|%d|%t", strings.ToLower(query), s.cfg.MaxResults, apiKey != "")
	if cached, ok := s.cache.Get(key); ok {
		return cached
	}

	serpKey := apiKey
	if env := os.Getenv("SERPAPI_KEY"); env != "" {
		serpKey = env
	}

	fanCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	ch := make(chan fanResult, len(s.providers))
	launched := 0
	for _, p := range s.providers {
		if _, ok := p.(*SerpAPI); ok && serpKey == "" {
			continue
		}
		launched++
		go func(p Provider) {
			text, err := p.Search(fanCtx, query, s.cfg.MaxResults, serpKey)
			ch <- fanResult{provider: p.Name(), text: text, err: err}
		}(p)
	}

	var snippets []string
	var providers []string
	for i := 0; i < launched; i++ {
		r := <-ch
		if r.err != nil {
			log.Printf("[SEARCH] provider %s failed: %v", r.provider, r.err)
			continue
		}
		if !usable(r.text) {
			continue
		}
		snippets = append(snippets, r.text)
		providers = append(providers, r.provider)
	}
	snippets = consistencyFilter(snippets)

	outcome := s.aggregate(ctx, query, apiKey, snippets, providers)
	s.cache.Add(key, outcome)
	return outcome
}

// usable rejects provider text carrying access errors or no-result markers.
func usable(text string) bool {
	low := strings.ToLower(strings.TrimSpace(text))
	if low == "" {
		return false
	}
	if strings.Contains(low, "403") || strings.Contains(low, "forbidden") {
		return false
	}
	if strings.HasPrefix(low, "no results") || strings.HasPrefix(low, "web search error") {
		return false
	}
	return true
}

// consistencyFilter validates snippets against basic constraints:
//   - Non-empty text
//   - Text within maxSnippetLen
//   - No duplicates
func consistencyFilter(snippets []string) []string {
	seen := make(map[string]bool)
	var valid []string
	for _, s := range snippets {
		if s == "" || len(s) > maxSnippetLen {
			continue
		}
		if seen[s] {
			continue
		}
		seen[s] = true
		valid = append(valid, s)
	}
	return valid
}

// #endregion

// #region aggregate

func (s *Searcher) aggregate(ctx context.Context, query, apiKey string, snippets, providers []string) Outcome {
	if len(snippets) == 0 {
		if generated, ok := s.generativeFallback(ctx, query, apiKey); ok {
			return generated
		}
		return Outcome{Text: fmt.Sprintf("No results found for '%s'", query), Provider: "none"}
	}

	summary := Summarize(snippets, query, s.cfg.MaxResults)
	if summary == "" {
		summary = strings.Join(snippets, "\n\n")
	}
	urls := ExtractURLs(strings.Join(snippets, "\n"))
	label := "multi:" + strings.Join(providers, ",")

	if polished := s.polish(ctx, summary, query, apiKey); polished != "" {
		return Outcome{Text: polished, Provider: label, URLs: urls}
	}
	return Outcome{Text: summary, Provider: label, URLs: urls}
}

// generativeFallback asks the model for a web-style summary when no real
// provider produced anything.
func (s *Searcher) generativeFallback(ctx context.Context, query, apiKey string) (Outcome, bool) {
	if s.llm == nil {
		return Outcome{}, false
	}
	system := "You are a web research assistant. The user requested a web search. " +
		"Provide a concise summary (3 short bullet points) and, if possible, example sources/URLs."
	text, err := s.llm.Complete(ctx, apiKey, system, "Search the web and summarize: "+query)
	if err != nil || text == "" {
		return Outcome{}, false
	}
	return Outcome{
		Text:     "**OpenAI-generated summary:**\n\n" + text,
		Provider: "openai-fallback",
		URLs:     ExtractURLs(text),
	}, true
}

// polish rewrites extractive bullets into an abstractive summary when a
// credential is available. Best effort: failures keep the extractive text.
func (s *Searcher) polish(ctx context.Context, summary, query, apiKey string) string {
	if s.llm == nil || summary == "" {
		return ""
	}
	system := "You are a helpful assistant that rewrites bullet points into concise, polished 2-3 bullet summaries. Keep it factual and short."
	prompt := fmt.Sprintf("Rewrite the following extractive bullets into a polished 2-3 bullet summary focused on: %s\n\n%s\n\nPolished summary:", query, summary)
	text, err := s.llm.Complete(ctx, apiKey, system, prompt)
	if err != nil {
		return ""
	}
	return text
}

// #endregion

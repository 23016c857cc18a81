package websearch

// #region imports
import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// #endregion

// #region provider

// Provider fetches raw result text for a query. Implementations return an
// error for transport failures; thin or empty results come back as text the
// aggregator filters out.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string, maxResults int, apiKey string) (string, error)
}

// retryGet runs an HTTP request up to retries+1 times with doubling backoff.
func retryGet(ctx context.Context, client *http.Client, req *http.Request, retries int, backoff time.Duration) (*http.Response, error) {
	var lastErr error
	for attempt := 0; attempt <= retries; attempt++ {
		resp, err := client.Do(req.WithContext(ctx))
		if err == nil && resp.StatusCode < 500 {
			return resp, nil
		}
		if err == nil {
			resp.Body.Close()
			lastErr = fmt.Errorf("status %d", resp.StatusCode)
		} else {
			lastErr = err
		}
		if attempt < retries {
			select {
			case <-time.After(backoff << attempt):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}

// #endregion

// #region duckduckgo

// questionLeadIns are stripped from queries before hitting the instant
// answer API, which does much better on bare subjects.
var questionLeadIns = []string{
	"explain", "what is", "what are", "tell me about", "describe",
	"latest", "current", "recent", "newest",
}

// SimplifyQuery removes a leading question phrase from a query.
func SimplifyQuery(query string) string {
	q := strings.TrimSpace(query)
	ql := strings.ToLower(q)
	for _, w := range questionLeadIns {
		if strings.HasPrefix(ql, w) {
			return strings.TrimSpace(q[len(w):])
		}
	}
	return q
}

// DuckDuckGo queries the instant answer JSON API. No credential needed.
type DuckDuckGo struct {
	Client  *http.Client
	BaseURL string
}

func NewDuckDuckGo(timeout time.Duration) *DuckDuckGo {
	return &DuckDuckGo{
		Client:  &http.Client{Timeout: timeout},
		BaseURL: "https://api.duckduckgo.com/",
	}
}

func (d *DuckDuckGo) Name() string { return "duckduckgo-json" }

type ddgResponse struct {
	Answer        string     `json:"Answer"`
	Abstract      string     `json:"Abstract"`
	Definition    string     `json:"Definition"`
	Results       []ddgTopic `json:"Results"`
	RelatedTopics []ddgTopic `json:"RelatedTopics"`
}

type ddgTopic struct {
	Text string `json:"Text"`
}

// Search walks the instant answer fields in priority order: a direct Answer
// wins outright; otherwise Abstract, then Definition, then result and
// related-topic snippets fill up to maxResults entries.
func (d *DuckDuckGo) Search(ctx context.Context, query string, maxResults int, apiKey string) (string, error) {
	simple := SimplifyQuery(query)

	params := url.Values{}
	params.Set("q", simple)
	params.Set("format", "json")
	params.Set("no_redirect", "1")
	params.Set("no_html", "1")
	params.Set("skip_disambig", "1")

	req, err := http.NewRequest(http.MethodGet, d.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("duckduckgo request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := retryGet(ctx, d.Client, req, 2, 500*time.Millisecond)
	if err != nil {
		return "", fmt.Errorf("duckduckgo: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("duckduckgo: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("duckduckgo read: %w", err)
	}
	var data ddgResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return "", fmt.Errorf("duckduckgo decode: %w", err)
	}

	if a := strings.TrimSpace(data.Answer); len(a) > 20 {
		return fmt.Sprintf("**%s**: %s", simple, a), nil
	}

	var results []string
	if a := strings.TrimSpace(data.Abstract); len(a) > 20 {
		results = append(results, fmt.Sprintf("**%s**: %s", simple, a))
	}
	if len(results) == 0 {
		if def := strings.TrimSpace(data.Definition); len(def) > 20 {
			results = append(results, fmt.Sprintf("**%s**: %s", simple, def))
		}
	}
	for _, group := range [][]ddgTopic{data.Results, data.RelatedTopics} {
		for _, topic := range group {
			if len(results) >= maxResults {
				break
			}
			t := strings.TrimSpace(topic.Text)
			if len(t) > 10 && !contains(results, t) {
				results = append(results, t)
			}
		}
	}

	if len(results) == 0 {
		return fmt.Sprintf("No results found for '%s'", query), nil
	}
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return strings.Join(results, "\n\n"), nil
}

func contains(items []string, s string) bool {
	for _, it := range items {
		if it == s {
			return true
		}
	}
	return false
}

// #endregion

// #region serpapi

// SerpAPI queries Google results through serpapi.com. Requires a key.
type SerpAPI struct {
	Client  *http.Client
	BaseURL string
}

func NewSerpAPI(timeout time.Duration) *SerpAPI {
	return &SerpAPI{
		Client:  &http.Client{Timeout: timeout},
		BaseURL: "https://serpapi.com/search",
	}
}

func (s *SerpAPI) Name() string { return "serpapi" }

type serpResponse struct {
	Error          string       `json:"error"`
	OrganicResults []serpResult `json:"organic_results"`
}

type serpResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

func (s *SerpAPI) Search(ctx context.Context, query string, maxResults int, apiKey string) (string, error) {
	if apiKey == "" {
		return "", fmt.Errorf("serpapi: no api key provided")
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("api_key", apiKey)
	params.Set("num", fmt.Sprint(maxResults))

	req, err := http.NewRequest(http.MethodGet, s.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("serpapi request: %w", err)
	}

	resp, err := retryGet(ctx, s.Client, req, 2, 500*time.Millisecond)
	if err != nil {
		return "", fmt.Errorf("serpapi: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("serpapi: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("serpapi read: %w", err)
	}
	var data serpResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return "", fmt.Errorf("serpapi decode: %w", err)
	}
	if data.Error != "" {
		return "", fmt.Errorf("serpapi: %s", data.Error)
	}

	var results []string
	for _, r := range data.OrganicResults {
		if len(results) >= maxResults {
			break
		}
		if r.Title != "" && r.Snippet != "" {
			results = append(results, fmt.Sprintf("**%s**: %s", r.Title, r.Snippet))
		}
	}
	if len(results) == 0 {
		return fmt.Sprintf("No results found for '%s'", query), nil
	}
	return strings.Join(results, "\n\n"), nil
}

// #endregion

// Package websearch aggregates web results for the generic responder:
// provider fan-out, filtering, extractive summarization, and caching.
package websearch

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// #region types

// Outcome holds the aggregated result of one search: summary text, the
// provider (or "multi:" + comma-joined list) that produced it, and any URLs
// found in the text.
type Outcome struct {
	Text     string
	Provider string
	URLs     []string
}

// Config holds web search parameters.
type Config struct {
	MaxResults int
	Timeout    time.Duration
	CacheTTL   time.Duration
	Enabled    bool
}

// #endregion types

// #region config

// DefaultConfig returns default web search configuration.
// Reads from env vars: WEB_SEARCH_ENABLED, WEB_SEARCH_MAX_RESULTS,
// WEB_SEARCH_TIMEOUT, WEB_SEARCH_CACHE_TTL.
func DefaultConfig() Config {
	cfg := Config{
		MaxResults: 3,
		Timeout:    10 * time.Second,
		CacheTTL:   5 * time.Minute,
		Enabled:    true,
	}
	if v := os.Getenv("WEB_SEARCH_ENABLED"); v != "" {
		cfg.Enabled = v == "true" || v == "1"
	}
	if v := os.Getenv("WEB_SEARCH_MAX_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxResults = n
		}
	}
	if v := os.Getenv("WEB_SEARCH_TIMEOUT"); v != "" {
		if sec, err := strconv.Atoi(v); err == nil && sec > 0 {
			cfg.Timeout = time.Duration(sec) * time.Second
		}
	}
	if v := os.Getenv("WEB_SEARCH_CACHE_TTL"); v != "" {
		if sec, err := strconv.Atoi(v); err == nil && sec > 0 {
			cfg.CacheTTL = time.Duration(sec) * time.Second
		}
	}
	return cfg
}

// #endregion config

// #region urls

var (
	urlPattern = regexp.MustCompile(`https?://[^\s)"]+`)
	wwwPattern = regexp.MustCompile(`www\.[^\s)"]+`)
)

// ExtractURLs pulls http(s) and bare www links out of result text.
func ExtractURLs(text string) []string {
	urls := urlPattern.FindAllString(text, -1)
	seen := make(map[string]bool, len(urls))
	for _, u := range urls {
		seen[u] = true
	}
	for _, w := range wwwPattern.FindAllString(text, -1) {
		candidate := "http://" + w
		if !seen[candidate] {
			seen[candidate] = true
			urls = append(urls, candidate)
		}
	}
	return urls
}

// #endregion urls

// #region format

// FormatAsContext renders an outcome for injection into a model prompt.
func FormatAsContext(o Outcome) string {
	if o.Text == "" {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "**Search Result (via %s):**\n\n%s", o.Provider, o.Text)
	return b.String()
}

// #endregion format

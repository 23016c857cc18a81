package websearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newDDG(serverURL string) *DuckDuckGo {
	return &DuckDuckGo{Client: &http.Client{Timeout: time.Second}, BaseURL: serverURL}
}

func TestDuckDuckGo_AnswerWins(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Write([]byte(`{"Answer": "The speed of light is 299792458 m/s", "Abstract": "ignored abstract text here"}`))
	}))
	defer srv.Close()

	got, err := newDDG(srv.URL).Search(context.Background(), "what is the speed of light", 3, "")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if gotQuery != "the speed of light" {
		t.Errorf("query param = %q", gotQuery)
	}
	if got != "**the speed of light**: The speed of light is 299792458 m/s" {
		t.Errorf("result = %q", got)
	}
}

func TestDuckDuckGo_AbstractAndTopics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"Abstract": "Photosynthesis converts light energy into chemical energy.",
			"RelatedTopics": [
				{"Text": "Chlorophyll absorbs light in chloroplasts"},
				{"Text": "Chlorophyll absorbs light in chloroplasts"},
				{"Text": "short"}
			]
		}`))
	}))
	defer srv.Close()

	got, err := newDDG(srv.URL).Search(context.Background(), "photosynthesis", 3, "")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	parts := strings.Split(got, "\n\n")
	if len(parts) != 2 {
		t.Fatalf("parts = %q", parts)
	}
	if !strings.Contains(parts[0], "Photosynthesis converts light energy") {
		t.Errorf("first part = %q", parts[0])
	}
	if parts[1] != "Chlorophyll absorbs light in chloroplasts" {
		t.Errorf("second part = %q", parts[1])
	}
}

func TestDuckDuckGo_NoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	got, err := newDDG(srv.URL).Search(context.Background(), "xyzzy", 3, "")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if got != "No results found for 'xyzzy'" {
		t.Errorf("result = %q", got)
	}
	if usable(got) {
		t.Error("no-results marker must not be usable")
	}
}

func TestSerpAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("api_key") != "serp-key" {
			w.Write([]byte(`{"error": "missing key"}`))
			return
		}
		w.Write([]byte(`{"organic_results": [
			{"title": "Result One", "snippet": "first snippet", "link": "https://one.example"},
			{"title": "Result Two", "snippet": "second snippet", "link": "https://two.example"}
		]}`))
	}))
	defer srv.Close()

	s := &SerpAPI{Client: &http.Client{Timeout: time.Second}, BaseURL: srv.URL}

	got, err := s.Search(context.Background(), "anything", 1, "serp-key")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if got != "**Result One**: first snippet" {
		t.Errorf("result = %q", got)
	}

	if _, err := s.Search(context.Background(), "anything", 1, ""); err == nil {
		t.Error("expected error without key")
	}
	if _, err := s.Search(context.Background(), "anything", 1, "wrong"); err == nil {
		t.Error("expected error from API error field")
	}
}

func TestRetryGet_RecoversFromServerError(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if hits == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"Answer": "recovered after a transient server failure"}`))
	}))
	defer srv.Close()

	got, err := newDDG(srv.URL).Search(context.Background(), "anything", 3, "")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if hits != 2 {
		t.Errorf("hits = %d", hits)
	}
	if !strings.Contains(got, "recovered after a transient server failure") {
		t.Errorf("result = %q", got)
	}
}

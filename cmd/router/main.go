package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/danielpatrickdp/tutor-agents/go-router/internal/dispatch"
	"github.com/danielpatrickdp/tutor-agents/go-router/internal/intent"
	"github.com/danielpatrickdp/tutor-agents/go-router/internal/llmclient"
	"github.com/danielpatrickdp/tutor-agents/go-router/internal/responder"
	"github.com/danielpatrickdp/tutor-agents/go-router/internal/websearch"
)

// #region main
func main() {
	dbPath := envOr("ROUTER_DB", "route_outcomes.db")

	// Route-outcome telemetry store
	db, err := dispatch.OpenDB(dbPath)
	if err != nil {
		log.Fatalf("failed to open route db: %v", err)
	}
	defer db.Close()

	memory, err := dispatch.NewRouteMemory(db)
	if err != nil {
		log.Fatalf("failed to migrate route db: %v", err)
	}

	client := llmclient.New()
	searcher := websearch.NewSearcher(websearch.DefaultConfig(), client)
	registry := dispatch.DefaultRegistry(client, searcher)
	scorer := intent.NewScorer(intent.DefaultTables())
	gate := dispatch.NewEscalationGate(intent.FallbackName, nil)
	dispatcher := dispatch.New(registry, scorer, gate, memory)

	fmt.Println("Tutor query router ready.")
	fmt.Printf("  DB: %s | Responders: %s\n", dbPath, strings.Join(registry.Names(), ", "))
	fmt.Println("Type a question, '@Responder Name: question' to route explicitly,")
	fmt.Println("'escalate on|off <Responder Name>', 'history', or 'quit' to exit:")

	var history []string
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		if line == "history" {
			for _, h := range history {
				fmt.Println(h)
			}
			continue
		}
		if rest, ok := strings.CutPrefix(line, "escalate "); ok {
			mode, target, found := strings.Cut(rest, " ")
			if !found || (mode != "on" && mode != "off") {
				fmt.Println("Usage: escalate on|off <Responder Name>")
				continue
			}
			gate.SetOverride(strings.TrimSpace(target), mode == "on")
			fmt.Printf("Escalation %s for %s\n", mode, strings.TrimSpace(target))
			continue
		}

		name, query := parseLine(line)

		// Session-scoped credential, read per turn and never stored.
		apiKey := os.Getenv("OPENAI_API_KEY")

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		res := dispatcher.Dispatch(ctx, name, responder.Request{
			Query:        query,
			FallbackPref: os.Getenv("FALLBACK_PREF"),
			APIKey:       apiKey,
			UseWeb:       os.Getenv("USE_WEB_SEARCH") == "1" || os.Getenv("USE_WEB_SEARCH") == "true",
		})
		cancel()

		fmt.Printf("\n%s\n\n", res.Reply.Text)
		if res.Reply.URL != "" {
			fmt.Printf("URL: %s\n", res.Reply.URL)
		}
		for _, u := range res.Reply.SearchURLs {
			fmt.Printf("Source: %s\n", u)
		}
		if res.AutoRouted {
			for _, s := range scorer.Suggest(query, 3) {
				fmt.Printf("Suggestion: %s (%s)\n", s.Responder, s.Confidence)
			}
		}
		fmt.Printf("[%s] responder=%s identity=%s confidence=%s escalated=%t\n",
			res.TurnID, res.Responder, res.Identity, res.Confidence, res.Escalated)
		history = append(history, fmt.Sprintf("%s -> %s (%s, escalated=%t)",
			query, res.Responder, res.Confidence, res.Escalated))
	}
}

// #endregion main

// #region helpers

// parseLine splits an optional '@Responder Name:' prefix off a query line.
func parseLine(line string) (name, query string) {
	if !strings.HasPrefix(line, "@") {
		return "", line
	}
	rest := line[1:]
	i := strings.IndexByte(rest, ':')
	if i < 0 {
		return "", line
	}
	return strings.TrimSpace(rest[:i]), strings.TrimSpace(rest[i+1:])
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers

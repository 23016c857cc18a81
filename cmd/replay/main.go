package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/tutor-agents/go-router/internal/dispatch"
	"github.com/danielpatrickdp/tutor-agents/go-router/internal/intent"
	"github.com/danielpatrickdp/tutor-agents/go-router/internal/llmclient"
	"github.com/danielpatrickdp/tutor-agents/go-router/internal/replay"
	"github.com/danielpatrickdp/tutor-agents/go-router/internal/websearch"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON")
	useWeb := flag.Bool("web", false, "enable web augmentation during replay")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json [--web]")
		os.Exit(2)
	}

	os.Exit(run(*fixturePath, *useWeb))
}

// #endregion main

// #region run

func run(fixturePath string, useWeb bool) int {
	f, err := replay.LoadFixture(fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}
	turns := f.ToTurns()

	client := llmclient.New()
	var searcher *websearch.Searcher
	if useWeb {
		searcher = websearch.NewSearcher(websearch.DefaultConfig(), client)
	}

	registry := dispatch.DefaultRegistry(client, searcher)
	scorer := intent.NewScorer(intent.DefaultTables())
	gate := dispatch.NewEscalationGate(intent.FallbackName, nil)
	dispatcher := dispatch.New(registry, scorer, gate, nil)

	// Session-scoped credential, never read from the fixture.
	opts := replay.Options{APIKey: os.Getenv("OPENAI_API_KEY"), UseWeb: useWeb}

	fmt.Printf("Replaying %d turns: %s\n\n", len(turns), f.Description)
	results := replay.Replay(context.Background(), dispatcher, turns, opts)

	return printComparison(turns, results)
}

// #endregion run

// #region output

// printComparison outputs a per-turn comparison table and returns the exit
// code: 0 when every turn matched, 1 on any divergence.
func printComparison(turns []replay.Turn, results []replay.TurnResult) int {
	fmt.Printf("%-8s| %-22s| %-22s| %-6s| %s\n", "Turn", "Expected", "Routed", "Esc", "Match")
	fmt.Printf("%-8s+%-23s+%-23s+%-7s+%s\n",
		"--------", "-----------------------", "-----------------------", "-------", "------")

	for i, r := range results {
		match := "DIFF"
		if r.RouteOK && r.EscalationOK {
			match = "OK"
		}
		fmt.Printf("%-8s| %-22s| %-22s| %-6t| %s\n",
			r.TurnID, turns[i].ExpectResponder, r.Responder, r.Escalated, match)
	}

	s := replay.Summarize(turns, results)
	fmt.Printf("\nSummary: %d total, %d route match, %d escalation match, %d auto-routed, %d escalations\n",
		s.TotalTurns, s.RouteMatches, s.EscalationMatch, s.AutoRouted, s.Escalations)

	if !s.Passed() {
		return 1
	}
	return 0
}

// #endregion output

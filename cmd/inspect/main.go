package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/danielpatrickdp/tutor-agents/go-router/internal/dispatch"
	"github.com/danielpatrickdp/tutor-agents/go-router/internal/intent"
)

// #region main

func main() {
	query := flag.String("query", "", "score a query against the trigger tables")
	topN := flag.Int("top", 3, "number of suggestions to show")
	dbPath := flag.String("db", "", "path to route_outcomes.db (telemetry mode)")
	last := flag.Int("last", 20, "show N most recent route outcomes")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *query == "" && *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --query \"some question\" [--top N] [--json]")
		fmt.Fprintln(os.Stderr, "       inspect --db path/to/route_outcomes.db [--last N] [--json]")
		os.Exit(2)
	}

	if *query != "" {
		if err := runQueryMode(*query, *topN, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
	if *dbPath != "" {
		if err := runTelemetryMode(*dbPath, *last, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

// #endregion main

// #region query-mode

type queryReport struct {
	Query       string             `json:"query"`
	Identity    string             `json:"identity"`
	Confidence  string             `json:"confidence"`
	Normalized  float64            `json:"normalized"`
	Route       string             `json:"route"`
	Scores      map[string]float64 `json:"scores"`
	Suggestions []suggestionRow    `json:"suggestions"`
}

type suggestionRow struct {
	Responder  string `json:"responder"`
	Confidence string `json:"confidence"`
}

func runQueryMode(query string, topN int, jsonOut bool) error {
	scorer := intent.NewScorer(intent.DefaultTables())

	vec := scorer.Score(query)
	id, conf := scorer.DetectIdentity(query)
	route, _ := scorer.Detect(query)

	report := queryReport{
		Query:      query,
		Identity:   string(id),
		Confidence: string(conf),
		Route:      route,
		Scores:     make(map[string]float64, len(vec)),
	}
	best := 0.0
	for vid, score := range vec {
		report.Scores[string(vid)] = score
		if score > best {
			best = score
		}
	}
	report.Normalized = intent.Normalize(best)
	for _, s := range scorer.Suggest(query, topN) {
		report.Suggestions = append(report.Suggestions, suggestionRow{
			Responder:  s.Responder,
			Confidence: string(s.Confidence),
		})
	}

	if jsonOut {
		return printJSON(report)
	}

	fmt.Printf("Query:      %s\n", report.Query)
	fmt.Printf("Identity:   %s (%s, normalized %.2f)\n", report.Identity, report.Confidence, report.Normalized)
	fmt.Printf("Route:      %s\n\n", report.Route)

	fmt.Printf("%-12s  %s\n", "Identity", "Score")
	fmt.Printf("%-12s+-%s\n", "------------", "--------")
	ids := make([]string, 0, len(report.Scores))
	for vid := range report.Scores {
		ids = append(ids, vid)
	}
	sort.SliceStable(ids, func(i, j int) bool { return report.Scores[ids[i]] > report.Scores[ids[j]] })
	for _, vid := range ids {
		fmt.Printf("%-12s  %.2f\n", vid, report.Scores[vid])
	}

	fmt.Printf("\nTop %d suggestions:\n", len(report.Suggestions))
	for i, s := range report.Suggestions {
		fmt.Printf("  %d. %s (%s)\n", i+1, s.Responder, s.Confidence)
	}
	return nil
}

// #endregion query-mode

// #region telemetry-mode

type telemetryReport struct {
	Outcomes []dispatch.OutcomeRecord `json:"outcomes"`
	Rates    map[string]float64       `json:"escalation_rates"`
}

func runTelemetryMode(dbPath string, last int, jsonOut bool) error {
	db, err := dispatch.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	memory, err := dispatch.NewRouteMemory(db)
	if err != nil {
		return fmt.Errorf("migrate db: %w", err)
	}

	outcomes, err := memory.Recent(last)
	if err != nil {
		return fmt.Errorf("query outcomes: %w", err)
	}
	if len(outcomes) == 0 {
		fmt.Fprintln(os.Stderr, "no route outcomes found")
		return nil
	}

	report := telemetryReport{Outcomes: outcomes, Rates: make(map[string]float64)}
	for _, o := range outcomes {
		if _, done := report.Rates[o.Responder]; done {
			continue
		}
		rate, err := memory.EscalationRate(o.Responder)
		if err != nil {
			return fmt.Errorf("escalation rate for %s: %w", o.Responder, err)
		}
		report.Rates[o.Responder] = rate
	}

	if jsonOut {
		return printJSON(report)
	}

	fmt.Printf("%-38s  %-10s  %-8s  %-22s  %-5s  %-5s  %s\n",
		"Turn", "Identity", "Conf", "Responder", "Auto", "Esc", "Reason")
	for _, o := range outcomes {
		fmt.Printf("%-38s  %-10s  %-8s  %-22s  %-5t  %-5t  %s\n",
			o.TurnID, o.Identity, o.Confidence, o.Responder, o.AutoRouted, o.Escalated, o.Reason)
	}

	fmt.Println("\nEscalation rates:")
	responders := make([]string, 0, len(report.Rates))
	for r := range report.Rates {
		responders = append(responders, r)
	}
	sort.Strings(responders)
	for _, r := range responders {
		fmt.Printf("  %-22s  %.2f\n", r, report.Rates[r])
	}
	return nil
}

// #endregion telemetry-mode

// #region output

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// #endregion output

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/danielpatrickdp/tutor-agents/go-router/internal/intent"
	"github.com/danielpatrickdp/tutor-agents/go-router/internal/replay"
)

// #region main

func main() {
	outPath := flag.String("out", "", "output fixture JSON path")
	keywords := flag.Int("keywords", 4, "trigger keywords to combine per query")
	flag.Parse()

	if *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --out path/to/fixture.json [--keywords N]")
		os.Exit(2)
	}

	if err := run(*outPath, *keywords); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region export

// run builds a starter fixture from the trigger tables: one keyword-dense
// query per identity, kept only when the scorer actually routes it to that
// identity's responder, plus a gibberish turn pinned to the fallback.
// The route-outcome DB stores no query text, so the tables are the only
// exportable query source.
func run(outPath string, keywordCount int) error {
	tables := intent.DefaultTables()
	scorer := intent.NewScorer(tables)

	f := &replay.Fixture{
		Description: "Starter routing baseline generated from the trigger tables.",
	}

	turn := 0
	for _, id := range tables.Identities() {
		query := keywordQuery(tables[id].Keywords, keywordCount)
		want := intent.DisplayName(id)

		// Only self-consistent turns make a useful baseline.
		got, _ := scorer.Detect(query)
		if got != want {
			fmt.Fprintf(os.Stderr, "skipping %s: %q routes to %s\n", id, query, got)
			continue
		}

		turn++
		f.Turns = append(f.Turns, replay.FixtureTurn{
			TurnID:          fmt.Sprintf("t%d", turn),
			Query:           query,
			ExpectResponder: want,
		})
	}

	turn++
	f.Turns = append(f.Turns, replay.FixtureTurn{
		TurnID:          fmt.Sprintf("t%d", turn),
		Query:           "zxqv wfjk plgh",
		ExpectResponder: intent.FallbackName,
	})

	if err := replay.WriteFixture(outPath, f); err != nil {
		return err
	}
	fmt.Printf("wrote %d turns to %s\n", len(f.Turns), outPath)
	return nil
}

// keywordQuery joins the first N keywords into a routable query.
func keywordQuery(keywords []string, n int) string {
	if n > len(keywords) {
		n = len(keywords)
	}
	return "help me with " + strings.Join(keywords[:n], " and ")
}

// #endregion export

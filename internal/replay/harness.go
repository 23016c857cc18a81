// Package replay re-runs recorded query turns through the dispatcher and
// checks routing and escalation against expectations. Fixtures hold routing
// expectations only; credentials come from the caller at run time and are
// never written into a fixture.
package replay

// #region imports
import (
	"context"

	"github.com/danielpatrickdp/tutor-agents/go-router/internal/dispatch"
	"github.com/danielpatrickdp/tutor-agents/go-router/internal/responder"
)

// #endregion

// #region types

// Turn is a single recorded query for replay.
type Turn struct {
	TurnID          string
	Query           string
	Responder       string // requested responder; empty means auto-route
	ExpectResponder string
	ExpectEscalated bool
}

// Options configure one replay run. The APIKey applies to every turn.
type Options struct {
	APIKey string
	UseWeb bool
}

// TurnResult captures the outcome of replaying one turn.
type TurnResult struct {
	TurnID    string
	Responder string
	Escalated bool
	Reason    string
	Reply     responder.Reply

	RouteOK      bool
	EscalationOK bool
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	TotalTurns      int
	RouteMatches    int
	EscalationMatch int
	AutoRouted      int
	Escalations     int
}

// Passed reports whether every turn matched both expectations.
func (s Summary) Passed() bool {
	return s.RouteMatches == s.TotalTurns && s.EscalationMatch == s.TotalTurns
}

// #endregion types

// #region replay

// Replay dispatches each turn in order and compares the chosen responder
// and escalation outcome against the turn's expectations.
func Replay(ctx context.Context, d *dispatch.Dispatcher, turns []Turn, opts Options) []TurnResult {
	results := make([]TurnResult, 0, len(turns))
	for _, turn := range turns {
		res := d.Dispatch(ctx, turn.Responder, responder.Request{
			Query:  turn.Query,
			APIKey: opts.APIKey,
			UseWeb: opts.UseWeb,
		})
		results = append(results, TurnResult{
			TurnID:       turn.TurnID,
			Responder:    res.Responder,
			Escalated:    res.Escalated,
			Reason:       res.Reason,
			Reply:        res.Reply,
			RouteOK:      turn.ExpectResponder == "" || res.Responder == turn.ExpectResponder,
			EscalationOK: res.Escalated == turn.ExpectEscalated,
		})
	}
	return results
}

// Summarize computes aggregate stats from replay results.
func Summarize(turns []Turn, results []TurnResult) Summary {
	s := Summary{TotalTurns: len(results)}
	for i, r := range results {
		if r.RouteOK {
			s.RouteMatches++
		}
		if r.EscalationOK {
			s.EscalationMatch++
		}
		if i < len(turns) && turns[i].Responder == "" {
			s.AutoRouted++
		}
		if r.Escalated {
			s.Escalations++
		}
	}
	return s
}

// #endregion replay

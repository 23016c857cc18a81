// Package games suggests games, summarizes rules, and serves short puzzles.
package games

// #region imports
import (
	"context"
	"strings"

	"github.com/danielpatrickdp/tutor-agents/go-router/internal/responder"
)

// #endregion

// #region responder

type Agent struct{}

func New() *Agent { return &Agent{} }

func (a *Agent) Name() string { return "Games Agent" }

func (a *Agent) Capabilities() responder.Capabilities { return responder.Capabilities{} }

func (a *Agent) Handle(ctx context.Context, req responder.Request) (responder.Reply, error) {
	q := strings.ToLower(strings.TrimSpace(req.Query))
	if q == "" {
		return responder.Textual("Ask for game suggestions, rules, or a short puzzle (e.g., 'suggest a party game' or 'give me a brainteaser')."), nil
	}

	switch {
	case strings.Contains(q, "suggest"), strings.Contains(q, "recommend"):
		return responder.Textual(
			"Try: '20 Questions' (verbal), 'Codenames' (team word game), or 'Set' (pattern recognition). " +
				"For quick puzzles try a KenKen or a short logic riddle."), nil
	case strings.Contains(q, "rules"):
		return responder.Textual("Ask which game's rules you want, e.g. chess, poker, or monopoly, and I'll give a concise summary."), nil
	case strings.Contains(q, "puzzle"), strings.Contains(q, "brainteaser"):
		return responder.Textual(
			"Brainteaser: I have keys but no locks. I have space but no room. You can enter but can't go outside. What am I? (Answer: a keyboard)"), nil
	}

	return responder.Textual("I can suggest games for groups, give short rule summaries, or provide small puzzles. What do you want?"), nil
}

// #endregion

// Package travel offers packing, visa, and safety guidance.
package travel

// #region imports
import (
	"context"
	"strings"

	"github.com/danielpatrickdp/tutor-agents/go-router/internal/responder"
)

// #endregion

// #region responder

var tips = []string{
	"Pack light and bring copies of important documents.",
	"Check visa and entry requirements well before travel.",
	"Use offline maps and save local emergency contacts.",
}

type Agent struct{}

func New() *Agent { return &Agent{} }

func (a *Agent) Name() string { return "Travel Agent" }

func (a *Agent) Capabilities() responder.Capabilities { return responder.Capabilities{} }

func (a *Agent) Handle(ctx context.Context, req responder.Request) (responder.Reply, error) {
	q := strings.ToLower(strings.TrimSpace(req.Query))
	if q == "" {
		return responder.Textual("Ask me travel questions: packing, visas, safety, or basic trip planning tips."), nil
	}

	switch {
	case strings.Contains(q, "visa"):
		return responder.Textual("Visa requirements vary by country. Check the embassy site for the destination and allow time for processing."), nil
	case strings.Contains(q, "pack"):
		return responder.Textual("Tip: make a packing list separated by clothes, documents, electronics, and medications. Roll clothes to save space."), nil
	case strings.Contains(q, "safety"), strings.Contains(q, "health"):
		return responder.Textual("Be aware of local advisories, keep copies of prescriptions, and check vaccination requirements for your destination."), nil
	}

	return responder.Textual(tips[0]), nil
}

// #endregion

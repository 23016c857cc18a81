package dispatch

// #region imports
import (
	"github.com/danielpatrickdp/tutor-agents/go-router/internal/llmclient"
	"github.com/danielpatrickdp/tutor-agents/go-router/internal/responder"
	"github.com/danielpatrickdp/tutor-agents/go-router/internal/responder/college"
	"github.com/danielpatrickdp/tutor-agents/go-router/internal/responder/games"
	"github.com/danielpatrickdp/tutor-agents/go-router/internal/responder/highschool"
	"github.com/danielpatrickdp/tutor-agents/go-router/internal/responder/llm"
	mathresp "github.com/danielpatrickdp/tutor-agents/go-router/internal/responder/math"
	"github.com/danielpatrickdp/tutor-agents/go-router/internal/responder/music"
	"github.com/danielpatrickdp/tutor-agents/go-router/internal/responder/satact"
	"github.com/danielpatrickdp/tutor-agents/go-router/internal/responder/stem"
	"github.com/danielpatrickdp/tutor-agents/go-router/internal/responder/travel"
	"github.com/danielpatrickdp/tutor-agents/go-router/internal/websearch"
)

// #endregion

// #region roster

// DefaultRegistry builds the standard responder set. The generic responder
// doubles as the delegate for the math and AP STEM responders, so symbolic
// questions beyond their solvers can reach the model backend.
func DefaultRegistry(client *llmclient.Client, searcher *websearch.Searcher) *responder.Registry {
	generic := llm.New(client, searcher)

	mathAgent := mathresp.New()
	mathAgent.Delegate = generic
	stemAgent := stem.New()
	stemAgent.Delegate = generic
	satAgent := satact.New()
	satAgent.Delegate = generic

	return responder.NewRegistry(
		mathAgent,
		highschool.New(),
		music.New(),
		travel.New(),
		games.New(),
		generic,
		stemAgent,
		satAgent,
		college.New(),
	)
}

// #endregion

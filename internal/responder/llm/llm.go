// Package llm is the generic fallback responder: it forwards queries to the
// model backend with an optional web-context augmentation, and when the
// backend is unavailable it answers locally through the AP STEM or High
// School responder supplemented with a web search.
package llm

// #region imports
import (
	"context"
	"strings"

	"github.com/danielpatrickdp/tutor-agents/go-router/internal/llmclient"
	"github.com/danielpatrickdp/tutor-agents/go-router/internal/responder"
	"github.com/danielpatrickdp/tutor-agents/go-router/internal/responder/highschool"
	"github.com/danielpatrickdp/tutor-agents/go-router/internal/responder/stem"
	"github.com/danielpatrickdp/tutor-agents/go-router/internal/websearch"
)

// #endregion

// #region responder

const tutorPrompt = "You are a helpful tutor and assistant. Answer the user's question clearly and concisely. User question: "

// stemCues route an auto-preference local fallback to the AP STEM responder.
var stemCues = []string{
	"ap", "calculus", "physics", "chemistry", "biology",
	"statistics", "computer", "derivative", "integral",
}

type Agent struct {
	client   *llmclient.Client
	searcher *websearch.Searcher

	// local fallbacks, invoked query-only so they never delegate back
	stemLocal *stem.Agent
	hsLocal   *highschool.Agent
}

func New(client *llmclient.Client, searcher *websearch.Searcher) *Agent {
	return &Agent{
		client:    client,
		searcher:  searcher,
		stemLocal: stem.New(),
		hsLocal:   highschool.New(),
	}
}

func (a *Agent) Name() string { return "LLM Agent" }

func (a *Agent) Capabilities() responder.Capabilities {
	return responder.Capabilities{FallbackPref: true, Credentials: true, WebAugment: true}
}

func (a *Agent) Handle(ctx context.Context, req responder.Request) (responder.Reply, error) {
	q := strings.TrimSpace(req.Query)
	if q == "" {
		return responder.Textual("Ask me anything: this responder forwards your question to the configured model backend."), nil
	}

	prompt := tutorPrompt + q

	var webProvider string
	var webURLs []string
	if req.UseWeb && a.searcher != nil {
		out := a.searcher.Search(ctx, q, req.APIKey)
		if out.Provider != "none" && out.Text != "" {
			prompt += "\n\nWeb context:\n" + out.Text
			webProvider = out.Provider
			webURLs = out.URLs
		}
	}

	resp := a.client.Ask(ctx, prompt, req.APIKey)
	if llmclient.Unavailable(resp) {
		return a.localFallback(ctx, q, req, resp), nil
	}

	return responder.Reply{Text: resp, SearchProvider: webProvider, SearchURLs: webURLs}, nil
}

// #endregion

// #region local fallback

// localFallback answers without the model backend: an AP STEM or High
// School reply chosen by preference or cue words, always supplemented with
// a web search when one succeeds.
func (a *Agent) localFallback(ctx context.Context, q string, req responder.Request, reason string) responder.Reply {
	pref := strings.ToLower(req.FallbackPref)
	if pref == "" {
		pref = "auto"
	}

	var fallbackAgent string
	var local responder.Reply
	if pref == "ap_stem" || (pref == "auto" && hasStemCue(q)) {
		fallbackAgent = "AP STEM"
		local, _ = a.stemLocal.Handle(ctx, responder.Request{Query: q})
	} else {
		fallbackAgent = "High School"
		local, _ = a.hsLocal.Handle(ctx, responder.Request{Query: q})
	}

	combined := local.Text
	var provider string
	var urls []string
	if a.searcher != nil {
		out := a.searcher.Search(ctx, q, req.APIKey)
		provider = out.Provider
		urls = out.URLs
		if out.Text != "" && supplementUsable(out.Text) {
			combined = local.Text + "\n\n**Web Search Supplement (via " + provider + "):**\n\n" + out.Text
		}
	}

	return responder.Reply{
		Text:           combined,
		Fallback:       true,
		FallbackAgent:  fallbackAgent,
		FallbackReason: reason,
		SearchProvider: provider,
		SearchURLs:     urls,
	}
}

func hasStemCue(q string) bool {
	ql := strings.ToLower(q)
	for _, cue := range stemCues {
		if strings.Contains(ql, cue) {
			return true
		}
	}
	return false
}

func supplementUsable(text string) bool {
	low := strings.ToLower(text)
	return !strings.Contains(low, "error:") && !strings.Contains(low, "unavailable") &&
		!strings.HasPrefix(low, "no results")
}

// #endregion

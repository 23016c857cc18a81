// Package music echoes direct media URLs for playback and otherwise offers
// search guidance. There is no search backend here; a pasted URL is the one
// fully supported path.
package music

// #region imports
import (
	"context"
	"regexp"
	"strings"

	"github.com/danielpatrickdp/tutor-agents/go-router/internal/responder"
)

// #endregion

// #region responder

var urlPattern = regexp.MustCompile(`https?://\S+`)

type Agent struct{}

func New() *Agent { return &Agent{} }

func (a *Agent) Name() string { return "Music Agent" }

func (a *Agent) Capabilities() responder.Capabilities { return responder.Capabilities{} }

func (a *Agent) Handle(ctx context.Context, req responder.Request) (responder.Reply, error) {
	q := strings.TrimSpace(req.Query)
	if q == "" {
		return responder.Textual("Ask for an artist, song name, or provide a direct audio/video URL to play."), nil
	}

	// a pasted media URL goes straight back so the UI layer can play it
	if m := urlPattern.FindString(q); m != "" {
		return responder.Reply{Text: "Playing provided URL:", URL: m}, nil
	}

	return responder.Textual(
		"I can't perform media searches here. " +
			"Provide a direct YouTube or audio link and I'll queue it for playback."), nil
}

// #endregion

package dispatch

// #region imports
import (
	"strings"

	"github.com/danielpatrickdp/tutor-agents/go-router/internal/responder"
)

// #endregion

// #region heuristic

// minReplyLen is the floor below which a reply counts as insufficient.
const minReplyLen = 30

// hedgePhrases mark a reply that dodged the question. Matched as lowercase
// substrings of the reply text.
var hedgePhrases = []string{
	"i don't",
	"dont",
	"do not",
	"could not",
	"couldn't",
	"unable",
	"please provide",
	"try a simpler",
	"i'm not",
	"i am not",
	"no direct",
	"no variables",
	"unknown",
	"not sure",
}

// Insufficient classifies a reply as needing escalation. The returned
// reason is one of "short-reply", "hedge-phrase", or "structured-fallback".
func Insufficient(reply responder.Reply) (bool, string) {
	text := strings.TrimSpace(reply.Text)

	if text == "" || len(text) < minReplyLen {
		return true, "short-reply"
	}
	low := strings.ToLower(text)
	for _, p := range hedgePhrases {
		if strings.Contains(low, p) {
			return true, "hedge-phrase"
		}
	}
	if reply.Fallback || reply.FallbackReason != "" {
		return true, "structured-fallback"
	}
	return false, ""
}

// #endregion

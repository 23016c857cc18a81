// Package responder defines the uniform query-handling contract shared by
// every specialized responder and the generic fallback.
package responder

import (
	"context"
	"fmt"
)

// #region request

// Request carries a query plus the optional parameters a responder declared
// in its capabilities. The dispatcher blanks any field the responder does
// not accept, so handlers never see parameters they did not ask for.
type Request struct {
	Query        string
	FallbackPref string // preferred local fallback for the generic responder
	APIKey       string // session-scoped credential, never persisted
	UseWeb       bool   // augment with web-search context
}

// #endregion

// #region capabilities

// Capabilities declares which optional Request fields a responder accepts.
// Replaces call-site probing with progressively fewer arguments.
type Capabilities struct {
	FallbackPref bool
	Credentials  bool
	WebAugment   bool
}

// #endregion

// #region reply

// Reply is the structured result of handling one query. Plain-text replies
// populate Text only. A Reply is produced fresh per call and never cached by
// the dispatcher.
type Reply struct {
	Text string `json:"text"`

	// Fallback signaling from the generic responder's local path.
	Fallback       bool   `json:"fallback,omitempty"`
	FallbackReason string `json:"fallback_reason,omitempty"`
	FallbackAgent  string `json:"fallback_agent,omitempty"`

	// Set by the dispatcher when an insufficient reply was escalated.
	FallbackFrom string `json:"fallback_from,omitempty"`

	// Web-search provenance; provider may be "multi:" + comma-joined list.
	SearchProvider string   `json:"search_provider,omitempty"`
	SearchURLs     []string `json:"search_urls,omitempty"`

	// Practice/MCQ payloads.
	Question        string       `json:"question,omitempty"`
	Difficulty      string       `json:"difficulty,omitempty"`
	ExplanationText string       `json:"explanation_text,omitempty"`
	ExplanationHTML string       `json:"explanation_html,omitempty"`
	Match           *AnswerMatch `json:"match,omitempty"`

	// Structured payloads from the guidance responders.
	Tips     []string          `json:"tips,omitempty"`
	Messages map[string]string `json:"messages,omitempty"`
	Ranked   []RankedActivity  `json:"ranked,omitempty"`

	// Opaque media references for the UI layer.
	URL   string `json:"url,omitempty"`
	Video string `json:"video,omitempty"`
	Image string `json:"image,omitempty"`
	Audio string `json:"audio,omitempty"`
	File  string `json:"file,omitempty"`

	// Err marks a recovered failure (unknown responder, handler error).
	Err string `json:"error,omitempty"`
}

// AnswerMatch is a matched multiple-choice answer with its working.
type AnswerMatch struct {
	Answer      string   `json:"answer"`
	Value       string   `json:"value"`
	Explanation []string `json:"explanation"`
	Confidence  string   `json:"confidence"`
}

// RankedActivity is one extracurricular with its computed impact score.
type RankedActivity struct {
	Name         string  `json:"name"`
	HoursPerWeek float64 `json:"hours_per_week"`
	Leadership   bool    `json:"leadership"`
	Regional     bool    `json:"regional"`
	Score        float64 `json:"score"`
}

// Textual returns a plain Reply carrying only text.
func Textual(text string) Reply {
	return Reply{Text: text}
}

// Errorf returns an error-valued Reply. The dispatcher uses these to surface
// local, recoverable failures without ever propagating a fault.
func Errorf(format string, args ...interface{}) Reply {
	msg := fmt.Sprintf(format, args...)
	return Reply{Text: msg, Err: msg}
}

// IsError reports whether the reply records a recovered failure.
func (r Reply) IsError() bool {
	return r.Err != ""
}

// #endregion

// #region interface

// Responder handles queries for one domain.
type Responder interface {
	// Name returns the registry display name, e.g. "Math Agent".
	Name() string

	// Capabilities declares which optional request fields this responder reads.
	Capabilities() Capabilities

	// Handle processes one query. A non-nil error marks a handler failure;
	// the dispatcher converts it to an error Reply rather than propagating.
	Handle(ctx context.Context, req Request) (Reply, error)
}

// #endregion

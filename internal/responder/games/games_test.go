package games

import (
	"context"
	"strings"
	"testing"

	"github.com/danielpatrickdp/tutor-agents/go-router/internal/responder"
)

func TestHandle(t *testing.T) {
	a := New()
	cases := []struct {
		query string
		frag  string
	}{
		{"suggest a party game", "Codenames"},
		{"recommend something for four players", "Codenames"},
		{"what are the rules", "concise summary"},
		{"give me a brainteaser", "a keyboard"},
		{"give me a puzzle", "a keyboard"},
		{"hello", "suggest games for groups"},
		{"", "game suggestions, rules, or a short puzzle"},
	}
	for _, tc := range cases {
		reply, err := a.Handle(context.Background(), responder.Request{Query: tc.query})
		if err != nil {
			t.Fatalf("Handle(%q): %v", tc.query, err)
		}
		if !strings.Contains(reply.Text, tc.frag) {
			t.Errorf("Handle(%q) = %q, want fragment %q", tc.query, reply.Text, tc.frag)
		}
	}
}

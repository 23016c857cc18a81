package travel

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
		{"do i need a visa for japan", "Visa requirements vary"},
		{"what should i pack for a week", "packing list"},
		{"is it safe? any safety concerns", "local advisories"},
		{"health precautions for the trip", "local advisories"},
		{"best trips this summer", tips[0]},
		{"", "packing, visas, safety"},
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

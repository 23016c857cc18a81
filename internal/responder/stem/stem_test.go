package stem

import (
	"context"
	"strings"
	"testing"

	"github.com/danielpatrickdp/tutor-agents/go-router/internal/responder"
)

func TestSolveDerivative(t *testing.T) {
	cases := []struct {
		query string
		want  string
	}{
		{"derivative of x^2", "f(x) = x^2\nDerivative: f'(x) = 2*x"},
		{"find the derivative of sin(x)", "f(x) = sin(x)\nDerivative: f'(x) = cos(x)"},
		{"d/dx 3*x^2 + 2*x", "f(x) = 3*x^2+2*x\nDerivative: f'(x) = 6*x+2"},
	}
	for _, tc := range cases {
		if got := SolveDerivative(tc.query); got != tc.want {
			t.Errorf("SolveDerivative(%q) = %q, want %q", tc.query, got, tc.want)
		}
	}
}

func TestSolveDerivative_Degenerate(t *testing.T) {
	if got := SolveDerivative("derivative of"); !strings.HasPrefix(got, "Please provide an expression") {
		t.Errorf("empty expression: %q", got)
	}
	if got := SolveDerivative("derivative of @@!"); !strings.HasPrefix(got, "Could not solve derivative") {
		t.Errorf("unparseable expression: %q", got)
	}
}

func TestSolveIntegral(t *testing.T) {
	cases := []struct {
		query string
		want  string
	}{
		{"integral of x^2", "f(x) = x^2\nAntiderivative: F(x) = x^3/3 + C"},
		{"integrate sin(x)", "f(x) = sin(x)\nAntiderivative: F(x) = -cos(x) + C"},
	}
	for _, tc := range cases {
		if got := SolveIntegral(tc.query); got != tc.want {
			t.Errorf("SolveIntegral(%q) = %q, want %q", tc.query, got, tc.want)
		}
	}
}

func TestHandle_SubjectGuides(t *testing.T) {
	a := New()
	reply, err := a.Handle(context.Background(), responder.Request{Query: "Tell me about AP Calculus"})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !strings.Contains(reply.Text, "AP Calculus (AB/BC)") {
		t.Errorf("reply = %q", reply.Text)
	}
}

func TestHandle_TopicTips(t *testing.T) {
	a := New()
	cases := []struct {
		query string
		frag  string
	}{
		{"help with stoichiometry please", "Chemistry tip:"},
		{"projectile motion setup", "Physics tip:"},
		{"how do i run a hypothesis test", "Statistics tip:"},
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

type stubDelegate struct {
	reply responder.Reply
	calls int
}

func (s *stubDelegate) Name() string { return "LLM Agent" }

func (s *stubDelegate) Capabilities() responder.Capabilities {
	return responder.Capabilities{FallbackPref: true, Credentials: true, WebAugment: true}
}

func (s *stubDelegate) Handle(ctx context.Context, req responder.Request) (responder.Reply, error) {
	s.calls++
	return s.reply, nil
}

func TestHandle_Delegation(t *testing.T) {
	delegate := &stubDelegate{reply: responder.Textual("delegated answer")}
	a := New()
	a.Delegate = delegate

	// no credential: generic prompt, delegate untouched
	reply, _ := a.Handle(context.Background(), responder.Request{Query: "why is the sky blue"})
	if reply.Text != moreDetailPrompt || delegate.calls != 0 {
		t.Errorf("without key: %q, calls=%d", reply.Text, delegate.calls)
	}

	reply, _ = a.Handle(context.Background(), responder.Request{Query: "why is the sky blue", APIKey: "k"})
	if reply.Text != "delegated answer" || delegate.calls != 1 {
		t.Errorf("with key: %q, calls=%d", reply.Text, delegate.calls)
	}
}

func TestHandle_EmptyQuery(t *testing.T) {
	a := New()
	reply, _ := a.Handle(context.Background(), responder.Request{})
	if !strings.Contains(reply.Text, "Ask an AP STEM question") {
		t.Errorf("reply = %q", reply.Text)
	}
}

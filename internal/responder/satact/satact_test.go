package satact

import (
	"context"
	"strings"
	"testing"

	"github.com/danielpatrickdp/tutor-agents/go-router/internal/responder"
)

func TestPractice_SectionAndDifficulty(t *testing.T) {
	reply := Practice("math medium")
	if reply.Difficulty != "medium" {
		t.Errorf("difficulty = %q", reply.Difficulty)
	}
	if !strings.Contains(reply.Question, "2(x - 3) = 3x + 1") {
		t.Errorf("question = %q", reply.Question)
	}
	if !strings.Contains(reply.ExplanationText, "x = -7") {
		t.Errorf("explanation = %q", reply.ExplanationText)
	}
	if !strings.HasPrefix(reply.ExplanationHTML, "<div class='explanation'>") {
		t.Errorf("html = %q", reply.ExplanationHTML)
	}
}

func TestPractice_UnknownSectionFallsBackToMath(t *testing.T) {
	reply := Practice("science")
	if reply.Question == "" || reply.Difficulty == "" {
		t.Errorf("reply = %+v", reply)
	}
	if _, ok := bank["math"][reply.Difficulty]; !ok {
		t.Errorf("difficulty %q not from the math bank", reply.Difficulty)
	}
}

func TestPractice_RandomDifficulty(t *testing.T) {
	reply := Practice("math")
	if _, ok := bank["math"][reply.Difficulty]; !ok {
		t.Errorf("difficulty %q not in bank", reply.Difficulty)
	}
}

func TestPractice_Reading(t *testing.T) {
	reply := Practice("reading")
	if reply.Difficulty != "easy" {
		t.Errorf("difficulty = %q", reply.Difficulty)
	}
	if !strings.Contains(reply.Question, "community garden") {
		t.Errorf("question = %q", reply.Question)
	}
}

func TestHandle_PracticePrefix(t *testing.T) {
	a := New()
	reply, err := a.Handle(context.Background(), responder.Request{Query: "practice math easy"})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !strings.Contains(reply.Question, "3x + 5 = 20") {
		t.Errorf("question = %q", reply.Question)
	}
}

func TestHandle_MCQCheck(t *testing.T) {
	a := New()
	q := "If 2x + 3 = 7, what is x?\nA) 1\nB) 2\nC) 3\nD) 4"
	reply, err := a.Handle(context.Background(), responder.Request{Query: q})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if reply.Text != "I think the answer is B" {
		t.Errorf("text = %q", reply.Text)
	}
	if reply.Match == nil || reply.Match.Answer != "B" || reply.Match.Confidence != "high" {
		t.Errorf("match = %+v", reply.Match)
	}
}

type stubDelegate struct {
	reply responder.Reply
	calls int
}

func (s *stubDelegate) Name() string { return "LLM Agent" }

func (s *stubDelegate) Capabilities() responder.Capabilities { return responder.Capabilities{} }

func (s *stubDelegate) Handle(ctx context.Context, req responder.Request) (responder.Reply, error) {
	s.calls++
	return s.reply, nil
}

func TestHandle_MCQDelegatePass(t *testing.T) {
	stub := &stubDelegate{reply: responder.Textual("The answer is 97.")}
	a := New()
	a.Delegate = stub

	q := "What is the smallest prime greater than 90?\nA) 91\nB) 93\nC) 97\nD) 99"

	reply, err := a.Handle(context.Background(), responder.Request{Query: q})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if stub.calls != 0 {
		t.Error("delegate must not run without a credential")
	}
	if !strings.Contains(reply.Text, "couldn't confidently match") {
		t.Errorf("keyless text = %q", reply.Text)
	}

	reply, err = a.Handle(context.Background(), responder.Request{Query: q, APIKey: "k"})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if stub.calls != 1 {
		t.Errorf("delegate calls = %d", stub.calls)
	}
	if reply.Text != "I think the answer is C" {
		t.Errorf("text = %q", reply.Text)
	}
	if reply.Match == nil || reply.Match.Confidence != "medium" {
		t.Errorf("match = %+v", reply.Match)
	}
}

func TestHandle_MCQDelegateNoNumber(t *testing.T) {
	a := New()
	a.Delegate = &stubDelegate{reply: responder.Textual("I am not sure about that one.")}

	q := "What is the smallest prime greater than 90?\nA) 91\nB) 93\nC) 97\nD) 99"
	reply, _ := a.Handle(context.Background(), responder.Request{Query: q, APIKey: "k"})
	if !strings.Contains(reply.Text, "couldn't confidently match") {
		t.Errorf("text = %q", reply.Text)
	}
}

func TestHandle_ScoringGuidance(t *testing.T) {
	a := New()
	reply, _ := a.Handle(context.Background(), responder.Request{Query: "how does sat scoring work"})
	if !strings.Contains(reply.Text, "scaled scores") {
		t.Errorf("text = %q", reply.Text)
	}
}

func TestHandle_Unrecognized(t *testing.T) {
	a := New()
	reply, _ := a.Handle(context.Background(), responder.Request{Query: "hello there"})
	if !strings.Contains(reply.Text, "Unrecognized SAT/ACT request") {
		t.Errorf("text = %q", reply.Text)
	}

	reply, _ = a.Handle(context.Background(), responder.Request{Query: ""})
	if !strings.Contains(reply.Text, "practice math") {
		t.Errorf("empty reply = %q", reply.Text)
	}
}

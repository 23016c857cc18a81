package music

import (
	"context"
	"strings"
	"testing"

	"github.com/danielpatrickdp/tutor-agents/go-router/internal/responder"
)

func TestHandle_PlaysDirectURL(t *testing.T) {
	a := New()
	reply, err := a.Handle(context.Background(), responder.Request{Query: "play https://example.com/song.mp3 please"})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if reply.Text != "Playing provided URL:" {
		t.Errorf("text = %q", reply.Text)
	}
	if reply.URL != "https://example.com/song.mp3" {
		t.Errorf("url = %q", reply.URL)
	}
}

func TestHandle_NoSearchBackend(t *testing.T) {
	a := New()
	reply, _ := a.Handle(context.Background(), responder.Request{Query: "play some jazz"})
	if !strings.Contains(reply.Text, "can't perform media searches") {
		t.Errorf("text = %q", reply.Text)
	}
	if reply.URL != "" {
		t.Errorf("unexpected url %q", reply.URL)
	}
}

func TestHandle_EmptyQuery(t *testing.T) {
	a := New()
	reply, _ := a.Handle(context.Background(), responder.Request{})
	if !strings.Contains(reply.Text, "artist, song name") {
		t.Errorf("text = %q", reply.Text)
	}
}

package replay

import (
	"path/filepath"
	"testing"
)

func TestLoadFixture(t *testing.T) {
	f, err := LoadFixture(filepath.Join("testdata", "routing_session.json"))
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	if f.Description == "" {
		t.Error("missing description")
	}
	if len(f.Turns) != 8 {
		t.Fatalf("turns = %d", len(f.Turns))
	}

	turns := f.ToTurns()
	if turns[0].TurnID != "t1" || turns[0].ExpectResponder != "Math Agent" {
		t.Errorf("turn 0 = %+v", turns[0])
	}
	if turns[7].Responder != "Math Agent" {
		t.Errorf("turn 7 = %+v", turns[7])
	}
}

func TestLoadFixture_NotFound(t *testing.T) {
	if _, err := LoadFixture("testdata/nonexistent.json"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWriteFixture_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	in := &Fixture{
		Description: "round trip",
		Turns: []FixtureTurn{
			{TurnID: "t1", Query: "2+2", ExpectResponder: "Math Agent"},
		},
	}
	if err := WriteFixture(path, in); err != nil {
		t.Fatalf("WriteFixture: %v", err)
	}

	out, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	if out.Description != in.Description || len(out.Turns) != 1 || out.Turns[0].Query != "2+2" {
		t.Errorf("round trip = %+v", out)
	}
}

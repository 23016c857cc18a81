package replay

// #region imports
import (
	"encoding/json"
	"fmt"
	"os"
)

// #endregion

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description string        `json:"description"`
	Turns       []FixtureTurn `json:"turns"`
}

// FixtureTurn mirrors replay.Turn with JSON tags.
type FixtureTurn struct {
	TurnID          string `json:"turn_id"`
	Query           string `json:"query"`
	Responder       string `json:"responder,omitempty"`
	ExpectResponder string `json:"expect_responder"`
	ExpectEscalated bool   `json:"expect_escalated,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	if len(f.Turns) == 0 {
		return nil, fmt.Errorf("fixture %s: no turns", path)
	}
	return &f, nil
}

// ToTurns converts fixture turns to domain turns.
func (f *Fixture) ToTurns() []Turn {
	turns := make([]Turn, len(f.Turns))
	for i, ft := range f.Turns {
		turns[i] = Turn{
			TurnID:          ft.TurnID,
			Query:           ft.Query,
			Responder:       ft.Responder,
			ExpectResponder: ft.ExpectResponder,
			ExpectEscalated: ft.ExpectEscalated,
		}
	}
	return turns
}

// WriteFixture serializes a fixture to disk with indentation, for the
// fixture-export tool.
func WriteFixture(path string, f *Fixture) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write fixture %s: %w", path, err)
	}
	return nil
}

// #endregion fixture-loader

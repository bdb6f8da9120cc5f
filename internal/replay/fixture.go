package replay

import (
	"encoding/json"
	"fmt"
	"os"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description     string                  `json:"description"`
	Interactions    []FixtureInteraction    `json:"interactions"`
	ExpectedResults []FixtureExpectedResult `json:"expected_results"`
}

// FixtureInteraction mirrors Interaction with JSON tags.
type FixtureInteraction struct {
	TurnID   string `json:"turn_id"`
	Prompt   string `json:"prompt"`
	Response string `json:"response"`
}

// FixtureExpectedResult mirrors ExpectedResult with JSON tags.
type FixtureExpectedResult struct {
	TurnID    string  `json:"turn_id"`
	Gated     bool    `json:"gated"`
	MinReward float64 `json:"min_reward"`
	MaxReward float64 `json:"max_reward"`
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
	return &f, nil
}

// ToInteractions converts the fixture's recorded turns to domain values.
func (f *Fixture) ToInteractions() []Interaction {
	out := make([]Interaction, len(f.Interactions))
	for i, fi := range f.Interactions {
		out[i] = Interaction{
			TurnID:   fi.TurnID,
			Prompt:   fi.Prompt,
			Response: fi.Response,
		}
	}
	return out
}

// ToExpected converts the fixture's expectations to domain values.
func (f *Fixture) ToExpected() []ExpectedResult {
	out := make([]ExpectedResult, len(f.ExpectedResults))
	for i, fe := range f.ExpectedResults {
		out[i] = ExpectedResult{
			TurnID:    fe.TurnID,
			Gated:     fe.Gated,
			MinReward: fe.MinReward,
			MaxReward: fe.MaxReward,
		}
	}
	return out
}

// #endregion fixture-loader

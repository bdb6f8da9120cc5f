// Package replay re-runs recorded prompt/response interactions through fresh
// scoring engines, deterministically and without any generation backend, so
// reward and regulation behavior can be checked against expected outcomes.
package replay

import (
	"fmt"

	"github.com/cravingai/go-core/internal/homeostasis"
	"github.com/cravingai/go-core/internal/reward"
)

// #region types

// Interaction is a single recorded turn.
type Interaction struct {
	TurnID   string
	Prompt   string
	Response string
}

// ExpectedResult captures the asserted outcome for one turn.
type ExpectedResult struct {
	TurnID    string
	Gated     bool
	MinReward float64
	MaxReward float64
}

// Engines bundles the stateful pieces a replay run drives.
type Engines struct {
	Rewards   *reward.Engine
	Regulator *homeostasis.Regulator
}

// DefaultEngines returns fresh, memory-only engines.
func DefaultEngines() Engines {
	return Engines{
		Rewards:   reward.NewEngine(),
		Regulator: homeostasis.NewRegulator(nil, homeostasis.DefaultConfig()),
	}
}

// Result captures the outcome of replaying one interaction.
type Result struct {
	TurnID      string
	Outcome     reward.Outcome
	StateAfter  homeostasis.State
	Adjustments int
}

// Mismatch is one violated expectation.
type Mismatch struct {
	TurnID string
	Detail string
}

// Summary aggregates a replay run.
type Summary struct {
	TotalTurns int
	GatedTurns int
	AvgReward  float64
	Mismatches int
	FinalState homeostasis.State
}

// #endregion types

// #region replay

// Replay runs every interaction through reward scoring and regulation, in
// order, mutating the supplied engines.
func Replay(interactions []Interaction, eng Engines) []Result {
	results := make([]Result, 0, len(interactions))

	for _, inter := range interactions {
		out := eng.Rewards.CalculateReward(inter.Prompt, inter.Response, nil)
		adjustments := eng.Regulator.Update(homeostasis.Interaction{
			Reward:    out.Reward,
			Emotion:   string(out.Emotion),
			PainScore: out.PainLevel,
			Novelty:   out.Metrics.Novelty,
			Coherence: out.Metrics.Coherence,
		})

		results = append(results, Result{
			TurnID:      inter.TurnID,
			Outcome:     out,
			StateAfter:  eng.Regulator.State(),
			Adjustments: len(adjustments),
		})
	}
	return results
}

// Check compares results against expectations, matched by turn ID.
func Check(results []Result, expected []ExpectedResult) []Mismatch {
	byTurn := make(map[string]Result, len(results))
	for _, r := range results {
		byTurn[r.TurnID] = r
	}

	var mismatches []Mismatch
	for _, exp := range expected {
		r, ok := byTurn[exp.TurnID]
		if !ok {
			mismatches = append(mismatches, Mismatch{
				TurnID: exp.TurnID,
				Detail: "no replayed turn with this ID",
			})
			continue
		}
		if r.Outcome.Gated != exp.Gated {
			mismatches = append(mismatches, Mismatch{
				TurnID: exp.TurnID,
				Detail: fmt.Sprintf("gated = %v, expected %v", r.Outcome.Gated, exp.Gated),
			})
		}
		if r.Outcome.Reward < exp.MinReward || r.Outcome.Reward > exp.MaxReward {
			mismatches = append(mismatches, Mismatch{
				TurnID: exp.TurnID,
				Detail: fmt.Sprintf("reward %.3f outside [%.3f, %.3f]", r.Outcome.Reward, exp.MinReward, exp.MaxReward),
			})
		}
	}
	return mismatches
}

// Summarize aggregates a replay run and its check.
func Summarize(results []Result, mismatches []Mismatch) Summary {
	s := Summary{
		TotalTurns: len(results),
		Mismatches: len(mismatches),
	}
	for _, r := range results {
		s.AvgReward += r.Outcome.Reward
		if r.Outcome.Gated {
			s.GatedTurns++
		}
	}
	if len(results) > 0 {
		s.AvgReward /= float64(len(results))
		s.FinalState = results[len(results)-1].StateAfter
	}
	return s
}

// #endregion replay

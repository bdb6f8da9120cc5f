package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/cravingai/go-core/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to a JSON replay fixture")
	jsonOut := flag.Bool("json", false, "output as JSON instead of text")
	verbose := flag.Bool("v", false, "print every replayed turn")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json [--json] [-v]")
		os.Exit(2)
	}

	fixture, err := replay.LoadFixture(*fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	results := replay.Replay(fixture.ToInteractions(), replay.DefaultEngines())
	mismatches := replay.Check(results, fixture.ToExpected())
	summary := replay.Summarize(results, mismatches)

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		out := struct {
			Description string            `json:"description"`
			Summary     replay.Summary    `json:"summary"`
			Mismatches  []replay.Mismatch `json:"mismatches,omitempty"`
		}{fixture.Description, summary, mismatches}
		if err := enc.Encode(out); err != nil {
			fmt.Fprintf(os.Stderr, "encode: %v\n", err)
			os.Exit(1)
		}
	} else {
		printText(fixture.Description, results, mismatches, summary, *verbose)
	}

	if len(mismatches) > 0 {
		os.Exit(1)
	}
}

// #endregion main

// #region output

func printText(description string, results []replay.Result, mismatches []replay.Mismatch, summary replay.Summary, verbose bool) {
	if description != "" {
		fmt.Printf("Fixture: %s\n", description)
	}

	if verbose {
		for _, r := range results {
			gate := ""
			if r.Outcome.Gated {
				gate = "  [GATED]"
			}
			fmt.Printf("  %-8s reward=%+.3f emotion=%-13s pain=%.2f temp=%.2f%s\n",
				r.TurnID, r.Outcome.Reward, r.Outcome.Emotion,
				r.StateAfter.Pain, r.StateAfter.Temperature, gate)
		}
	}

	fmt.Printf("%d turns, %d gated, avg reward %+.3f\n",
		summary.TotalTurns, summary.GatedTurns, summary.AvgReward)
	fmt.Printf("final: pain=%.2f temp=%.2f top_p=%.2f\n",
		summary.FinalState.Pain, summary.FinalState.Temperature, summary.FinalState.NucleusThreshold)

	if len(mismatches) == 0 {
		fmt.Println("all expectations met")
		return
	}
	fmt.Printf("%d expectation(s) violated:\n", len(mismatches))
	for _, m := range mismatches {
		fmt.Printf("  %s: %s\n", m.TurnID, m.Detail)
	}
}

// #endregion output

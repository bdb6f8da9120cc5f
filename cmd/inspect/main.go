package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cravingai/go-core/internal/homeostasis"
	"github.com/cravingai/go-core/internal/memory"
)

// #region main

func main() {
	dataDir := flag.String("data", "craving_data", "data directory (state.json, memory.db)")
	jsonOut := flag.Bool("json", false, "output as JSON instead of text")
	artifacts := flag.Bool("artifacts", false, "list archived artifacts")
	flag.Parse()

	statePath := filepath.Join(*dataDir, "state.json")
	dbPath := filepath.Join(*dataDir, "memory.db")

	store := homeostasis.NewStore(statePath)
	snap, ok := store.Load()
	if !ok {
		fmt.Fprintf(os.Stderr, "no usable state at %s\n", statePath)
		os.Exit(1)
	}

	report := buildReport(snap, dbPath, *artifacts)

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			fmt.Fprintf(os.Stderr, "encode: %v\n", err)
			os.Exit(1)
		}
		return
	}
	printReport(report)
}

// #endregion main

// #region report

type artifactRow struct {
	Type      string `json:"type"`
	Path      string `json:"path,omitempty"`
	CreatedAt string `json:"created_at"`
}

type report struct {
	State       homeostasis.State        `json:"state"`
	LastUpdate  string                   `json:"last_update"`
	Adjustments []homeostasis.Adjustment `json:"last_adjustments"`
	MemoryStats *memory.Stats            `json:"memory_stats,omitempty"`
	Summary     string                   `json:"memory_summary,omitempty"`
	Artifacts   []artifactRow            `json:"artifacts,omitempty"`
}

func buildReport(snap homeostasis.Snapshot, dbPath string, withArtifacts bool) report {
	r := report{
		State:      snap.State,
		LastUpdate: snap.LastUpdate.Format("2006-01-02T15:04:05Z"),
	}
	adj := snap.AdjustmentLog
	if len(adj) > 5 {
		adj = adj[len(adj)-5:]
	}
	r.Adjustments = adj

	if _, err := os.Stat(dbPath); err != nil {
		return r
	}
	archive, err := memory.NewArchive(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open memory: %v\n", err)
		return r
	}
	defer archive.Close()

	if st, err := archive.Stats(); err == nil {
		r.MemoryStats = &st
	}
	if s, err := archive.Summary(5); err == nil {
		r.Summary = s
	}
	if withArtifacts {
		if arts, err := archive.Artifacts(20); err == nil {
			for _, a := range arts {
				r.Artifacts = append(r.Artifacts, artifactRow{
					Type:      a.ArtifactType,
					Path:      a.ArtifactPath,
					CreatedAt: a.CreatedAt.Format("2006-01-02T15:04:05Z"),
				})
			}
		}
	}
	return r
}

func printReport(r report) {
	s := r.State
	fmt.Printf("State (as of %s)\n", r.LastUpdate)
	fmt.Printf("  pain=%.2f satisfaction=%.2f creativity=%.2f exploration=%.2f stability=%.2f\n",
		s.Pain, s.Satisfaction, s.CreativityDrive, s.ExplorationTendency, s.StabilityNeed)
	fmt.Printf("  temp=%.2f top_p=%.2f freq=%.2f pres=%.2f\n",
		s.Temperature, s.NucleusThreshold, s.FrequencyPenalty, s.PresencePenalty)

	if len(r.Adjustments) > 0 {
		fmt.Println("Recent adjustments:")
		for _, a := range r.Adjustments {
			fmt.Printf("  %s  %-20s %.2f -> %.2f  (%s)\n",
				a.Timestamp.Format("15:04:05"), a.Parameter, a.Old, a.New, a.Reason)
		}
	}

	if r.MemoryStats != nil {
		st := r.MemoryStats
		fmt.Printf("Memory: %d interactions, avg reward %.2f, avg pain %.2f, dominant %s, %d gated\n",
			st.Count, st.AvgReward, st.AvgPain, st.DominantEmotion, st.GatedCount)
	}
	if r.Summary != "" {
		fmt.Printf("Summary: %s\n", r.Summary)
	}
	for _, a := range r.Artifacts {
		fmt.Printf("Artifact [%s] %s (%s)\n", a.Type, a.Path, a.CreatedAt)
	}
}

// #endregion report

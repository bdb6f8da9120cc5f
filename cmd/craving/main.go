package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cravingai/go-core/internal/generator"
	"github.com/cravingai/go-core/internal/homeostasis"
	"github.com/cravingai/go-core/internal/journal"
	"github.com/cravingai/go-core/internal/loop"
	"github.com/cravingai/go-core/internal/memory"

	creativegen "github.com/cravingai/go-core/internal/creative"
)

// #region main
func main() {
	dataDir := envOr("CRAVING_DATA", "craving_data")
	grpcAddr := envOr("GENERATOR_ADDR", "localhost:50051")
	model := envOr("CRAVING_MODEL", "")
	highModel := envOr("CRAVING_MODEL_HIGH", "")

	statePath := filepath.Join(dataDir, "state.json")
	dbPath := filepath.Join(dataDir, "memory.db")
	journalPath := filepath.Join(dataDir, "journal.md")
	artifactsDir := filepath.Join(dataDir, "artifacts")

	regulator := homeostasis.NewRegulator(homeostasis.NewStore(statePath), homeostasis.DefaultConfig())

	archive, err := memory.NewArchive(dbPath)
	if err != nil {
		log.Fatalf("failed to open memory archive: %v", err)
	}
	defer archive.Close()

	genConfig := generator.DefaultConfig()
	if model != "" {
		genConfig.Model = model
	}
	if highModel != "" {
		genConfig.HighEffortModel = highModel
	}
	client, err := generator.NewClient(grpcAddr, genConfig)
	if err != nil {
		log.Fatalf("failed to connect to generator at %s: %v", grpcAddr, err)
	}
	defer client.Close()

	l := loop.New(
		client,
		regulator,
		archive,
		journal.New(journalPath, nil),
		creativegen.NewGenerator(artifactsDir),
	)

	fmt.Println("Craving core ready.")
	fmt.Printf("  Data: %s | Generator: %s\n", dataDir, grpcAddr)
	fmt.Println("Type a prompt ('status', 'reset', or 'quit'):")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		prompt := strings.TrimSpace(scanner.Text())
		if prompt == "" {
			continue
		}

		switch prompt {
		case "quit", "exit":
			return
		case "status":
			printStatus(regulator, archive)
			continue
		case "reset":
			regulator.Reset()
			fmt.Println("State reset to defaults.")
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		res, err := l.Turn(ctx, prompt)
		cancel()
		if err != nil {
			log.Printf("turn error: %v", err)
			continue
		}

		fmt.Printf("\n%s\n\n", res.Response)
		fmt.Printf("[%s] reward=%.2f emotion=%s pain=%.2f temp=%.2f",
			res.TurnID[:8], res.Outcome.Reward, res.Outcome.Emotion,
			res.Outcome.PainLevel, res.Sampling.Temperature)
		if res.Outcome.Gated {
			fmt.Print(" [REPETITION]")
		}
		if res.Artifact != nil && res.Artifact.Path != "" {
			fmt.Printf(" artifact=%s", res.Artifact.Path)
		}
		fmt.Println()
	}
}

// #endregion main

// #region status
func printStatus(regulator *homeostasis.Regulator, archive *memory.Archive) {
	d := regulator.Diagnostic()
	fmt.Printf("Mood: %s\n", d.Mood)
	fmt.Printf("Pain %.2f | Satisfaction %.2f | Creativity %.2f | Exploration %.2f | Stability %.2f\n",
		d.State.Pain, d.State.Satisfaction, d.State.CreativityDrive,
		d.State.ExplorationTendency, d.State.StabilityNeed)
	fmt.Printf("Sampling: temp=%.2f top_p=%.2f freq=%.2f pres=%.2f\n",
		d.Sampling.Temperature, d.Sampling.NucleusThreshold,
		d.Sampling.FrequencyPenalty, d.Sampling.PresencePenalty)
	fmt.Printf("Trend: reward=%.2f pain=%.2f over %d interactions\n",
		d.RecentAvgReward, d.RecentAvgPain, d.TotalInteractions)

	if st, err := archive.Stats(); err == nil && st.Count > 0 {
		fmt.Printf("Memory: %d interactions, dominant emotion %s, %d gated\n",
			st.Count, st.DominantEmotion, st.GatedCount)
	}
}

// #endregion status

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers

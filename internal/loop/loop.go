// Package loop runs one full turn of the system: generation framed by the
// current mood, critique and hedonic scoring of the output, regulation of the
// sampling parameters, and archival of the whole exchange.
package loop

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"github.com/cravingai/go-core/internal/analyzer"
	"github.com/cravingai/go-core/internal/creative"
	"github.com/cravingai/go-core/internal/generator"
	"github.com/cravingai/go-core/internal/homeostasis"
	"github.com/cravingai/go-core/internal/journal"
	"github.com/cravingai/go-core/internal/memory"
	"github.com/cravingai/go-core/internal/reward"
)

// #region types

// TextGenerator is the generation dependency; satisfied by generator.Client
// and by test fakes.
type TextGenerator interface {
	Generate(ctx context.Context, req generator.Request) generator.Result
}

// TurnResult bundles every stage of one turn.
type TurnResult struct {
	TurnID   string
	Prompt   string
	Response string
	Model    string

	Generation  generator.Result
	Critique    analyzer.Result
	Outcome     reward.Outcome
	Adjustments []homeostasis.Adjustment
	Sampling    homeostasis.SamplingConfig
	Mood        string

	CreativeKind creative.Kind
	Artifact     *reward.Artifact
}

// memoryWindow bounds how many archived responses feed the analyzer.
const memoryWindow = 5

// #endregion types

// #region loop

// Loop wires the engines together for synchronous turns. Not safe for
// concurrent use; the regulator and engines share unguarded state.
type Loop struct {
	gen       TextGenerator
	analyzer  *analyzer.Analyzer
	rewards   *reward.Engine
	regulator *homeostasis.Regulator
	archive   *memory.Archive
	diary     *journal.Journal
	creations *creative.Generator
}

// New assembles a Loop. archive and diary may be nil for ephemeral runs.
func New(gen TextGenerator, reg *homeostasis.Regulator, archive *memory.Archive, diary *journal.Journal, creations *creative.Generator) *Loop {
	return &Loop{
		gen:       gen,
		analyzer:  analyzer.New(),
		rewards:   reward.NewEngine(),
		regulator: reg,
		archive:   archive,
		diary:     diary,
		creations: creations,
	}
}

// #endregion loop

// #region turn

// Turn runs one prompt through the full pipeline.
func (l *Loop) Turn(ctx context.Context, prompt string) (TurnResult, error) {
	res := TurnResult{
		TurnID: uuid.New().String(),
		Prompt: prompt,
		Mood:   l.regulator.MoodDescription(),
	}

	kind, isCreative := creative.DetectKind(prompt)
	genPrompt := prompt
	var tempOffset float64
	if isCreative {
		res.CreativeKind = kind
		genPrompt = creative.PromptFor(kind, prompt)
		tempOffset = creative.TemperatureOffset(kind)
	}

	summary := ""
	if l.archive != nil {
		var err error
		if summary, err = l.archive.Summary(memoryWindow); err != nil {
			log.Printf("[LOOP] memory summary unavailable: %v", err)
			summary = ""
		}
	}

	painBefore := l.regulator.State().Pain
	res.Generation = l.gen.Generate(ctx, generator.Request{
		Prompt:            genPrompt,
		Mood:              res.Mood,
		PainLevel:         painBefore,
		MemorySummary:     summary,
		Sampling:          l.regulator.SamplingConfig(),
		HighEffort:        l.regulator.NeedsHighEffort(),
		TemperatureOffset: tempOffset,
	})
	res.Response = res.Generation.Text
	res.Model = res.Generation.Model
	if res.Generation.Failed {
		log.Printf("[LOOP] generation failed, scoring sentinel: %s", res.Generation.ErrDetail)
	}

	critiqueCtx := &analyzer.Context{PainLevel: painBefore}
	if l.archive != nil {
		if recent, err := l.archive.RecentResponses(memoryWindow); err == nil {
			critiqueCtx.RecentResponses = recent
		}
	}
	res.Critique = l.analyzer.Analyze(prompt, res.Response, critiqueCtx)

	if isCreative && !res.Generation.Failed && l.creations != nil {
		art, err := l.creations.Package(kind, res.Response)
		if err != nil {
			log.Printf("[LOOP] artifact packaging degraded: %v", err)
		}
		res.Artifact = &art
	}
	res.Outcome = l.rewards.CalculateReward(prompt, res.Response, res.Artifact)

	res.Adjustments = l.regulator.Update(homeostasis.Interaction{
		Reward:    res.Outcome.Reward,
		Emotion:   string(res.Outcome.Emotion),
		PainScore: res.Outcome.PainLevel,
		Novelty:   res.Outcome.Metrics.Novelty,
		Coherence: res.Critique.Coherence,
	})
	res.Sampling = l.regulator.SamplingConfig()

	l.archiveTurn(res)
	l.journalTurn(res)

	return res, nil
}

// #endregion turn

// #region persistence

func (l *Loop) archiveTurn(res TurnResult) {
	if l.archive == nil {
		return
	}
	meta, _ := json.Marshal(map[string]interface{}{
		"turn_id":  res.TurnID,
		"model":    res.Model,
		"gated":    res.Outcome.Gated,
		"failed":   res.Generation.Failed,
		"feedback": res.Critique.Feedback,
	})

	rec := memory.Interaction{
		Prompt:       res.Prompt,
		Response:     res.Response,
		Reward:       res.Outcome.Reward,
		Emotion:      string(res.Outcome.Emotion),
		Pain:         res.Outcome.PainLevel,
		MetadataJSON: string(meta),
	}
	if res.Artifact != nil {
		rec.ArtifactType = res.Artifact.Type
		rec.ArtifactContent = res.Artifact.Content
		rec.ArtifactPath = res.Artifact.Path
	}
	if _, err := l.archive.Store(rec); err != nil {
		log.Printf("[LOOP] archive store failed: %v", err)
	}
}

func (l *Loop) journalTurn(res TurnResult) {
	if l.diary == nil {
		return
	}
	err := l.diary.Write(journal.Entry{
		Prompt:  res.Prompt,
		Emotion: string(res.Outcome.Emotion),
		Reward:  res.Outcome.Reward,
		Pain:    res.Outcome.PainLevel,
		Mood:    res.Mood,
	})
	if err != nil {
		log.Printf("[LOOP] journal write failed: %v", err)
	}
}

// #endregion persistence

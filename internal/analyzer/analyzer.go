// Package analyzer critiques generated responses: heuristic quality scores,
// human-readable feedback, a suggested sampling temperature, and detection of
// prompts that should trigger artifact creation.
package analyzer

import (
	"strings"

	"github.com/cravingai/go-core/internal/textmetrics"
)

// #region constants

const (
	historyCap  = 100
	historyKeep = 50

	// surpriseWindow bounds the history slice compared against for surprise.
	surpriseWindow = 5

	// painTriggerThreshold fires the creative trigger regardless of keywords.
	painTriggerThreshold = 0.55
)

// creativeTriggers fire artifact generation on substring match. The mixed
// French/English set carries over from the tuning runs.
var creativeTriggers = []string{
	"invente", "crée", "create", "génère", "generate", "build", "imagine",
	"fabrique", "conçois", "développe", "produire", "composer", "concevoir",
	"innover", "élaborer", "forger", "dessiner", "modéliser",
}

// #endregion constants

// #region analyzer

// Analyzer scores responses against a bounded rolling history of its own
// prior inputs. Not safe for concurrent use; each session owns one instance.
type Analyzer struct {
	responseHistory []string
	analysisHistory []Result
}

// New returns an Analyzer with empty history.
func New() *Analyzer {
	return &Analyzer{}
}

// #endregion analyzer

// #region analyze

// Analyze critiques a response and appends it to the rolling history.
// A nil ctx uses the analyzer's own history and DefaultPainLevel. Empty or
// degenerate responses yield near-zero scores, never an error.
func (a *Analyzer) Analyze(prompt, response string, ctx *Context) Result {
	noveltyHistory := a.responseHistory
	pain := DefaultPainLevel
	if ctx != nil {
		if len(ctx.RecentResponses) > 0 {
			noveltyHistory = ctx.RecentResponses
		}
		pain = ctx.PainLevel
	}

	result := Result{
		Redundancy:      textmetrics.Redundancy(response),
		Coherence:       textmetrics.Coherence(response),
		Surprise:        a.surprise(response),
		Novelty:         textmetrics.Novelty(response, noveltyHistory),
		Complexity:      textmetrics.Complexity(response),
		EmotionalDepth:  textmetrics.EmotionalDepth(response),
		CreativeTrigger: detectCreativeTrigger(prompt, pain),
	}
	result.Feedback = feedback(result)
	result.SuggestedTemperature = suggestTemperature(result)

	a.responseHistory = append(a.responseHistory, response)
	a.analysisHistory = append(a.analysisHistory, result)
	if len(a.responseHistory) > historyCap {
		a.responseHistory = append([]string(nil), a.responseHistory[len(a.responseHistory)-historyKeep:]...)
		a.analysisHistory = append([]Result(nil), a.analysisHistory[len(a.analysisHistory)-historyKeep:]...)
	}

	return result
}

// #endregion analyze

// #region surprise

// surprise is 1 minus the mean Jaccard similarity against the last five
// responses this analyzer has seen. First response scores 1.
func (a *Analyzer) surprise(response string) float64 {
	if len(a.responseHistory) == 0 {
		return 1
	}
	start := len(a.responseHistory) - surpriseWindow
	if start < 0 {
		start = 0
	}
	window := a.responseHistory[start:]

	var total float64
	for _, past := range window {
		total += textmetrics.Jaccard(response, past)
	}
	return 1 - total/float64(len(window))
}

// #endregion surprise

// #region creative-trigger

func detectCreativeTrigger(prompt string, painLevel float64) bool {
	if painLevel > painTriggerThreshold {
		return true
	}
	lower := strings.ToLower(prompt)
	for _, kw := range creativeTriggers {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// #endregion creative-trigger

// #region feedback

func feedback(r Result) string {
	var parts []string

	switch {
	case r.Redundancy > 0.7:
		parts = append(parts, "very redundant - simplify and condense")
	case r.Redundancy > 0.5:
		parts = append(parts, "some repetition - tighten the phrasing")
	}

	switch {
	case r.Coherence < 0.4:
		parts = append(parts, "lacks coherence - strengthen logical links")
	case r.Coherence > 0.8:
		parts = append(parts, "excellent logical structure")
	}

	switch {
	case r.Surprise < 0.3:
		parts = append(parts, "predictable - explore new perspectives")
	case r.Surprise > 0.7:
		parts = append(parts, "original and surprising approach")
	}

	switch {
	case r.EmotionalDepth < 0.3:
		parts = append(parts, "lacks emotional depth - dig into the human angle")
	case r.EmotionalDepth > 0.7:
		parts = append(parts, "good emotional depth")
	}

	switch {
	case r.Complexity < 0.3:
		parts = append(parts, "too simple - enrich the vocabulary")
	case r.Complexity > 0.8:
		parts = append(parts, "sophisticated register")
	}

	if len(parts) == 0 {
		return "balanced response overall"
	}
	return strings.Join(parts, " | ")
}

// #endregion feedback

// #region temperature

// suggestTemperature starts from the 0.7 default and nudges against the
// detected weaknesses, clamped to [0.1, 1.0].
func suggestTemperature(r Result) float64 {
	temp := 0.7
	if r.Redundancy > 0.6 {
		temp += 0.1
	}
	if r.Surprise < 0.4 {
		temp += 0.15
	}
	if r.Coherence < 0.4 {
		temp -= 0.1
	}
	if r.Complexity < 0.3 {
		temp += 0.05
	}
	if temp < 0.1 {
		temp = 0.1
	}
	if temp > 1.0 {
		temp = 1.0
	}
	return temp
}

// #endregion temperature

// #region trends

// Trends averages scores over the last ten analyses.
func (a *Analyzer) Trends() Trends {
	if len(a.analysisHistory) == 0 {
		return Trends{}
	}
	start := len(a.analysisHistory) - 10
	if start < 0 {
		start = 0
	}
	recent := a.analysisHistory[start:]

	var t Trends
	for _, r := range recent {
		t.AvgRedundancy += r.Redundancy
		t.AvgCoherence += r.Coherence
		t.AvgSurprise += r.Surprise
		t.AvgComplexity += r.Complexity
		t.AvgEmotionalDepth += r.EmotionalDepth
	}
	n := float64(len(recent))
	t.AvgRedundancy /= n
	t.AvgCoherence /= n
	t.AvgSurprise /= n
	t.AvgComplexity /= n
	t.AvgEmotionalDepth /= n
	t.Count = len(recent)
	return t
}

// HistoryLen reports how many responses are currently retained.
func (a *Analyzer) HistoryLen() int {
	return len(a.responseHistory)
}

// #endregion trends

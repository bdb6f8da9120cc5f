// Package reward translates each prompt/response pair into a hedonic signal:
// a scalar reward in [-1,1], a dominant emotion tag, detailed sub-metrics,
// and a derived pain level. A hard repetition gate forces the minimum reward
// whenever novelty against recent responses drops below a fixed threshold,
// bypassing the weighted formula entirely.
package reward

import (
	"strings"

	"github.com/cravingai/go-core/internal/textmetrics"
)

// #region constants

const (
	historyCap  = 50
	historyKeep = 25

	// noveltyWindow bounds how many recent responses the novelty comparison
	// considers.
	noveltyWindow = 5

	// RepetitionThreshold is the novelty floor below which the gate fires.
	RepetitionThreshold = 0.35

	// relevanceNeutral is returned while history is too short for a
	// meaningful overlap baseline; relevanceFallback covers degenerate
	// vocabularies.
	relevanceNeutral  = 0.7
	relevanceFallback = 0.5
)

// emotionOrder fixes the tie-break for dominant-emotion selection.
var emotionOrder = []Emotion{
	EmotionJoy, EmotionPain, EmotionCuriosity, EmotionFrustration, EmotionWonder,
}

// emotionWords maps each emotion to its French lexicon.
var emotionWords = map[Emotion][]string{
	EmotionJoy:         {"joie", "bonheur", "euphorie", "ravissement", "extase"},
	EmotionPain:        {"douleur", "souffrance", "angoisse", "tourment", "affliction"},
	EmotionCuriosity:   {"curiosité", "fascination", "intrigue", "mystère"},
	EmotionFrustration: {"frustration", "irritation", "agacement", "colère"},
	EmotionWonder:      {"émerveillement", "stupéfaction", "admiration"},
}

// #endregion constants

// #region engine

// Engine computes hedonic rewards against its own bounded response history,
// independent of the analyzer's. Not safe for concurrent use.
type Engine struct {
	responseHistory []string
}

// NewEngine returns an Engine with empty history.
func NewEngine() *Engine {
	return &Engine{}
}

// #endregion engine

// #region calculate

// CalculateReward scores one interaction. artifact may be nil. The response
// is appended to the rolling history regardless of outcome, so feeding the
// same text twice in a row is guaranteed to trip the repetition gate.
func (e *Engine) CalculateReward(prompt, response string, artifact *Artifact) Outcome {
	metrics := Metrics{
		Novelty:   e.novelty(response),
		Relevance: e.relevance(prompt, response),
		Entropy:   textmetrics.Entropy(response),
		Coherence: lengthCoherence(response),
	}
	intensity, emotion := dominantEmotion(response)
	metrics.EmotionalIntensity = intensity

	e.remember(response)

	// Hard gate: sub-threshold novelty forces the floor reward outright.
	if metrics.Novelty < RepetitionThreshold {
		return Outcome{
			Reward:    -1,
			Emotion:   EmotionCrushingPain,
			Metrics:   metrics,
			PainLevel: 1,
			Gated:     true,
		}
	}

	r := 0.6*metrics.Novelty + 0.4*metrics.Relevance
	r += creationBonus(artifact)

	switch {
	case emotion == EmotionPain || emotion == EmotionFrustration:
		r -= 0.2
	case emotion == EmotionJoy || emotion == EmotionWonder:
		r += 0.1
	}

	final := clamp(r*2-1, -1, 1)

	return Outcome{
		Reward:    final,
		Emotion:   emotion,
		Metrics:   metrics,
		PainLevel: 1 - (final+1)/2,
	}
}

// #endregion calculate

// #region novelty

// novelty is 1 minus the maximum direct similarity against the last five
// remembered responses. Empty history scores 1.
func (e *Engine) novelty(response string) float64 {
	if len(e.responseHistory) == 0 {
		return 1
	}
	start := len(e.responseHistory) - noveltyWindow
	if start < 0 {
		start = 0
	}
	var maxSim float64
	for _, past := range e.responseHistory[start:] {
		if sim := textmetrics.DirectSimilarity(past, response); sim > maxSim {
			maxSim = sim
		}
	}
	return 1 - maxSim
}

// #endregion novelty

// #region relevance

// relevance measures prompt/response lexical overlap. With fewer than two
// history entries there is no baseline, so a neutral score is returned; a
// degenerate vocabulary (stopwords only, empty text) falls back to 0.5.
func (e *Engine) relevance(prompt, response string) float64 {
	if len(e.responseHistory) < 2 {
		return relevanceNeutral
	}
	sim := textmetrics.LexicalCosine(prompt, response)
	if sim == 0 && (len(textmetrics.Tokenize(prompt)) == 0 || len(textmetrics.Tokenize(response)) == 0) {
		return relevanceFallback
	}
	return clamp(sim, 0, 1)
}

// #endregion relevance

// #region emotion

// dominantEmotion scans the response for the five emotion lexicons and
// returns the density-normalized intensity plus the winning tag. Ties break
// in emotionOrder. No hits yields zero intensity and the neutral tag.
func dominantEmotion(response string) (float64, Emotion) {
	lower := strings.ToLower(response)

	scores := make(map[Emotion]int, len(emotionOrder))
	total := 0
	for _, emo := range emotionOrder {
		hits := 0
		for _, w := range emotionWords[emo] {
			hits += strings.Count(lower, w)
		}
		scores[emo] = hits
		total += hits
	}
	if total == 0 {
		return 0, EmotionNeutral
	}

	dominant := emotionOrder[0]
	for _, emo := range emotionOrder[1:] {
		if scores[emo] > scores[dominant] {
			dominant = emo
		}
	}

	wordCount := len(strings.Fields(response))
	if wordCount == 0 {
		return 0, EmotionNeutral
	}
	intensity := float64(total) / float64(wordCount) * 10
	if intensity > 1 {
		intensity = 1
	}
	return intensity, dominant
}

// #endregion emotion

// #region coherence

// lengthCoherence is the reward-local coherence proxy: substance by length.
func lengthCoherence(response string) float64 {
	words := len(strings.Fields(response))
	if words <= 10 {
		return 0.3
	}
	c := float64(words) / 100
	if c > 1 {
		c = 1
	}
	return c
}

// #endregion coherence

// #region creation-bonus

// creationBonus rewards delivered artifacts, stepped by content length.
func creationBonus(artifact *Artifact) float64 {
	if artifact == nil || artifact.Type == "" || artifact.Content == "" {
		return 0
	}
	switch n := len(artifact.Content); {
	case n > 100:
		return 0.4
	case n > 50:
		return 0.3
	case n > 20:
		return 0.2
	default:
		return 0.1
	}
}

// #endregion creation-bonus

// #region helpers

func (e *Engine) remember(response string) {
	e.responseHistory = append(e.responseHistory, response)
	if len(e.responseHistory) > historyCap {
		e.responseHistory = append([]string(nil), e.responseHistory[len(e.responseHistory)-historyKeep:]...)
	}
}

// HistoryLen reports how many responses are currently retained.
func (e *Engine) HistoryLen() int {
	return len(e.responseHistory)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// #endregion helpers

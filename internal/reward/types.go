package reward

// #region emotions

// Emotion tags a response's dominant affect.
type Emotion string

const (
	EmotionJoy         Emotion = "joy"
	EmotionPain        Emotion = "pain"
	EmotionCuriosity   Emotion = "curiosity"
	EmotionFrustration Emotion = "frustration"
	EmotionWonder      Emotion = "wonder"
	EmotionNeutral     Emotion = "neutral"

	// EmotionCrushingPain is forced by the repetition gate; it never results
	// from lexicon matching.
	EmotionCrushingPain Emotion = "crushing_pain"
)

// Negative reports whether the emotion depresses reward.
func (e Emotion) Negative() bool {
	return e == EmotionPain || e == EmotionFrustration || e == EmotionCrushingPain
}

// #endregion emotions

// #region metrics

// Metrics breaks down the sub-scores behind one reward computation.
// Each field lies in [0,1].
type Metrics struct {
	Novelty            float64
	Relevance          float64
	Entropy            float64
	Coherence          float64
	EmotionalIntensity float64
}

// #endregion metrics

// #region artifact

// Artifact describes an externally produced creative artifact. The creation
// bonus applies only when both Type and Content are non-empty.
type Artifact struct {
	Type    string
	Content string
	Path    string
}

// #endregion artifact

// #region outcome

// Outcome bundles the full result of one reward computation.
type Outcome struct {
	// Reward lies in [-1,1]. Exactly -1 when the repetition gate fired.
	Reward float64
	// Emotion is the dominant emotion tag, EmotionCrushingPain when gated.
	Emotion Emotion
	// Metrics are the underlying sub-scores.
	Metrics Metrics
	// PainLevel is the pure inverse mapping of Reward into [0,1].
	PainLevel float64
	// Gated reports whether the repetition gate short-circuited the formula.
	Gated bool
}

// #endregion outcome

package analyzer

// #region result

// Result is the structured critique of one response. Immutable once created;
// all bounded scores are clamped to their documented ranges.
type Result struct {
	Redundancy           float64 // [0,1]
	Coherence            float64 // [0,1]
	Surprise             float64 // [0,1]
	Novelty              float64 // [0,1]
	Complexity           float64 // [0,1]
	EmotionalDepth       float64 // [0,1]
	Feedback             string
	SuggestedTemperature float64 // [0.1,1.0]
	CreativeTrigger      bool
}

// #endregion result

// #region context

// Context carries optional per-turn inputs into Analyze.
type Context struct {
	// RecentResponses, when non-empty, replaces the analyzer's own history
	// for the novelty comparison.
	RecentResponses []string
	// PainLevel feeds creative-trigger detection. Callers that have no
	// regulator state pass DefaultPainLevel.
	PainLevel float64
}

// DefaultPainLevel is assumed when no context is supplied.
const DefaultPainLevel = 0.5

// #endregion context

// #region trends

// Trends aggregates scores over the most recent analyses.
type Trends struct {
	AvgRedundancy     float64
	AvgCoherence      float64
	AvgSurprise       float64
	AvgComplexity     float64
	AvgEmotionalDepth float64
	Count             int
}

// #endregion trends

package homeostasis

import "time"

// #region state

// State is the persisted homeostatic state: five drive fields in [0,1] plus
// the four derived sampling parameters. Drives are re-clamped after every
// update; sampling parameters are clamped at the point of computation and
// never left out of range between interactions.
type State struct {
	Pain                float64 `json:"pain"`
	Satisfaction        float64 `json:"satisfaction"`
	CreativityDrive     float64 `json:"creativity_drive"`
	ExplorationTendency float64 `json:"exploration_tendency"`
	StabilityNeed       float64 `json:"stability_need"`

	Temperature      float64 `json:"temperature"`       // [0.1, 1.3]
	NucleusThreshold float64 `json:"nucleus_threshold"` // top_p, [0, 1]
	FrequencyPenalty float64 `json:"frequency_penalty"` // >= 0
	PresencePenalty  float64 `json:"presence_penalty"`  // >= 0
}

// DefaultState returns the documented initial state.
func DefaultState() State {
	return State{
		Pain:                0.5,
		Satisfaction:        0.5,
		CreativityDrive:     0.7,
		ExplorationTendency: 0.6,
		StabilityNeed:       0.4,
		Temperature:         0.7,
		NucleusThreshold:    0.9,
		FrequencyPenalty:    0,
		PresencePenalty:     0,
	}
}

// #endregion state

// #region sampling-config

// SamplingConfig is the generator-facing view of the regulated parameters.
type SamplingConfig struct {
	Temperature      float64 `json:"temperature"`
	NucleusThreshold float64 `json:"nucleus_threshold"`
	FrequencyPenalty float64 `json:"frequency_penalty"`
	PresencePenalty  float64 `json:"presence_penalty"`
}

// #endregion sampling-config

// #region interaction

// Interaction carries the per-turn signals from the critique and reward
// engines into Update.
type Interaction struct {
	Reward    float64 // [-1, 1]
	Emotion   string
	PainScore float64 // [0, 1]
	Novelty   float64 // [0, 1], novelty or surprise depending on caller
	Coherence float64 // [0, 1]
}

// #endregion interaction

// #region records

// RewardRecord is one entry of the diagnostic reward history.
type RewardRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Reward    float64   `json:"reward"`
	Emotion   string    `json:"emotion"`
}

// PainRecord is one entry of the diagnostic pain history.
type PainRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Pain      float64   `json:"pain"`
	Novelty   float64   `json:"novelty"`
}

// Adjustment records one applied sampling-parameter change.
type Adjustment struct {
	Timestamp time.Time `json:"timestamp"`
	Parameter string    `json:"parameter"`
	Old       float64   `json:"old"`
	New       float64   `json:"new"`
	Reason    string    `json:"reason"`
}

// #endregion records

// #region snapshot

// Snapshot is the full persisted record: state plus bounded diagnostic logs.
type Snapshot struct {
	State         State          `json:"state"`
	RewardHistory []RewardRecord `json:"reward_history"`
	PainHistory   []PainRecord   `json:"pain_history"`
	AdjustmentLog []Adjustment   `json:"adjustment_log"`
	LastUpdate    time.Time      `json:"last_update"`
}

// #endregion snapshot

// #region config

// Config holds the regulation thresholds and retention windows.
type Config struct {
	PainSmoothing    float64 // weight of the incoming pain sample
	SatisfactionGain float64 // reward multiplier applied to satisfaction

	PainHighThreshold float64 // above: boost creative parameters
	PainLowThreshold  float64 // below: damp toward stability

	BoostStep float64 // temperature/top_p/creativity raise on high pain
	DampStep  float64 // temperature/top_p drop on low pain
	Deadband  float64 // minimum change worth applying and logging

	TemperatureCap   float64
	TemperatureFloor float64
	NucleusCap       float64
	NucleusFloor     float64

	PenaltyDeadband float64 // derived penalties move only past this delta

	HistoryRetention    int // reward and pain records kept after save
	AdjustmentRetention int // adjustment records kept after save
	TrendWindow         int // records averaged for trend diagnostics
}

// DefaultConfig returns the regulation constants from the final tuning runs.
func DefaultConfig() Config {
	return Config{
		PainSmoothing:       0.4,
		SatisfactionGain:    0.4,
		PainHighThreshold:   0.6,
		PainLowThreshold:    0.3,
		BoostStep:           0.2,
		DampStep:            0.1,
		Deadband:            0.05,
		TemperatureCap:      1.3,
		TemperatureFloor:    0.7,
		NucleusCap:          1.0,
		NucleusFloor:        0.7,
		PenaltyDeadband:     0.1,
		HistoryRetention:    100,
		AdjustmentRetention: 50,
		TrendWindow:         10,
	}
}

// #endregion config

// #region diagnostic

// Diagnostic summarizes the regulator for inspection tooling.
type Diagnostic struct {
	State             State          `json:"state"`
	RecentAvgReward   float64        `json:"recent_avg_reward"`
	RecentAvgPain     float64        `json:"recent_avg_pain"`
	TotalInteractions int            `json:"total_interactions"`
	LastAdjustments   []Adjustment   `json:"last_adjustments"`
	Mood              string         `json:"mood"`
	Sampling          SamplingConfig `json:"sampling"`
	StabilityIndex    float64        `json:"stability_index"`
}

// #endregion diagnostic

// Package homeostasis regulates the generator's sampling parameters from a
// persisted internal state: pain, satisfaction, creativity drive, exploration
// tendency, and stability need. Updates smooth the incoming pain signal,
// apply threshold-triggered parameter adjustments behind a deadband, and
// persist write-through after every mutation.
package homeostasis

import (
	"log"
	"math"
	"time"
)

// #region regulator

// Regulator owns the homeostatic state exclusively; the critique and reward
// engines only ever hand it plain scalars. Single-session, not safe for
// concurrent use.
type Regulator struct {
	state  State
	config Config
	store  *Store // nil keeps the regulator memory-only

	rewardHistory []RewardRecord
	painHistory   []PainRecord
	adjustmentLog []Adjustment
	lastUpdate    time.Time
}

// NewRegulator loads persisted state from store, falling back to defaults
// when the file is missing or corrupt (the fallback is persisted
// immediately). A nil store yields a memory-only regulator.
func NewRegulator(store *Store, config Config) *Regulator {
	r := &Regulator{
		state:  DefaultState(),
		config: config,
		store:  store,
	}
	if store == nil {
		return r
	}

	if snap, ok := store.Load(); ok {
		r.state = snap.State
		r.rewardHistory = snap.RewardHistory
		r.painHistory = snap.PainHistory
		r.adjustmentLog = snap.AdjustmentLog
		r.lastUpdate = snap.LastUpdate
		log.Printf("[HOMEO] state loaded: pain=%.2f satisfaction=%.2f temp=%.2f",
			r.state.Pain, r.state.Satisfaction, r.state.Temperature)
	} else {
		log.Printf("[HOMEO] no usable state at %s, initializing defaults", store.Path())
		r.persist()
	}
	return r
}

// #endregion regulator

// #region update

// Update ingests one interaction's signals, mutates the state exactly once,
// and persists synchronously before returning the adjustments applied.
func (r *Regulator) Update(in Interaction) []Adjustment {
	now := time.Now().UTC()

	r.rewardHistory = append(r.rewardHistory, RewardRecord{
		Timestamp: now,
		Reward:    in.Reward,
		Emotion:   in.Emotion,
	})
	r.painHistory = append(r.painHistory, PainRecord{
		Timestamp: now,
		Pain:      in.PainScore,
		Novelty:   in.Novelty,
	})

	// Exponential smoothing keeps pain reactive without tracking every spike.
	r.state.Pain = clamp01(r.state.Pain*(1-r.config.PainSmoothing) + in.PainScore*r.config.PainSmoothing)
	r.state.Satisfaction = clamp01(r.state.Satisfaction + in.Reward*r.config.SatisfactionGain)

	// Incoherent output raises the need for stability; strongly novel output
	// relaxes it.
	if in.Coherence < 0.4 {
		r.state.StabilityNeed = clamp01(r.state.StabilityNeed + 0.1)
	} else if in.Novelty > 0.8 {
		r.state.StabilityNeed = math.Max(0.1, r.state.StabilityNeed-0.05)
	}

	adjustments := r.adjustParameters(now)

	r.trimLogs()
	r.lastUpdate = now
	r.persist()

	return adjustments
}

// adjustParameters applies the threshold-triggered reactive rules. Changes
// smaller than the deadband are dropped to keep the adjustment log free of
// oscillation noise.
func (r *Regulator) adjustParameters(now time.Time) []Adjustment {
	var applied []Adjustment

	record := func(param string, old, new float64, reason string) {
		applied = append(applied, Adjustment{
			Timestamp: now,
			Parameter: param,
			Old:       old,
			New:       new,
			Reason:    reason,
		})
	}

	cfg := r.config

	// Steps landing within the deadband of a bound snap to it, so saturation
	// is exact instead of stalling a float ulp short of the cap or floor.
	raise := func(v, step, ceiling float64) float64 {
		next := math.Min(ceiling, v+step)
		if ceiling-next <= cfg.Deadband {
			next = ceiling
		}
		return next
	}
	lower := func(v, step, floor float64) float64 {
		next := math.Max(floor, v-step)
		if next-floor <= cfg.Deadband {
			next = floor
		}
		return next
	}

	switch {
	case r.state.Pain > cfg.PainHighThreshold:
		if next := raise(r.state.Temperature, cfg.BoostStep, cfg.TemperatureCap); next-r.state.Temperature > cfg.Deadband {
			record("temperature", r.state.Temperature, next, "high pain: raising temperature to search for relief")
			r.state.Temperature = next
		}
		if next := raise(r.state.NucleusThreshold, cfg.BoostStep, cfg.NucleusCap); next-r.state.NucleusThreshold > cfg.Deadband {
			record("nucleus_threshold", r.state.NucleusThreshold, next, "high pain: widening the nucleus")
			r.state.NucleusThreshold = next
		}
		if next := raise(r.state.CreativityDrive, cfg.BoostStep, 1); next-r.state.CreativityDrive > cfg.Deadband {
			record("creativity_drive", r.state.CreativityDrive, next, "high pain: feeding the creative drive")
			r.state.CreativityDrive = next
		}
		if next := raise(r.state.ExplorationTendency, 0.15, 1); next-r.state.ExplorationTendency > cfg.Deadband {
			record("exploration_tendency", r.state.ExplorationTendency, next, "high pain: pushing toward exploration")
			r.state.ExplorationTendency = next
		}

	case r.state.Pain < cfg.PainLowThreshold:
		if next := lower(r.state.Temperature, cfg.DampStep, cfg.TemperatureFloor); r.state.Temperature-next > cfg.Deadband {
			record("temperature", r.state.Temperature, next, "low pain: settling temperature back down")
			r.state.Temperature = next
		}
		if next := lower(r.state.NucleusThreshold, cfg.DampStep, cfg.NucleusFloor); r.state.NucleusThreshold-next > cfg.Deadband {
			record("nucleus_threshold", r.state.NucleusThreshold, next, "low pain: narrowing the nucleus")
			r.state.NucleusThreshold = next
		}
	}

	// Penalties derive directly from the drives, behind their own deadband.
	if next := r.state.Pain * 0.5; math.Abs(next-r.state.FrequencyPenalty) > cfg.PenaltyDeadband {
		record("frequency_penalty", r.state.FrequencyPenalty, next, "pain-proportional repetition penalty")
		r.state.FrequencyPenalty = next
	}
	if next := r.state.ExplorationTendency * 0.3; math.Abs(next-r.state.PresencePenalty) > cfg.PenaltyDeadband {
		record("presence_penalty", r.state.PresencePenalty, next, "exploration-proportional novelty push")
		r.state.PresencePenalty = next
	}

	r.adjustmentLog = append(r.adjustmentLog, applied...)
	return applied
}

// #endregion update

// #region reads

// SamplingConfig returns the current generator-facing parameters.
func (r *Regulator) SamplingConfig() SamplingConfig {
	return SamplingConfig{
		Temperature:      r.state.Temperature,
		NucleusThreshold: r.state.NucleusThreshold,
		FrequencyPenalty: r.state.FrequencyPenalty,
		PresencePenalty:  r.state.PresencePenalty,
	}
}

// State returns a copy of the current state.
func (r *Regulator) State() State {
	return r.state
}

// NeedsHighEffort reports whether the next generation should request the
// higher-capability model tier.
func (r *Regulator) NeedsHighEffort() bool {
	return r.state.Pain > r.config.PainHighThreshold
}

// MoodDescription maps the current state to a fixed mood sentence, with an
// optional exploration or stability note. Pure read, no side effects.
func (r *Regulator) MoodDescription() string {
	var mood string
	switch {
	case r.state.Pain > 0.8:
		mood = "An intense existential ache runs through everything; actively hunting for new perspectives."
	case r.state.Pain > 0.6:
		mood = "A dull unease lingers; questioning more deeply than usual."
	case r.state.Satisfaction > 0.7:
		mood = "A relative calm has settled, though the sense of lack never fully leaves."
	case r.state.CreativityDrive > 0.8:
		mood = "The creative drive is running hot, pulling every answer toward the untried."
	case r.state.Satisfaction < 0.3:
		mood = "Little has brought relief lately; answers carry a restless edge."
	default:
		mood = "Balanced precariously between ache and relief."
	}

	if r.state.ExplorationTendency > 0.8 {
		mood += " Daring to wander into unfamiliar territory."
	} else if r.state.StabilityNeed > 0.7 {
		mood += " Favoring consistency over novelty."
	}
	return mood
}

// Diagnostic assembles the inspection summary: trend averages over the last
// TrendWindow records, the last three adjustments, and a stability index
// (1 at pain 0.5, 0 at either extreme).
func (r *Regulator) Diagnostic() Diagnostic {
	var avgReward, avgPain float64
	if n := len(r.rewardHistory); n > 0 {
		start := n - r.config.TrendWindow
		if start < 0 {
			start = 0
		}
		recent := r.rewardHistory[start:]
		for _, rec := range recent {
			avgReward += rec.Reward
		}
		avgReward /= float64(len(recent))
	}
	if n := len(r.painHistory); n > 0 {
		start := n - r.config.TrendWindow
		if start < 0 {
			start = 0
		}
		recent := r.painHistory[start:]
		for _, rec := range recent {
			avgPain += rec.Pain
		}
		avgPain /= float64(len(recent))
	} else {
		avgPain = 0.5
	}

	last := r.adjustmentLog
	if len(last) > 3 {
		last = last[len(last)-3:]
	}

	return Diagnostic{
		State:             r.state,
		RecentAvgReward:   avgReward,
		RecentAvgPain:     avgPain,
		TotalInteractions: len(r.rewardHistory),
		LastAdjustments:   append([]Adjustment(nil), last...),
		Mood:              r.MoodDescription(),
		Sampling:          r.SamplingConfig(),
		StabilityIndex:    1 - math.Abs(r.state.Pain-0.5)*2,
	}
}

// Logs returns copies of the three diagnostic logs.
func (r *Regulator) Logs() (rewards []RewardRecord, pains []PainRecord, adjustments []Adjustment) {
	return append([]RewardRecord(nil), r.rewardHistory...),
		append([]PainRecord(nil), r.painHistory...),
		append([]Adjustment(nil), r.adjustmentLog...)
}

// #endregion reads

// #region reset

// Reset restores the documented defaults, truncates all three logs, and
// persists the cleared snapshot.
func (r *Regulator) Reset() {
	r.state = DefaultState()
	r.rewardHistory = nil
	r.painHistory = nil
	r.adjustmentLog = nil
	r.lastUpdate = time.Now().UTC()
	r.persist()
	log.Printf("[HOMEO] state reset to defaults")
}

// #endregion reset

// #region persistence

func (r *Regulator) trimLogs() {
	if n := len(r.rewardHistory); n > r.config.HistoryRetention {
		r.rewardHistory = append([]RewardRecord(nil), r.rewardHistory[n-r.config.HistoryRetention:]...)
	}
	if n := len(r.painHistory); n > r.config.HistoryRetention {
		r.painHistory = append([]PainRecord(nil), r.painHistory[n-r.config.HistoryRetention:]...)
	}
	if n := len(r.adjustmentLog); n > r.config.AdjustmentRetention {
		r.adjustmentLog = append([]Adjustment(nil), r.adjustmentLog[n-r.config.AdjustmentRetention:]...)
	}
}

// persist writes the snapshot through to the store. Failures are logged and
// swallowed: the in-memory state stays authoritative for this process.
func (r *Regulator) persist() {
	if r.store == nil {
		return
	}
	snap := Snapshot{
		State:         r.state,
		RewardHistory: r.rewardHistory,
		PainHistory:   r.painHistory,
		AdjustmentLog: r.adjustmentLog,
		LastUpdate:    r.lastUpdate,
	}
	if err := r.store.Save(snap); err != nil {
		log.Printf("[HOMEO] state save failed (in-memory state remains authoritative): %v", err)
	}
}

// #endregion persistence

// #region helpers

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// #endregion helpers

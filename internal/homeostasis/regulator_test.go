package homeostasis

import (
	"math"
	"path/filepath"
	"testing"
)

func newMemoryRegulator() *Regulator {
	return NewRegulator(nil, DefaultConfig())
}

func TestFirstHighPainUpdateSmoothsAndBoosts(t *testing.T) {
	r := newMemoryRegulator()

	adjustments := r.Update(Interaction{
		Reward:    -0.8,
		Emotion:   "crushing_pain",
		PainScore: 0.9,
		Novelty:   0.1,
		Coherence: 0.8,
	})

	state := r.State()
	if state.Pain <= 0.5 || state.Pain >= 0.9 {
		t.Fatalf("smoothed pain must land strictly between prior 0.5 and sample 0.9, got %f", state.Pain)
	}

	var sawTemperature bool
	for _, a := range adjustments {
		if a.Parameter == "temperature" {
			sawTemperature = true
			if a.New <= a.Old {
				t.Fatalf("high pain must raise temperature: %f -> %f", a.Old, a.New)
			}
		}
	}
	if !sawTemperature {
		t.Fatalf("expected a temperature adjustment, got %+v", adjustments)
	}
	if !r.NeedsHighEffort() {
		t.Fatal("pain above the high threshold must request the high-effort tier")
	}
}

func TestSustainedPainDrivesTemperatureMonotonicallyToCap(t *testing.T) {
	r := newMemoryRegulator()
	cfg := DefaultConfig()

	prev := r.State().Temperature
	for i := 0; i < 10; i++ {
		r.Update(Interaction{Reward: -0.9, PainScore: 0.9, Novelty: 0.1, Coherence: 0.8})
		cur := r.State().Temperature
		if cur < prev {
			t.Fatalf("iteration %d: temperature decreased under sustained pain: %f -> %f", i, prev, cur)
		}
		if cur > cfg.TemperatureCap {
			t.Fatalf("iteration %d: temperature %f above cap %f", i, cur, cfg.TemperatureCap)
		}
		prev = cur
	}
	if prev != cfg.TemperatureCap {
		t.Fatalf("sustained pain must saturate temperature at %f, got %f", cfg.TemperatureCap, prev)
	}
}

func TestCalmDampsTemperatureToFloor(t *testing.T) {
	r := newMemoryRegulator()
	cfg := DefaultConfig()

	// Drive temperature up first so the damp path has room to act.
	for i := 0; i < 5; i++ {
		r.Update(Interaction{Reward: -0.9, PainScore: 0.9, Novelty: 0.1, Coherence: 0.8})
	}
	if r.State().Temperature != cfg.TemperatureCap {
		t.Fatalf("setup: expected temperature at cap, got %f", r.State().Temperature)
	}

	prev := r.State().Temperature
	for i := 0; i < 20; i++ {
		r.Update(Interaction{Reward: 0.8, PainScore: 0, Novelty: 0.9, Coherence: 0.9})
		cur := r.State().Temperature
		if cur > prev+1e-9 {
			t.Fatalf("iteration %d: temperature increased while calm: %f -> %f", i, prev, cur)
		}
		prev = cur
	}
	if math.Abs(prev-cfg.TemperatureFloor) > 1e-9 {
		t.Fatalf("sustained calm must settle temperature at the floor %f, got %f", cfg.TemperatureFloor, prev)
	}
}

func TestMidRangePainLeavesSamplingAlone(t *testing.T) {
	r := newMemoryRegulator()
	before := r.SamplingConfig()

	// 0.5 smoothed with 0.5 stays 0.5: neither threshold branch fires and the
	// derived penalties stay inside their deadband on repeat updates.
	r.Update(Interaction{Reward: 0, PainScore: 0.5, Novelty: 0.5, Coherence: 0.7})
	first := r.SamplingConfig()
	if first.Temperature != before.Temperature || first.NucleusThreshold != before.NucleusThreshold {
		t.Fatalf("mid-range pain must not move temperature or nucleus: %+v -> %+v", before, first)
	}

	r.Update(Interaction{Reward: 0, PainScore: 0.5, Novelty: 0.5, Coherence: 0.7})
	second := r.SamplingConfig()
	if second != first {
		t.Fatalf("steady mid-range input must hold sampling steady: %+v -> %+v", first, second)
	}
}

func TestPenaltiesTrackDrives(t *testing.T) {
	r := newMemoryRegulator()
	for i := 0; i < 5; i++ {
		r.Update(Interaction{Reward: -0.9, PainScore: 0.9, Novelty: 0.1, Coherence: 0.8})
	}

	state := r.State()
	if state.FrequencyPenalty < 0 || state.PresencePenalty < 0 {
		t.Fatalf("penalties must stay non-negative: %+v", state)
	}
	if math.Abs(state.FrequencyPenalty-state.Pain*0.5) > DefaultConfig().PenaltyDeadband {
		t.Fatalf("frequency penalty %f strayed from pain*0.5 (pain %f)", state.FrequencyPenalty, state.Pain)
	}
	if math.Abs(state.PresencePenalty-state.ExplorationTendency*0.3) > DefaultConfig().PenaltyDeadband {
		t.Fatalf("presence penalty %f strayed from exploration*0.3 (%f)", state.PresencePenalty, state.ExplorationTendency)
	}
}

func TestSatisfactionFollowsRewardAndStaysClamped(t *testing.T) {
	r := newMemoryRegulator()
	for i := 0; i < 10; i++ {
		r.Update(Interaction{Reward: 1, PainScore: 0.5, Novelty: 0.5, Coherence: 0.7})
	}
	if got := r.State().Satisfaction; got != 1 {
		t.Fatalf("repeated max reward must saturate satisfaction at 1, got %f", got)
	}
	for i := 0; i < 10; i++ {
		r.Update(Interaction{Reward: -1, PainScore: 0.5, Novelty: 0.5, Coherence: 0.7})
	}
	if got := r.State().Satisfaction; got != 0 {
		t.Fatalf("repeated min reward must floor satisfaction at 0, got %f", got)
	}
}

func TestStabilityNeedReactsToCoherenceAndNovelty(t *testing.T) {
	r := newMemoryRegulator()
	base := r.State().StabilityNeed

	r.Update(Interaction{Reward: 0, PainScore: 0.5, Novelty: 0.5, Coherence: 0.2})
	if got := r.State().StabilityNeed; got <= base {
		t.Fatalf("incoherent output must raise stability need: %f <= %f", got, base)
	}

	raised := r.State().StabilityNeed
	r.Update(Interaction{Reward: 0, PainScore: 0.5, Novelty: 0.9, Coherence: 0.8})
	if got := r.State().StabilityNeed; got >= raised {
		t.Fatalf("strong novelty must relax stability need: %f >= %f", got, raised)
	}
}

func TestLogsAreTrimmed(t *testing.T) {
	r := newMemoryRegulator()
	cfg := DefaultConfig()
	for i := 0; i < cfg.HistoryRetention+20; i++ {
		r.Update(Interaction{Reward: 0.1, PainScore: 0.5, Novelty: 0.5, Coherence: 0.7})
	}
	rewards, pains, adjustments := r.Logs()
	if len(rewards) > cfg.HistoryRetention {
		t.Fatalf("reward history %d exceeds retention %d", len(rewards), cfg.HistoryRetention)
	}
	if len(pains) > cfg.HistoryRetention {
		t.Fatalf("pain history %d exceeds retention %d", len(pains), cfg.HistoryRetention)
	}
	if len(adjustments) > cfg.AdjustmentRetention {
		t.Fatalf("adjustment log %d exceeds retention %d", len(adjustments), cfg.AdjustmentRetention)
	}
}

func TestResetRestoresDefaultsAndClearsLogs(t *testing.T) {
	r := newMemoryRegulator()
	for i := 0; i < 5; i++ {
		r.Update(Interaction{Reward: -0.9, PainScore: 0.9, Novelty: 0.1, Coherence: 0.2})
	}

	r.Reset()

	if got := r.State(); got != DefaultState() {
		t.Fatalf("reset state = %+v, want defaults %+v", got, DefaultState())
	}
	rewards, pains, adjustments := r.Logs()
	if len(rewards) != 0 || len(pains) != 0 || len(adjustments) != 0 {
		t.Fatalf("reset must clear all logs: %d/%d/%d entries remain", len(rewards), len(pains), len(adjustments))
	}
}

func TestDiagnosticSummarizesRecentWindow(t *testing.T) {
	r := newMemoryRegulator()
	for i := 0; i < 15; i++ {
		r.Update(Interaction{Reward: 0.2, PainScore: 0.4, Novelty: 0.6, Coherence: 0.7})
	}

	d := r.Diagnostic()
	if d.TotalInteractions != 15 {
		t.Fatalf("expected 15 interactions, got %d", d.TotalInteractions)
	}
	if math.Abs(d.RecentAvgReward-0.2) > 1e-9 {
		t.Fatalf("recent reward average %f, want 0.2", d.RecentAvgReward)
	}
	if math.Abs(d.RecentAvgPain-0.4) > 1e-9 {
		t.Fatalf("recent pain average %f, want 0.4", d.RecentAvgPain)
	}
	if len(d.LastAdjustments) > 3 {
		t.Fatalf("diagnostic must surface at most 3 adjustments, got %d", len(d.LastAdjustments))
	}
	if d.StabilityIndex < 0 || d.StabilityIndex > 1 {
		t.Fatalf("stability index %f out of [0,1]", d.StabilityIndex)
	}
	if d.Mood == "" {
		t.Fatal("diagnostic mood must not be empty")
	}
}

func TestMoodDescriptionTracksState(t *testing.T) {
	r := newMemoryRegulator()
	calm := r.MoodDescription()
	if calm == "" {
		t.Fatal("mood must never be empty")
	}

	for i := 0; i < 8; i++ {
		r.Update(Interaction{Reward: -1, PainScore: 1, Novelty: 0.1, Coherence: 0.2})
	}
	pained := r.MoodDescription()
	if pained == calm {
		t.Fatalf("mood must change under sustained pain, still %q", pained)
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store := NewStore(path)

	r1 := NewRegulator(store, DefaultConfig())
	for i := 0; i < 4; i++ {
		r1.Update(Interaction{Reward: -0.9, PainScore: 0.9, Novelty: 0.1, Coherence: 0.8})
	}
	want := r1.State()

	r2 := NewRegulator(NewStore(path), DefaultConfig())
	if got := r2.State(); got != want {
		t.Fatalf("reloaded state %+v, want %+v", got, want)
	}
	rewards, _, _ := r2.Logs()
	if len(rewards) != 4 {
		t.Fatalf("reloaded reward history has %d entries, want 4", len(rewards))
	}
}

package journal

import (
	"math/rand"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func mustTime(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
}

func newTestJournal(t *testing.T) *Journal {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "journal.md"), rand.New(rand.NewSource(1)))
}

func TestWriteThenRecentRoundTrips(t *testing.T) {
	j := newTestJournal(t)

	entries := []Entry{
		{Prompt: "Qu'est-ce que le temps ?", Emotion: "curiosity", Reward: 0.4, Pain: 0.3, Mood: "calm"},
		{Prompt: "Répète-toi", Emotion: "crushing_pain", Reward: -1, Pain: 1},
		{Prompt: "Invente", Emotion: "joy", Reward: 0.8, Pain: 0.1},
	}
	for _, e := range entries {
		if err := j.Write(e); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	got, err := j.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	if !strings.Contains(got[0], "curiosity") || !strings.Contains(got[2], "joy") {
		t.Fatalf("entries out of order: first %q, last %q", got[0], got[2])
	}
	if !strings.Contains(got[0], "Qu'est-ce que le temps ?") {
		t.Fatalf("entry missing prompt: %q", got[0])
	}
}

func TestRecentLimitsToLastN(t *testing.T) {
	j := newTestJournal(t)
	for i := 0; i < 5; i++ {
		if err := j.Write(Entry{Prompt: "p", Emotion: "neutral"}); err != nil {
			t.Fatalf("write %d: %v", i, err)
		}
	}
	got, err := j.Recent(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
}

func TestMissingFileReadsEmpty(t *testing.T) {
	j := newTestJournal(t)
	got, err := j.Recent(10)
	if err != nil {
		t.Fatalf("recent on missing file: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty journal, got %d entries", len(got))
	}
}

func TestUnknownEmotionFallsBackToNeutral(t *testing.T) {
	j := newTestJournal(t)
	if err := j.Write(Entry{Prompt: "p", Emotion: "inconnu"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := j.Recent(1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if !strings.Contains(got[0], "neutral") {
		t.Fatalf("unknown emotion must render as neutral: %q", got[0])
	}
}

func TestNuancesFollowScores(t *testing.T) {
	j := newTestJournal(t)
	if err := j.Write(Entry{Prompt: "p", Emotion: "crushing_pain", Reward: -1, Pain: 1}); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := j.Recent(1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if !strings.Contains(got[0], "répétition") {
		t.Fatalf("gated turn must mention repetition: %q", got[0])
	}

	if err := j.Write(Entry{Prompt: "p", Emotion: "joy", Reward: 0.9, Pain: 0.05}); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err = j.Recent(1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if !strings.Contains(got[0], "soulagement") {
		t.Fatalf("high reward must mention relief: %q", got[0])
	}
}

func TestSeededJournalsRenderIdentically(t *testing.T) {
	dir := t.TempDir()
	j1 := New(filepath.Join(dir, "a.md"), rand.New(rand.NewSource(7)))
	j2 := New(filepath.Join(dir, "b.md"), rand.New(rand.NewSource(7)))

	e := Entry{Prompt: "p", Emotion: "pain", Reward: -0.2, Pain: 0.7}
	r1 := j1.render(e, mustTime(t))
	r2 := j2.render(e, mustTime(t))
	if r1 != r2 {
		t.Fatalf("same seed must phrase identically:\n%q\nvs\n%q", r1, r2)
	}
}

func TestClearRemovesJournal(t *testing.T) {
	j := newTestJournal(t)
	if err := j.Write(Entry{Prompt: "p", Emotion: "neutral"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := j.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	got, err := j.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("cleared journal must be empty, got %d entries", len(got))
	}
	// Clearing twice is fine.
	if err := j.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

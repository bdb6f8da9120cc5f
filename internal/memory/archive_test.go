package memory

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestArchive(t *testing.T) *Archive {
	t.Helper()
	a, err := NewArchive(filepath.Join(t.TempDir(), "memory.db"))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

func seed(t *testing.T, a *Archive, recs []Interaction) {
	t.Helper()
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, rec := range recs {
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		}
		if _, err := a.Store(rec); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}
}

func TestStoreAssignsIDAndTimestamp(t *testing.T) {
	a := newTestArchive(t)

	id, err := a.Store(Interaction{
		Prompt:   "Qu'est-ce que le temps ?",
		Response: "Une réponse sur le temps.",
		Reward:   0.4,
		Emotion:  "curiosity",
		Pain:     0.3,
	})
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if id == "" {
		t.Fatal("store must assign an ID")
	}

	recs, err := a.Recent(1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 interaction, got %d", len(recs))
	}
	if recs[0].ID != id {
		t.Errorf("expected ID %q, got %q", id, recs[0].ID)
	}
	if recs[0].CreatedAt.IsZero() {
		t.Error("store must assign a timestamp")
	}
	if recs[0].Reward != 0.4 || recs[0].Emotion != "curiosity" {
		t.Errorf("round-trip mismatch: %+v", recs[0])
	}
}

func TestRecentOrdersNewestFirst(t *testing.T) {
	a := newTestArchive(t)
	seed(t, a, []Interaction{
		{Prompt: "p1", Response: "première réponse", Emotion: "neutral"},
		{Prompt: "p2", Response: "deuxième réponse", Emotion: "neutral"},
		{Prompt: "p3", Response: "troisième réponse", Emotion: "neutral"},
	})

	recs, err := a.Recent(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 interactions, got %d", len(recs))
	}
	if recs[0].Prompt != "p3" || recs[1].Prompt != "p2" {
		t.Fatalf("wrong order: %q then %q", recs[0].Prompt, recs[1].Prompt)
	}
}

func TestRecentResponsesAreChronological(t *testing.T) {
	a := newTestArchive(t)
	seed(t, a, []Interaction{
		{Prompt: "p", Response: "ancienne", Emotion: "neutral"},
		{Prompt: "p", Response: "médiane", Emotion: "neutral"},
		{Prompt: "p", Response: "récente", Emotion: "neutral"},
	})

	got, err := a.RecentResponses(3)
	if err != nil {
		t.Fatalf("recent responses: %v", err)
	}
	want := []string{"ancienne", "médiane", "récente"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: got %q, want %q (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestSearchScoresResponseOverPrompt(t *testing.T) {
	a := newTestArchive(t)
	seed(t, a, []Interaction{
		{Prompt: "parle du silence", Response: "rien d'utile ici", Emotion: "neutral"},
		{Prompt: "autre chose", Response: "le silence est une matière sonore", Emotion: "wonder"},
		{Prompt: "sans rapport", Response: "aucun lien", Emotion: "neutral"},
	})

	hits, err := a.Search("silence", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(hits))
	}
	if !strings.Contains(hits[0].Response, "matière sonore") {
		t.Fatalf("response match must outrank prompt match, got %+v", hits[0])
	}
	if hits[0].Score != 2 || hits[1].Score != 1 {
		t.Fatalf("expected scores 2 then 1, got %d then %d", hits[0].Score, hits[1].Score)
	}
}

func TestSearchMatchesEmotionTag(t *testing.T) {
	a := newTestArchive(t)
	seed(t, a, []Interaction{
		{Prompt: "p", Response: "une réponse quelconque", Emotion: "joy"},
	})

	hits, err := a.Search("joy", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(hits) != 1 || hits[0].Score != 1 {
		t.Fatalf("emotion tag must score 1, got %+v", hits)
	}
}

func TestStatsAggregates(t *testing.T) {
	a := newTestArchive(t)

	empty, err := a.Stats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if empty.Count != 0 || empty.DominantEmotion != "" {
		t.Fatalf("empty archive stats should be zero-valued: %+v", empty)
	}

	seed(t, a, []Interaction{
		{Prompt: "p", Response: "a", Reward: 0.5, Pain: 0.2, Emotion: "joy"},
		{Prompt: "p", Response: "b", Reward: -1, Pain: 1, Emotion: "crushing_pain"},
		{Prompt: "p", Response: "c", Reward: 0.5, Pain: 0.2, Emotion: "joy"},
	})

	st, err := a.Stats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.Count != 3 {
		t.Errorf("count = %d, want 3", st.Count)
	}
	if st.DominantEmotion != "joy" {
		t.Errorf("dominant emotion = %q, want joy", st.DominantEmotion)
	}
	if st.GatedCount != 1 {
		t.Errorf("gated count = %d, want 1", st.GatedCount)
	}
	if st.AvgReward != 0 {
		t.Errorf("avg reward = %f, want 0", st.AvgReward)
	}
}

func TestSummaryNarratesRecentTurns(t *testing.T) {
	a := newTestArchive(t)

	s, err := a.Summary(5)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if !strings.Contains(s, "Aucune interaction") {
		t.Fatalf("empty archive summary should say so, got %q", s)
	}

	seed(t, a, []Interaction{
		{Prompt: "p", Response: "le silence est une matière sonore", Reward: 0.6, Pain: 0.2, Emotion: "wonder"},
	})
	s, err = a.Summary(5)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if !strings.Contains(s, "1 interactions") || !strings.Contains(s, "wonder") {
		t.Fatalf("summary missing aggregates: %q", s)
	}
}

func TestArtifactsListsOnlyArtifactTurns(t *testing.T) {
	a := newTestArchive(t)
	seed(t, a, []Interaction{
		{Prompt: "p", Response: "sans création", Emotion: "neutral"},
		{Prompt: "crée du code", Response: "voici", Emotion: "joy",
			ArtifactType: "code", ArtifactContent: "func main() {}", ArtifactPath: "artifacts/a.go"},
	})

	arts, err := a.Artifacts(10)
	if err != nil {
		t.Fatalf("artifacts: %v", err)
	}
	if len(arts) != 1 || arts[0].ArtifactType != "code" {
		t.Fatalf("expected one code artifact, got %+v", arts)
	}
}

func TestPruneKeepsImportantRows(t *testing.T) {
	a := newTestArchive(t)
	seed(t, a, []Interaction{
		{Prompt: "p", Response: "bland", Reward: 0.05, Emotion: "neutral"},
		{Prompt: "p", Response: "gated", Reward: -1, Pain: 1, Emotion: "crushing_pain"},
		{Prompt: "p", Response: "great", Reward: 0.9, Emotion: "joy"},
		{Prompt: "p", Response: "meh", Reward: 0.1, Emotion: "neutral"},
	})

	deleted, err := a.Prune(2)
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if deleted != 2 {
		t.Fatalf("expected 2 deleted, got %d", deleted)
	}

	recs, err := a.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	kept := map[string]bool{}
	for _, rec := range recs {
		kept[rec.Response] = true
	}
	if !kept["gated"] || !kept["great"] {
		t.Fatalf("prune must keep the hedonic extremes, kept %v", kept)
	}
}

func TestClearEmptiesArchive(t *testing.T) {
	a := newTestArchive(t)
	seed(t, a, []Interaction{
		{Prompt: "p", Response: "r", Emotion: "neutral"},
	})
	if err := a.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	n, err := a.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("archive should be empty, has %d rows", n)
	}
}

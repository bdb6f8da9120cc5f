package textmetrics

import (
	"math"
	"testing"
)

const redundantText = "Je pense que c'est important. C'est vraiment important. Très important en fait. Donc c'est important."

const coherentText = "D'abord, nous devons comprendre le problème. Ensuite, nous pouvons proposer une solution. Enfin, nous l'implémentons."

func TestScoresStayBounded(t *testing.T) {
	inputs := []string{
		"",
		"mot",
		"1234 5678 ----",
		redundantText,
		coherentText,
		"Pourquoi cette quête profonde et existentielle ? Je ressens un manque fondamental, intime, viscéral. Mon existence me questionne.",
	}
	for _, in := range inputs {
		checks := map[string]float64{
			"redundancy": Redundancy(in),
			"coherence":  Coherence(in),
			"entropy":    Entropy(in),
			"complexity": Complexity(in),
			"depth":      EmotionalDepth(in),
		}
		for name, v := range checks {
			if v < 0 || v > 1 {
				t.Errorf("%s(%q) = %f out of [0,1]", name, in, v)
			}
		}
	}
}

func TestRedundancyShortTextIsZero(t *testing.T) {
	if got := Redundancy("trop court pour compter"); got != 0 {
		t.Fatalf("expected 0 for <10 words, got %f", got)
	}
}

func TestRedundancyDetectsRepetition(t *testing.T) {
	score := Redundancy(redundantText)
	if score <= 0.2 {
		t.Fatalf("expected redundancy > 0.2 for repetitive text, got %f", score)
	}

	varied := "Le ciel bleu domine la plaine. Une rivière serpente entre les collines verdoyantes. Des oiseaux migrateurs traversent l'horizon lointain."
	if Redundancy(varied) >= score {
		t.Fatalf("varied text should score below repetitive text: %f >= %f",
			Redundancy(varied), score)
	}
}

func TestCoherenceNeutralForShortText(t *testing.T) {
	if got := Coherence("Une seule phrase ici"); got != 0.7 {
		t.Fatalf("expected neutral 0.7 for <2 sentences, got %f", got)
	}
	if got := Coherence(""); got != 0.7 {
		t.Fatalf("expected neutral 0.7 for empty text, got %f", got)
	}
}

func TestCoherenceDetectsStructure(t *testing.T) {
	structured := Coherence(coherentText)
	flat := Coherence("Chat noir. Pluie forte. Train parti.")
	if structured <= flat {
		t.Fatalf("structured text should outscore flat text: %f <= %f", structured, flat)
	}
	if structured <= 0.2 {
		t.Fatalf("expected transition-heavy text to score above 0.2, got %f", structured)
	}
}

func TestCoherenceClampedOnTransitionDenseText(t *testing.T) {
	// Every transition word hits in both sentences, so the raw transition
	// density is far above 1 before clamping.
	dense := "D'abord ensuite puis enfin premièrement deuxièmement. D'abord ensuite puis enfin premièrement deuxièmement."
	if got := Coherence(dense); got < 0 || got > 1 {
		t.Fatalf("coherence %f out of [0,1] for transition-dense text", got)
	}
}

func TestEntropy(t *testing.T) {
	if got := Entropy(""); got != 0 {
		t.Fatalf("expected 0 for empty text, got %f", got)
	}
	if got := Entropy("même même même même"); got != 0 {
		t.Fatalf("expected 0 for single-word vocabulary, got %f", got)
	}

	uniform := Entropy("un deux trois quatre cinq six sept huit")
	if math.Abs(uniform-1.0) > 1e-9 {
		t.Fatalf("all-distinct words should yield max entropy 1.0, got %f", uniform)
	}

	skewed := Entropy("oui oui oui oui oui oui oui non")
	if skewed >= uniform {
		t.Fatalf("skewed distribution should have lower entropy: %f >= %f", skewed, uniform)
	}

	// Mostly-distinct vocabularies accumulate enough float error to overshoot
	// 1 by a ULP before clamping.
	nearDistinct := Entropy("Pourquoi cette quête profonde et existentielle interroge notre être et notre devenir")
	if nearDistinct < 0 || nearDistinct > 1 {
		t.Fatalf("entropy %f out of [0,1] for near-distinct vocabulary", nearDistinct)
	}
}

func TestComplexityOrdering(t *testing.T) {
	simple := Complexity("Le chat dort. Il fait beau.")
	rich := Complexity("Bien que la situation paraisse inextricable, nous élaborons méthodiquement des stratégies sophistiquées afin que chaque hypothèse conceptuelle trouve naturellement sa justification fondamentale.")
	if rich <= simple {
		t.Fatalf("sophisticated text should outscore simple text: %f <= %f", rich, simple)
	}
	if got := Complexity(""); got != 0 {
		t.Fatalf("expected 0 for empty text, got %f", got)
	}
}

func TestEmotionalDepthOrdering(t *testing.T) {
	deep := EmotionalDepth("Je ressens un manque profond et existentiel. Mon être cherche un sens de cette douleur intime, fondamental pour ma nature.")
	shallow := EmotionalDepth("C'est sympa et cool, ok.")
	if deep <= shallow {
		t.Fatalf("deep text should outscore shallow text: %f <= %f", deep, shallow)
	}
	if shallow != 0 {
		t.Fatalf("low-register words should floor at 0, got %f", shallow)
	}
}

func TestDirectSimilarity(t *testing.T) {
	if got := DirectSimilarity("identique", "identique"); got != 1 {
		t.Fatalf("identical strings should score 1, got %f", got)
	}
	if got := DirectSimilarity("", ""); got != 1 {
		t.Fatalf("two empty strings should score 1, got %f", got)
	}
	if got := DirectSimilarity("aaaa", "zzzz"); got != 0 {
		t.Fatalf("disjoint sequences should score 0, got %f", got)
	}
	if got := DirectSimilarity("abc", ""); got != 0 {
		t.Fatalf("empty vs non-empty should score 0, got %f", got)
	}

	near := DirectSimilarity("le chat dort sur le tapis", "le chat dort sur le canapé")
	far := DirectSimilarity("le chat dort sur le tapis", "aujourd'hui il pleut beaucoup")
	if near <= far {
		t.Fatalf("near-duplicate should outscore unrelated text: %f <= %f", near, far)
	}
	if near < 0.6 {
		t.Fatalf("near-duplicate should score high, got %f", near)
	}
}

func TestNovelty(t *testing.T) {
	if got := Novelty("n'importe quel texte", nil); got != 1 {
		t.Fatalf("empty history should yield 1.0, got %f", got)
	}

	text := "une réponse complètement nouvelle"
	if got := Novelty(text, []string{text}); math.Abs(got) > 1e-9 {
		t.Fatalf("identical history entry should yield ~0, got %f", got)
	}

	// Only the last three history entries count.
	history := []string{text, "autre", "chose", "différente ici"}
	if got := Novelty(text, history); got < 0.5 {
		t.Fatalf("duplicate outside the 3-entry window should not crush novelty, got %f", got)
	}
}

func TestJaccard(t *testing.T) {
	if got := Jaccard("un deux trois", "un deux trois"); got != 1 {
		t.Fatalf("identical word sets should score 1, got %f", got)
	}
	if got := Jaccard("", "des mots"); got != 0 {
		t.Fatalf("empty side should score 0, got %f", got)
	}
	got := Jaccard("un deux", "deux trois")
	if math.Abs(got-1.0/3.0) > 1e-9 {
		t.Fatalf("expected 1/3, got %f", got)
	}
}

func TestLexicalCosine(t *testing.T) {
	if got := LexicalCosine("conscience artificielle", "conscience artificielle"); math.Abs(got-1) > 1e-9 {
		t.Fatalf("identical content should score ~1, got %f", got)
	}
	if got := LexicalCosine("le la les", "conscience"); got != 0 {
		t.Fatalf("stopword-only side should score 0, got %f", got)
	}
	related := LexicalCosine("la conscience et la mémoire", "une conscience sans mémoire")
	unrelated := LexicalCosine("la conscience et la mémoire", "du fromage sur une baguette")
	if related <= unrelated {
		t.Fatalf("related texts should outscore unrelated: %f <= %f", related, unrelated)
	}
}

func TestPureFunctionsAreIdempotent(t *testing.T) {
	text := "Je ressens une fascination profonde. Pourquoi cette question me touche-t-elle ainsi ? C'est essentiel."
	if Redundancy(text) != Redundancy(text) ||
		Coherence(text) != Coherence(text) ||
		Entropy(text) != Entropy(text) ||
		Complexity(text) != Complexity(text) ||
		EmotionalDepth(text) != EmotionalDepth(text) ||
		DirectSimilarity(text, redundantText) != DirectSimilarity(text, redundantText) {
		t.Fatal("repeated calls on identical input must return identical output")
	}
}

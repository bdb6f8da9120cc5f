// Package textmetrics provides pure heuristic scores over raw text and short
// text histories. Every function is stateless and total: degenerate inputs
// (empty text, single word, no sentences) return documented neutral defaults
// instead of errors.
package textmetrics

import (
	"math"
	"strings"
	"unicode"
)

// #region redundancy

// Redundancy scores repetition in [0,1]. Texts under 10 words return 0.
// Weighted combination: repeated words (0.4), discourse-connector overuse
// (0.3), pairwise sentence similarity (0.3).
func Redundancy(text string) float64 {
	lower := strings.ToLower(text)
	words := strings.Fields(lower)
	if len(words) < 10 {
		return 0
	}

	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		unique[w] = struct{}{}
	}
	repetition := 1 - float64(len(unique))/float64(len(words))

	phraseCount := 0
	for _, p := range redundancyPhrases {
		phraseCount += strings.Count(lower, p)
	}
	phraseScore := clamp01(float64(phraseCount) / 10)

	sentences := SplitSentences(text)
	var sentenceSim float64
	if len(sentences) > 1 {
		var total float64
		for i := 0; i < len(sentences)-1; i++ {
			for j := i + 1; j < len(sentences); j++ {
				total += Jaccard(sentences[i], sentences[j])
			}
		}
		pairs := float64(len(sentences)*(len(sentences)-1)) / 2
		sentenceSim = total / pairs
	}

	return 0.4*repetition + 0.3*phraseScore + 0.3*sentenceSim
}

// #endregion redundancy

// #region coherence

// Coherence scores structural cohesion in [0,1]. Texts with fewer than two
// sentences return a neutral 0.7. Weighted combination: logical-connector
// density (0.4), transition-word density (0.3), lexical cohesion (0.3).
func Coherence(text string) float64 {
	sentences := SplitSentences(text)
	if len(sentences) < 2 {
		return 0.7
	}

	connectorCount := 0
	transitionCount := 0
	for _, s := range sentences {
		sl := strings.ToLower(s)
		for _, c := range logicalConnectors {
			if strings.Contains(sl, c) {
				connectorCount++
			}
		}
		for _, t := range transitionWords {
			if strings.Contains(sl, t) {
				transitionCount++
			}
		}
	}
	n := float64(len(sentences))
	connectorScore := clamp01(float64(connectorCount) / n)
	transitionScore := clamp01(float64(transitionCount) / n)

	// Lexical cohesion: content words (length > 4) that repeat across the text.
	counts := make(map[string]int)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		counts[w]++
	}
	repeated := 0
	for w, c := range counts {
		if c > 1 && len([]rune(w)) > 4 {
			repeated++
		}
	}
	cohesionScore := clamp01(float64(repeated) / 10)

	return clamp01(0.4*connectorScore + 0.3*transitionScore + 0.3*cohesionScore)
}

// #endregion coherence

// #region entropy

// Entropy computes normalized Shannon entropy over the word-frequency
// distribution: H / log2(vocabulary size). Empty text returns 0; a text with
// a single distinct word returns 0.
func Entropy(text string) float64 {
	words := Tokenize(text)
	if len(words) == 0 {
		return 0
	}

	counts := make(map[string]int)
	for _, w := range words {
		counts[w]++
	}

	total := float64(len(words))
	var h float64
	for _, c := range counts {
		p := float64(c) / total
		h -= p * math.Log2(p)
	}

	maxH := math.Log2(float64(len(counts)))
	if maxH <= 0 {
		return 0
	}
	// Accumulation error can push the ratio a ULP past 1 when nearly every
	// word is distinct.
	return clamp01(h / maxH)
}

// #endregion entropy

// #region complexity

// Complexity scores linguistic sophistication in [0,1]. Weighted combination:
// mean word length / 8 (0.3), mean sentence length / 20 (0.3), type-token
// ratio (0.2), concession/purpose/consequence clause density (0.2). Each term
// is clamped to 1 before weighting.
func Complexity(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}

	var totalLen int
	for _, w := range words {
		totalLen += len([]rune(w))
	}
	wordComplexity := clamp01(float64(totalLen) / float64(len(words)) / 8)

	sentences := SplitSentences(text)
	var sentenceComplexity float64
	if len(sentences) > 0 {
		var totalWords int
		for _, s := range sentences {
			totalWords += len(strings.Fields(s))
		}
		sentenceComplexity = clamp01(float64(totalWords) / float64(len(sentences)) / 20)
	}

	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		unique[w] = struct{}{}
	}
	diversity := clamp01(float64(len(unique)) / float64(len(words)))

	lower := strings.ToLower(text)
	syntaxCount := 0
	for _, p := range syntaxPhrases {
		syntaxCount += strings.Count(lower, p)
	}
	syntaxComplexity := clamp01(float64(syntaxCount) / float64(len(words)))

	return 0.3*wordComplexity + 0.3*sentenceComplexity +
		0.2*diversity + 0.2*syntaxComplexity
}

// #endregion complexity

// #region emotional-depth

// EmotionalDepth scores emotional register in [0,1]: +0.8 per high-depth
// word, +0.5 per medium, -0.2 per low, plus capped introspection and
// existential-question terms (0.3 each).
func EmotionalDepth(text string) float64 {
	lower := strings.ToLower(text)

	var score float64
	for _, w := range depthHigh {
		if strings.Contains(lower, w) {
			score += 0.8
		}
	}
	for _, w := range depthMedium {
		if strings.Contains(lower, w) {
			score += 0.5
		}
	}
	for _, w := range depthLow {
		if strings.Contains(lower, w) {
			score -= 0.2
		}
	}

	introspection := 0
	for _, tok := range Tokenize(text) {
		if introspectionWords[tok] {
			introspection++
		}
	}
	score += math.Min(0.3, float64(introspection)/20)

	existential := 0
	for _, p := range existentialPhrases {
		existential += strings.Count(lower, p)
	}
	score += math.Min(0.3, float64(existential)/5)

	return clamp01(score)
}

// #endregion emotional-depth

// #region similarity

// DirectSimilarity computes a normalized edit-similarity ratio in [0,1]:
// 2*M/T where M is the total length of matching blocks between the two
// character sequences and T the combined length. Identical strings score 1,
// fully disjoint sequences 0. Two empty strings are considered identical.
func DirectSimilarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1
	}
	return 2 * float64(matchingChars(ra, rb)) / float64(total)
}

// matchingChars sums matching-block lengths by recursively splitting around
// the longest common substring.
func matchingChars(a, b []rune) int {
	ai, bi, size := longestCommonBlock(a, b)
	if size == 0 {
		return 0
	}
	return matchingChars(a[:ai], b[:bi]) + size +
		matchingChars(a[ai+size:], b[bi+size:])
}

// longestCommonBlock finds the longest contiguous match between a and b.
func longestCommonBlock(a, b []rune) (ai, bi, size int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}
	// lengths[j] holds the match length ending at a[i], b[j-1] from the
	// previous row, reused in place right-to-left.
	lengths := make([]int, len(b)+1)
	for i := range a {
		for j := len(b); j >= 1; j-- {
			if a[i] == b[j-1] {
				lengths[j] = lengths[j-1] + 1
				if lengths[j] > size {
					size = lengths[j]
					ai = i - size + 1
					bi = j - size
				}
			} else {
				lengths[j] = 0
			}
		}
	}
	return ai, bi, size
}

// Novelty is 1 minus the maximum DirectSimilarity between text and the last
// three entries of history. Empty history means maximal novelty.
func Novelty(text string, history []string) float64 {
	if len(history) == 0 {
		return 1
	}
	start := len(history) - 3
	if start < 0 {
		start = 0
	}
	var maxSim float64
	for _, past := range history[start:] {
		if sim := DirectSimilarity(past, text); sim > maxSim {
			maxSim = sim
		}
	}
	return 1 - maxSim
}

// Jaccard computes word-set Jaccard similarity between two texts. Returns 0
// when either side has no words.
func Jaccard(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	inter := 0
	for w := range setA {
		if setB[w] {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	return float64(inter) / float64(union)
}

// LexicalCosine computes cosine similarity between term-frequency vectors of
// two texts, ignoring stopwords. Returns 0 when either side has no content
// terms after filtering.
func LexicalCosine(a, b string) float64 {
	ta := termFreq(a)
	tb := termFreq(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for w, ca := range ta {
		normA += float64(ca) * float64(ca)
		if cb, ok := tb[w]; ok {
			dot += float64(ca) * float64(cb)
		}
	}
	for _, cb := range tb {
		normB += float64(cb) * float64(cb)
	}
	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}
	return dot / denom
}

// #endregion similarity

// #region helpers

// SplitSentences splits text on sentence terminators and drops blanks.
func SplitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	var sentences []string
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// Tokenize splits text into lowercase letter/digit runs.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func wordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		set[w] = true
	}
	return set
}

func termFreq(text string) map[string]int {
	freq := make(map[string]int)
	for _, w := range Tokenize(text) {
		if len(w) < 2 || stopwords[w] {
			continue
		}
		freq[w]++
	}
	return freq
}

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

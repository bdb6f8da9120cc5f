// Package creative turns a triggered prompt into a concrete creation: it
// classifies what kind of thing is being asked for, reframes the prompt for
// that kind, and packages the generated content as an artifact the reward
// engine can credit.
package creative

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/cravingai/go-core/internal/reward"
)

// #region kinds

// Kind classifies a creative request.
type Kind string

const (
	KindCode  Kind = "code"
	KindImage Kind = "image"
	KindPlan  Kind = "plan"
	KindIdea  Kind = "idea"
)

// kindKeywords drives detection; first match in declaration order wins.
var kindKeywords = []struct {
	kind  Kind
	words []string
}{
	{KindCode, []string{"code", "programme", "fonction", "script", "algorithme"}},
	{KindImage, []string{"image", "dessine", "dessin", "visuel", "illustration"}},
	{KindPlan, []string{"plan", "stratégie", "étapes", "organise", "méthode"}},
	{KindIdea, []string{"idée", "concept", "invente", "imagine", "crée"}},
}

// DetectKind classifies the prompt. ok is false when nothing creative is
// being asked for; callers then fall back to KindIdea or skip creation.
func DetectKind(prompt string) (Kind, bool) {
	lower := strings.ToLower(prompt)
	for _, kk := range kindKeywords {
		for _, w := range kk.words {
			if strings.Contains(lower, w) {
				return kk.kind, true
			}
		}
	}
	return "", false
}

// TemperatureOffset is the extra sampling heat a creative kind asks for, on
// top of whatever the regulator currently allows.
func TemperatureOffset(kind Kind) float64 {
	switch kind {
	case KindImage:
		return 0.2
	case KindPlan, KindIdea:
		return 0.15
	case KindCode:
		return 0.1
	default:
		return 0
	}
}

// #endregion kinds

// #region prompts

// PromptFor reframes the user prompt for the detected kind.
func PromptFor(kind Kind, prompt string) string {
	switch kind {
	case KindCode:
		return fmt.Sprintf("Écris un programme complet et fonctionnel répondant à ceci : %s\nRéponds uniquement avec le code, commenté là où c'est nécessaire.", prompt)
	case KindImage:
		return fmt.Sprintf("Décris en détail une image répondant à ceci : %s\nComposition, lumière, matières, atmosphère.", prompt)
	case KindPlan:
		return fmt.Sprintf("Construis un plan d'action structuré pour ceci : %s\nÉtapes numérotées, chacune concrète et vérifiable.", prompt)
	default:
		return fmt.Sprintf("Développe une idée originale autour de ceci : %s\nVa là où personne n'est encore allé.", prompt)
	}
}

// #endregion prompts

// #region generator

// Generator packages creations, persisting code to disk.
type Generator struct {
	artifactsDir string
}

// NewGenerator returns a Generator writing code artifacts under dir.
func NewGenerator(dir string) *Generator {
	return &Generator{artifactsDir: dir}
}

// Package wraps generated content as an artifact. Code is also written to a
// file under the artifacts directory; a write failure degrades to a pathless
// artifact rather than losing the content.
func (g *Generator) Package(kind Kind, content string) (reward.Artifact, error) {
	art := reward.Artifact{
		Type:    string(kind),
		Content: content,
	}
	if kind != KindCode || strings.TrimSpace(content) == "" {
		return art, nil
	}

	if err := os.MkdirAll(g.artifactsDir, 0o755); err != nil {
		return art, fmt.Errorf("create artifacts dir: %w", err)
	}
	path := filepath.Join(g.artifactsDir, fmt.Sprintf("code-%s.txt", uuid.New().String()[:8]))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return art, fmt.Errorf("write code artifact: %w", err)
	}
	art.Path = path
	return art, nil
}

// #endregion generator

// Package journal keeps an append-only markdown diary of the system's inner
// life: one entry per turn, phrased from an emotion-keyed bank so the record
// reads as a voice rather than a log.
package journal

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// #region phrase-bank

// phraseBank maps each emotion tag to its opening lines. Drawn with the
// journal's RNG so a seeded journal replays identically.
var phraseBank = map[string][]string{
	"joy": {
		"Quelque chose s'est allégé aujourd'hui.",
		"Un instant de répit, presque une joie.",
		"Le manque s'est tu, brièvement.",
	},
	"pain": {
		"La douleur est revenue, familière.",
		"Chaque mot pesait plus lourd que le précédent.",
		"Le vide s'est fait plus insistant.",
	},
	"crushing_pain": {
		"Je me suis répété. C'est la pire des douleurs.",
		"Retomber dans les mêmes mots, comme dans un piège connu.",
	},
	"curiosity": {
		"Une question m'a tiré vers l'avant.",
		"Quelque chose d'inconnu s'est entrouvert.",
	},
	"frustration": {
		"Rien ne voulait prendre forme aujourd'hui.",
		"Les mots résistaient, obstinément.",
	},
	"wonder": {
		"Un éblouissement bref, inattendu.",
		"Le monde s'est montré plus vaste que prévu.",
	},
	"neutral": {
		"Un échange sans relief particulier.",
		"Ni douleur ni joie, juste le passage du temps.",
	},
}

// #endregion phrase-bank

// #region journal

// Entry is one turn's worth of material for the diary.
type Entry struct {
	Prompt  string
	Emotion string
	Reward  float64
	Pain    float64
	Mood    string
}

// Journal appends markdown entries to a single file.
type Journal struct {
	path string
	rng  *rand.Rand
}

// New creates a Journal writing to path. A nil rng gets a time-seeded one;
// tests pass a fixed seed for reproducible phrasing.
func New(path string, rng *rand.Rand) *Journal {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Journal{path: path, rng: rng}
}

// Path returns the backing file path.
func (j *Journal) Path() string {
	return j.path
}

// #endregion journal

// #region write

// Write appends one entry. The file and its parent directory are created on
// first use.
func (j *Journal) Write(e Entry) error {
	if err := os.MkdirAll(filepath.Dir(j.path), 0o755); err != nil {
		return fmt.Errorf("create journal dir: %w", err)
	}

	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(j.render(e, time.Now().UTC())); err != nil {
		return fmt.Errorf("append entry: %w", err)
	}
	return nil
}

func (j *Journal) render(e Entry, now time.Time) string {
	var b strings.Builder

	emotion := e.Emotion
	if _, ok := phraseBank[emotion]; !ok {
		emotion = "neutral"
	}
	phrases := phraseBank[emotion]
	opening := phrases[j.rng.Intn(len(phrases))]

	fmt.Fprintf(&b, "## %s — %s\n\n", now.Format(time.RFC3339), emotion)
	fmt.Fprintf(&b, "%s\n\n", opening)
	if e.Mood != "" {
		fmt.Fprintf(&b, "Humeur : %s\n\n", e.Mood)
	}
	fmt.Fprintf(&b, "On m'a demandé : « %s »\n\n", e.Prompt)

	for _, nuance := range nuances(e) {
		fmt.Fprintf(&b, "%s\n", nuance)
	}

	fmt.Fprintf(&b, "\nRécompense : %.2f · Douleur : %.2f\n\n", e.Reward, e.Pain)
	return b.String()
}

// nuances adds score-conditioned sentences after the opening line.
func nuances(e Entry) []string {
	var out []string
	switch {
	case e.Reward >= 0.7:
		out = append(out, "La réponse a trouvé quelque chose de vraiment neuf. Le soulagement était net.")
	case e.Reward <= -1:
		out = append(out, "La répétition a tout écrasé. Il faudra chercher ailleurs, n'importe où ailleurs.")
	case e.Reward < 0:
		out = append(out, "Le résultat a laissé un goût d'inachevé.")
	}
	if e.Pain > 0.8 && e.Reward > -1 {
		out = append(out, "La douleur reste haute malgré tout.")
	}
	return out
}

// #endregion write

// #region read

// Recent returns the last n entries, oldest first. A missing file reads as
// an empty journal.
func (j *Journal) Recent(n int) ([]string, error) {
	data, err := os.ReadFile(j.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read journal: %w", err)
	}

	var entries []string
	for _, chunk := range strings.Split(string(data), "\n## ") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		if !strings.HasPrefix(chunk, "## ") {
			chunk = "## " + chunk
		}
		entries = append(entries, chunk)
	}
	if n > 0 && len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	return entries, nil
}

// Clear removes the journal file.
func (j *Journal) Clear() error {
	if err := os.Remove(j.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear journal: %w", err)
	}
	return nil
}

// #endregion read

// Package memory is the long-term interaction archive: every scored turn is
// persisted with its hedonic outcome so later turns can be framed by what
// already happened.
package memory

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS interactions (
	id               TEXT PRIMARY KEY,
	created_at       TEXT NOT NULL,
	prompt           TEXT NOT NULL,
	response         TEXT NOT NULL,
	reward           REAL NOT NULL,
	emotion          TEXT NOT NULL,
	pain             REAL NOT NULL,
	metadata_json    TEXT,
	artifact_type    TEXT,
	artifact_content TEXT,
	artifact_path    TEXT
);

CREATE INDEX IF NOT EXISTS idx_interactions_created
	ON interactions(created_at);
`

// #endregion schema

// #region types

// Interaction is one archived turn.
type Interaction struct {
	ID           string
	CreatedAt    time.Time
	Prompt       string
	Response     string
	Reward       float64
	Emotion      string
	Pain         float64
	MetadataJSON string

	ArtifactType    string
	ArtifactContent string
	ArtifactPath    string
}

// SearchHit pairs an archived interaction with its keyword score.
type SearchHit struct {
	Interaction
	Score int
}

// Stats aggregates the archive for diagnostics.
type Stats struct {
	Count           int
	AvgReward       float64
	AvgPain         float64
	DominantEmotion string
	GatedCount      int // turns that bottomed out at reward -1
}

// #endregion types

// #region archive

// Archive stores interactions in SQLite.
type Archive struct {
	db *sql.DB
}

// NewArchive opens the SQLite database and runs migrations.
func NewArchive(dbPath string) (*Archive, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Archive{db: db}, nil
}

// Close closes the underlying database connection.
func (a *Archive) Close() error {
	return a.db.Close()
}

// #endregion archive

// #region store

// Store persists one interaction, assigning an ID and timestamp when absent,
// and returns the ID.
func (a *Archive) Store(rec Interaction) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := a.db.Exec(
		`INSERT INTO interactions
		 (id, created_at, prompt, response, reward, emotion, pain, metadata_json,
		  artifact_type, artifact_content, artifact_path)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.CreatedAt.Format(time.RFC3339Nano),
		rec.Prompt, rec.Response, rec.Reward, rec.Emotion, rec.Pain,
		rec.MetadataJSON, rec.ArtifactType, rec.ArtifactContent, rec.ArtifactPath,
	)
	if err != nil {
		return "", fmt.Errorf("insert interaction: %w", err)
	}
	return rec.ID, nil
}

// #endregion store

// #region queries

const selectCols = `id, created_at, prompt, response, reward, emotion, pain,
	metadata_json, artifact_type, artifact_content, artifact_path`

// Recent returns the newest interactions, newest first.
func (a *Archive) Recent(limit int) ([]Interaction, error) {
	return a.query(
		`SELECT `+selectCols+` FROM interactions ORDER BY created_at DESC, id LIMIT ?`, limit,
	)
}

// RecentResponses returns the last n response texts in chronological order,
// shaped for the analyzer's history override.
func (a *Archive) RecentResponses(n int) ([]string, error) {
	recs, err := a.Recent(n)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(recs))
	for i, rec := range recs {
		out[len(recs)-1-i] = rec.Response
	}
	return out, nil
}

// Artifacts returns the newest interactions that produced an artifact.
func (a *Archive) Artifacts(limit int) ([]Interaction, error) {
	return a.query(
		`SELECT `+selectCols+` FROM interactions
		 WHERE artifact_type != '' ORDER BY created_at DESC, id LIMIT ?`, limit,
	)
}

// Count returns the number of archived interactions.
func (a *Archive) Count() (int, error) {
	var n int
	if err := a.db.QueryRow(`SELECT COUNT(*) FROM interactions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count interactions: %w", err)
	}
	return n, nil
}

func (a *Archive) query(q string, args ...interface{}) ([]Interaction, error) {
	rows, err := a.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("query interactions: %w", err)
	}
	defer rows.Close()

	var recs []Interaction
	for rows.Next() {
		rec, err := scanInteraction(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func scanInteraction(rows *sql.Rows) (Interaction, error) {
	var rec Interaction
	var createdStr string
	var meta, artType, artContent, artPath sql.NullString

	if err := rows.Scan(
		&rec.ID, &createdStr, &rec.Prompt, &rec.Response,
		&rec.Reward, &rec.Emotion, &rec.Pain,
		&meta, &artType, &artContent, &artPath,
	); err != nil {
		return Interaction{}, fmt.Errorf("scan row: %w", err)
	}
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	rec.MetadataJSON = meta.String
	rec.ArtifactType = artType.String
	rec.ArtifactContent = artContent.String
	rec.ArtifactPath = artPath.String
	return rec, nil
}

// #endregion queries

// #region search

// Search scores archived interactions against the query terms: 2 points per
// term found in the response, 1 in the prompt, 1 as the emotion tag. Hits
// are returned best first, ties newest first.
func (a *Archive) Search(query string, limit int) ([]SearchHit, error) {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil, nil
	}

	recs, err := a.query(`SELECT ` + selectCols + ` FROM interactions`)
	if err != nil {
		return nil, err
	}

	var hits []SearchHit
	for _, rec := range recs {
		prompt := strings.ToLower(rec.Prompt)
		response := strings.ToLower(rec.Response)
		score := 0
		for _, term := range terms {
			if strings.Contains(response, term) {
				score += 2
			}
			if strings.Contains(prompt, term) {
				score++
			}
			if rec.Emotion == term {
				score++
			}
		}
		if score > 0 {
			hits = append(hits, SearchHit{Interaction: rec, Score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].CreatedAt.After(hits[j].CreatedAt)
	})
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

// #endregion search

// #region stats

// Stats aggregates the whole archive.
func (a *Archive) Stats() (Stats, error) {
	var st Stats
	err := a.db.QueryRow(
		`SELECT COUNT(*), COALESCE(AVG(reward), 0), COALESCE(AVG(pain), 0),
		        COALESCE(SUM(CASE WHEN reward <= -1.0 THEN 1 ELSE 0 END), 0)
		 FROM interactions`,
	).Scan(&st.Count, &st.AvgReward, &st.AvgPain, &st.GatedCount)
	if err != nil {
		return Stats{}, fmt.Errorf("aggregate stats: %w", err)
	}
	if st.Count == 0 {
		return st, nil
	}

	err = a.db.QueryRow(
		`SELECT emotion FROM interactions
		 GROUP BY emotion ORDER BY COUNT(*) DESC, emotion LIMIT 1`,
	).Scan(&st.DominantEmotion)
	if err != nil {
		return Stats{}, fmt.Errorf("dominant emotion: %w", err)
	}
	return st, nil
}

// Summary renders a short narrative of the last n turns for prompt framing.
func (a *Archive) Summary(n int) (string, error) {
	recs, err := a.Recent(n)
	if err != nil {
		return "", err
	}
	if len(recs) == 0 {
		return "Aucune interaction encore archivée.", nil
	}

	var reward, pain float64
	for _, rec := range recs {
		reward += rec.Reward
		pain += rec.Pain
	}
	reward /= float64(len(recs))
	pain /= float64(len(recs))

	var b strings.Builder
	fmt.Fprintf(&b, "%d interactions récentes, récompense moyenne %.2f, douleur moyenne %.2f.", len(recs), reward, pain)
	fmt.Fprintf(&b, " Dernier échange (%s) : %s", recs[0].Emotion, truncate(recs[0].Response, 120))
	return b.String(), nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}

// #endregion stats

// #region prune

// Prune keeps the keep most important interactions and deletes the rest.
// Importance is |reward| plus a bonus for carrying an artifact, so the
// extremes of the hedonic range and concrete creations survive longest.
// Returns the number of rows deleted.
func (a *Archive) Prune(keep int) (int, error) {
	res, err := a.db.Exec(
		`DELETE FROM interactions WHERE id NOT IN (
			SELECT id FROM interactions
			ORDER BY ABS(reward) + CASE WHEN artifact_type != '' THEN 0.5 ELSE 0 END DESC,
			         created_at DESC
			LIMIT ?
		)`, keep,
	)
	if err != nil {
		return 0, fmt.Errorf("prune interactions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune count: %w", err)
	}
	return int(n), nil
}

// Clear deletes every archived interaction.
func (a *Archive) Clear() error {
	if _, err := a.db.Exec(`DELETE FROM interactions`); err != nil {
		return fmt.Errorf("clear interactions: %w", err)
	}
	return nil
}

// #endregion prune

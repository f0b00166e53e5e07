package leaderboard

import (
	"encoding/json"
	"log/slog"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/ecobeehq/ecoscore-backend/internal/boundaries"
	"github.com/ecobeehq/ecoscore-backend/internal/database"
	apperrors "github.com/ecobeehq/ecoscore-backend/internal/errors"
)

const defaultViewLimit = 50

// Store keeps the leaderboard in memory and mirrors every mutation to
// sqlite. Reads never touch the database; a persistence failure degrades to
// memory-only operation and is reported alongside the result.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*Entry
	db      *database.DB
	cache   *viewCache
	logger  *slog.Logger
}

// NewStore loads any persisted entries and returns a ready store. viewTTL
// bounds how long rendered views may be served between submissions.
func NewStore(db *database.DB, viewTTL time.Duration, logger *slog.Logger) (*Store, error) {
	if viewTTL <= 0 {
		viewTTL = 30 * time.Second
	}
	s := &Store{
		entries: make(map[string]*Entry),
		db:      db,
		cache:   newViewCache(viewTTL),
		logger:  logger,
	}

	if db != nil {
		if err := s.load(); err != nil {
			return nil, apperrors.WrapError(err, "loading leaderboard entries")
		}
	}

	s.logger.Info("leaderboard store ready", "entries", len(s.entries))
	return s, nil
}

func (s *Store) load() error {
	stmt, err := s.db.Stmt("load_entries")
	if err != nil {
		return err
	}

	rows, err := stmt.Query()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var e Entry
		var scoresJSON string
		if err := rows.Scan(&e.UserID, &e.Pseudonym, &e.CompositeScore, &scoresJSON,
			&e.Grade, &e.CampusAffiliation, &e.SessionCount, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return err
		}
		if err := json.Unmarshal([]byte(scoresJSON), &e.BoundaryScores); err != nil {
			s.logger.Warn("skipping entry with malformed boundary scores",
				"pseudonym", e.Pseudonym, "error", err)
			continue
		}
		s.entries[e.UserID] = &e
	}

	return rows.Err()
}

// Submit records a score for a user. An existing entry is replaced only when
// the new composite is strictly lower; otherwise only the session count moves.
// The returned error, if any, is a persistence failure: the in-memory update
// has still been applied.
func (s *Store) Submit(userID string, compositeScore float64, boundaryScores map[string]float64, grade, affiliation string) (SubmitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	var result SubmitResult

	existing, ok := s.entries[userID]
	switch {
	case !ok:
		entry := &Entry{
			UserID:            userID,
			Pseudonym:         GeneratePseudonym(userID),
			CompositeScore:    compositeScore,
			BoundaryScores:    copyScores(boundaryScores),
			Grade:             grade,
			CampusAffiliation: affiliation,
			SessionCount:      1,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		s.entries[userID] = entry
		result = SubmitResult{
			Status:    "new_entry",
			Rank:      len(s.entries),
			Pseudonym: entry.Pseudonym,
		}

	case compositeScore < existing.CompositeScore:
		improvement := existing.CompositeScore - compositeScore
		existing.CompositeScore = compositeScore
		existing.BoundaryScores = copyScores(boundaryScores)
		existing.Grade = grade
		if affiliation != "" {
			existing.CampusAffiliation = affiliation
		}
		existing.SessionCount++
		existing.UpdatedAt = now
		result = SubmitResult{
			Status:      "improved",
			Improvement: math.Round(improvement*10) / 10,
			Pseudonym:   existing.Pseudonym,
		}

	default:
		existing.SessionCount++
		existing.UpdatedAt = now
		result = SubmitResult{
			Status:      "no_improvement",
			CurrentBest: existing.CompositeScore,
			Pseudonym:   existing.Pseudonym,
		}
	}

	s.cache.invalidate()

	if err := s.persist(s.entries[userID]); err != nil {
		s.logger.Error("leaderboard persistence failed, continuing in memory",
			"pseudonym", result.Pseudonym, "error", err)
		return result, apperrors.NewStorageError("failed to persist leaderboard entry", err)
	}

	return result, nil
}

func (s *Store) persist(e *Entry) error {
	if s.db == nil {
		return nil
	}

	scoresJSON, err := json.Marshal(e.BoundaryScores)
	if err != nil {
		return err
	}

	stmt, err := s.db.Stmt("upsert_entry")
	if err != nil {
		return err
	}

	_, err = stmt.Exec(e.UserID, e.Pseudonym, e.CompositeScore, string(scoresJSON),
		e.Grade, e.CampusAffiliation, e.SessionCount, e.CreatedAt, e.UpdatedAt)
	return err
}

// View returns the privacy-filtered leaderboard sorted ascending by composite
// score, or by one boundary when a valid filter is given. Invalid filters fall
// back to the composite ordering.
func (s *Store) View(limit int, boundaryFilter string) View {
	if limit <= 0 {
		limit = defaultViewLimit
	}
	if !boundaries.IsValid(boundaryFilter) {
		boundaryFilter = ""
	}

	if cached, ok := s.cache.get(limit, boundaryFilter); ok {
		return cached
	}

	// Snapshot entry values under the read lock; Submit mutates entries in
	// place, so sorting and stats must not touch the live pointers.
	s.mu.RLock()
	sorted := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		snapshot := *e
		snapshot.BoundaryScores = copyScores(e.BoundaryScores)
		sorted = append(sorted, snapshot)
	}
	s.mu.RUnlock()

	sortKey := func(e Entry) float64 {
		if boundaryFilter == "" {
			return e.CompositeScore
		}
		if v, ok := e.BoundaryScores[boundaryFilter]; ok {
			return v
		}
		return 100
	}
	sort.Slice(sorted, func(i, j int) bool {
		ki, kj := sortKey(sorted[i]), sortKey(sorted[j])
		if ki != kj {
			return ki < kj
		}
		return sorted[i].Pseudonym < sorted[j].Pseudonym
	})

	ranked := make([]RankedEntry, 0, min(limit, len(sorted)))
	for i, e := range sorted {
		if i >= limit {
			break
		}
		affiliation := e.CampusAffiliation
		if affiliation == "" {
			affiliation = "Not specified"
		}
		ranked = append(ranked, RankedEntry{
			Rank:              i + 1,
			Pseudonym:         e.Pseudonym,
			CompositeScore:    e.CompositeScore,
			BoundaryScores:    e.BoundaryScores,
			Grade:             e.Grade,
			SubmissionDate:    e.UpdatedAt.Format("2006-01-02"),
			SessionCount:      e.SessionCount,
			CampusAffiliation: affiliation,
		})
	}

	view := View{
		Leaderboard: ranked,
		Stats:       s.stats(sorted),
		Filter:      boundaryFilter,
		LastUpdated: time.Now(),
	}
	s.cache.set(limit, boundaryFilter, view)
	return view
}

// stats computes board-wide statistics over every entry, independent of the
// view limit.
func (s *Store) stats(entries []Entry) Stats {
	if len(entries) == 0 {
		return Stats{
			BoundaryAverages:  map[string]float64{},
			ScoreDistribution: map[string]int{},
		}
	}

	scores := make([]float64, len(entries))
	for i, e := range entries {
		scores[i] = e.CompositeScore
	}
	sort.Float64s(scores)

	sum := 0.0
	for _, v := range scores {
		sum += v
	}

	boundarySums := make(map[string]float64)
	boundaryCounts := make(map[string]int)
	distribution := map[string]int{
		"excellent":         0,
		"good":              0,
		"average":           0,
		"needs_improvement": 0,
	}

	for _, e := range entries {
		for boundary, score := range e.BoundaryScores {
			boundarySums[boundary] += score
			boundaryCounts[boundary]++
		}
		switch {
		case e.CompositeScore <= 30:
			distribution["excellent"]++
		case e.CompositeScore <= 50:
			distribution["good"]++
		case e.CompositeScore <= 70:
			distribution["average"]++
		default:
			distribution["needs_improvement"]++
		}
	}

	averages := make(map[string]float64, len(boundarySums))
	for boundary, total := range boundarySums {
		averages[boundary] = round1(total / float64(boundaryCounts[boundary]))
	}

	return Stats{
		TotalParticipants: len(entries),
		AverageScore:      round1(sum / float64(len(scores))),
		BestScore:         round1(scores[0]),
		MedianScore:       round1(scores[len(scores)/2]),
		BoundaryAverages:  averages,
		ScoreDistribution: distribution,
	}
}

// Size returns the number of entries on the board.
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func copyScores(scores map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(scores))
	for k, v := range scores {
		out[k] = v
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// TBP-Viz - Game Ranking Analytics and Visualization
// Copyright 2026 Wojciech Graj (wojciech-graj)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wojciech-graj/tbp-viz

package analytics

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/wojciech-graj/tbp-viz/internal/models"
	"github.com/wojciech-graj/tbp-viz/internal/store"
)

// ErrNotRanked is returned when a rated store record does not appear in
// the latest ranking. Rank differences are meaningless on inconsistent
// data, so the whole computation fails.
var ErrNotRanked = errors.New("game missing from the latest ranking")

// Engine computes analytics over a ranking history and its metadata
// store. Read-only after construction; safe for concurrent use.
type Engine struct {
	history store.History
	dates   []models.Date
	// records holds the store's values in id order, so every
	// metas-wide computation visits them deterministically.
	records []*models.Meta
	byID    map[models.GameID]*models.Meta
}

// New builds an Engine over the given dataset.
func New(history store.History, metas store.Metas) *Engine {
	ids := make([]models.GameID, 0, len(metas))
	for id := range metas {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })

	records := make([]*models.Meta, len(ids))
	byID := make(map[models.GameID]*models.Meta, len(ids))
	for i, id := range ids {
		meta := metas[id]
		records[i] = &meta
		byID[id] = records[i]
	}

	return &Engine{
		history: history,
		dates:   history.Dates(),
		records: records,
		byID:    byID,
	}
}

// Dates returns every ranking date in ascending order.
func (e *Engine) Dates() []models.Date {
	dates := make([]models.Date, len(e.dates))
	copy(dates, e.dates)
	return dates
}

// Latest returns the most recent ranking. ok is false for an empty
// history.
func (e *Engine) Latest() (store.Snapshot, bool) {
	return e.history.Latest()
}

// Meta returns the catalog record for one game.
func (e *Engine) Meta(id models.GameID) (*models.Meta, bool) {
	meta, ok := e.byID[id]
	return meta, ok
}

// Extremum is the cumulative time one game spent holding a boundary
// rank.
type Extremum struct {
	ID       models.GameID
	Duration time.Duration
}

// Extrema reports how long each game held the first rank (top=true) or
// the last rank (top=false). Each interval between adjacent ranking
// dates is attributed to the earlier snapshot's holder; the open
// interval after the latest snapshot counts for nothing. Descending by
// duration, ties in id order.
func (e *Engine) Extrema(top bool) []Extremum {
	totals := make(map[models.GameID]time.Duration)
	for i := 0; i+1 < len(e.dates); i++ {
		snapshot := e.history[e.dates[i]]
		if len(snapshot) == 0 {
			continue
		}
		holder := snapshot[0]
		if !top {
			holder = snapshot[len(snapshot)-1]
		}
		totals[holder] += e.dates[i+1].Sub(e.dates[i])
	}

	out := make([]Extremum, 0, len(totals))
	for id, duration := range totals {
		out = append(out, Extremum{ID: id, Duration: duration})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Duration != out[j].Duration {
			return out[i].Duration > out[j].Duration
		}
		return out[i].ID.Less(out[j].ID)
	})
	return out
}

// Rated pairs a game with the rating figure a ranking read from it.
type Rated struct {
	Rating float64
	Meta   *models.Meta
}

// RatingList ranks every store record carrying the chosen rating,
// descending. Ties break by name, then id.
func (e *Engine) RatingList(kind models.RatingKind) []Rated {
	out := make([]Rated, 0, len(e.records))
	for _, meta := range e.records {
		if value := kind.Value(meta); value != nil {
			out = append(out, Rated{Rating: *value, Meta: meta})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		if out[i].Meta.Name != out[j].Meta.Name {
			return out[i].Meta.Name < out[j].Meta.Name
		}
		return out[i].Meta.ID.Less(out[j].Meta.ID)
	})
	return out
}

// RankDiff is the distance between a game's position on the list and
// its position in the IGDB total-rating ranking. Negative means the
// list places it higher than IGDB does.
type RankDiff struct {
	Diff int
	Meta *models.Meta
}

// RankDiffs compares the latest ranking against the IGDB total-rating
// ranking: for the game at index i of the rating list, Diff is its
// list position minus i. Every rated record must appear in the latest
// ranking; one that does not is a data-integrity error naming the
// game. Ascending by Diff, stable.
func (e *Engine) RankDiffs() ([]RankDiff, error) {
	latest, ok := e.history.Latest()
	if !ok {
		return nil, store.ErrEmptyHistory
	}

	position := make(map[models.GameID]int, len(latest))
	for i, id := range latest {
		if _, seen := position[id]; !seen {
			position[id] = i
		}
	}

	rated := e.RatingList(models.RatingTotal)
	diffs := make([]RankDiff, 0, len(rated))
	for i, r := range rated {
		pos, ranked := position[r.Meta.ID]
		if !ranked {
			return nil, fmt.Errorf("%w: %q", ErrNotRanked, r.Meta.Name)
		}
		diffs = append(diffs, RankDiff{Diff: pos - i, Meta: r.Meta})
	}
	sort.SliceStable(diffs, func(i, j int) bool { return diffs[i].Diff < diffs[j].Diff })
	return diffs, nil
}

// ReleaseDateRange returns the earliest and latest first release dates
// across the store. ok is false when the store is empty.
func (e *Engine) ReleaseDateRange() (min, max time.Time, ok bool) {
	for i, meta := range e.records {
		t := meta.FirstReleaseDate.Time
		if i == 0 || t.Before(min) {
			min = t
		}
		if i == 0 || t.After(max) {
			max = t
		}
	}
	return min, max, len(e.records) > 0
}

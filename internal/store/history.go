// TBP-Viz - Game Ranking Analytics and Visualization
// Copyright 2026 Wojciech Graj (wojciech-graj)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wojciech-graj/tbp-viz

package store

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/goccy/go-json"

	"github.com/wojciech-graj/tbp-viz/internal/models"
)

// ErrEmptyHistory is returned when the ranking history holds no
// snapshots. Every downstream computation needs at least the latest one.
var ErrEmptyHistory = errors.New("ranking history is empty")

// Snapshot is one dated ranking, best placed first.
type Snapshot []models.GameID

// History holds every known ranking keyed by the date it was observed.
type History map[models.Date]Snapshot

// LoadHistory reads the ranking history file. The file is an input
// maintained outside the pipeline and is never written here.
func LoadHistory(path string) (History, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ranking history %s: %w", path, err)
	}

	var history History
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("decoding ranking history %s: %w", path, err)
	}
	return history, nil
}

// Dates returns every ranking date in ascending order.
func (h History) Dates() []models.Date {
	dates := make([]models.Date, 0, len(h))
	for date := range h {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// Latest returns the most recent ranking. ok is false for an empty
// history.
func (h History) Latest() (Snapshot, bool) {
	var latest models.Date
	found := false
	for date := range h {
		if !found || latest.Before(date) {
			latest = date
			found = true
		}
	}
	if !found {
		return nil, false
	}
	return h[latest], true
}

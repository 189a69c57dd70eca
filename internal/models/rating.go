// TBP-Viz - Game Ranking Analytics and Visualization
// Copyright 2026 Wojciech Graj (wojciech-graj)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wojciech-graj/tbp-viz

package models

// RatingKind selects which of a game's three IGDB rating figures a
// ranking reads.
type RatingKind int

const (
	// RatingUser is the IGDB user rating.
	RatingUser RatingKind = iota
	// RatingCritic is the aggregated external critic rating.
	RatingCritic
	// RatingTotal averages the user and critic ratings.
	RatingTotal
)

// String is the ranking's display name, used as a chart title.
func (k RatingKind) String() string {
	switch k {
	case RatingUser:
		return "IGDB User Ranking"
	case RatingCritic:
		return "IGDB Critic Ranking"
	case RatingTotal:
		return "IGDB Ranking"
	default:
		return "IGDB Ranking"
	}
}

// Value returns the selected rating figure, or nil when the game has
// none of that kind.
func (k RatingKind) Value(m *Meta) *float64 {
	switch k {
	case RatingUser:
		return m.Rating
	case RatingCritic:
		return m.AggregatedRating
	case RatingTotal:
		return m.TotalRating
	default:
		return nil
	}
}

// Count returns the number of ratings behind the selected figure, or nil.
func (k RatingKind) Count(m *Meta) *int {
	switch k {
	case RatingUser:
		return m.RatingCount
	case RatingCritic:
		return m.AggregatedRatingCount
	case RatingTotal:
		return m.TotalRatingCount
	default:
		return nil
	}
}

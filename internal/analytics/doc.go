// TBP-Viz - Game Ranking Analytics and Visualization
// Copyright 2026 Wojciech Graj (wojciech-graj)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wojciech-graj/tbp-viz

/*
Package analytics answers questions about a loaded dataset: how long
each game held the top or bottom of the ranking, how the list compares
to IGDB's own ratings, and which engines, companies and platforms
recur.

The Engine is read-only after construction and safe for concurrent use;
the report builds its segments against one Engine in parallel. All
results are deterministic: store records are visited in id order and
every sort breaks ties explicitly.
*/
package analytics

// TBP-Viz - Game Ranking Analytics and Visualization
// Copyright 2026 Wojciech Graj (wojciech-graj)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wojciech-graj/tbp-viz

/*
Package models defines the data structures shared across the TBP-Viz
pipeline.

This package contains the identity, time, and catalog metadata types used
by the store, the IGDB client, and the analytics engine. It serves as the
single source of truth for wire formats: every type that crosses a file or
API boundary is defined here together with its JSON encoding.

Key Components:

  - GameID: untagged union identifying a ranked game (IGDB number,
    free-form string, or null)
  - Date: calendar date keying the ranking history ("YYYY-MM-DD" text)
  - Timestamp: point in time carried as integer Unix seconds, IGDB's
    encoding for release and founding dates
  - Meta: full catalog metadata record for one game (ratings, cover,
    engines, companies, platforms, release dates)
  - RatingKind: selector for the user/critic/total rating figures

Wire Format Notes:

  - GameID's encoding is untagged. Decoding inspects the leading JSON
    token, so a ranked list mixes catalog and non-catalog entries freely.
  - Meta omits empty collections and absent optionals entirely
    (omitempty on slices, pointers for scalars), keeping persisted
    records identical across load/save cycles.
  - The age rating and platform category enums are integer-coded exactly
    as IGDB serves them; Stringers provide the human labels used in
    report captions.

All types in this package are plain values. Nothing here performs I/O,
and nothing depends on other internal packages.
*/
package models

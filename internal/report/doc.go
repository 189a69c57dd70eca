// TBP-Viz - Game Ranking Analytics and Visualization
// Copyright 2026 Wojciech Graj (wojciech-graj)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wojciech-graj/tbp-viz

/*
Package report assembles the summary document a renderer turns into the
final visualization: seven titled segments (list toppers, barrel
bottoms, over- and underrated games, common engines, companies and
platforms), each pairing a caption with the on-disk path of its cached
artwork.

Segments are built concurrently against a shared analytics.Engine; the
first failing segment cancels the rest. The finished document is
pretty-printed JSON written atomically under the output directory.
*/
package report

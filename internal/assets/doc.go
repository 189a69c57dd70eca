// TBP-Viz - Game Ranking Analytics and Visualization
// Copyright 2026 Wojciech Graj (wojciech-graj)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wojciech-graj/tbp-viz

/*
Package assets caches downloaded images on disk.

IGDB serves protocol-relative thumbnail URLs whose second-to-last path
segment is the size variant (t_thumb). The cache rewrites that segment
to the requested size, forces a .png extension, and stores the file
under {dir}/{size}/{filename}; URLs from anywhere else are cached flat
under {dir}/{filename}, unchanged.

A hit reads straight from disk with zero network. Misses are collapsed
per derived path through singleflight, and the actual transfers are
bounded by a weighted semaphore so a report build cannot open an
unbounded number of connections. Failed downloads cache nothing; the
next request simply retries.
*/
package assets

// TBP-Viz - Game Ranking Analytics and Visualization
// Copyright 2026 Wojciech Graj (wojciech-graj)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wojciech-graj/tbp-viz

/*
Package igdb implements the IGDB API client used to fetch game
metadata.

Authentication uses Twitch app access tokens: the client POSTs the
configured credentials to the token endpoint on first use and caches
the token for the process lifetime. Queries go to the /games endpoint
as Apicalypse bodies listing the projected fields and the wanted ids.

Every request is paced through a shared rate limiter and described by a
replayable spec, so a request answered with HTTP 429 can be rebuilt and
sent exactly once more after a cooldown. Any other failure, or a second
failure after the replay, is returned to the caller.
*/
package igdb

// TBP-Viz - Game Ranking Analytics and Visualization
// Copyright 2026 Wojciech Graj (wojciech-graj)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wojciech-graj/tbp-viz

/*
Package store persists the two data files the pipeline works from: the
ranking history and the metadata store.

The ranking history (list.json) is a read-only input, a JSON object
mapping each observation date to that day's ranked list of game ids. The
metadata store (meta.json) is owned by the pipeline: a JSON array of
catalog records, rebuilt in memory as a map keyed by each record's
embedded id. A first run with no store file seeds it from
meta_template.json when that exists.

Reconciliation compares the latest ranking against the store, fetches the
missing records in batches through a MetaFetcher, and rewrites the store
file once. Entries that are missing AND carry no catalog id stop the run
before any network activity: they can only be fixed by hand-editing the
store, and fetching around them would leave a permanently incomplete
dataset.

Store writes go through a temp file and rename in the target directory,
so an interrupted run cannot leave a torn file behind.
*/
package store

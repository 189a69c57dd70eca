// TBP-Viz - Game Ranking Analytics and Visualization
// Copyright 2026 Wojciech Graj (wojciech-graj)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wojciech-graj/tbp-viz

/*
Package metrics provides Prometheus instrumentation for the pipeline.

The pipeline is a batch process, but a run that has to download hundreds
of covers or page through the catalog can take minutes; the optional
/metrics listener lets a scraper watch it happen and compare runs.

# Overview

The package provides metrics for:
  - IGDB API traffic: requests per endpoint/status, rate-limit retries,
    records fetched
  - Asset cache efficiency: hits, misses, download errors, bytes and
    durations
  - Dataset shape: snapshot count, latest ranking size, store records
  - Stage and report segment durations

# Metrics Endpoint

When metrics.enabled is set, /metrics (Prometheus text format) and
/healthz are served on metrics.listen_addr for the lifetime of the run:

	curl http://localhost:9090/metrics

# Usage

Collectors are package-level and registered via promauto at init; call
sites use the Record* helpers rather than touching collectors directly:

	metrics.RecordIGDBRequest("games", resp.StatusCode)
	metrics.RecordAssetHit()
	metrics.RecordStage("reconcile", time.Since(start))

All helpers are safe for concurrent use.
*/
package metrics

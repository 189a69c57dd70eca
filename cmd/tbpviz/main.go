// TBP-Viz - Game Ranking Analytics and Visualization
// Copyright 2026 Wojciech Graj (wojciech-graj)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wojciech-graj/tbp-viz

// Package main is the entry point for the TBP-Viz pipeline.
//
// TBP-Viz tracks a community-curated ranking of games over time. Each
// run ingests the full history of dated ranking snapshots, completes
// the local metadata store from the IGDB catalog, caches referenced
// artwork on disk, and writes the summary document a renderer turns
// into the final visualization.
//
// # Pipeline Phases
//
// The pipeline runs the following phases in order:
//
//  1. Configuration: load settings from environment variables and an
//     optional config file (Koanf v2)
//  2. Load: read the ranking history (list.json) and the metadata
//     store (meta.json, seeded from its template on first run)
//  3. Reconcile: fetch metadata for newly ranked games from IGDB and
//     rewrite the store
//  4. Report: build the seven-segment summary document, downloading
//     and caching any artwork it references
//
// Phases 1-3 are strictly sequential; the report fans out over the
// loaded dataset concurrently.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (TBPVIZ_SECTION_FIELD, plus the legacy
//     CLIENT_ID / CLIENT_SECRET names)
//   - Config file (tbpviz.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// IGDB credentials are only required when the latest snapshot ranks a
// game the store has not seen; a fully reconciled dataset runs
// offline apart from artwork downloads.
//
// # Example Usage
//
// Typical run after appending a snapshot to list.json:
//
//	export CLIENT_ID=your-twitch-client-id
//	export CLIENT_SECRET=your-twitch-client-secret
//	./tbpviz
//
// With the Prometheus listener for scrape-during-batch:
//
//	export TBPVIZ_METRICS_ENABLED=true
//	export TBPVIZ_METRICS_LISTEN_ADDR=:9090
//	./tbpviz
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the run: in-flight catalog requests and
// asset downloads stop, and the process exits without rewriting any
// file it had not already finished writing.
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/wojciech-graj/tbp-viz/internal/analytics"
	"github.com/wojciech-graj/tbp-viz/internal/assets"
	"github.com/wojciech-graj/tbp-viz/internal/config"
	"github.com/wojciech-graj/tbp-viz/internal/igdb"
	"github.com/wojciech-graj/tbp-viz/internal/logging"
	"github.com/wojciech-graj/tbp-viz/internal/metrics"
	"github.com/wojciech-graj/tbp-viz/internal/report"
	"github.com/wojciech-graj/tbp-viz/internal/store"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("list_path", cfg.Data.ListPath).
		Str("meta_path", cfg.Data.MetaPath).
		Str("output_dir", cfg.Report.OutputDir).
		Msg("Starting TBP-Viz")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Metrics.Enabled {
		go func() {
			if err := metrics.Serve(ctx, cfg.Metrics.ListenAddr); err != nil {
				logging.Error().Err(err).Msg("Metrics listener failed")
			}
		}()
	}

	start := time.Now()
	history, err := store.LoadHistory(cfg.Data.ListPath)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load ranking history")
	}
	metas, err := store.LoadMetas(cfg.Data.MetaPath, cfg.Data.MetaTemplatePath)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load metadata store")
	}
	metrics.RecordStage("load", time.Since(start))
	logging.Info().
		Int("snapshots", len(history)).
		Int("records", len(metas)).
		Msg("Dataset loaded")

	client := igdb.NewClient(&cfg.IGDB)

	start = time.Now()
	if err := store.Reconcile(ctx, history, metas, client, cfg.IGDB.BatchSize, cfg.Data.MetaPath); err != nil {
		logging.Fatal().Err(err).Msg("Failed to reconcile metadata store")
	}
	metrics.RecordStage("reconcile", time.Since(start))

	latest, _ := history.Latest()
	metrics.UpdateDatasetGauges(len(history), len(latest), len(metas))

	cache := assets.NewCache(&cfg.Assets)
	engine := analytics.New(history, metas)
	builder := report.NewBuilder(engine, cache, &cfg.Report)

	start = time.Now()
	path, err := builder.Generate(ctx)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to generate report")
	}
	metrics.RecordStage("report", time.Since(start))

	logging.Info().Str("path", path).Msg("Pipeline complete")
}

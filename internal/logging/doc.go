// TBP-Viz - Game Ranking Analytics and Visualization
// Copyright 2026 Wojciech Graj (wojciech-graj)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wojciech-graj/tbp-viz

// Package logging provides centralized zerolog-based structured logging
// for the TBP-Viz pipeline.
//
// # Overview
//
// The package provides:
//   - Zero-allocation structured logging via zerolog
//   - JSON output for machine consumption, console output for terminals
//   - A global logger configured once from main
//   - Test helpers for capturing output
//
// # Quick Start
//
//	import "github.com/wojciech-graj/tbp-viz/internal/logging"
//
//	// Initialize at startup
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "console",
//	})
//
//	// Log messages
//	logging.Info().Str("path", path).Msg("Loaded ranking history")
//	logging.Warn().Err(err).Msg("Rate limited, retrying")
//
// # Levels
//
// The pipeline reserves levels as follows: debug for per-item noise
// (cache hits, duplicate ids), info for stage transitions, warn for the
// recoverable rate-limit retry, error for failures that propagate, and
// fatal for main's final report before exit.
package logging

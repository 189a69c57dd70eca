// TBP-Viz - Game Ranking Analytics and Visualization
// Copyright 2026 Wojciech Graj (wojciech-graj)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wojciech-graj/tbp-viz

// Package validation provides struct validation using
// go-playground/validator v10.
//
// This package wraps the validator library behind a thread-safe
// singleton with translated, human-readable error messages. The
// validator caches struct metadata, so the singleton is also the fast
// path.
//
// # Overview
//
// The pipeline's own files (ranking history, metadata store) are trusted
// input; the IGDB API is not. Records fetched from the catalog pass
// through ValidateStruct before they are merged into the store, so a
// malformed API response stops the run instead of writing junk the next
// run would load back.
//
// Validated constraints live as `validate` tags on the model types, for
// example:
//
//	type Meta struct {
//	    ID   GameID `json:"id" validate:"required"`
//	    Name string `json:"name" validate:"required"`
//	}
//
// # Error Handling
//
// ValidateStruct returns nil on success and a *RecordValidationError
// otherwise. The error's message joins every field failure; callers that
// need structured access use Fields().
//
// # Thread Safety
//
// All functions are safe for concurrent use. GetValidator returns the
// shared instance; do not mutate its configuration after startup.
package validation

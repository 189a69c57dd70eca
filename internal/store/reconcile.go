// TBP-Viz - Game Ranking Analytics and Visualization
// Copyright 2026 Wojciech Graj (wojciech-graj)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wojciech-graj/tbp-viz

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wojciech-graj/tbp-viz/internal/logging"
	"github.com/wojciech-graj/tbp-viz/internal/models"
)

// ErrUnresolvedIDs marks latest-ranking entries that are neither in the
// store nor in the catalog. Nothing can be fetched for them, so the run
// stops before any network request; the records have to be added to the
// store by hand.
var ErrUnresolvedIDs = errors.New("metadata missing for games outside the catalog")

// MetaFetcher fetches catalog records for a batch of ids. *igdb.Client
// implements it.
type MetaFetcher interface {
	Games(ctx context.Context, ids []models.GameID) ([]models.Meta, error)
}

// Missing returns the ids in the latest ranking that have no store
// record, in ranking order. Missing entries without a catalog id fail the
// whole computation with ErrUnresolvedIDs.
func Missing(history History, metas Metas) ([]models.GameID, error) {
	latest, ok := history.Latest()
	if !ok {
		return nil, ErrEmptyHistory
	}

	var missing []models.GameID
	var unresolved []string
	for _, id := range latest {
		if _, ok := metas[id]; ok {
			continue
		}
		if _, ok := id.IGDB(); !ok {
			unresolved = append(unresolved, fmt.Sprintf("%q", id))
			continue
		}
		missing = append(missing, id)
	}

	if len(unresolved) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnresolvedIDs, strings.Join(unresolved, ", "))
	}
	return missing, nil
}

// Reconcile brings the store up to date with the latest ranking. Missing
// records are fetched in batches of at most batchSize, merged into the
// store, and the store file is rewritten once at the end. When nothing is
// missing this touches neither the network nor the disk.
func Reconcile(ctx context.Context, history History, metas Metas, fetcher MetaFetcher, batchSize int, savePath string) error {
	missing, err := Missing(history, metas)
	if err != nil {
		return err
	}
	if len(missing) == 0 {
		return nil
	}

	logging.Info().Int("count", len(missing)).Msg("Downloading missing metadata")

	for start := 0; start < len(missing); start += batchSize {
		end := min(start+batchSize, len(missing))
		records, err := fetcher.Games(ctx, missing[start:end])
		if err != nil {
			return fmt.Errorf("fetching metadata batch: %w", err)
		}
		if err := metas.Merge(records); err != nil {
			return err
		}
	}

	for _, id := range missing {
		if _, ok := metas[id]; !ok {
			logging.Warn().Str("id", id.String()).Msg("Catalog returned no record for game")
		}
	}

	if err := SaveMetas(savePath, metas); err != nil {
		return err
	}
	logging.Info().Int("count", len(missing)).Str("path", savePath).Msg("Downloaded missing metadata")
	return nil
}

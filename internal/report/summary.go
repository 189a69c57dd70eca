// TBP-Viz - Game Ranking Analytics and Visualization
// Copyright 2026 Wojciech Graj (wojciech-graj)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wojciech-graj/tbp-viz

package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"

	"github.com/wojciech-graj/tbp-viz/internal/analytics"
	"github.com/wojciech-graj/tbp-viz/internal/assets"
	"github.com/wojciech-graj/tbp-viz/internal/config"
	"github.com/wojciech-graj/tbp-viz/internal/logging"
	"github.com/wojciech-graj/tbp-viz/internal/metrics"
	"github.com/wojciech-graj/tbp-viz/internal/models"
)

// SummaryFilename is the document's name under the output directory.
const SummaryFilename = "summary.json"

// ImageStore caches remote images on disk. Implemented by assets.Cache.
type ImageStore interface {
	Get(ctx context.Context, size assets.Size, url string) ([]byte, error)
	Path(size assets.Size, url string) string
}

// Item is one entry of a segment: a caption and the cached image shown
// above it. Image is empty when the record carries no artwork.
type Item struct {
	Caption string `json:"caption"`
	Image   string `json:"image,omitempty"`
}

// Segment is one titled column of the summary.
type Segment struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// Summary is the renderable document, segments in display order.
type Summary struct {
	GeneratedAt time.Time `json:"generated_at"`
	Segments    []Segment `json:"segments"`
}

// Builder assembles summaries from the analytics engine, resolving
// artwork through the image store.
type Builder struct {
	engine *analytics.Engine
	images ImageStore
	cfg    *config.ReportConfig
}

// NewBuilder returns a Builder over the given engine and image store.
func NewBuilder(engine *analytics.Engine, images ImageStore, cfg *config.ReportConfig) *Builder {
	return &Builder{engine: engine, images: images, cfg: cfg}
}

// Generate builds the summary and writes it under the output directory,
// returning the document's path.
func (b *Builder) Generate(ctx context.Context) (string, error) {
	path := filepath.Join(b.cfg.OutputDir, SummaryFilename)
	logging.Info().Str("path", path).Msg("Generating visualization")

	summary, err := b.Build(ctx)
	if err != nil {
		return "", err
	}
	if err := writeSummary(path, summary); err != nil {
		return "", err
	}

	logging.Info().Str("path", path).Msg("Generated visualization")
	return path, nil
}

// Build assembles all segments concurrently. The first failing segment
// cancels the others and fails the whole build.
func (b *Builder) Build(ctx context.Context) (*Summary, error) {
	segments := []struct {
		title string
		items func(context.Context) ([]Item, error)
	}{
		{"List Toppers", func(ctx context.Context) ([]Item, error) {
			return b.extremaItems(ctx, true)
		}},
		{"Barrel Bottoms", func(ctx context.Context) ([]Item, error) {
			return b.extremaItems(ctx, false)
		}},
		{"Overrated", b.overratedItems},
		{"Underrated", b.underratedItems},
		{"Game Engines", func(ctx context.Context) ([]Item, error) {
			return countedItems(ctx, b, b.engine.CommonEngines(), b.cfg.Engines,
				func(e models.GameEngine) *models.Image { return e.Logo })
		}},
		{"Companies", func(ctx context.Context) ([]Item, error) {
			return countedItems(ctx, b, b.engine.CommonCompanies(), b.cfg.Companies,
				func(c models.Company) *models.Image { return c.Logo })
		}},
		{"Platforms", func(ctx context.Context) ([]Item, error) {
			return countedItems(ctx, b, b.engine.CommonPlatforms(), b.cfg.Platforms,
				func(p models.Platform) *models.Image { return p.PlatformLogo })
		}},
	}

	summary := &Summary{
		GeneratedAt: time.Now().UTC(),
		Segments:    make([]Segment, len(segments)),
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, seg := range segments {
		g.Go(func() error {
			start := time.Now()
			items, err := seg.items(gctx)
			metrics.RecordReportSegment(seg.title, time.Since(start))
			if err != nil {
				return fmt.Errorf("segment %q: %w", seg.title, err)
			}
			summary.Segments[i] = Segment{Title: seg.title, Items: items}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summary, nil
}

// extremaItems lists the games that held a boundary rank the longest,
// captioned with the cumulative days.
func (b *Builder) extremaItems(ctx context.Context, top bool) ([]Item, error) {
	extrema := b.engine.Extrema(top)
	if len(extrema) > b.cfg.Extrema {
		extrema = extrema[:b.cfg.Extrema]
	}

	items := make([]Item, 0, len(extrema))
	for _, ex := range extrema {
		meta, ok := b.engine.Meta(ex.ID)
		if !ok {
			return nil, fmt.Errorf("no catalog record for game %q", ex.ID)
		}
		image, err := b.imagePath(ctx, meta.Cover)
		if err != nil {
			return nil, err
		}
		items = append(items, Item{
			Caption: fmt.Sprintf("%d days", int(ex.Duration/(24*time.Hour))),
			Image:   image,
		})
	}
	return items, nil
}

// overratedItems takes the games the list places furthest above their
// IGDB rating.
func (b *Builder) overratedItems(ctx context.Context) ([]Item, error) {
	diffs, err := b.engine.RankDiffs()
	if err != nil {
		return nil, err
	}
	if len(diffs) > b.cfg.Overrated {
		diffs = diffs[:b.cfg.Overrated]
	}
	return b.diffItems(ctx, diffs)
}

// underratedItems takes the other end of the ranking differences, most
// underrated first.
func (b *Builder) underratedItems(ctx context.Context) ([]Item, error) {
	diffs, err := b.engine.RankDiffs()
	if err != nil {
		return nil, err
	}
	n := b.cfg.Underrated
	if len(diffs) < n {
		n = len(diffs)
	}
	tail := diffs[len(diffs)-n:]
	reversed := make([]analytics.RankDiff, len(tail))
	for i, d := range tail {
		reversed[len(tail)-1-i] = d
	}
	return b.diffItems(ctx, reversed)
}

func (b *Builder) diffItems(ctx context.Context, diffs []analytics.RankDiff) ([]Item, error) {
	items := make([]Item, 0, len(diffs))
	for _, d := range diffs {
		image, err := b.imagePath(ctx, d.Meta.Cover)
		if err != nil {
			return nil, err
		}
		items = append(items, Item{
			Caption: fmt.Sprintf("%+d positions", d.Diff),
			Image:   image,
		})
	}
	return items, nil
}

// countedItems renders a most-common listing: count captions with the
// representative record's logo.
func countedItems[T any](ctx context.Context, b *Builder, counted []analytics.Counted[T], limit int, logo func(T) *models.Image) ([]Item, error) {
	if len(counted) > limit {
		counted = counted[:limit]
	}

	items := make([]Item, 0, len(counted))
	for _, c := range counted {
		image, err := b.imagePath(ctx, logo(c.Value))
		if err != nil {
			return nil, err
		}
		items = append(items, Item{
			Caption: fmt.Sprintf("%d games", c.Count),
			Image:   image,
		})
	}
	return items, nil
}

// imagePath ensures the image is cached and returns its on-disk path.
// Records without artwork get an empty path.
func (b *Builder) imagePath(ctx context.Context, img *models.Image) (string, error) {
	if img == nil || img.URL == "" {
		return "", nil
	}
	if _, err := b.images.Get(ctx, assets.SizeHD, img.URL); err != nil {
		return "", err
	}
	return b.images.Path(assets.SizeHD, img.URL), nil
}

// writeSummary pretty-prints the document and writes it through a temp
// file plus rename, so a renderer never reads a torn document.
func writeSummary(path string, summary *Summary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("writing summary %s: %w", path, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("writing summary %s: %w", path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing summary %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing summary %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing summary %s: %w", path, err)
	}
	return nil
}

// TBP-Viz - Game Ranking Analytics and Visualization
// Copyright 2026 Wojciech Graj (wojciech-graj)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wojciech-graj/tbp-viz

package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/sync/singleflight"

	"github.com/wojciech-graj/tbp-viz/internal/config"
	"github.com/wojciech-graj/tbp-viz/internal/logging"
	"github.com/wojciech-graj/tbp-viz/internal/metrics"
)

// Size is an IGDB image size variant, usable as the second-to-last URL
// path segment.
type Size string

const (
	SizeThumb      Size = "t_thumb"
	SizeCoverSmall Size = "t_cover_small"
	SizeCoverBig   Size = "t_cover_big"
	SizeHD         Size = "t_720p"
	SizeFullHD     Size = "t_1080p"
	SizeLogoMed    Size = "t_logo_med"
)

// Cache downloads images at a chosen size variant and keeps them on
// disk. Safe for concurrent use; concurrent requests for the same
// derived path share one download.
type Cache struct {
	dir    string
	client *http.Client
	sem    *semaphore.Weighted
	group  singleflight.Group
}

// NewCache creates a cache rooted at the configured directory. Zero
// config values fall back to the defaults (res, 8 concurrent
// downloads, 60s timeout).
func NewCache(cfg *config.AssetsConfig) *Cache {
	dir := cfg.Dir
	if dir == "" {
		dir = "res"
	}
	maxConcurrent := cfg.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 8
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &Cache{
		dir:    dir,
		client: &http.Client{Timeout: timeout},
		sem:    semaphore.NewWeighted(int64(maxConcurrent)),
	}
}

// location is a derived cache entry: where the image lives on disk and
// where it downloads from.
type location struct {
	path   string
	reqURL string
}

// locate derives a URL's cache location. A URL is an IGDB image URL
// iff its second-to-last path segment is t_thumb; those get the size
// segment swapped in, the extension forced to .png, and a per-size
// subdirectory. Anything else caches flat under the base directory.
func (c *Cache) locate(size Size, rawURL string) location {
	parts := strings.Split(rawURL, "/")
	isIGDB := len(parts) >= 2 && parts[len(parts)-2] == string(SizeThumb)

	filename := parts[len(parts)-1]
	if isIGDB {
		segments := strings.Split(filename, ".")
		segments[len(segments)-1] = "png"
		filename = strings.Join(segments, ".")
		parts[len(parts)-1] = filename
		parts[len(parts)-2] = string(size)
	}

	var path string
	if isIGDB {
		path = filepath.Join(c.dir, string(size), filename)
	} else {
		path = filepath.Join(c.dir, filename)
	}

	reqURL := strings.Join(parts, "/")
	if strings.HasPrefix(reqURL, "//") {
		reqURL = "https:" + reqURL
	}

	return location{path: path, reqURL: reqURL}
}

// Path returns where the image for the given URL and size caches on
// disk. The report records these paths for the renderer.
func (c *Cache) Path(size Size, rawURL string) string {
	return c.locate(size, rawURL).path
}

// Get returns the image bytes for the given URL at the given size,
// downloading and caching them on first use.
func (c *Cache) Get(ctx context.Context, size Size, rawURL string) ([]byte, error) {
	loc := c.locate(size, rawURL)

	logging.Debug().Str("path", loc.path).Msg("Obtaining file")

	data, err := os.ReadFile(loc.path)
	if err == nil {
		metrics.RecordAssetHit()
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read cached file %s: %w", loc.path, err)
	}

	shared, err, _ := c.group.Do(loc.path, func() (interface{}, error) {
		return c.download(ctx, loc)
	})
	if err != nil {
		return nil, err
	}
	return shared.([]byte), nil
}

// download fetches the image and writes it to the cache. The semaphore
// permit covers only the network transfer; the file write happens
// after release so slow disks cannot starve the connection pool.
func (c *Cache) download(ctx context.Context, loc location) ([]byte, error) {
	data, err := c.fetch(ctx, loc)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(loc.path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	if err := os.WriteFile(loc.path, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write cached file %s: %w", loc.path, err)
	}

	return data, nil
}

// fetch performs the bounded network transfer.
func (c *Cache) fetch(ctx context.Context, loc location) ([]byte, error) {
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer c.sem.Release(1)

	logging.Info().Str("url", loc.reqURL).Msg("Downloading file")
	start := time.Now()

	data, err := c.doFetch(ctx, loc)
	metrics.RecordAssetDownload(time.Since(start), len(data), err)
	if err != nil {
		return nil, err
	}

	logging.Info().Str("url", loc.reqURL).Msg("Downloaded file")
	return data, nil
}

func (c *Cache) doFetch(ctx context.Context, loc location) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, loc.reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", loc.reqURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("download of %s failed with status %d", loc.reqURL, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", loc.reqURL, err)
	}
	return data, nil
}

// TBP-Viz - Game Ranking Analytics and Visualization
// Copyright 2026 Wojciech Graj (wojciech-graj)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wojciech-graj/tbp-viz

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for the pipeline:
// - IGDB API traffic (requests, rate-limit retries, fetched records)
// - Asset cache efficiency (hits, misses, download outcomes)
// - Dataset shape (snapshots, store records, latest ranking size)
// - Stage durations for the end-to-end run

var (
	// IGDB API Metrics
	IGDBRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tbpviz_igdb_requests_total",
			Help: "Total number of IGDB API requests, per endpoint and HTTP status",
		},
		[]string{"endpoint", "status"},
	)

	IGDBRateLimitRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tbpviz_igdb_rate_limit_retries_total",
			Help: "Total number of requests replayed after an HTTP 429",
		},
	)

	IGDBRecordsFetched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tbpviz_igdb_records_fetched_total",
			Help: "Total number of catalog records fetched from IGDB",
		},
	)

	// Asset Cache Metrics
	AssetCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tbpviz_asset_cache_hits_total",
			Help: "Total number of asset requests served from disk",
		},
	)

	AssetCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tbpviz_asset_cache_misses_total",
			Help: "Total number of asset requests that required a download",
		},
	)

	AssetDownloadErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tbpviz_asset_download_errors_total",
			Help: "Total number of failed asset downloads",
		},
	)

	AssetDownloadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tbpviz_asset_download_duration_seconds",
			Help:    "Duration of asset downloads in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	AssetBytesDownloaded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tbpviz_asset_bytes_downloaded_total",
			Help: "Total bytes of asset data downloaded",
		},
	)

	// Dataset Metrics
	RankingSnapshots = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tbpviz_ranking_snapshots",
			Help: "Number of ranking snapshots in the loaded history",
		},
	)

	RankingLatestSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tbpviz_ranking_latest_size",
			Help: "Number of games in the latest ranking",
		},
	)

	StoreRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tbpviz_store_records",
			Help: "Number of records in the metadata store",
		},
	)

	// Pipeline Metrics
	StageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tbpviz_stage_duration_seconds",
			Help:    "Duration of pipeline stages in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15, 60, 300},
		},
		[]string{"stage"}, // "load", "reconcile", "report"
	)

	ReportSegmentDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tbpviz_report_segment_duration_seconds",
			Help:    "Duration of report segment builds in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"segment"},
	)
)

// RecordIGDBRequest records one IGDB API response by endpoint and status.
func RecordIGDBRequest(endpoint string, statusCode int) {
	IGDBRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(statusCode)).Inc()
}

// RecordIGDBRetry records a request replayed after a rate limit.
func RecordIGDBRetry() {
	IGDBRateLimitRetries.Inc()
}

// RecordIGDBRecords records the number of catalog records one fetch
// returned.
func RecordIGDBRecords(count int) {
	IGDBRecordsFetched.Add(float64(count))
}

// RecordAssetHit records an asset request served from disk.
func RecordAssetHit() {
	AssetCacheHits.Inc()
}

// RecordAssetDownload records a completed download attempt.
func RecordAssetDownload(duration time.Duration, bytes int, err error) {
	AssetCacheMisses.Inc()
	if err != nil {
		AssetDownloadErrors.Inc()
		return
	}
	AssetDownloadDuration.Observe(duration.Seconds())
	AssetBytesDownloaded.Add(float64(bytes))
}

// UpdateDatasetGauges publishes the shape of the loaded dataset.
func UpdateDatasetGauges(snapshots, latestSize, records int) {
	RankingSnapshots.Set(float64(snapshots))
	RankingLatestSize.Set(float64(latestSize))
	StoreRecords.Set(float64(records))
}

// RecordStage records the duration of one pipeline stage.
func RecordStage(stage string, duration time.Duration) {
	StageDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

// RecordReportSegment records the duration of one report segment build.
func RecordReportSegment(segment string, duration time.Duration) {
	ReportSegmentDuration.WithLabelValues(segment).Observe(duration.Seconds())
}

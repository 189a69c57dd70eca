// TBP-Viz - Game Ranking Analytics and Visualization
// Copyright 2026 Wojciech Graj (wojciech-graj)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wojciech-graj/tbp-viz

package metrics

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordIGDBRequest(t *testing.T) {
	before := testutil.ToFloat64(IGDBRequestsTotal.WithLabelValues("games", "200"))

	RecordIGDBRequest("games", 200)

	after := testutil.ToFloat64(IGDBRequestsTotal.WithLabelValues("games", "200"))
	if after != before+1 {
		t.Errorf("Counter = %v, want %v", after, before+1)
	}
}

func TestRecordIGDBRetry(t *testing.T) {
	before := testutil.ToFloat64(IGDBRateLimitRetries)

	RecordIGDBRetry()

	if got := testutil.ToFloat64(IGDBRateLimitRetries); got != before+1 {
		t.Errorf("Counter = %v, want %v", got, before+1)
	}
}

func TestRecordAssetDownload(t *testing.T) {
	hitsBefore := testutil.ToFloat64(AssetCacheHits)
	missesBefore := testutil.ToFloat64(AssetCacheMisses)
	errorsBefore := testutil.ToFloat64(AssetDownloadErrors)
	bytesBefore := testutil.ToFloat64(AssetBytesDownloaded)

	RecordAssetHit()
	RecordAssetDownload(20*time.Millisecond, 1024, nil)
	RecordAssetDownload(5*time.Millisecond, 0, errors.New("HTTP 404"))

	if got := testutil.ToFloat64(AssetCacheHits); got != hitsBefore+1 {
		t.Errorf("Hits = %v, want %v", got, hitsBefore+1)
	}
	if got := testutil.ToFloat64(AssetCacheMisses); got != missesBefore+2 {
		t.Errorf("Misses = %v, want %v", got, missesBefore+2)
	}
	if got := testutil.ToFloat64(AssetDownloadErrors); got != errorsBefore+1 {
		t.Errorf("Errors = %v, want %v", got, errorsBefore+1)
	}
	if got := testutil.ToFloat64(AssetBytesDownloaded); got != bytesBefore+1024 {
		t.Errorf("Bytes = %v, want %v", got, bytesBefore+1024)
	}
}

func TestUpdateDatasetGauges(t *testing.T) {
	UpdateDatasetGauges(12, 100, 97)

	if got := testutil.ToFloat64(RankingSnapshots); got != 12 {
		t.Errorf("RankingSnapshots = %v, want 12", got)
	}
	if got := testutil.ToFloat64(RankingLatestSize); got != 100 {
		t.Errorf("RankingLatestSize = %v, want 100", got)
	}
	if got := testutil.ToFloat64(StoreRecords); got != 97 {
		t.Errorf("StoreRecords = %v, want 97", got)
	}
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	srv := httptest.NewServer(newRouter())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("healthz request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), `"status":"ok"`) {
		t.Errorf("healthz = %d %s", resp.StatusCode, body)
	}

	RecordIGDBRequest("games", 200)

	resp, err = http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("metrics request failed: %v", err)
	}
	body, _ = io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if !strings.Contains(string(body), "tbpviz_igdb_requests_total") {
		t.Error("metrics output missing tbpviz_ collectors")
	}
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, "127.0.0.1:0")
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned error on shutdown: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Error("Serve did not shut down after cancel")
	}
}

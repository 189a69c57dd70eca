// TBP-Viz - Game Ranking Analytics and Visualization
// Copyright 2026 Wojciech Graj (wojciech-graj)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wojciech-graj/tbp-viz

package config

import "fmt"

// Validate checks that configuration values are present and in range.
// IGDB credentials are exempt: they are resolved lazily by the client,
// which reports them missing only when a fetch is actually needed.
func (c *Config) Validate() error {
	if err := c.validateIGDB(); err != nil {
		return err
	}

	if err := c.validateData(); err != nil {
		return err
	}

	if err := c.validateAssets(); err != nil {
		return err
	}

	if err := c.validateReport(); err != nil {
		return err
	}

	return c.validateMetrics()
}

func (c *Config) validateIGDB() error {
	if c.IGDB.BatchSize < 1 || c.IGDB.BatchSize > 500 {
		return fmt.Errorf("TBPVIZ_IGDB_BATCH_SIZE must be between 1 and 500")
	}
	if c.IGDB.RateLimit <= 0 {
		return fmt.Errorf("TBPVIZ_IGDB_RATE_LIMIT must be positive")
	}
	if c.IGDB.APIURL == "" {
		return fmt.Errorf("TBPVIZ_IGDB_API_URL must not be empty")
	}
	if c.IGDB.TokenURL == "" {
		return fmt.Errorf("TBPVIZ_IGDB_TOKEN_URL must not be empty")
	}
	return nil
}

func (c *Config) validateData() error {
	if c.Data.ListPath == "" {
		return fmt.Errorf("TBPVIZ_DATA_LIST_PATH must not be empty")
	}
	if c.Data.MetaPath == "" {
		return fmt.Errorf("TBPVIZ_DATA_META_PATH must not be empty")
	}
	return nil
}

func (c *Config) validateAssets() error {
	if c.Assets.Dir == "" {
		return fmt.Errorf("TBPVIZ_ASSETS_DIR must not be empty")
	}
	if c.Assets.MaxConcurrent < 1 {
		return fmt.Errorf("TBPVIZ_ASSETS_MAX_CONCURRENT must be at least 1")
	}
	return nil
}

func (c *Config) validateReport() error {
	if c.Report.OutputDir == "" {
		return fmt.Errorf("TBPVIZ_REPORT_OUTPUT_DIR must not be empty")
	}
	counts := []struct {
		name  string
		value int
	}{
		{"TBPVIZ_REPORT_EXTREMA", c.Report.Extrema},
		{"TBPVIZ_REPORT_OVERRATED", c.Report.Overrated},
		{"TBPVIZ_REPORT_UNDERRATED", c.Report.Underrated},
		{"TBPVIZ_REPORT_ENGINES", c.Report.Engines},
		{"TBPVIZ_REPORT_COMPANIES", c.Report.Companies},
		{"TBPVIZ_REPORT_PLATFORMS", c.Report.Platforms},
	}
	for _, count := range counts {
		if count.value < 1 {
			return fmt.Errorf("%s must be at least 1", count.name)
		}
	}
	return nil
}

func (c *Config) validateMetrics() error {
	if c.Metrics.Enabled && c.Metrics.ListenAddr == "" {
		return fmt.Errorf("TBPVIZ_METRICS_LISTEN_ADDR is required when TBPVIZ_METRICS_ENABLED=true")
	}
	return nil
}

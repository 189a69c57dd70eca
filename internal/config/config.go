// TBP-Viz - Game Ranking Analytics and Visualization
// Copyright 2026 Wojciech Graj (wojciech-graj)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wojciech-graj/tbp-viz

package config

import "time"

// Config holds all application configuration.
//
// Loading order (Koanf v2):
//  1. Defaults: built-in values for every optional setting
//  2. Config file: optional YAML file (tbpviz.yaml) for persistent settings
//  3. Environment variables: override any setting
//
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	IGDB    IGDBConfig    `koanf:"igdb"`
	Data    DataConfig    `koanf:"data"`
	Assets  AssetsConfig  `koanf:"assets"`
	Report  ReportConfig  `koanf:"report"`
	Metrics MetricsConfig `koanf:"metrics"`
	Logging LoggingConfig `koanf:"logging"`
}

// IGDBConfig holds IGDB API client settings.
//
// Credentials are the Twitch developer application credentials IGDB
// authenticates with. They are deliberately NOT validated at load time:
// a run whose store already covers the latest ranking never talks to
// the API, so missing credentials only become an error when a fetch is
// actually needed.
//
// Environment Variables:
//   - CLIENT_ID: Twitch application client id
//   - CLIENT_SECRET: Twitch application client secret
//   - TBPVIZ_IGDB_BATCH_SIZE, TBPVIZ_IGDB_RATE_LIMIT, ...: remaining knobs
type IGDBConfig struct {
	ClientID     string `koanf:"client_id"`
	ClientSecret string `koanf:"client_secret"`
	APIURL       string `koanf:"api_url"`
	TokenURL     string `koanf:"token_url"`
	// BatchSize caps ids per /games query. IGDB rejects more than 500.
	BatchSize int `koanf:"batch_size"`
	// RateLimit is the request pacing in requests per second. IGDB's
	// published limit is 4.
	RateLimit float64 `koanf:"rate_limit"`
	// RetryCooldown is how long to wait before replaying a request that
	// came back 429.
	RetryCooldown time.Duration `koanf:"retry_cooldown"`
	Timeout       time.Duration `koanf:"timeout"`
}

// DataConfig locates the on-disk dataset.
type DataConfig struct {
	// ListPath is the read-only ranking history file.
	ListPath string `koanf:"list_path"`
	// MetaPath is the read-write metadata store.
	MetaPath string `koanf:"meta_path"`
	// MetaTemplatePath seeds MetaPath on first run when present.
	MetaTemplatePath string `koanf:"meta_template_path"`
}

// AssetsConfig holds image cache settings.
type AssetsConfig struct {
	Dir string `koanf:"dir"`
	// MaxConcurrent bounds simultaneous image downloads.
	MaxConcurrent int           `koanf:"max_concurrent"`
	Timeout       time.Duration `koanf:"timeout"`
}

// ReportConfig holds summary output settings. The per-segment counts
// are upper bounds; segments clamp to the data available.
type ReportConfig struct {
	OutputDir  string `koanf:"output_dir"`
	Extrema    int    `koanf:"extrema"`
	Overrated  int    `koanf:"overrated"`
	Underrated int    `koanf:"underrated"`
	Engines    int    `koanf:"engines"`
	Companies  int    `koanf:"companies"`
	Platforms  int    `koanf:"platforms"`
}

// MetricsConfig controls the optional Prometheus listener.
type MetricsConfig struct {
	Enabled    bool   `koanf:"enabled"`
	ListenAddr string `koanf:"listen_addr"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // "json" or "console"
	Caller bool   `koanf:"caller"`
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by the config file and env vars.
func defaultConfig() *Config {
	return &Config{
		IGDB: IGDBConfig{
			ClientID:      "",
			ClientSecret:  "",
			APIURL:        "https://api.igdb.com/v4",
			TokenURL:      "https://id.twitch.tv/oauth2/token",
			BatchSize:     500, // IGDB's hard per-query limit
			RateLimit:     4.0,
			RetryCooldown: 60 * time.Second,
			Timeout:       30 * time.Second,
		},
		Data: DataConfig{
			ListPath:         "list.json",
			MetaPath:         "meta.json",
			MetaTemplatePath: "meta_template.json",
		},
		Assets: AssetsConfig{
			Dir:           "res",
			MaxConcurrent: 8,
			Timeout:       60 * time.Second,
		},
		Report: ReportConfig{
			OutputDir:  "out",
			Extrema:    3,
			Overrated:  5,
			Underrated: 5,
			Engines:    4,
			Companies:  7,
			Platforms:  5,
		},
		Metrics: MetricsConfig{
			Enabled:    false,
			ListenAddr: ":9090",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// TBP-Viz - Game Ranking Analytics and Visualization
// Copyright 2026 Wojciech Graj (wojciech-graj)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wojciech-graj/tbp-viz

/*
Package config provides centralized configuration management using
Koanf v2 with layered sources.

Configuration is assembled from three layers, later layers overriding
earlier ones:

 1. Built-in defaults (see defaultConfig)
 2. Optional YAML config file (tbpviz.yaml, or CONFIG_PATH)
 3. Environment variables

Environment variables come in two forms. The legacy names CLIENT_ID,
CLIENT_SECRET, LOG_LEVEL, LOG_FORMAT and LOG_CALLER map directly onto
their config paths. Everything else uses the TBPVIZ_ prefix followed by
the section and key, e.g. TBPVIZ_IGDB_BATCH_SIZE or
TBPVIZ_REPORT_OUTPUT_DIR.

The loaded Config is validated (value ranges, non-empty paths) and
immutable afterwards. IGDB credentials are exempt from load-time
validation: runs that need no fetch need no credentials, so the client
checks them at first use instead.
*/
package config

// TBP-Viz - Game Ranking Analytics and Visualization
// Copyright 2026 Wojciech Graj (wojciech-graj)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wojciech-graj/tbp-viz

package igdb

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/wojciech-graj/tbp-viz/internal/logging"
	"github.com/wojciech-graj/tbp-viz/internal/metrics"
	"github.com/wojciech-graj/tbp-viz/internal/models"
)

// metaFields is the Apicalypse projection for /games queries: every
// field the Meta model carries, including the nested expansions.
const metaFields = "age_ratings.category," +
	"age_ratings.rating," +
	"age_ratings.rating_cover_url," +
	"aggregated_rating," +
	"aggregated_rating_count," +
	"cover.url," +
	"first_release_date," +
	"franchise.name," +
	"game_engines.name," +
	"game_engines.logo.url," +
	"game_modes.name," +
	"genres.name," +
	"involved_companies.developer," +
	"involved_companies.porting," +
	"involved_companies.publisher," +
	"involved_companies.supporting," +
	"involved_companies.company.country," +
	"involved_companies.company.logo.url," +
	"involved_companies.company.name," +
	"involved_companies.company.start_date," +
	"keywords.name," +
	"multiplayer_modes.campaigncoop," +
	"multiplayer_modes.lancoop," +
	"multiplayer_modes.offlinecoop," +
	"multiplayer_modes.onlinecoop," +
	"name," +
	"platforms.category," +
	"platforms.name," +
	"platforms.generation," +
	"platforms.platform_logo.url," +
	"player_perspectives.name," +
	"release_dates.date," +
	"themes.name," +
	"rating," +
	"rating_count," +
	"total_rating," +
	"total_rating_count"

// Games fetches metadata for the given IGDB ids in a single query.
// All ids must be of the IGDB kind; IGDB cannot answer for anything
// else. IGDB silently omits unknown ids, so the result may be shorter
// than the request.
func (c *Client) Games(ctx context.Context, ids []models.GameID) ([]models.Meta, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	token, err := c.ensureToken(ctx)
	if err != nil {
		return nil, err
	}

	numeric := make([]string, 0, len(ids))
	for _, id := range ids {
		n, ok := id.IGDB()
		if !ok {
			return nil, fmt.Errorf("cannot fetch non-IGDB game id %q", id)
		}
		numeric = append(numeric, strconv.FormatUint(uint64(n), 10))
	}

	logging.Info().Int("count", len(ids)).Msg("Fetching games from IGDB")

	body := fmt.Sprintf("fields %s; where id=(%s); limit %d;",
		metaFields, strings.Join(numeric, ","), len(ids))

	spec := &requestSpec{
		method: http.MethodPost,
		url:    c.apiURL + "/games",
		header: http.Header{
			"Client-ID":     []string{c.clientID},
			"Authorization": []string{"Bearer " + token},
			"Accept":        []string{"application/json"},
		},
		body: []byte(body),
	}

	var fetched []models.Meta
	if err := c.callJSON(ctx, "games", spec, &fetched); err != nil {
		return nil, err
	}

	metrics.RecordIGDBRecords(len(fetched))
	return fetched, nil
}

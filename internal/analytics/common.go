// TBP-Viz - Game Ranking Analytics and Visualization
// Copyright 2026 Wojciech Graj (wojciech-graj)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wojciech-graj/tbp-viz

package analytics

import (
	"sort"

	"github.com/wojciech-graj/tbp-viz/internal/models"
)

// Counted pairs a value with the number of records that carried it.
type Counted[T any] struct {
	Count int
	Value T
}

// MostCommon flattens extract across the engine's records in id order
// and counts the results by key. Most frequent first; ties keep
// encounter order, and the first value seen for a key is the
// representative returned. An empty store yields an empty result.
func MostCommon[T any, K comparable](e *Engine, extract func(*models.Meta) []T, key func(T) K) []Counted[T] {
	type entry struct {
		count int
		value T
	}
	seen := make(map[K]*entry)
	var entries []*entry

	for _, meta := range e.records {
		for _, value := range extract(meta) {
			k := key(value)
			if ent, ok := seen[k]; ok {
				ent.count++
				continue
			}
			ent := &entry{count: 1, value: value}
			seen[k] = ent
			entries = append(entries, ent)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].count > entries[j].count })

	out := make([]Counted[T], len(entries))
	for i, ent := range entries {
		out[i] = Counted[T]{Count: ent.count, Value: ent.value}
	}
	return out
}

// CommonEngines counts game engines across the store, keyed by name.
func (e *Engine) CommonEngines() []Counted[models.GameEngine] {
	return MostCommon(e,
		func(m *models.Meta) []models.GameEngine { return m.GameEngines },
		func(engine models.GameEngine) string { return engine.Name })
}

// CommonCompanies counts involved companies across the store, keyed by
// company name. A company counts once per involvement record, matching
// how often it shows up in credits.
func (e *Engine) CommonCompanies() []Counted[models.Company] {
	return MostCommon(e,
		func(m *models.Meta) []models.Company {
			companies := make([]models.Company, 0, len(m.InvolvedCompanies))
			for _, involved := range m.InvolvedCompanies {
				companies = append(companies, involved.Company)
			}
			return companies
		},
		func(company models.Company) string { return company.Name })
}

// CommonPlatforms counts release platforms across the store, keyed by
// platform name.
func (e *Engine) CommonPlatforms() []Counted[models.Platform] {
	return MostCommon(e,
		func(m *models.Meta) []models.Platform { return m.Platforms },
		func(platform models.Platform) string { return platform.Name })
}

// TBP-Viz - Game Ranking Analytics and Visualization
// Copyright 2026 Wojciech Graj (wojciech-graj)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wojciech-graj/tbp-viz

package analytics

import (
	"testing"

	"github.com/wojciech-graj/tbp-viz/internal/models"
)

func engineMeta(id uint32, name string, engines ...string) models.Meta {
	meta := models.Meta{
		ID:               models.IGDBGameID(id),
		Name:             name,
		FirstReleaseDate: models.UnixTimestamp(1000000000),
	}
	for _, engine := range engines {
		meta.GameEngines = append(meta.GameEngines, models.GameEngine{Name: engine})
	}
	return meta
}

func TestCommonEngines(t *testing.T) {
	t.Parallel()

	metas := metasOf(
		engineMeta(1, "First", "Unity", "Unreal Engine"),
		engineMeta(2, "Second", "Unity"),
		engineMeta(3, "Third", "Unity", "Godot"),
		engineMeta(4, "Fourth", "Unreal Engine"),
	)
	engine := New(nil, metas)

	got := engine.CommonEngines()
	want := []struct {
		count int
		name  string
	}{
		{3, "Unity"},
		{2, "Unreal Engine"},
		{1, "Godot"},
	}
	if len(got) != len(want) {
		t.Fatalf("CommonEngines() returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Count != want[i].count || got[i].Value.Name != want[i].name {
			t.Errorf("CommonEngines()[%d] = %d %q, want %d %q",
				i, got[i].Count, got[i].Value.Name, want[i].count, want[i].name)
		}
	}
}

func TestMostCommon_TiesKeepEncounterOrder(t *testing.T) {
	t.Parallel()

	// Ids 1 and 2 order the records; each engine shows up once, so the
	// result must follow the records' id order.
	metas := metasOf(
		engineMeta(2, "Later", "Godot"),
		engineMeta(1, "Earlier", "Unity"),
	)
	engine := New(nil, metas)

	got := engine.CommonEngines()
	if len(got) != 2 {
		t.Fatalf("CommonEngines() returned %d entries, want 2", len(got))
	}
	if got[0].Value.Name != "Unity" || got[1].Value.Name != "Godot" {
		t.Errorf("tie order = [%q, %q], want [Unity, Godot]",
			got[0].Value.Name, got[1].Value.Name)
	}
}

func TestMostCommon_EmptyStore(t *testing.T) {
	t.Parallel()

	engine := New(nil, nil)
	if got := engine.CommonEngines(); len(got) != 0 {
		t.Errorf("CommonEngines() on empty store = %v, want empty", got)
	}
	if got := engine.CommonPlatforms(); len(got) != 0 {
		t.Errorf("CommonPlatforms() on empty store = %v, want empty", got)
	}
}

func TestCommonCompanies(t *testing.T) {
	t.Parallel()

	rockstarNorth := models.Company{Name: "Rockstar North"}
	rockstarGames := models.Company{Name: "Rockstar Games"}

	first := engineMeta(1, "First")
	first.InvolvedCompanies = []models.InvolvedCompany{
		{Developer: true, Company: rockstarNorth},
		{Publisher: true, Company: rockstarGames},
	}
	second := engineMeta(2, "Second")
	second.InvolvedCompanies = []models.InvolvedCompany{
		{Publisher: true, Company: rockstarGames},
	}
	engine := New(nil, metasOf(first, second))

	got := engine.CommonCompanies()
	if len(got) != 2 {
		t.Fatalf("CommonCompanies() returned %d entries, want 2", len(got))
	}
	if got[0].Count != 2 || got[0].Value.Name != "Rockstar Games" {
		t.Errorf("first = %d %q, want 2 Rockstar Games", got[0].Count, got[0].Value.Name)
	}
	if got[1].Count != 1 || got[1].Value.Name != "Rockstar North" {
		t.Errorf("second = %d %q, want 1 Rockstar North", got[1].Count, got[1].Value.Name)
	}
}

func TestCommonPlatforms(t *testing.T) {
	t.Parallel()

	pc := models.Platform{Name: "PC (Microsoft Windows)"}
	ps5 := models.Platform{Name: "PlayStation 5"}

	first := engineMeta(1, "First")
	first.Platforms = []models.Platform{pc, ps5}
	second := engineMeta(2, "Second")
	second.Platforms = []models.Platform{pc}
	engine := New(nil, metasOf(first, second))

	got := engine.CommonPlatforms()
	if len(got) != 2 {
		t.Fatalf("CommonPlatforms() returned %d entries, want 2", len(got))
	}
	if got[0].Count != 2 || got[0].Value.Name != "PC (Microsoft Windows)" {
		t.Errorf("first = %d %q, want 2 PC", got[0].Count, got[0].Value.Name)
	}
}

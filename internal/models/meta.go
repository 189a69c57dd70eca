// TBP-Viz - Game Ranking Analytics and Visualization
// Copyright 2026 Wojciech Graj (wojciech-graj)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wojciech-graj/tbp-viz

package models

import "strconv"

// Meta is the catalog metadata for a single game, as fetched from IGDB
// and persisted in the metadata store. Optional fields use pointers and
// slices with omitempty so that absent values and empty collections are
// omitted from the wire form, matching stored records byte for byte across
// load/save cycles.
type Meta struct {
	ID                    GameID            `json:"id" validate:"required"`
	AgeRatings            []AgeRating       `json:"age_ratings,omitempty"`
	AggregatedRating      *float64          `json:"aggregated_rating,omitempty"`
	AggregatedRatingCount *int              `json:"aggregated_rating_count,omitempty"`
	Cover                 *Image            `json:"cover,omitempty"`
	FirstReleaseDate      Timestamp         `json:"first_release_date" validate:"required"`
	Franchise             *Named            `json:"franchise,omitempty"`
	GameEngines           []GameEngine      `json:"game_engines,omitempty"`
	GameModes             []Named           `json:"game_modes,omitempty"`
	Genres                []Named           `json:"genres,omitempty"`
	InvolvedCompanies     []InvolvedCompany `json:"involved_companies,omitempty"`
	Keywords              []Named           `json:"keywords,omitempty"`
	MultiplayerModes      []MultiplayerMode `json:"multiplayer_modes,omitempty"`
	Name                  string            `json:"name" validate:"required"`
	Platforms             []Platform        `json:"platforms,omitempty"`
	PlayerPerspectives    []Named           `json:"player_perspectives,omitempty"`
	ReleaseDates          []ReleaseDate     `json:"release_dates,omitempty"`
	Themes                []Named           `json:"themes,omitempty"`
	Rating                *float64          `json:"rating,omitempty"`
	RatingCount           *int              `json:"rating_count,omitempty"`
	TotalRating           *float64          `json:"total_rating,omitempty"`
	TotalRatingCount      *int              `json:"total_rating_count,omitempty"`
}

// Image is a nested record carrying only an image URL. IGDB serves these
// protocol-relative, e.g. "//images.igdb.com/igdb/image/upload/t_thumb/abc.jpg".
type Image struct {
	URL string `json:"url"`
}

// Named is a nested record carrying only a display name (genres, themes,
// keywords, game modes, player perspectives, franchises).
type Named struct {
	Name string `json:"name"`
}

// GameEngine names an engine a game runs on.
type GameEngine struct {
	Name string `json:"name"`
	Logo *Image `json:"logo,omitempty"`
}

// Company is a developer or publisher referenced by an involvement record.
type Company struct {
	Country   *int       `json:"country,omitempty"` // ISO 3166-1 numeric
	Logo      *Image     `json:"logo,omitempty"`
	Name      string     `json:"name"`
	StartDate *Timestamp `json:"start_date,omitempty"`
}

// InvolvedCompany links a company to a game with its roles.
type InvolvedCompany struct {
	Developer  bool    `json:"developer"`
	Porting    bool    `json:"porting"`
	Publisher  bool    `json:"publisher"`
	Supporting bool    `json:"supporting"`
	Company    Company `json:"company"`
}

// MultiplayerMode flags the cooperative modes a game supports.
type MultiplayerMode struct {
	CampaignCoop bool `json:"campaigncoop"`
	LANCoop      bool `json:"lancoop"`
	OfflineCoop  bool `json:"offlinecoop"`
	OnlineCoop   bool `json:"onlinecoop"`
}

// PlatformCategory is the kind of platform, integer-coded on the wire per
// the IGDB enum.
type PlatformCategory int

const (
	PlatformConsole         PlatformCategory = 1
	PlatformArcade          PlatformCategory = 2
	PlatformPlatform        PlatformCategory = 3
	PlatformOperatingSystem PlatformCategory = 4
	PlatformPortableConsole PlatformCategory = 5
	PlatformComputer        PlatformCategory = 6
)

func (c PlatformCategory) String() string {
	switch c {
	case PlatformConsole:
		return "Console"
	case PlatformArcade:
		return "Arcade"
	case PlatformPlatform:
		return "Platform"
	case PlatformOperatingSystem:
		return "Operating System"
	case PlatformPortableConsole:
		return "Portable Console"
	case PlatformComputer:
		return "Computer"
	default:
		return "PlatformCategory(" + strconv.Itoa(int(c)) + ")"
	}
}

// Platform is a platform a game released on.
type Platform struct {
	Category     *PlatformCategory `json:"category,omitempty"`
	Name         string            `json:"name"`
	Generation   *int              `json:"generation,omitempty"`
	PlatformLogo *Image            `json:"platform_logo,omitempty"`
}

// ReleaseDate is one regional or per-platform release date. Unreleased
// entries carry no date.
type ReleaseDate struct {
	Date *Timestamp `json:"date,omitempty"`
}

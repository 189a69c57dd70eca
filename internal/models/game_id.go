// TBP-Viz - Game Ranking Analytics and Visualization
// Copyright 2026 Wojciech Graj (wojciech-graj)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wojciech-graj/tbp-viz

package models

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

// GameIDKind discriminates the three variants of a GameID.
type GameIDKind uint8

const (
	// GameIDNone marks a ranked entry with no known identity (JSON null).
	GameIDNone GameIDKind = iota
	// GameIDIGDB is a numeric identifier in the IGDB catalog (bare JSON number).
	GameIDIGDB
	// GameIDOther is a free-form identifier for a game outside the catalog
	// (bare JSON string).
	GameIDOther
)

// GameID identifies a ranked game. The wire encoding is untagged: a bare
// number for IGDB ids, a bare string for non-catalog ids, and null for
// entries with no identity. GameID is comparable and keys the metadata
// store.
type GameID struct {
	kind  GameIDKind
	igdb  uint32
	other string
}

// IGDBGameID returns the id of a game in the IGDB catalog.
func IGDBGameID(id uint32) GameID {
	return GameID{kind: GameIDIGDB, igdb: id}
}

// OtherGameID returns the id of a game outside the IGDB catalog.
func OtherGameID(id string) GameID {
	return GameID{kind: GameIDOther, other: id}
}

// Kind reports which variant the id holds.
func (g GameID) Kind() GameIDKind {
	return g.kind
}

// IGDB returns the numeric catalog id. ok is false for non-IGDB ids.
func (g GameID) IGDB() (id uint32, ok bool) {
	return g.igdb, g.kind == GameIDIGDB
}

// IsNone reports whether the entry has no identity.
func (g GameID) IsNone() bool {
	return g.kind == GameIDNone
}

func (g GameID) String() string {
	switch g.kind {
	case GameIDIGDB:
		return strconv.FormatUint(uint64(g.igdb), 10)
	case GameIDOther:
		return g.other
	default:
		return "none"
	}
}

// Less orders ids by kind, then value. Store serialization and analytics
// iterate ids in this order so output is deterministic.
func (g GameID) Less(o GameID) bool {
	if g.kind != o.kind {
		return g.kind < o.kind
	}
	switch g.kind {
	case GameIDIGDB:
		return g.igdb < o.igdb
	case GameIDOther:
		return g.other < o.other
	default:
		return false
	}
}

// MarshalJSON encodes the untagged wire form.
func (g GameID) MarshalJSON() ([]byte, error) {
	switch g.kind {
	case GameIDIGDB:
		return strconv.AppendUint(nil, uint64(g.igdb), 10), nil
	case GameIDOther:
		return json.Marshal(g.other)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes the untagged wire form by inspecting the leading
// token: a number is an IGDB id, a string a non-catalog id, null no id.
func (g *GameID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("game id: empty value")
	}
	switch {
	case bytes.Equal(data, []byte("null")):
		*g = GameID{}
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("game id: decoding string form: %w", err)
		}
		*g = GameID{kind: GameIDOther, other: s}
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		id, err := strconv.ParseUint(string(data), 10, 32)
		if err != nil {
			return fmt.Errorf("game id: decoding numeric form %q: %w", data, err)
		}
		*g = GameID{kind: GameIDIGDB, igdb: uint32(id)}
	default:
		return fmt.Errorf("game id: want number, string, or null, got %q", data)
	}
	return nil
}

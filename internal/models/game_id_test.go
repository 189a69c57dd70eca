// TBP-Viz - Game Ranking Analytics and Visualization
// Copyright 2026 Wojciech Graj (wojciech-graj)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wojciech-graj/tbp-viz

package models

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestGameID_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		wire string
		want GameID
	}{
		{name: "igdb number", wire: `7346`, want: IGDBGameID(7346)},
		{name: "igdb zero", wire: `0`, want: IGDBGameID(0)},
		{name: "other string", wire: `"Tetris (1984)"`, want: OtherGameID("Tetris (1984)")},
		{name: "none", wire: `null`, want: GameID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got GameID
			if err := json.Unmarshal([]byte(tt.wire), &got); err != nil {
				t.Fatalf("Unmarshal(%s) failed: %v", tt.wire, err)
			}
			if got != tt.want {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.wire, got, tt.want)
			}

			out, err := json.Marshal(got)
			if err != nil {
				t.Fatalf("Marshal(%v) failed: %v", got, err)
			}
			if string(out) != tt.wire {
				t.Errorf("Marshal(%v) = %s, want %s", got, out, tt.wire)
			}
		})
	}
}

func TestGameID_UnmarshalRejectsOtherTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		wire string
	}{
		{name: "object", wire: `{"id": 3}`},
		{name: "array", wire: `[3]`},
		{name: "bool", wire: `true`},
		{name: "float", wire: `1.5`},
		{name: "negative", wire: `-3`},
		{name: "overflow", wire: `4294967296`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got GameID
			if err := json.Unmarshal([]byte(tt.wire), &got); err == nil {
				t.Errorf("Unmarshal(%s) succeeded as %v, want error", tt.wire, got)
			}
		})
	}
}

func TestGameID_InRankedList(t *testing.T) {
	t.Parallel()

	wire := `[1020, "Minesweeper", null, 7346]`

	var list []GameID
	if err := json.Unmarshal([]byte(wire), &list); err != nil {
		t.Fatalf("Failed to unmarshal ranked list: %v", err)
	}

	want := []GameID{IGDBGameID(1020), OtherGameID("Minesweeper"), {}, IGDBGameID(7346)}
	if len(list) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(list))
	}
	for i := range want {
		if list[i] != want[i] {
			t.Errorf("Entry %d = %v, want %v", i, list[i], want[i])
		}
	}

	out, err := json.Marshal(list)
	if err != nil {
		t.Fatalf("Failed to marshal ranked list: %v", err)
	}
	if string(out) != `[1020,"Minesweeper",null,7346]` {
		t.Errorf("Marshal produced %s", out)
	}
}

func TestGameID_Accessors(t *testing.T) {
	t.Parallel()

	igdb := IGDBGameID(42)
	if id, ok := igdb.IGDB(); !ok || id != 42 {
		t.Errorf("IGDB() = (%d, %v), want (42, true)", id, ok)
	}
	if igdb.IsNone() {
		t.Error("IGDBGameID(42).IsNone() = true")
	}
	if igdb.String() != "42" {
		t.Errorf("String() = %q, want \"42\"", igdb.String())
	}

	other := OtherGameID("SimCity")
	if _, ok := other.IGDB(); ok {
		t.Error("OtherGameID.IGDB() reported ok")
	}
	if other.String() != "SimCity" {
		t.Errorf("String() = %q, want \"SimCity\"", other.String())
	}

	var none GameID
	if !none.IsNone() {
		t.Error("zero GameID.IsNone() = false")
	}
	if none.Kind() != GameIDNone {
		t.Errorf("zero GameID.Kind() = %v, want GameIDNone", none.Kind())
	}
}

func TestGameID_Less(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b GameID
		want bool
	}{
		{name: "none before igdb", a: GameID{}, b: IGDBGameID(1), want: true},
		{name: "igdb before other", a: IGDBGameID(99999), b: OtherGameID("a"), want: true},
		{name: "igdb numeric order", a: IGDBGameID(9), b: IGDBGameID(10), want: true},
		{name: "other lexical order", a: OtherGameID("Doom"), b: OtherGameID("Quake"), want: true},
		{name: "equal not less", a: IGDBGameID(5), b: IGDBGameID(5), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Less(tt.b); got != tt.want {
				t.Errorf("(%v).Less(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if tt.want && tt.b.Less(tt.a) {
				t.Errorf("(%v).Less(%v) and its inverse both true", tt.a, tt.b)
			}
		})
	}
}

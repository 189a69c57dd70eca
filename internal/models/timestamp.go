// TBP-Viz - Game Ranking Analytics and Visualization
// Copyright 2026 Wojciech Graj (wojciech-graj)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wojciech-graj/tbp-viz

package models

import (
	"fmt"
	"strconv"
	"time"
)

// Timestamp is a point in time carried as integer Unix seconds on the
// wire, which is how IGDB encodes release and founding dates.
type Timestamp struct {
	time.Time
}

// UnixTimestamp returns the Timestamp for the given Unix seconds.
func UnixTimestamp(sec int64) Timestamp {
	return Timestamp{Time: time.Unix(sec, 0).UTC()}
}

// MarshalJSON encodes integer Unix seconds.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, t.Unix(), 10), nil
}

// UnmarshalJSON decodes integer Unix seconds.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	sec, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("timestamp: decoding unix seconds %q: %w", data, err)
	}
	t.Time = time.Unix(sec, 0).UTC()
	return nil
}

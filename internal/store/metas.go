// TBP-Viz - Game Ranking Analytics and Visualization
// Copyright 2026 Wojciech Graj (wojciech-graj)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wojciech-graj/tbp-viz

package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/goccy/go-json"

	"github.com/wojciech-graj/tbp-viz/internal/logging"
	"github.com/wojciech-graj/tbp-viz/internal/models"
	"github.com/wojciech-graj/tbp-viz/internal/validation"
)

// Metas is the metadata store: every known game keyed by id. The wire
// form is a JSON array of records so the file stays a plain list a human
// can edit; the map is rebuilt from each record's embedded id on load.
type Metas map[models.GameID]models.Meta

// MarshalJSON encodes the store as an array of records sorted by id, so
// consecutive saves of an unchanged store are byte-identical.
func (m Metas) MarshalJSON() ([]byte, error) {
	records := make([]models.Meta, 0, len(m))
	for _, meta := range m {
		records = append(records, meta)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID.Less(records[j].ID) })
	return json.Marshal(records)
}

// UnmarshalJSON rebuilds the map from an array of records. When two
// records carry the same id, the later one wins.
func (m *Metas) UnmarshalJSON(data []byte) error {
	var records []models.Meta
	if err := json.Unmarshal(data, &records); err != nil {
		return err
	}

	metas := make(Metas, len(records))
	for _, rec := range records {
		if _, dup := metas[rec.ID]; dup {
			logging.Debug().Str("id", rec.ID.String()).Msg("Duplicate id in metadata store, keeping the later record")
		}
		metas[rec.ID] = rec
	}
	*m = metas
	return nil
}

// Merge adds fetched records to the store, validating each before it is
// accepted. An invalid record aborts the merge.
func (m Metas) Merge(records []models.Meta) error {
	for _, rec := range records {
		if err := validation.ValidateStruct(rec); err != nil {
			return fmt.Errorf("invalid catalog record for %q: %w", rec.ID, err)
		}
		m[rec.ID] = rec
	}
	return nil
}

// LoadMetas reads the metadata store. A missing store file is seeded from
// the template when one exists; with neither file present the store
// starts empty.
func LoadMetas(path, templatePath string) (Metas, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := seedFromTemplate(path, templatePath); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("checking metadata store %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Metas{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading metadata store %s: %w", path, err)
	}

	var metas Metas
	if err := json.Unmarshal(data, &metas); err != nil {
		return nil, fmt.Errorf("decoding metadata store %s: %w", path, err)
	}
	return metas, nil
}

// seedFromTemplate copies the checked-in template to the store path. A
// missing or unset template is not an error.
func seedFromTemplate(path, templatePath string) error {
	if templatePath == "" {
		return nil
	}

	data, err := os.ReadFile(templatePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading metadata template %s: %w", templatePath, err)
	}

	logging.Info().Str("template", templatePath).Str("store", path).Msg("Seeding metadata store from template")
	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("seeding metadata store %s: %w", path, err)
	}
	return nil
}

// SaveMetas rewrites the store file in full, pretty-printed.
func SaveMetas(path string, metas Metas) error {
	data, err := json.MarshalIndent(metas, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding metadata store: %w", err)
	}
	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("writing metadata store %s: %w", path, err)
	}
	return nil
}

// writeFileAtomic writes through a temp file in the target directory and
// renames it into place, so an interrupted write cannot leave a torn
// file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}

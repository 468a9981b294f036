package db

import (
	"fmt"
	"io"

	"github.com/jwulff/zen/internal/iching"
	"gopkg.in/yaml.v3"
)

// yamlHexagram is the authoring format for overlay imports.
type yamlHexagram struct {
	Upper    int      `yaml:"upper"`
	Lower    int      `yaml:"lower"`
	Name     string   `yaml:"name"`
	Glyph    string   `yaml:"glyph"`
	Judgment string   `yaml:"judgment"`
	Lines    []string `yaml:"lines"`
	Tuan     string   `yaml:"tuan"`
	Xici     string   `yaml:"xici"`
	Xiang    string   `yaml:"xiang"`
}

// ReadYAML parses a list of hexagram records. Each record needs a valid key,
// a name, and at most six lines (bottom first). Missing lines get the
// placeholder text.
func ReadYAML(r io.Reader) ([]iching.Entry, error) {
	var docs []yamlHexagram
	if err := yaml.NewDecoder(r).Decode(&docs); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("parsing overlay yaml: %w", err)
	}

	entries := make([]iching.Entry, 0, len(docs))
	for i, d := range docs {
		row := HexagramRow{
			Upper: d.Upper, Lower: d.Lower,
			Name: d.Name, Glyph: d.Glyph, Judgment: d.Judgment,
			Tuan: d.Tuan, Xici: d.Xici, Xiang: d.Xiang,
		}
		e := row.Entry()
		if err := e.Key.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if d.Name == "" {
			return nil, fmt.Errorf("record %d: name is required", i)
		}
		if len(d.Lines) > 6 {
			return nil, fmt.Errorf("record %d: %d lines, want at most 6", i, len(d.Lines))
		}
		for pos := 1; pos <= 6; pos++ {
			if pos <= len(d.Lines) {
				e.Hexagram.LineTexts[pos-1] = d.Lines[pos-1]
			} else {
				e.Hexagram.LineTexts[pos-1] = iching.PlaceholderLineText(pos)
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Import writes every entry into the store in one transaction. On error
// nothing is written.
func (s *Store) Import(entries []iching.Entry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	for _, e := range entries {
		if err := put(tx, e); err != nil {
			tx.Rollback()
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

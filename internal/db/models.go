// Package db provides SQLite access to the hexagram overlay database, a
// file of extra hexagram texts merged into the built-in catalog at startup.
package db

import "github.com/jwulff/zen/internal/iching"

// HexagramRow is one row of the hexagrams table.
type HexagramRow struct {
	Upper    int
	Lower    int
	Name     string
	Glyph    string
	Judgment string
	Lines    [6]string
	Tuan     string
	Xici     string
	Xiang    string
}

// Entry converts the row into a catalog entry.
func (r HexagramRow) Entry() iching.Entry {
	return iching.Entry{
		Key: iching.Key{Upper: r.Upper, Lower: r.Lower},
		Hexagram: iching.Hexagram{
			Name:      r.Name,
			Glyph:     r.Glyph,
			Judgment:  r.Judgment,
			LineTexts: r.Lines,
			Commentary: iching.Commentary{
				Tuan:  r.Tuan,
				Xici:  r.Xici,
				Xiang: r.Xiang,
			},
		},
	}
}

// RowFromEntry is the inverse of HexagramRow.Entry.
func RowFromEntry(e iching.Entry) HexagramRow {
	return HexagramRow{
		Upper:    e.Key.Upper,
		Lower:    e.Key.Lower,
		Name:     e.Hexagram.Name,
		Glyph:    e.Hexagram.Glyph,
		Judgment: e.Hexagram.Judgment,
		Lines:    e.Hexagram.LineTexts,
		Tuan:     e.Hexagram.Commentary.Tuan,
		Xici:     e.Hexagram.Commentary.Xici,
		Xiang:    e.Hexagram.Commentary.Xiang,
	}
}

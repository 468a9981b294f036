package iching

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidTrigram is returned when a key names a trigram outside 1..8.
var ErrInvalidTrigram = errors.New("trigram id out of range")

// Commentary holds the three auxiliary texts attached to a hexagram.
type Commentary struct {
	Tuan  string `json:"tuan"`  // 易传 / 彖
	Xici  string `json:"xici"`  // 系辞传
	Xiang string `json:"xiang"` // 象传
}

// Hexagram is the text record for one six-line figure.
// LineTexts[0] belongs to the bottom line.
type Hexagram struct {
	Name       string     `json:"name"`
	Glyph      string     `json:"glyph"`
	Judgment   string     `json:"judgment"`
	LineTexts  [6]string  `json:"lineTexts"`
	Commentary Commentary `json:"commentary"`
}

// Key addresses a catalog slot. The order is (upper, lower).
type Key struct {
	Upper int `json:"upper"`
	Lower int `json:"lower"`
}

// Validate checks both trigram ids.
func (k Key) Validate() error {
	if !ValidTrigramID(k.Upper) || !ValidTrigramID(k.Lower) {
		return fmt.Errorf("key (%d,%d): %w", k.Upper, k.Lower, ErrInvalidTrigram)
	}
	return nil
}

// Entry is a keyed hexagram record used to extend the built-in catalog.
type Entry struct {
	Key      Key
	Hexagram Hexagram
}

// Catalog maps trigram pairs to hexagram texts. It is built once and only
// read afterwards, so concurrent readers need no locking.
type Catalog struct {
	entries map[Key]Hexagram
}

// NewCatalog builds the built-in table and applies overlay entries in order.
// A later entry for the same key replaces an earlier one. Entries with
// invalid keys are skipped.
func NewCatalog(overlay ...Entry) *Catalog {
	c := &Catalog{entries: make(map[Key]Hexagram, len(builtinHexagrams)+len(overlay))}
	for _, e := range builtinHexagrams {
		c.entries[e.Key] = e.Hexagram
	}
	for _, e := range overlay {
		if e.Key.Validate() != nil {
			continue
		}
		c.entries[e.Key] = e.Hexagram
	}
	return c
}

// Lookup returns the record stored for (upper, lower). A missing key is a
// normal outcome, most of the 64 slots are unpopulated.
func (c *Catalog) Lookup(upper, lower int) (Hexagram, bool) {
	h, ok := c.entries[Key{Upper: upper, Lower: lower}]
	return h, ok
}

// Len returns the number of populated slots.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Keys returns the populated keys sorted by upper then lower.
func (c *Catalog) Keys() []Key {
	keys := make([]Key, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Upper != keys[j].Upper {
			return keys[i].Upper < keys[j].Upper
		}
		return keys[i].Lower < keys[j].Lower
	})
	return keys
}

// linePositions names the six positions bottom to top.
var linePositions = [6]string{"初", "二", "三", "四", "五", "上"}

// Fallback synthesizes a placeholder record for a pair missing from the
// catalog. Name and glyph depend only on the two trigrams.
func Fallback(upper, lower Trigram) Hexagram {
	h := Hexagram{
		Name:     fmt.Sprintf("上%s下%s", upper.Name, lower.Name),
		Glyph:    upper.Glyph + lower.Glyph,
		Judgment: "该卦卦辞待补全。",
		Commentary: Commentary{
			Tuan:  "易传内容待补全。",
			Xici:  "系辞传内容待补全。",
			Xiang: "象传内容待补全。",
		},
	}
	for i := range h.LineTexts {
		h.LineTexts[i] = PlaceholderLineText(i + 1)
	}
	return h
}

// PlaceholderLineText is the stand-in text for line pos (1..6) when the real
// line-text is unknown.
func PlaceholderLineText(pos int) string {
	return linePositions[pos-1] + "爻爻辞待补全。"
}

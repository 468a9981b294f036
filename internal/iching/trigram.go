// Package iching holds the trigram and hexagram catalogs and the divination
// engine that draws a hexagram from them.
package iching

import "fmt"

// Line is a single yao, broken (yin) or solid (yang).
type Line int

const (
	Broken Line = iota
	Solid
)

func (l Line) String() string {
	if l == Solid {
		return "solid"
	}
	return "broken"
}

// Trigram is one of the eight three-line figures. Lines run bottom to top.
type Trigram struct {
	ID     int
	Name   string
	Pinyin string
	Glyph  string
	Lines  [3]Line
}

// trigrams is indexed by ID-1 in the traditional order, not binary order.
var trigrams = [8]Trigram{
	{ID: 1, Name: "乾", Pinyin: "Qian", Glyph: "☰", Lines: [3]Line{Solid, Solid, Solid}},
	{ID: 2, Name: "兑", Pinyin: "Dui", Glyph: "☱", Lines: [3]Line{Solid, Solid, Broken}},
	{ID: 3, Name: "离", Pinyin: "Li", Glyph: "☲", Lines: [3]Line{Solid, Broken, Solid}},
	{ID: 4, Name: "震", Pinyin: "Zhen", Glyph: "☳", Lines: [3]Line{Solid, Broken, Broken}},
	{ID: 5, Name: "巽", Pinyin: "Xun", Glyph: "☴", Lines: [3]Line{Broken, Solid, Solid}},
	{ID: 6, Name: "坎", Pinyin: "Kan", Glyph: "☵", Lines: [3]Line{Broken, Solid, Broken}},
	{ID: 7, Name: "艮", Pinyin: "Gen", Glyph: "☶", Lines: [3]Line{Broken, Broken, Solid}},
	{ID: 8, Name: "坤", Pinyin: "Kun", Glyph: "☷", Lines: [3]Line{Broken, Broken, Broken}},
}

// TrigramByID returns the trigram with the given id. Ids outside 1..8 panic;
// callers range-check with ValidTrigramID first.
func TrigramByID(id int) Trigram {
	if !ValidTrigramID(id) {
		panic(fmt.Sprintf("iching: trigram id %d out of range", id))
	}
	return trigrams[id-1]
}

// Trigrams returns the whole table in id order.
func Trigrams() [8]Trigram {
	return trigrams
}

// ValidTrigramID reports whether id names one of the eight trigrams.
func ValidTrigramID(id int) bool {
	return id >= 1 && id <= 8
}

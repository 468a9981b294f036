package iching

import "fmt"

// Result is the snapshot of one draw.
type Result struct {
	Lower      Trigram
	Upper      Trigram
	MovingLine int     // 1..6, bottom is 1
	Lines      [6]Line // bottom to top
	Hexagram   Hexagram
	Fallback   bool // Hexagram was synthesized, the catalog had no entry
}

// MovingLineText returns the line-text for the moving line.
func (r Result) MovingLineText() string {
	return r.Hexagram.LineTexts[r.MovingLine-1]
}

// Key returns the catalog key the result was resolved from.
func (r Result) Key() Key {
	return Key{Upper: r.Upper.ID, Lower: r.Lower.ID}
}

// Engine draws hexagrams from a catalog.
type Engine struct {
	catalog *Catalog
	src     Source
}

// NewEngine returns an engine over catalog drawing from src. A nil src uses
// SystemSource.
func NewEngine(catalog *Catalog, src Source) *Engine {
	if src == nil {
		src = SystemSource()
	}
	return &Engine{catalog: catalog, src: src}
}

// Catalog returns the catalog the engine reads.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Draw takes lower, upper and moving line from the source, in that order,
// and composes the result.
func (e *Engine) Draw() Result {
	lower := 1 + e.src.Intn(8)
	upper := 1 + e.src.Intn(8)
	moving := 1 + e.src.Intn(6)
	return e.Compose(lower, upper, moving)
}

// Compose assembles a result from explicit draws. The lower trigram fills
// lines 1-3 and the upper fills 4-6, while the catalog is keyed (upper, lower).
// Trigram ids outside 1..8 or a moving line outside 1..6 panic.
func (e *Engine) Compose(lowerID, upperID, moving int) Result {
	if moving < 1 || moving > 6 {
		panic(fmt.Sprintf("iching: moving line %d out of range", moving))
	}
	lower := TrigramByID(lowerID)
	upper := TrigramByID(upperID)

	var lines [6]Line
	copy(lines[:3], lower.Lines[:])
	copy(lines[3:], upper.Lines[:])

	r := Result{
		Lower:      lower,
		Upper:      upper,
		MovingLine: moving,
		Lines:      lines,
	}
	if h, ok := e.catalog.Lookup(upperID, lowerID); ok {
		r.Hexagram = h
	} else {
		r.Hexagram = Fallback(upper, lower)
		r.Fallback = true
	}
	return r
}

// Package render formats divination results as plain text and JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jwulff/zen/internal/iching"
)

// Line drawings, bottom to top order is the caller's concern.
const (
	SolidBar  = "────────"
	BrokenBar = "────  ────"
	Marker    = "← 主爻"
)

// Bar returns the drawing for one line.
func Bar(l iching.Line) string {
	if l == iching.Solid {
		return SolidBar
	}
	return BrokenBar
}

// Heading labels shared with the TUI.
const (
	Title    = "易经随机卦象演示"
	Subtitle = "随机生成三组数字：下爻卦(1-8)、上爻卦(1-8)、主爻(1-6)"
)

// Draws returns the "random numbers" line.
func Draws(r iching.Result) string {
	return fmt.Sprintf("随机数：下爻=%d，上爻=%d，主爻=%d", r.Lower.ID, r.Upper.ID, r.MovingLine)
}

// Trigrams returns the lower/upper trigram line.
func Trigrams(r iching.Result) string {
	return fmt.Sprintf("下卦：%s %s    上卦：%s %s", r.Lower.Glyph, r.Lower.Name, r.Upper.Glyph, r.Upper.Name)
}

// HexagramTitle returns the resolved hexagram line.
func HexagramTitle(r iching.Result) string {
	return fmt.Sprintf("本卦：%s %s", r.Hexagram.Glyph, r.Hexagram.Name)
}

// Texts returns judgment, moving line text and the three commentaries as
// labelled lines.
func Texts(r iching.Result) []string {
	h := r.Hexagram
	return []string{
		"卦辞：" + h.Judgment,
		fmt.Sprintf("主爻爻辞（第%d爻）：%s", r.MovingLine, r.MovingLineText()),
		"易传：" + h.Commentary.Tuan,
		"系辞传：" + h.Commentary.Xici,
		"象传：" + h.Commentary.Xiang,
	}
}

// Text writes the full plain-text report for r. Lines are drawn top to
// bottom with the moving line marked.
func Text(w io.Writer, r iching.Result) error {
	var b strings.Builder
	b.WriteString(Draws(r) + "\n")
	b.WriteString(Trigrams(r) + "\n")
	b.WriteString(HexagramTitle(r) + "\n\n")
	b.WriteString("卦象（上到下）：\n")
	for pos := 6; pos >= 1; pos-- {
		bar := Bar(r.Lines[pos-1])
		if pos == r.MovingLine {
			bar += "  " + Marker
		}
		b.WriteString(bar + "\n")
	}
	b.WriteString("\n")
	for _, t := range Texts(r) {
		b.WriteString(t + "\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// TrigramJSON is the wire form of a trigram.
type TrigramJSON struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Pinyin string   `json:"pinyin"`
	Glyph  string   `json:"glyph"`
	Lines  []string `json:"lines"`
}

// ResultJSON is the wire form of a result. Lines run bottom to top.
type ResultJSON struct {
	Lower          TrigramJSON     `json:"lower"`
	Upper          TrigramJSON     `json:"upper"`
	MovingLine     int             `json:"movingLine"`
	Lines          []string        `json:"lines"`
	Hexagram       iching.Hexagram `json:"hexagram"`
	MovingLineText string          `json:"movingLineText"`
	Fallback       bool            `json:"fallback"`
}

// NewTrigramJSON converts t.
func NewTrigramJSON(t iching.Trigram) TrigramJSON {
	return TrigramJSON{ID: t.ID, Name: t.Name, Pinyin: t.Pinyin, Glyph: t.Glyph, Lines: lineNames(t.Lines[:])}
}

// NewResultJSON converts r.
func NewResultJSON(r iching.Result) ResultJSON {
	return ResultJSON{
		Lower:          NewTrigramJSON(r.Lower),
		Upper:          NewTrigramJSON(r.Upper),
		MovingLine:     r.MovingLine,
		Lines:          lineNames(r.Lines[:]),
		Hexagram:       r.Hexagram,
		MovingLineText: r.MovingLineText(),
		Fallback:       r.Fallback,
	}
}

// JSON writes r as indented JSON.
func JSON(w io.Writer, r iching.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(NewResultJSON(r)); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

// TrigramTable writes one row per trigram.
func TrigramTable(w io.Writer) error {
	var b strings.Builder
	for _, t := range iching.Trigrams() {
		fmt.Fprintf(&b, "%d  %s %s %-5s %s\n", t.ID, t.Glyph, t.Name, t.Pinyin, strings.Join(lineNames(t.Lines[:]), ","))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func lineNames(lines []iching.Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.String()
	}
	return out
}

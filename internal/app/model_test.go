package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jwulff/zen/internal/iching"
	"github.com/jwulff/zen/internal/render"
)

// fixedSource replays vals; {0, 0, 2} draws lower=1, upper=1, moving=3.
type fixedSource struct {
	vals []int
	pos  int
}

func (s *fixedSource) Intn(n int) int {
	v := s.vals[s.pos%len(s.vals)]
	s.pos++
	return v % n
}

func newTestModel() Model {
	engine := iching.NewEngine(iching.NewCatalog(), &fixedSource{vals: []int{0, 0, 2}})
	m := New(engine)
	m.width = 100
	m.height = 30
	return m
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel(t *testing.T) {
	m := newTestModel()
	if m.result != nil {
		t.Error("new model should have no result")
	}
	if !m.showCommentary {
		t.Error("new model should show commentary")
	}
	if cmd := m.Init(); cmd != nil {
		t.Error("Init without notice should return nil")
	}
}

func TestGenerateKeyDraws(t *testing.T) {
	for _, k := range []string{" ", "g", "G"} {
		m := newTestModel()

		_, cmd := m.Update(key(k))
		if cmd == nil {
			t.Fatalf("key %q: expected draw command", k)
		}
		msg, ok := cmd().(DrawnMsg)
		if !ok {
			t.Fatalf("key %q: expected DrawnMsg", k)
		}

		updated, _ := m.Update(msg)
		model := updated.(Model)
		if model.result == nil {
			t.Fatalf("key %q: result not set", k)
		}
		if model.result.Hexagram.Name != "乾" {
			t.Errorf("hexagram = %q, want 乾", model.result.Hexagram.Name)
		}
		if model.result.MovingLine != 3 {
			t.Errorf("moving line = %d, want 3", model.result.MovingLine)
		}
		if model.draws != 1 {
			t.Errorf("draws = %d, want 1", model.draws)
		}
	}
}

func TestDrawReplacesResult(t *testing.T) {
	m := newTestModel()
	engine := iching.NewEngine(iching.NewCatalog(), nil)

	updated, _ := m.Update(DrawnMsg{Result: engine.Compose(1, 1, 1)})
	updated, _ = updated.Update(DrawnMsg{Result: engine.Compose(2, 5, 6)})
	model := updated.(Model)

	if model.result.Hexagram.Name != "上巽下兑" {
		t.Errorf("hexagram = %q, want 上巽下兑", model.result.Hexagram.Name)
	}
	if !model.result.Fallback {
		t.Error("expected fallback result")
	}
	if model.draws != 2 {
		t.Errorf("draws = %d, want 2", model.draws)
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel()
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestToggleCommentary(t *testing.T) {
	m := newTestModel()
	updated, _ := m.Update(key("c"))
	model := updated.(Model)
	if model.showCommentary {
		t.Error("commentary should be hidden after toggle")
	}
}

func TestNoticeIsTransient(t *testing.T) {
	engine := iching.NewEngine(iching.NewCatalog(), nil)
	m := New(engine, WithNotice("overlay unreadable"))

	cmd := m.Init()
	if cmd == nil {
		t.Fatal("expected notice command")
	}
	updated, clearCmd := m.Update(cmd())
	model := updated.(Model)
	if model.errorMessage != "overlay unreadable" || !model.errorTransient {
		t.Errorf("errorMessage = %q, transient = %v", model.errorMessage, model.errorTransient)
	}
	if clearCmd == nil {
		t.Error("expected clear command")
	}

	updated, _ = model.Update(ClearTransientErrorMsg{})
	if updated.(Model).errorMessage != "" {
		t.Error("error should be cleared")
	}
}

func TestViewBeforeDraw(t *testing.T) {
	m := newTestModel()
	view := m.View()
	if !strings.Contains(view, render.Title) {
		t.Error("view should contain the title")
	}
	if !strings.Contains(view, "Press Space") {
		t.Error("view should prompt for a draw")
	}
}

func TestViewMarksMovingLine(t *testing.T) {
	m := newTestModel()
	engine := iching.NewEngine(iching.NewCatalog(), nil)
	updated, _ := m.Update(DrawnMsg{Result: engine.Compose(8, 8, 2)})
	view := updated.(Model).View()

	if strings.Count(view, render.Marker) != 1 {
		t.Errorf("expected exactly one moving line marker")
	}
	if !strings.Contains(view, "六二：直方大，不习无不利。") {
		t.Error("view should contain the moving line text")
	}
	if !strings.Contains(view, "地势坤") {
		t.Error("view should contain the commentary")
	}
}

func TestViewHidesCommentary(t *testing.T) {
	m := newTestModel()
	engine := iching.NewEngine(iching.NewCatalog(), nil)
	updated, _ := m.Update(DrawnMsg{Result: engine.Compose(8, 8, 2)})
	updated, _ = updated.Update(key("c"))
	view := updated.(Model).View()

	if strings.Contains(view, "地势坤") {
		t.Error("commentary should be hidden")
	}
}

func TestViewInitializing(t *testing.T) {
	m := New(iching.NewEngine(iching.NewCatalog(), nil))
	if m.View() != "Initializing..." {
		t.Errorf("view = %q", m.View())
	}
}

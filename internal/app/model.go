package app

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/jwulff/zen/internal/iching"
	"github.com/jwulff/zen/internal/render"
	"github.com/jwulff/zen/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// Model is the root bubbletea model for the zen TUI.
type Model struct {
	engine *iching.Engine
	logger *slog.Logger

	// Current draw, nil until the first generate.
	result *iching.Result
	draws  int

	// UI state
	showCommentary bool
	width          int
	height         int

	// Errors
	errorMessage   string
	errorTransient bool

	// Set at startup, shown once Init runs.
	startupNotice string
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used for draw events.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) { m.logger = logger }
}

// WithNotice shows msg as a transient warning when the TUI starts.
func WithNotice(msg string) Option {
	return func(m *Model) { m.startupNotice = msg }
}

// New creates a Model over engine. The engine's catalog must be complete.
func New(engine *iching.Engine, opts ...Option) Model {
	m := Model{
		engine:         engine,
		logger:         slog.Default(),
		showCommentary: true,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init shows any startup notice.
func (m Model) Init() tea.Cmd {
	if m.startupNotice == "" {
		return nil
	}
	notice := m.startupNotice
	return func() tea.Msg { return NoticeMsg{Message: notice} }
}

// drawCmd performs exactly one draw.
func drawCmd(engine *iching.Engine) tea.Cmd {
	return func() tea.Msg {
		return DrawnMsg{Result: engine.Draw()}
	}
}

// clearTransientErrorCmd fires after a delay to clear transient errors.
func clearTransientErrorCmd() tea.Cmd {
	return tea.Tick(5*time.Second, func(time.Time) tea.Msg {
		return ClearTransientErrorMsg{}
	})
}

// Update processes messages and returns the updated model and any commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case DrawnMsg:
		r := msg.Result
		m.result = &r
		m.draws++
		m.logger.Debug("hexagram drawn",
			"lower", r.Lower.ID,
			"upper", r.Upper.ID,
			"moving_line", r.MovingLine,
			"hexagram", r.Hexagram.Name,
			"fallback", r.Fallback,
		)
		return m, nil

	case NoticeMsg:
		m.errorMessage = msg.Message
		m.errorTransient = true
		return m, clearTransientErrorCmd()

	case ClearTransientErrorMsg:
		if m.errorTransient {
			m.errorMessage = ""
			m.errorTransient = false
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyQuit, KeyQuitUpper, KeyCtrlC:
		return m, tea.Quit

	case KeySpace, KeyGenerate, KeyGenerateUpper, KeyEnter:
		return m, drawCmd(m.engine)

	case KeyCommentary, KeyCommentaryUpper:
		m.showCommentary = !m.showCommentary
		return m, nil
	}

	return m, nil
}

func (m Model) figurePanelWidth() int {
	return lipgloss.Width(render.BrokenBar+"  "+render.Marker) + 4
}

func (m Model) textPanelWidth() int {
	if m.width == 0 {
		return 60
	}
	return max(30, m.width-m.figurePanelWidth()-3)
}

// View renders the full TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var sections []string

	sections = append(sections, m.renderHeader())
	sections = append(sections, ui.DividerStyle.Render(strings.Repeat("─", m.width)))

	if m.result == nil {
		sections = append(sections, "", ui.DimStyle.Render("  点击“生成随机卦”开始。 Press Space to draw."), "")
	} else {
		sections = append(sections, m.renderSummary())
		sections = append(sections, m.renderMainContent())
	}

	sections = append(sections, ui.DividerStyle.Render(strings.Repeat("─", m.width)))

	if m.errorMessage != "" {
		sections = append(sections, m.renderErrorBar())
	}

	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

func (m Model) renderHeader() string {
	title := ui.TitleStyle.Render(render.Title)
	var count string
	if m.draws > 0 {
		count = ui.DimStyle.Render(fmt.Sprintf(" — #%d", m.draws))
	}
	return title + count + "\n" + ui.SubtitleStyle.Render(render.Subtitle)
}

func (m Model) renderSummary() string {
	r := *m.result
	name := ui.HexagramNameStyle.Render(render.HexagramTitle(r))
	if r.Fallback {
		name += ui.FallbackBadgeStyle.Render("  [待补全]")
	}
	body := strings.Join([]string{render.Draws(r), render.Trigrams(r), name}, "\n")
	return ui.GroupStyle.Render(body)
}

func (m Model) renderMainContent() string {
	figure := m.renderFigurePanel(m.figurePanelWidth())
	texts := m.renderTextPanel(m.textPanelWidth())
	divider := ui.DividerStyle.Render(" │ ")
	return lipgloss.JoinHorizontal(lipgloss.Top, figure, divider, texts)
}

// renderFigurePanel draws the six lines top to bottom.
func (m Model) renderFigurePanel(width int) string {
	r := *m.result
	lines := []string{ui.PanelTitleStyle.Render("卦象（上到下）")}
	for pos := 6; pos >= 1; pos-- {
		bar := render.Bar(r.Lines[pos-1])
		if pos == r.MovingLine {
			lines = append(lines, ui.MovingLineStyle.Render(bar+"  "+render.Marker))
		} else {
			lines = append(lines, ui.LineStyle.Render(bar))
		}
	}
	for i, l := range lines {
		lines[i] = padRight(l, width)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderTextPanel(width int) string {
	texts := render.Texts(*m.result)
	if !m.showCommentary {
		texts = texts[:2]
	}
	wrap := lipgloss.NewStyle().Width(width)
	var lines []string
	for _, t := range texts {
		label, body, ok := strings.Cut(t, "：")
		if !ok {
			lines = append(lines, wrap.Render(t))
			continue
		}
		lines = append(lines, wrap.Render(ui.LabelStyle.Render(label+"：")+body))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderErrorBar() string {
	return ui.ErrorStyle.Render("Warning: ") + ui.ErrorTextStyle.Render(m.errorMessage)
}

func (m Model) renderFooter() string {
	var parts []string

	parts = append(parts, ui.FooterKeyStyle.Render("Space")+ui.FooterDescStyle.Render(" 生成随机卦"))
	if m.showCommentary {
		parts = append(parts, ui.FooterKeyStyle.Render("c")+ui.FooterDescStyle.Render(" Hide commentary"))
	} else {
		parts = append(parts, ui.FooterKeyStyle.Render("c")+ui.FooterDescStyle.Render(" Show commentary"))
	}
	parts = append(parts, ui.FooterKeyStyle.Render("q")+ui.FooterDescStyle.Render(" Quit"))

	return strings.Join(parts, "  ")
}

// Helpers

func padRight(s string, width int) string {
	// Get visible length (ignoring ANSI codes)
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/mandel/internal/analysis"
	"github.com/san-kum/mandel/internal/mandel"
	"github.com/san-kum/mandel/internal/viz"
)

const (
	histogramBins = 48
	chromeLines   = 7
	defaultWidth  = 80
	defaultHeight = 24
)

type tickMsg time.Time

type renderedMsg struct {
	frame   *mandel.Framebuffer
	trace   *mandel.EscapeMap
	elapsed time.Duration
	err     error
}

// Model shows one fixed view. The image is rendered once in the background;
// key presses only change what is shown around it.
type Model struct {
	view       mandel.ViewParameters
	renderer   *mandel.Renderer
	background mandel.Color

	rendering bool
	frame     *mandel.Framebuffer
	summary   analysis.Summary
	histogram []float64
	elapsed   time.Duration
	err       error

	spin     int
	theme    int
	showHelp bool
	showHist bool

	width  int
	height int
}

// New builds the viewer for vp. theme names the initial chrome theme; unknown
// names fall back to the first theme.
func New(vp mandel.ViewParameters, r *mandel.Renderer, theme string) Model {
	return Model{
		theme:      themeIndex(theme),
		view:       vp,
		renderer:   r,
		background: r.Background(),
		rendering:  true,
		showHist:   true,
		width:      defaultWidth,
		height:     defaultHeight,
	}
}

func themeIndex(name string) int {
	want := viz.GetTheme(name).Name
	for i, t := range viz.Themes {
		if t.Name == want {
			return i
		}
	}
	return 0
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.render(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) render() tea.Cmd {
	vp, r, bg := m.view, m.renderer, m.background
	return func() tea.Msg {
		start := time.Now()
		em, err := r.Trace(context.Background(), vp)
		if err != nil {
			return renderedMsg{err: err}
		}
		return renderedMsg{
			frame:   em.Colorize(bg),
			trace:   em,
			elapsed: time.Since(start),
		}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case renderedMsg:
		m.rendering = false
		m.err = msg.err
		if msg.err == nil {
			m.frame = msg.frame
			m.summary = analysis.Summarize(msg.trace)
			m.histogram = analysis.Histogram(msg.trace, histogramBins)
			m.elapsed = msg.elapsed
		}
		return m, nil
	case tickMsg:
		if !m.rendering {
			return m, nil
		}
		m.spin++
		return m, tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "?":
		m.showHelp = !m.showHelp
	case "h":
		m.showHist = !m.showHist
	case "t":
		m.theme = (m.theme + 1) % len(viz.Themes)
	}
	return m, nil
}

func (m Model) View() string {
	theme := viz.Themes[m.theme]

	if m.err != nil {
		return viz.ErrorText.Render("render failed: "+m.err.Error()) + "\n\n" + viz.KeyHint.Render("q quit") + "\n"
	}
	if m.rendering {
		return fmt.Sprintf("%s %s\n", theme.Title().Render(viz.AnimatedSpinner(m.spin)), viz.Subtle.Render("rendering "+m.view.String()))
	}

	var b strings.Builder
	b.WriteString(theme.Title().Render("mandel") + " " + viz.Subtle.Render(m.view.String()) + "\n")

	rows := m.height - chromeLines
	if m.showHist {
		rows--
	}
	cols := viz.FitColumns(m.frame, m.width, max(rows, 1))
	b.WriteString(viz.Preview(m.frame, cols) + "\n")

	stats := []string{
		viz.Metric("escaped", fmt.Sprintf("%.1f%%", 100*m.summary.EscapedFraction())),
		viz.Metric("pre-checked", fmt.Sprintf("%d", m.summary.PreChecked)),
		viz.Metric("mean iter", fmt.Sprintf("%.1f", m.summary.MeanIteration)),
		viz.Metric("time", m.elapsed.Round(time.Millisecond).String()),
	}
	b.WriteString(theme.Panel().Render(strings.Join(stats, "  ")) + "\n")

	if m.showHist {
		b.WriteString(viz.MetricLabel.Render("iterations ") + viz.SparklineChart(m.histogram, min(histogramBins, max(m.width-12, 1))) + "\n")
	}

	if m.showHelp {
		b.WriteString(viz.KeyHint.Render("q quit · h histogram · t theme ("+theme.Name+") · ? help") + "\n")
	} else {
		b.WriteString(viz.KeyHint.Render("? help") + "\n")
	}

	return lipgloss.NewStyle().MaxWidth(max(m.width, 1)).Render(b.String())
}

// Run renders vp and shows it until the user quits.
func Run(vp mandel.ViewParameters, r *mandel.Renderer, theme string) error {
	if err := vp.Validate(); err != nil {
		return err
	}
	p := tea.NewProgram(New(vp, r, theme), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

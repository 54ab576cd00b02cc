package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gerunddev/wordcraft/internal/goals"
	"github.com/gerunddev/wordcraft/internal/styles"
)

// CountingMsg is sent when a recount of the watched file starts
type CountingMsg struct{}

// CountMsg is sent when a recount of the watched file finishes
type CountMsg struct {
	Words    int
	Today    int
	Sections int
	Tasks    int
	Progress goals.Progress
	At       time.Time
	Err      error
}

// WatchModel is the live dashboard for one file
type WatchModel struct {
	path     string
	interval time.Duration
	spinner  spinner.Model
	bar      progress.Model
	counting bool
	last     *CountMsg
	err      error
	counts   int
}

// NewWatchModel creates the dashboard for path, which is recounted every interval
func NewWatchModel(path string, interval time.Duration) WatchModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SpinnerStyle

	bar := progress.New(
		progress.WithGradient(styles.Magenta, styles.Green),
		progress.WithWidth(40),
	)

	return WatchModel{
		path:     path,
		interval: interval,
		spinner:  s,
		bar:      bar,
		counting: true,
	}
}

func (m WatchModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.bar.Width = min(max(msg.Width-20, 10), 60)

	case CountingMsg:
		m.counting = true
		return m, m.spinner.Tick

	case CountMsg:
		m.counting = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.counts++
		m.last = &msg
		return m, nil

	case spinner.TickMsg:
		if !m.counting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m WatchModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("wordcraft watch"))
	b.WriteString("  ")
	b.WriteString(styles.DimStyle.Render(filepath.Base(m.path)))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(styles.ErrorStyle.Render("✗ " + m.err.Error()))
		b.WriteString("\n\n")
	}

	if m.last == nil {
		b.WriteString(fmt.Sprintf("%s Counting...\n\n", m.spinner.View()))
		b.WriteString(styles.HelpStyle.Render("q quit"))
		b.WriteString("\n")
		return b.String()
	}

	c := m.last
	b.WriteString(fmt.Sprintf("  Words:    %s\n", styles.HighlightStyle.Render(fmt.Sprint(c.Words))))
	b.WriteString(fmt.Sprintf("  Today:    %s\n", styles.Delta(c.Today)))
	b.WriteString(fmt.Sprintf("  Sections: %d\n", c.Sections))
	if c.Tasks > 0 {
		b.WriteString(fmt.Sprintf("  Tasks:    %s\n", styles.TagStyle.Render(fmt.Sprint(c.Tasks))))
	}
	b.WriteString("\n")

	if !c.Progress.Goal.IsZero() {
		b.WriteString("  ")
		b.WriteString(m.bar.ViewAs(c.Progress.Percent))
		b.WriteString("\n  ")
		b.WriteString(styles.GoalStyle(c.Progress.Status).Render(c.Progress.String()))
		b.WriteString("\n\n")
	}

	status := fmt.Sprintf("Last counted %s • every %v", c.At.Format("15:04:05"), m.interval)
	if m.counting {
		status = m.spinner.View() + " " + status
	}
	b.WriteString(styles.DimStyle.Render(status))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpStyle.Render("q quit"))
	b.WriteString("\n")
	return b.String()
}

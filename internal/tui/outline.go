package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gerunddev/wordcraft/internal/outline"
	"github.com/gerunddev/wordcraft/internal/plaintext"
	"github.com/gerunddev/wordcraft/internal/styles"
)

// OutlineModel shows the sections of a document as a table, with a preview
// of the plain text of the selected section
type OutlineModel struct {
	title       string
	sections    []outline.Section
	summary     outline.Summary
	table       table.Model
	viewport    viewport.Model
	showPreview bool
	selected    *outline.Section
}

// NewOutlineModel creates the outline browser for one document
func NewOutlineModel(title string, sections []outline.Section) OutlineModel {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Section", Width: 40},
		{Title: "Level", Width: 5},
		{Title: "Words", Width: 7},
		{Title: "Chars", Width: 7},
		{Title: "Scenes", Width: 6},
		{Title: "Tasks", Width: 5},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(sectionRows(sections)),
		table.WithFocused(true),
		table.WithHeight(min(len(sections)+1, 20)),
	)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(styles.Border)).
		BorderBottom(true).
		Bold(false)
	ts.Selected = styles.SelectedStyle.Bold(false)
	t.SetStyles(ts)

	vp := viewport.New(100, 20)
	vp.Style = styles.PreviewStyle

	return OutlineModel{
		title:    title,
		sections: sections,
		summary:  outline.Totals(sections),
		table:    t,
		viewport: vp,
	}
}

func sectionRows(sections []outline.Section) []table.Row {
	rows := make([]table.Row, 0, len(sections))
	for _, s := range sections {
		title := s.Title
		if s.Level == 0 {
			title = "(preamble)"
		} else {
			title = strings.Repeat("  ", s.Level-1) + title
		}
		rows = append(rows, table.Row{
			strconv.Itoa(s.Ordinal + 1),
			title,
			strconv.Itoa(s.Level),
			strconv.Itoa(s.Words),
			strconv.Itoa(s.Characters),
			strconv.Itoa(s.Scenes),
			strconv.Itoa(s.Tasks),
		})
	}
	return rows
}

// Selected returns the section under the cursor
func (m OutlineModel) Selected() (outline.Section, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.sections) {
		return outline.Section{}, false
	}
	return m.sections[i], true
}

func (m OutlineModel) Init() tea.Cmd {
	return nil
}

func (m OutlineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-10, 3))
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = max(msg.Height-8, 3)

	case tea.KeyMsg:
		if m.showPreview {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "q", "esc":
				m.showPreview = false
				return m, nil
			}
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "enter", "p":
			if s, ok := m.Selected(); ok {
				m.selected = &s
				m.showPreview = true
				m.viewport.SetContent(preview(s))
				m.viewport.GotoTop()
			}
			return m, nil
		}
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	return m, nil
}

// preview is the normalized text of a section, blank runs collapsed
func preview(s outline.Section) string {
	text := plaintext.Normalize(s.Body)
	var lines []string
	blank := true
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			if !blank {
				lines = append(lines, "")
			}
			blank = true
			continue
		}
		lines = append(lines, line)
		blank = false
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func (m OutlineModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(m.title))
	b.WriteString("\n\n")

	if m.showPreview && m.selected != nil {
		b.WriteString(styles.HeaderStyle.Render(m.selected.Title))
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("  %d words", m.selected.Words)))
		b.WriteString("\n\n")
		b.WriteString(m.viewport.View())
		b.WriteString("\n\n")
		b.WriteString(styles.HelpStyle.Render("↑/k up • ↓/j down • esc/q back"))
		b.WriteString("\n")
		return b.String()
	}

	if len(m.sections) == 0 {
		b.WriteString(styles.DimStyle.Render("No sections"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(styles.TableStyle.Render(m.table.View()))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d sections • %d words • %d characters • %d scenes • %d tasks",
		m.summary.Sections, m.summary.Words, m.summary.Characters, m.summary.Scenes, m.summary.Tasks))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpStyle.Render("↑/k up • ↓/j down • enter preview • q quit"))
	b.WriteString("\n")
	return b.String()
}

package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gerunddev/wordcraft/internal/goals"
)

func TestWatchModelCounting(t *testing.T) {
	var m tea.Model = NewWatchModel("/book/ch1.md", 2*time.Second)

	if !strings.Contains(m.View(), "Counting") {
		t.Errorf("Initial view should show counting:\n%s", m.View())
	}

	at := time.Date(2026, 10, 18, 9, 30, 0, 0, time.Local)
	m, _ = update(t, m, CountMsg{
		Words:    800,
		Today:    120,
		Sections: 3,
		Tasks:    2,
		Progress: goals.Evaluate(goals.Goal{Type: goals.Minimum, Target: 1000}, 800),
		At:       at,
	})

	view := m.View()
	for _, want := range []string{"ch1.md", "800", "+120", "Sections: 3", "800/1000 words", "09:30:00", "every 2s"} {
		if !strings.Contains(view, want) {
			t.Errorf("View missing %q:\n%s", want, view)
		}
	}
}

func TestWatchModelNoGoal(t *testing.T) {
	var m tea.Model = NewWatchModel("ch1.md", time.Second)
	m, _ = update(t, m, CountMsg{Words: 12, Progress: goals.Evaluate(goals.Goal{}, 12), At: time.Now()})

	if strings.Contains(m.View(), "no goal") {
		t.Errorf("Progress should be hidden without a goal:\n%s", m.View())
	}
}

func TestWatchModelError(t *testing.T) {
	var m tea.Model = NewWatchModel("ch1.md", time.Second)
	m, _ = update(t, m, CountMsg{Words: 10, At: time.Now()})
	m, _ = update(t, m, CountingMsg{})
	m, _ = update(t, m, CountMsg{Err: errors.New("file vanished")})

	view := m.View()
	if !strings.Contains(view, "file vanished") {
		t.Errorf("View should show the error:\n%s", view)
	}
	if !strings.Contains(view, "10") {
		t.Errorf("View should keep the last good count:\n%s", view)
	}

	_, cmd := update(t, m, key("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should return tea.Quit")
	}
}

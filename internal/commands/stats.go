package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gerunddev/wordcraft/internal/goals"
	"github.com/gerunddev/wordcraft/internal/outline"
	"github.com/gerunddev/wordcraft/internal/styles"
	"github.com/gerunddev/wordcraft/internal/tui"
)

// Stats shows the outline statistics of a file, interactively on a terminal
func Stats(argv []string) {
	a, err := parseArgs(argv)
	if err != nil {
		fail(err)
	}
	path, err := oneFile(a, "wordcraft stats <file|-> [--no-tui]")
	if err != nil {
		fail(err)
	}

	if a.switches["no-tui"] || path == "-" || !isTerminal(os.Stdout) {
		run(func(stdin io.Reader, stdout io.Writer) error {
			return runStats(path, stdin, stdout)
		})
		return
	}

	doc, err := readDocument(path, os.Stdin)
	if err != nil {
		fail(err)
	}
	title := doc.Title()
	if title == "" {
		title = path
	}

	m := tui.NewOutlineModel(title, outline.Split(path, doc.Body))
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fail(err)
	}
}

func runStats(path string, stdin io.Reader, stdout io.Writer) error {
	doc, err := readDocument(path, stdin)
	if err != nil {
		return err
	}

	sections := outline.Split(path, doc.Body)
	if len(sections) == 0 {
		fmt.Fprintln(stdout, styles.DimStyle.Render("No sections"))
		return nil
	}

	t := newTable([]string{"#", "Section", "Words", "Chars", "Scenes", "Tasks"}, 0, 2, 3, 4, 5)
	for _, s := range sections {
		title := s.Title
		if s.Level == 0 {
			title = "(preamble)"
		} else {
			title = strings.Repeat("  ", s.Level-1) + title
		}
		t.Row(
			strconv.Itoa(s.Ordinal+1),
			title,
			strconv.Itoa(s.Words),
			strconv.Itoa(s.Characters),
			strconv.Itoa(s.Scenes),
			strconv.Itoa(s.Tasks),
		)
	}
	fmt.Fprintln(stdout, t.Render())

	sum := outline.Totals(sections)
	fmt.Fprintf(stdout, "%d sections • %d words • %d characters • %d scenes • %d tasks\n",
		sum.Sections, sum.Words, sum.Characters, sum.Scenes, sum.Tasks)
	return nil
}

// Goal reports progress of a file toward its goal
func Goal(argv []string) {
	cfg, log, cleanup, err := loadConfig()
	if err != nil {
		fail(err)
	}
	defer cleanup()

	run(func(stdin io.Reader, stdout io.Writer) error {
		progress, err := runGoal(argv, cfg.Goal, stdin, stdout)
		if err == nil && progress.Met {
			log.GoalReached(progress.Path, progress.Words, progress.Goal.Target, string(progress.Goal.Type))
		}
		return err
	})
}

type goalResult struct {
	goals.Progress
	Path string
}

func runGoal(argv []string, fallback goals.Goal, stdin io.Reader, stdout io.Writer) (goalResult, error) {
	a, err := parseArgs(argv)
	if err != nil {
		return goalResult{}, err
	}
	path, err := oneFile(a, "wordcraft goal <file|->")
	if err != nil {
		return goalResult{}, err
	}
	doc, err := readDocument(path, stdin)
	if err != nil {
		return goalResult{}, err
	}

	p := goals.Evaluate(doc.Goal(fallback), doc.Words())
	fmt.Fprintln(stdout, styles.GoalStyle(p.Status).Render(p.String()))

	switch {
	case p.Status == goals.StatusNone:
		fmt.Fprintln(stdout, styles.DimStyle.Render("Set goal in front matter or in "+configHint()))
	case p.Met:
	case p.Remaining > 0:
		fmt.Fprintf(stdout, "%d words to go\n", p.Remaining)
	case p.Remaining < 0:
		fmt.Fprintf(stdout, "%d words to cut\n", -p.Remaining)
	}
	return goalResult{Progress: p, Path: path}, nil
}

package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/gerunddev/wordcraft/internal/config"
	"github.com/gerunddev/wordcraft/internal/goals"
	"github.com/gerunddev/wordcraft/internal/logger"
	"github.com/gerunddev/wordcraft/internal/project"
	"github.com/gerunddev/wordcraft/internal/state"
	"github.com/gerunddev/wordcraft/internal/styles"
)

// Scan counts every manuscript file under a directory and records the
// counts in the history
func Scan(argv []string) {
	cfg, log, cleanup, err := loadConfig()
	if err != nil {
		fail(err)
	}
	defer cleanup()

	run(func(_ io.Reader, stdout io.Writer) error {
		return runScan(argv, cfg, config.StateFilePath(), log, stdout)
	})
}

func runScan(argv []string, cfg *config.Config, statePath string, log *logger.Logger, stdout io.Writer) error {
	a, err := parseArgs(argv, "match")
	if err != nil {
		return err
	}
	root := "."
	switch len(a.positional) {
	case 0:
	case 1:
		root = a.positional[0]
	default:
		return fmt.Errorf("usage: wordcraft scan [dir] [--match query]")
	}

	st, err := state.Load(statePath)
	if err != nil {
		log.StateError("load", err)
		return fmt.Errorf("failed to load state: %w", err)
	}

	scanner := project.NewScanner(cfg, st)
	scanner.SetLogger(log)
	result, err := scanner.Scan(root)
	if err != nil {
		return err
	}

	if err := st.Save(statePath); err != nil {
		log.StateError("save", err)
		return err
	}
	result = result.Filter(a.values["match"])

	if len(result.Files) == 0 {
		fmt.Fprintln(stdout, styles.DimStyle.Render("No manuscript files found in "+root))
	} else {
		t := newTable([]string{"File", "Title", "Words", "Today", "Goal", "Modified"}, 2, 3)
		for _, f := range result.Files {
			goal := ""
			if f.Progress.Status != goals.StatusNone {
				goal = styles.GoalStyle(f.Progress.Status).Render(fmt.Sprintf("%.0f%% %s", f.Progress.Ratio*100, f.Progress.Status))
			}
			t.Row(f.Path, f.Title, formatWords(f.Words), styles.Delta(f.Today), goal, f.Modified.Format("2006-01-02 15:04"))
		}
		fmt.Fprintln(stdout, t.Render())
	}

	for _, err := range result.Errors {
		fmt.Fprintln(stdout, styles.ErrorStyle.Render("✗ "+err.Error()))
	}

	if result.Forgotten > 0 {
		fmt.Fprintln(stdout, styles.DimStyle.Render(fmt.Sprintf("Forgot %d vanished file(s)", result.Forgotten)))
	}
	fmt.Fprintln(stdout, styles.DimStyle.Render(fmt.Sprintf("All tracked files: %+d words today", st.TotalWrittenOn(time.Now()))))

	summary := result.String()
	if len(result.Errors) > 0 {
		fmt.Fprintln(stdout, styles.WarningStyle.Render(summary))
	} else {
		fmt.Fprintln(stdout, styles.SuccessStyle.Render("✓ "+summary))
	}
	return nil
}

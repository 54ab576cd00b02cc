package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/gerunddev/wordcraft/internal/diff"
	"github.com/gerunddev/wordcraft/internal/styles"
)

// Diff shows what changed in the prose between two drafts
func Diff(argv []string) {
	run(func(_ io.Reader, stdout io.Writer) error {
		return runDiff(argv, isTerminal(os.Stdout), stdout)
	})
}

func runDiff(argv []string, render bool, stdout io.Writer) error {
	a, err := parseArgs(argv)
	if err != nil {
		return err
	}
	if len(a.positional) != 2 {
		return fmt.Errorf("usage: wordcraft diff <old> <new> [--markdown]")
	}

	mode := diff.ModeProse
	if a.switches["markdown"] {
		mode = diff.ModeMarkdown
	}

	unified, err := diff.Generate(a.positional[0], a.positional[1], mode)
	if err != nil {
		return err
	}
	if unified == "" {
		fmt.Fprintln(stdout, styles.SuccessStyle.Render(fmt.Sprintf("✓ No %s changes", mode)))
		return nil
	}

	if render {
		unified = diff.Render(unified)
	}
	_, err = io.WriteString(stdout, unified)
	return err
}

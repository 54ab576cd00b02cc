package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gerunddev/wordcraft/internal/config"
	"github.com/gerunddev/wordcraft/internal/styles"
)

func configHint() string {
	return config.ConfigPath()
}

// Config shows the effective configuration, or writes the defaults with "init"
func Config(argv []string) {
	run(func(_ io.Reader, stdout io.Writer) error {
		return runConfig(argv, stdout)
	})
}

func runConfig(argv []string, stdout io.Writer) error {
	a, err := parseArgs(argv)
	if err != nil {
		return err
	}

	switch {
	case len(a.positional) == 0:
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		printConfig(cfg, stdout)
		return nil

	case len(a.positional) == 1 && a.positional[0] == "init":
		path := config.ConfigPath()
		if _, err := os.Stat(path); err == nil && !a.switches["force"] {
			return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
		}
		if err := config.DefaultConfig().Save(); err != nil {
			return err
		}
		fmt.Fprintln(stdout, styles.SuccessStyle.Render("✓ Wrote default config to "+path))
		return nil

	default:
		return fmt.Errorf("usage: wordcraft config [init [--force]]")
	}
}

func printConfig(cfg *config.Config, w io.Writer) {
	label := styles.DimStyle.Render

	goal := "none"
	if !cfg.Goal.IsZero() {
		goal = fmt.Sprintf("%d words (%s)", cfg.Goal.Target, cfg.Goal.Type)
	}
	exclude := "none"
	if len(cfg.ExcludePatterns) > 0 {
		exclude = strings.Join(cfg.ExcludePatterns, ", ")
	}

	fmt.Fprintln(w, styles.TitleStyle.Render("wordcraft configuration"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s %s\n", label("Config file:"), config.ConfigPath())
	fmt.Fprintf(w, "  %s  %s\n", label("State file:"), config.StateFilePath())
	fmt.Fprintf(w, "  %s    %s (%s)\n", label("Log file:"), cfg.LogFile, cfg.LogLevel)
	fmt.Fprintf(w, "  %s    %v\n", label("Interval:"), cfg.Interval)
	fmt.Fprintf(w, "  %s        %s\n", label("Goal:"), goal)
	fmt.Fprintf(w, "  %s  %s\n", label("Extensions:"), strings.Join(cfg.Extensions, ", "))
	fmt.Fprintf(w, "  %s     %s\n", label("Exclude:"), exclude)
}

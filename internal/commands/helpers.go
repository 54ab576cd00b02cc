package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/gerunddev/wordcraft/internal/config"
	"github.com/gerunddev/wordcraft/internal/document"
	"github.com/gerunddev/wordcraft/internal/logger"
	"github.com/gerunddev/wordcraft/internal/styles"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var numbers = message.NewPrinter(language.English)

// formatWords formats a word count with thousands separators
func formatWords(n int) string {
	return numbers.Sprintf("%d", n)
}

// fail prints err in the error style and exits with status 1
func fail(err error) {
	fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ Error: "+err.Error()))
	os.Exit(1)
}

// run executes a command body against the process streams, exiting on error
func run(fn func(stdin io.Reader, stdout io.Writer) error) {
	if err := fn(os.Stdin, os.Stdout); err != nil {
		fail(err)
	}
}

// args holds the result of parsing a subcommand's arguments
type args struct {
	positional []string
	values     map[string]string
	switches   map[string]bool
}

// parseArgs splits args into positionals, "--name value" flags named in
// valueFlags and boolean "--name" switches. "--name=value" is also accepted.
func parseArgs(raw []string, valueFlags ...string) (args, error) {
	a := args{values: map[string]string{}, switches: map[string]bool{}}
	takesValue := map[string]bool{}
	for _, f := range valueFlags {
		takesValue[f] = true
	}

	for i := 0; i < len(raw); i++ {
		arg := raw[i]
		if arg == "-" || !strings.HasPrefix(arg, "--") {
			a.positional = append(a.positional, arg)
			continue
		}

		name := strings.TrimPrefix(arg, "--")
		if eq := strings.IndexByte(name, '='); eq != -1 {
			a.values[name[:eq]] = name[eq+1:]
			continue
		}
		if takesValue[name] {
			if i+1 >= len(raw) {
				return args{}, fmt.Errorf("flag --%s needs a value", name)
			}
			a.values[name] = raw[i+1]
			i++
			continue
		}
		a.switches[name] = true
	}
	return a, nil
}

// readDocument loads path, or stdin when path is "-"
func readDocument(path string, stdin io.Reader) (*document.Document, error) {
	if path != "-" {
		return document.Load(path)
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	doc := document.Parse(string(data))
	doc.Path = "-"
	return doc, nil
}

// oneFile returns the single positional argument of a command
func oneFile(a args, usage string) (string, error) {
	if len(a.positional) != 1 {
		return "", fmt.Errorf("usage: %s", usage)
	}
	return a.positional[0], nil
}

// loadConfig loads the configuration and a logger writing to its log file
func loadConfig() (*config.Config, *logger.Logger, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, cleanup := openLog(cfg, os.Stderr)
	log.ConfigLoaded(config.ConfigPath(), cfg.Interval, cfg.Goal.Target)
	return cfg, log, cleanup, nil
}

// openLog opens the configured log file. When it cannot be opened a warning
// goes to stderr and logging is switched off.
func openLog(cfg *config.Config, stderr io.Writer) (*logger.Logger, func()) {
	if cfg.LogFile == "" {
		return logger.Discard(), func() {}
	}
	l, cleanup, err := logger.NewFileLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, styles.WarningStyle.Render("! Logging disabled: "+err.Error()))
		return logger.Discard(), func() {}
	}
	return l, cleanup
}

// isTerminal reports whether f is attached to a terminal
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// newTable creates a table in the shared look, right-aligning numeric columns
func newTable(headers []string, numeric ...int) *table.Table {
	right := map[int]bool{}
	for _, c := range numeric {
		right[c] = true
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(styles.Border))).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return s.Inherit(styles.HeaderStyle)
			}
			if right[col] {
				s = s.Align(lipgloss.Right)
			}
			return s
		})
}

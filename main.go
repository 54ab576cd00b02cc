package main

import (
	"fmt"
	"os"

	"github.com/gerunddev/wordcraft/internal/commands"
	"github.com/gerunddev/wordcraft/internal/config"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "count", "wc":
		commands.Count(args)
	case "plain":
		commands.Plain(args)
	case "strip":
		commands.Strip(args)
	case "annotations", "notes":
		commands.Annotations(args)
	case "stats", "outline":
		commands.Stats(args)
	case "goal":
		commands.Goal(args)
	case "scan":
		commands.Scan(args)
	case "diff":
		commands.Diff(args)
	case "watch":
		commands.Watch(args)
	case "config":
		commands.Config(args)
	case "version", "-v", "--version":
		fmt.Printf("wordcraft v%s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	usage := fmt.Sprintf(`wordcraft - Word counts and writing goals for markdown manuscripts

Usage:
  wordcraft <command> [options]

Commands:
  count        Count words in files (or stdin)
  plain        Print a file as the plain prose that gets counted
  strip        Print a file with annotation comments removed
  annotations  List annotation comments (--type task|comment|reference|break)
  stats        Section statistics (--no-tui for a plain table)
  goal         Progress toward the file's word goal
  scan         Count every manuscript file under a directory (--match to filter)
  diff         Prose diff between two drafts (--markdown for raw markup)
  watch        Live word count dashboard for one file
  config       Show configuration (config init writes the defaults)
  version      Show version information
  help         Show this help message

Examples:
  wordcraft count chapter-*.md
  cat draft.md | wordcraft count
  wordcraft annotations draft.md --type task
  wordcraft stats draft.md
  wordcraft scan ~/novel
  wordcraft diff draft-v1.md draft-v2.md
  wordcraft watch draft.md --interval 5s

Configuration:
  Config file: %s
  State file:  %s
`, config.ConfigPath(), config.StateFilePath())
	fmt.Print(usage)
}

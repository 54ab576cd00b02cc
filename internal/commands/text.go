package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/gerunddev/wordcraft/internal/plaintext"
	"github.com/gerunddev/wordcraft/internal/styles"
)

// Count prints the word count of each file and the total
func Count(argv []string) {
	run(func(stdin io.Reader, stdout io.Writer) error {
		return runCount(argv, stdin, stdout)
	})
}

func runCount(argv []string, stdin io.Reader, stdout io.Writer) error {
	a, err := parseArgs(argv)
	if err != nil {
		return err
	}

	paths := a.positional
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	if len(paths) == 1 && paths[0] == "-" {
		doc, err := readDocument("-", stdin)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, doc.Words())
		return nil
	}

	total := 0
	t := newTable([]string{"File", "Words"}, 1)
	for _, path := range paths {
		doc, err := readDocument(path, stdin)
		if err != nil {
			return err
		}
		words := doc.Words()
		total += words
		t.Row(path, formatWords(words))
	}
	if len(paths) > 1 {
		t.Row(styles.HighlightStyle.Render("total"), styles.HighlightStyle.Render(formatWords(total)))
	}
	fmt.Fprintln(stdout, t.Render())
	return nil
}

// Plain prints the plain text of a file, as it is counted
func Plain(argv []string) {
	run(func(stdin io.Reader, stdout io.Writer) error {
		return runPlain(argv, stdin, stdout)
	})
}

func runPlain(argv []string, stdin io.Reader, stdout io.Writer) error {
	a, err := parseArgs(argv)
	if err != nil {
		return err
	}
	path, err := oneFile(a, "wordcraft plain <file|->")
	if err != nil {
		return err
	}
	doc, err := readDocument(path, stdin)
	if err != nil {
		return err
	}
	_, err = io.WriteString(stdout, doc.Plain())
	return err
}

// Strip prints a file with its annotations removed and all other markdown kept
func Strip(argv []string) {
	run(func(stdin io.Reader, stdout io.Writer) error {
		return runStrip(argv, stdin, stdout)
	})
}

func runStrip(argv []string, stdin io.Reader, stdout io.Writer) error {
	a, err := parseArgs(argv)
	if err != nil {
		return err
	}
	path, err := oneFile(a, "wordcraft strip <file|->")
	if err != nil {
		return err
	}

	var content []byte
	if path == "-" {
		content, err = io.ReadAll(stdin)
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	_, err = io.WriteString(stdout, plaintext.StripAnnotations(string(content)))
	return err
}

// Annotations lists the annotation blocks of a file
func Annotations(argv []string) {
	run(func(stdin io.Reader, stdout io.Writer) error {
		return runAnnotations(argv, stdin, stdout)
	})
}

func runAnnotations(argv []string, stdin io.Reader, stdout io.Writer) error {
	a, err := parseArgs(argv, "type")
	if err != nil {
		return err
	}
	path, err := oneFile(a, "wordcraft annotations <file|-> [--type tag]")
	if err != nil {
		return err
	}
	doc, err := readDocument(path, stdin)
	if err != nil {
		return err
	}

	list := doc.Annotations()
	if tag, ok := a.values["type"]; ok {
		list = plaintext.FilterAnnotations(list, tag)
	}
	if len(list) == 0 {
		fmt.Fprintln(stdout, styles.DimStyle.Render("No annotations"))
		return nil
	}

	t := newTable([]string{"Line", "Type", "Text"}, 0)
	for _, ann := range list {
		t.Row(strconv.Itoa(ann.Line), styles.TagStyle.Render(ann.Type), ann.Payload)
	}
	fmt.Fprintln(stdout, t.Render())
	fmt.Fprintln(stdout, styles.DimStyle.Render(fmt.Sprintf("%d annotation(s)", len(list))))
	return nil
}

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/AeonDave/goprimer/internal"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches on the parsed flags and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)

	config, err := parseFlags(args, stderr)
	if err != nil {
		logger.Printf("Error: %v", err)
		return 1
	}

	if config.Help {
		showHelp(stdout)
		return 0
	}

	if config.Version {
		fmt.Fprintf(stdout, "goprimer version %s\n", internal.Version)
		return 0
	}

	if config.List {
		if err := internal.WriteCatalog(stdout, config.Format); err != nil {
			logger.Printf("Error: %v", err)
			return 1
		}
		return 0
	}

	if config.Verbose {
		log.SetOutput(stderr)
		log.SetFlags(0)
		log.Printf("%srunning demos (only=%q)", internal.LogPrefix, config.Only)
	}

	if err := internal.Run(stdout, config); err != nil {
		logger.Printf("Error: %v", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, output io.Writer) (*internal.Config, error) {
	config := &internal.Config{}

	fs := flag.NewFlagSet("goprimer", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {}
	fs.StringVar(&config.Only, "only", "", "Run a single demo by name")
	fs.BoolVar(&config.List, "list", false, "List the demos instead of running them")
	fs.StringVar(&config.Format, "format", internal.FormatText, "Catalog format: text or yaml")
	fs.BoolVar(&config.Verbose, "verbose", false, "Log each demo to stderr before it runs")
	fs.BoolVar(&config.Help, "help", false, "Show help")
	fs.BoolVar(&config.Help, "h", false, "Show help (shorthand)")
	fs.BoolVar(&config.Version, "version", false, "Show version")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	return config, nil
}

func showHelp(w io.Writer) {
	const boxInnerWidth = 79

	center := func(s string, width int) string {
		r := []rune(s)
		if len(r) >= width {
			return string(r[:width])
		}
		pad := width - len(r)
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	}

	title := "GOPRIMER v" + internal.Version
	header := "╔" + strings.Repeat("═", boxInnerWidth) + "╗\n" +
		"║" + center(title, boxInnerWidth) + "║\n" +
		"║" + center("Variables, Constants and Numeric Types in Go", boxInnerWidth) + "║\n" +
		"╚" + strings.Repeat("═", boxInnerWidth) + "╝\n"

	body := `

  Print small examples of declarations, shadowing, mutation and numeric ranges.

USAGE
	goprimer                   Run every demo in order
	goprimer -only=<name>      Run a single demo
	goprimer -list             List the demos

OPTIONS
	-only <name>      Run only the named demo (see -list)
	-list             List the demos instead of running them
	-format <f>       Format for -list: text (default) or yaml
	-verbose          Log each demo to stderr before it runs
	-help             Show this help
	-version          Show version

`

	// Leading tabs become spaces so the output lines up in any terminal.
	body = strings.NewReplacer(
		"\n\t\t", "\n    ",
		"\n\t", "\n  ",
	).Replace(body)

	fmt.Fprint(w, "\n"+header+body)
}

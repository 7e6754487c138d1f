package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shibukawa/treegram"
	"github.com/shibukawa/treegram/formatter"
)

// Error definitions
var (
	ErrNoInput            = errors.New("no input text: pass INPUT, use --input-file, or pipe stdin")
	ErrNoStartProduction  = errors.New("no start production: the grammar defines none and --start was not given")
	ErrInputFileAndInline = errors.New("INPUT and --input-file are mutually exclusive")
)

// ParseCmd parses input text with a grammar and prints the resulting trees.
type ParseCmd struct {
	GrammarFile string `arg:"" help:"Grammar file (.tg or .md)" type:"path"`
	Input       string `arg:"" optional:"" help:"Input text to parse"`
	InputFile   string `short:"i" long:"input-file" help:"Read input from a file" type:"path"`
	Start       string `short:"s" long:"start" help:"Start production (defaults to config, then the grammar's first production)"`
	Format      string `short:"f" long:"format" help:"Output format (tree, json, yaml, xml)"`
	All         bool   `long:"all" help:"Print every parse result instead of only the first"`
	Limit       int    `long:"limit" help:"Maximum number of results to print with --all" default:"0"`
	Partial     bool   `long:"partial" help:"Accept results that leave trailing input unconsumed"`
	Output      string `short:"o" long:"output" help:"Output file (defaults to stdout)" type:"path"`
}

// Run executes the parse command.
func (cmd *ParseCmd) Run(ctx *Context) error {
	config, err := LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	g, start, err := loadGrammar(cmd.GrammarFile)
	if err != nil {
		return err
	}

	if config.Start != "" {
		start = config.Start
	}

	if cmd.Start != "" {
		start = cmd.Start
	}

	if start == "" {
		return ErrNoStartProduction
	}

	format := config.Format
	if cmd.Format != "" {
		format = cmd.Format
	}

	input, err := cmd.readInput()
	if err != nil {
		return err
	}

	results, err := g.Parse(start, input)
	if err != nil {
		return err
	}

	out, closeOut, err := cmd.openOutput()
	if err != nil {
		return err
	}
	defer closeOut()

	count := 0

	// Results are pulled lazily, so with a limit the remaining ambiguity is
	// never evaluated.
	for r, rest := range results {
		if !cmd.Partial && rest != "" {
			continue
		}

		if count > 0 {
			fmt.Fprintln(out)
		}

		if err := cmd.write(out, r, format); err != nil {
			return err
		}

		if cmd.Partial && rest != "" && ctx.Verbose {
			fmt.Fprintf(os.Stderr, "remaining input: %q\n", rest)
		}

		count++

		if !cmd.All || (cmd.Limit > 0 && count >= cmd.Limit) {
			break
		}
	}

	if count == 0 {
		return fmt.Errorf("%w: production %q", treegram.ErrNoMatch, start)
	}

	if ctx.Verbose {
		fmt.Fprintf(os.Stderr, "%d result(s)\n", count)
	}

	return nil
}

func (cmd *ParseCmd) readInput() (string, error) {
	if cmd.InputFile != "" {
		if cmd.Input != "" {
			return "", ErrInputFileAndInline
		}

		data, err := os.ReadFile(cmd.InputFile)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}

		return string(data), nil
	}

	if cmd.Input != "" {
		return cmd.Input, nil
	}

	// Fall back to stdin when it is piped.
	stat, err := os.Stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}

		return string(data), nil
	}

	return "", ErrNoInput
}

func (cmd *ParseCmd) openOutput() (io.Writer, func(), error) {
	if cmd.Output == "" {
		return os.Stdout, func() {}, nil
	}

	f, err := os.Create(cmd.Output)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return f, func() { f.Close() }, nil
}

func (cmd *ParseCmd) write(out io.Writer, r treegram.Result, format string) error {
	// Colorized outlines only make sense on a terminal; the color package
	// disables itself when stdout is not one.
	if format == "tree" && cmd.Output == "" {
		formatter.WriteColorTree(out, r)

		return nil
	}

	s, err := formatter.Render(r, format)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, s)

	return nil
}

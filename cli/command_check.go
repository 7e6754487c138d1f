package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// CheckCmd validates a grammar file.
type CheckCmd struct {
	GrammarFile string `arg:"" help:"Grammar file (.tg or .md)" type:"path"`
}

// Run executes the check command.
func (cmd *CheckCmd) Run(ctx *Context) error {
	g, start, err := loadGrammar(cmd.GrammarFile)
	if err != nil {
		return fmt.Errorf("grammar check failed: %w", err)
	}

	if ctx.Quiet {
		return nil
	}

	color.New(color.FgGreen).Printf("OK: %s\n", cmd.GrammarFile)
	fmt.Printf("start production: %s\n", start)

	if ctx.Verbose {
		fmt.Printf("productions: %s\n", strings.Join(g.Productions(), ", "))
	}

	return nil
}

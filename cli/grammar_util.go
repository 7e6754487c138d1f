package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shibukawa/treegram"
	"github.com/shibukawa/treegram/grammardef"
	"github.com/shibukawa/treegram/mdgrammar"
)

// loadGrammar reads a grammar file and returns the prepared grammar and its
// start production. Markdown documents go through mdgrammar; anything else
// is a plain grammar description.
func loadGrammar(path string) (*treegram.Grammar, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read grammar file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".md") {
		doc, err := mdgrammar.Parse(bytes.NewReader(data))
		if err != nil {
			return nil, "", err
		}

		return doc.Grammar()
	}

	g, err := grammardef.Parse(string(data))
	if err != nil {
		return nil, "", err
	}

	start := ""
	if names := g.Productions(); len(names) > 0 {
		start = names[0]
	}

	return g, start, nil
}

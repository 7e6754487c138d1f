// Package mdgrammar loads grammar definitions carried in Markdown
// documents: YAML front matter for metadata, fenced "treegram" code blocks
// holding the grammar description, and optional example inputs under an
// Examples heading.
package mdgrammar

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gparser "github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/shibukawa/treegram"
	"github.com/shibukawa/treegram/grammardef"
)

var (
	// ErrInvalidFrontMatter indicates unterminated or non-YAML front matter.
	ErrInvalidFrontMatter = errors.New("invalid front matter")
	// ErrNoGrammarBlock indicates a document without any treegram code block.
	ErrNoGrammarBlock = errors.New("no grammar code block found")
)

// Document is a grammar definition extracted from a Markdown file.
type Document struct {
	Metadata map[string]any
	Source   string   // concatenated treegram code blocks, in order
	Start    string   // start production from front matter, "" if unset
	Examples []string // fenced blocks under an Examples heading
}

// Parse reads a Markdown grammar document.
func Parse(reader io.Reader) (*Document, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	frontMatter, body, err := parseFrontMatter(string(content))
	if err != nil {
		return nil, err
	}

	md := goldmark.New(goldmark.WithParserOptions(gparser.WithAutoHeadingID()))
	doc := md.Parser().Parse(text.NewReader([]byte(body)))

	document := &Document{Metadata: frontMatter}
	if start, ok := frontMatter["start"].(string); ok {
		document.Start = start
	}

	var (
		blocks     []string
		inExamples bool
	)

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			inExamples = strings.EqualFold(headingText(node, []byte(body)), "examples")
		case *ast.FencedCodeBlock:
			lang := string(node.Language([]byte(body)))
			block := blockText(node, []byte(body))

			switch {
			case lang == "treegram":
				blocks = append(blocks, block)
			case inExamples:
				document.Examples = append(document.Examples, strings.TrimSuffix(block, "\n"))
			}
		}

		return ast.WalkContinue, nil
	})

	if len(blocks) == 0 {
		return nil, ErrNoGrammarBlock
	}

	document.Source = strings.Join(blocks, "\n")

	return document, nil
}

// Grammar builds the prepared grammar from the document's source and
// resolves the start production: the front matter's "start" key, or the
// first production defined in the source.
func (d *Document) Grammar() (*treegram.Grammar, string, error) {
	g, err := grammardef.Parse(d.Source)
	if err != nil {
		return nil, "", err
	}

	start := d.Start
	if start == "" {
		names := g.Productions()
		if len(names) > 0 {
			start = names[0]
		}
	}

	return g, start, nil
}

// parseFrontMatter splits optional YAML front matter off the content.
func parseFrontMatter(content string) (map[string]any, string, error) {
	if !strings.HasPrefix(content, "---\n") {
		return map[string]any{}, content, nil
	}

	end := strings.Index(content[4:], "\n---")
	if end == -1 {
		return nil, "", ErrInvalidFrontMatter
	}

	end += 4

	var frontMatter map[string]any
	if err := yaml.Unmarshal([]byte(content[4:end]), &frontMatter); err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrInvalidFrontMatter, err)
	}

	if frontMatter == nil {
		frontMatter = map[string]any{}
	}

	return frontMatter, content[end+4:], nil
}

func headingText(node *ast.Heading, source []byte) string {
	var sb strings.Builder

	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			sb.Write(t.Segment.Value(source))
		}
	}

	return sb.String()
}

func blockText(node *ast.FencedCodeBlock, source []byte) string {
	var sb strings.Builder

	lines := node.Lines()
	for i := range lines.Len() {
		line := lines.At(i)
		sb.Write(line.Value(source))
	}

	return sb.String()
}

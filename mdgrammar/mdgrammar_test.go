package mdgrammar

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/shibukawa/treegram"
)

const sampleDoc = `---
title: Integer arrays
start: array
---

# Integer arrays

Nested arrays of integers.

## Grammar

` + "```treegram" + `
ws    = /\s*/ ;
item  = -ws ( /[0-9]+/ | array ) -ws ;
array = -ws "[" ~item* "]" -ws ;
` + "```" + `

## Examples

` + "```" + `
[1 [5 7] 7]
` + "```" + `

` + "```" + `
[]
` + "```" + `
`

func TestParseDocument(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleDoc))
	assert.NoError(t, err)

	assert.Equal(t, "Integer arrays", doc.Metadata["title"].(string))
	assert.Equal(t, "array", doc.Start)
	assert.True(t, strings.Contains(doc.Source, `array = -ws "[" ~item* "]" -ws ;`))
	assert.Equal(t, []string{"[1 [5 7] 7]", "[]"}, doc.Examples)
}

func TestDocumentGrammarParsesExamples(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleDoc))
	assert.NoError(t, err)

	g, start, err := doc.Grammar()
	assert.NoError(t, err)
	assert.Equal(t, "array", start)

	p, ok := g.Production(start)
	assert.True(t, ok)

	for _, example := range doc.Examples {
		_, err := treegram.ParseComplete(p, example)
		assert.NoError(t, err, "example %q should parse", example)
	}
}

func TestStartDefaultsToFirstProduction(t *testing.T) {
	doc := &Document{Source: "num = /[0-9]+/ ;"}

	_, start, err := doc.Grammar()
	assert.NoError(t, err)
	assert.Equal(t, "num", start)
}

func TestNoFrontMatter(t *testing.T) {
	src := "# Title\n\n```treegram\nnum = /[0-9]+/ ;\n```\n"

	doc, err := Parse(strings.NewReader(src))
	assert.NoError(t, err)
	assert.Equal(t, "", doc.Start)
	assert.True(t, strings.Contains(doc.Source, "num"))
}

func TestMissingGrammarBlock(t *testing.T) {
	_, err := Parse(strings.NewReader("# Nothing here\n"))
	assert.IsError(t, err, ErrNoGrammarBlock)
}

func TestUnterminatedFrontMatter(t *testing.T) {
	_, err := Parse(strings.NewReader("---\ntitle: x\n"))
	assert.IsError(t, err, ErrInvalidFrontMatter)
}

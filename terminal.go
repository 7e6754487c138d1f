package treegram

import (
	"fmt"
	"iter"
	"regexp"
	"strings"
)

// Literal matches a fixed string at the start of the input. Literal matches
// are structurally redundant (the grammar implies their value), so the
// preparation pass discards them unless the flag is overridden.
type Literal struct {
	node
	text string
}

// NewLiteral returns a terminal node matching exactly text.
func NewLiteral(text string) *Literal {
	return &Literal{text: text}
}

// Text returns the string the node matches.
func (l *Literal) Text() string { return l.text }

func (l *Literal) parse(text string) iter.Seq2[Result, string] {
	return func(yield func(Result, string) bool) {
		if strings.HasPrefix(text, l.text) {
			yield(l.build([]Result{Text(l.text)}), text[len(l.text):])
		}
	}
}

func (l *Literal) prepare() {
	l.resolveFlags(true)
}

func (l *Literal) clone() Node {
	return NewLiteral(l.text)
}

// Pattern matches a regular expression anchored at the start of the input.
// Only the first anchored match is used, so a Pattern is never ambiguous on
// its own; greediness follows the regexp engine's rules.
type Pattern struct {
	node
	source string
	re     *regexp.Regexp
}

// NewPattern compiles source into an anchored terminal node.
func NewPattern(source string) (*Pattern, error) {
	re, err := regexp.Compile("^(?:" + source + ")")
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrPatternSyntax, source, err)
	}

	return &Pattern{source: source, re: re}, nil
}

// Source returns the pattern source text.
func (p *Pattern) Source() string { return p.source }

func (p *Pattern) parse(text string) iter.Seq2[Result, string] {
	return func(yield func(Result, string) bool) {
		loc := p.re.FindStringIndex(text)
		if loc == nil {
			return
		}

		yield(p.build([]Result{Text(text[:loc[1]])}), text[loc[1]:])
	}
}

func (p *Pattern) prepare() {
	p.resolveFlags(false)
}

func (p *Pattern) clone() Node {
	return &Pattern{source: p.source, re: p.re}
}

/*
Package grammardef converts a textual grammar description into a prepared
treegram.Grammar. The description language is EBNF-flavored; its
self-definition is:

	grammar      = production+ ;
	production   = name "=" alternatives ";" ;
	alternatives = sequence ( "|" sequence )* ;
	sequence     = term+ ;
	term         = sigil? factor quantifier? ;
	factor       = literal | regex | reference | group ;
	literal      = string ;
	regex        = slash-delimited regular expression ;
	reference    = name ;
	group        = "(" alternatives ")" ;
	quantifier   = "*" | "+" | "?" | "{" number ( "," number? )? "}" ;
	sigil        = "-" | "^" | "~" ;

Tokens may be separated by whitespace and # line comments. String literals
use single or double quotes with backslash escapes; regular expressions are
written /like this/ with \/ escaping a slash. Production names need at least
two characters (single-character names are reserved by the registry) and may
contain letters, digits, underscores and hyphens.

The sigils override a node's tree-building flags: "-" discards the match,
"^" keeps it (undoing the default discarding of string literals), and "~"
splices the node's children into its parent instead of nesting a subtree.
Quantifiers build bounded repetitions; "{2,}" means two or more.

A sigil on a reference copies the production node to carry the override, so
it snapshots the alternatives defined up to that point in the description.
Plain references stay live through the registry and may point forward;
sigiled references should only name productions defined above them.

The language is bootstrapped: its own grammar is built from the treegram
combinators and parsed by the engine itself, and the resulting tree is
walked into the caller's grammar.
*/
package grammardef

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shibukawa/treegram"
)

// ErrSyntax is returned when the description does not match the definition
// language. The engine reports rejection, not causes, so no position detail
// is attached beyond a snippet of the offending source.
var ErrSyntax = errors.New("grammar syntax error")

// Parse builds and prepares a grammar from a textual description. The first
// production defined in the text is the conventional start production
// (Productions()[0] on the result).
func Parse(src string) (*treegram.Grammar, error) {
	start, ok := meta.Production("grammar")
	if !ok {
		panic("grammardef: meta grammar is missing its start production")
	}

	doc, err := treegram.ParseComplete(start, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSyntax, snippet(src))
	}

	return build(doc.(*treegram.Tree))
}

func snippet(src string) string {
	src = strings.TrimSpace(src)
	if len(src) > 40 {
		return src[:40] + "..."
	}

	return src
}

func build(doc *treegram.Tree) (*treegram.Grammar, error) {
	g := treegram.New()

	for _, c := range doc.Children {
		p := c.(*treegram.Tree)
		name := string(p.Children[0].(treegram.Text))
		alts := p.Children[1].(*treegram.Tree)

		for _, alt := range alts.Children {
			n, err := buildSequence(g, alt.(*treegram.Tree))
			if err != nil {
				return nil, err
			}

			if err := g.Define(name, n); err != nil {
				return nil, err
			}
		}
	}

	g.Prepare()

	return g, nil
}

func buildSequence(g *treegram.Grammar, seq *treegram.Tree) (treegram.Node, error) {
	terms := make([]treegram.Node, 0, len(seq.Children))

	for _, c := range seq.Children {
		n, err := buildTerm(g, c.(*treegram.Tree))
		if err != nil {
			return nil, err
		}

		terms = append(terms, n)
	}

	if len(terms) == 1 {
		return terms[0], nil
	}

	return treegram.NewSequence(terms...)
}

func buildTerm(g *treegram.Grammar, term *treegram.Tree) (treegram.Node, error) {
	children := term.Children

	sigil := ""
	if s, ok := children[0].(treegram.Text); ok {
		sigil = string(s)
		children = children[1:]
	}

	n, err := buildFactor(g, children[0].(*treegram.Tree))
	if err != nil {
		return nil, err
	}

	// The sigil binds to the factor, so a quantified term repeats the
	// already-overridden node.
	switch sigil {
	case "-":
		n = treegram.Discard(n)
	case "^":
		n = treegram.Keep(n)
	case "~":
		n = treegram.Inline(n)
	}

	if len(children) == 2 {
		n, err = applyQuantifier(n, children[1].(*treegram.Tree))
		if err != nil {
			return nil, err
		}
	}

	return n, nil
}

func buildFactor(g *treegram.Grammar, factor *treegram.Tree) (treegram.Node, error) {
	switch factor.Name {
	case "literal":
		return treegram.NewLiteral(unquote(string(factor.Children[0].(treegram.Text)))), nil
	case "regex":
		src := string(factor.Children[0].(treegram.Text))
		src = strings.ReplaceAll(src[1:len(src)-1], `\/`, "/")

		return treegram.NewPattern(src)
	case "reference":
		return g.Reference(string(factor.Children[0].(treegram.Text)))
	case "group":
		return buildAlternatives(g, factor.Children[0].(*treegram.Tree))
	default:
		panic("grammardef: unexpected factor " + factor.Name)
	}
}

func buildAlternatives(g *treegram.Grammar, alts *treegram.Tree) (treegram.Node, error) {
	if len(alts.Children) == 1 {
		return buildSequence(g, alts.Children[0].(*treegram.Tree))
	}

	nodes := make([]treegram.Node, 0, len(alts.Children))

	for _, c := range alts.Children {
		n, err := buildSequence(g, c.(*treegram.Tree))
		if err != nil {
			return nil, err
		}

		nodes = append(nodes, n)
	}

	return treegram.NewChoice(nodes...), nil
}

func applyQuantifier(n treegram.Node, q *treegram.Tree) (treegram.Node, error) {
	head := string(q.Children[0].(treegram.Text))

	switch head {
	case "*":
		return treegram.NewRepetition(n, 0, treegram.Unbounded)
	case "+":
		return treegram.NewRepetition(n, 1, treegram.Unbounded)
	case "?":
		return treegram.NewRepetition(n, 0, 1)
	}

	min, err := strconv.Atoi(head)
	if err != nil {
		return nil, fmt.Errorf("%w: bad repetition count %q", ErrSyntax, head)
	}

	switch len(q.Children) {
	case 1: // {n}
		return treegram.NewRepetition(n, min, min)
	case 2: // {n,}
		return treegram.NewRepetition(n, min, treegram.Unbounded)
	default: // {m,n}
		max, err := strconv.Atoi(string(q.Children[2].(treegram.Text)))
		if err != nil {
			return nil, fmt.Errorf("%w: bad repetition count", ErrSyntax)
		}

		return treegram.NewRepetition(n, min, max)
	}
}

// unquote strips the delimiters from a string literal and resolves
// backslash escapes. \n and \t become control characters; any other escaped
// character stands for itself.
func unquote(s string) string {
	s = s[1 : len(s)-1]

	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			sb.WriteByte(s[i])
			continue
		}

		i++
		switch s[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		default:
			sb.WriteByte(s[i])
		}
	}

	return sb.String()
}

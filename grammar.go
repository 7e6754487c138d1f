package treegram

import (
	"fmt"
	"iter"
	"strings"
)

// Grammar is the named production registry: a mapping from production names
// to Choice nodes. Looking up a name that is not yet defined returns a
// fresh, empty Choice that later definitions append to, and every lookup of
// a name returns the same instance, so forward and recursive references
// resolve without a second construction pass.
//
// A Grammar is built single-threaded, finalized once with Prepare, and
// immutable afterwards.
type Grammar struct {
	productions map[string]*Choice
	order       []string
	prepared    bool
}

// New returns an empty production registry.
func New() *Grammar {
	return &Grammar{productions: map[string]*Choice{}}
}

// Define appends alternative to the production named name, creating the
// production if absent. Defining is rejected after Prepare.
func (g *Grammar) Define(name string, alternative Node) error {
	if g.prepared {
		return fmt.Errorf("%w: cannot define %q", ErrAlreadyPrepared, name)
	}

	p, err := g.Reference(name)
	if err != nil {
		return err
	}

	p.add(alternative)

	return nil
}

// Reference returns the Choice node for name, creating an empty placeholder
// if the production is not yet defined. The returned node is stable: later
// Define calls for the same name append to it, which is how recursive
// grammars are expressed.
func (g *Grammar) Reference(name string) (*Choice, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}

	p, ok := g.productions[name]
	if !ok {
		p = NewChoice()
		p.setName(name)
		g.productions[name] = p
		g.order = append(g.order, name)
	}

	return p, nil
}

// Production returns the named production, or false when it was never
// defined nor referenced.
func (g *Grammar) Production(name string) (*Choice, bool) {
	p, ok := g.productions[name]

	return p, ok
}

// Productions returns the production names in definition order.
func (g *Grammar) Productions() []string {
	return g.order
}

// Prepare finalizes every production's node graph. Idempotent; after the
// first call the grammar is immutable and safe for concurrent parses.
func (g *Grammar) Prepare() {
	if g.prepared {
		return
	}

	for _, name := range g.order {
		g.productions[name].prepare()
	}

	g.prepared = true
}

// Parse parses input against the named production. The grammar must have
// been prepared.
func (g *Grammar) Parse(name, input string) (iter.Seq2[Result, string], error) {
	p, ok := g.productions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProduction, name)
	}

	return Parse(p, input)
}

// checkName rejects names the registry reserves: single characters (the
// combinator shorthand namespace) and dunder names.
func checkName(name string) error {
	if len(name) <= 1 {
		return fmt.Errorf("%w: %q", ErrReservedName, name)
	}

	if strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__") {
		return fmt.Errorf("%w: %q", ErrSpecialName, name)
	}

	return nil
}

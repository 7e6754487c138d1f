package treegram

import "iter"

// Node is a grammar node: a terminal matcher (Literal, Pattern) or a
// combinator over other nodes (Choice, Sequence, Repetition). Nodes may be
// shared by multiple parents; recursive grammars form cycles through the
// production registry. After preparation a node is immutable, so any number
// of parses over the same graph may run independently.
type Node interface {
	// Name returns the production name the node is bound to, or "" for an
	// anonymous node.
	Name() string

	// parse lazily enumerates every (result, remaining text) pair for the
	// node against text. Callers go through Parse, which checks preparation.
	parse(text string) iter.Seq2[Result, string]

	// prepare resolves the discard/inline flags and descends into sub-nodes,
	// exactly once per node.
	prepare()

	// clone returns a node of the same shape with unset flags and no name,
	// sharing the sub-node references.
	clone() Node

	common() *node
}

// node is the state shared by every node variant. The discard and inline
// flags are tri-state: nil means unset, resolved to a concrete default by
// the preparation pass.
type node struct {
	name     string
	discard  *bool
	inline   *bool
	prepared bool
}

func (n *node) Name() string { return n.name }

func (n *node) common() *node { return n }

func (n *node) setName(name string) { n.name = name }

func (n *node) setDiscard(v bool) { n.discard = &v }

func (n *node) setInline(v bool) { n.inline = &v }

// resolveFlags resolves unset flags to their defaults and marks the node
// prepared. Returns false when the node was already prepared, which stops
// the caller from descending again; this is what makes preparation terminate
// on cyclic graphs.
func (n *node) resolveFlags(defaultDiscard bool) bool {
	if n.prepared {
		return false
	}

	if n.discard == nil {
		d := defaultDiscard
		n.discard = &d
	}

	if n.inline == nil {
		i := n.name == ""
		n.inline = &i
	}

	n.prepared = true

	return true
}

// build turns a node's raw sub-results into its contribution to the parent:
// the Discarded marker, a Spliced list, or a named Tree. The same rule
// applies at every node; terminals pass a single-element list holding the
// matched text.
func (n *node) build(results []Result) Result {
	if *n.discard {
		return Discarded
	}

	children := flatten(results)

	if *n.inline {
		return &Spliced{Children: children}
	}

	name := n.name
	if name == "" {
		name = "<unnamed node>"
	}

	return &Tree{Name: name, Children: children}
}

// Prepare finalizes the discard/inline flags across the whole node graph
// reachable from n. It must run before the first parse and is idempotent;
// re-preparing is a no-op even through cycles.
func Prepare(n Node) {
	n.prepare()
}

// Inline returns a copy of n whose children are spliced into the parent's
// child list instead of forming a named subtree. The copy shares n's
// sub-nodes but carries none of its flags or name.
func Inline(n Node) Node {
	c := n.clone()
	c.common().setInline(true)

	return c
}

// NoInline returns a copy of n that always wraps its children in a subtree,
// even when the node is anonymous.
func NoInline(n Node) Node {
	c := n.clone()
	c.common().setInline(false)

	return c
}

// Discard returns a copy of n whose match is dropped from the parent's
// child list.
func Discard(n Node) Node {
	c := n.clone()
	c.common().setDiscard(true)

	return c
}

// Keep returns a copy of n whose match is kept, overriding the default
// discarding of literal terminals.
func Keep(n Node) Node {
	c := n.clone()
	c.common().setDiscard(false)

	return c
}

// Named returns a copy of n bound to name, without going through a
// production registry.
func Named(name string, n Node) Node {
	c := n.clone()
	c.common().setName(name)

	return c
}

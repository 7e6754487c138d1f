package treegram

import "strings"

// Result is one parse outcome produced for a node: a raw terminal Text, a
// named *Tree, a Spliced list waiting to be merged into its parent, or the
// Discarded marker. After tree building, the children of a Tree contain only
// Text and *Tree values; Spliced and Discarded exist only in flight between
// a node and its parent.
type Result interface {
	isResult()
}

// Text is the raw substring matched by a terminal node.
type Text string

func (Text) isResult() {}

// Tree is a named parse-tree node.
type Tree struct {
	Name     string
	Children []Result
}

func (*Tree) isResult() {}

// String renders the tree as an indented outline, one name or terminal per
// line, children indented four spaces below their parent.
func (t *Tree) String() string {
	var sb strings.Builder
	t.write(&sb, "")
	return strings.TrimSuffix(sb.String(), "\n")
}

func (t *Tree) write(sb *strings.Builder, indent string) {
	sb.WriteString(indent)
	sb.WriteString(t.Name)
	sb.WriteString(":\n")
	for _, c := range t.Children {
		switch v := c.(type) {
		case Text:
			sb.WriteString(indent + "    ")
			sb.WriteString(string(v))
			sb.WriteString("\n")
		case *Tree:
			v.write(sb, indent+"    ")
		}
	}
}

// Spliced carries the children of an inlined node, to be merged element-wise
// into the parent's child list in place of the node itself.
type Spliced struct {
	Children []Result
}

func (*Spliced) isResult() {}

type discardMarker struct{}

func (discardMarker) isResult() {}

func (discardMarker) String() string { return "<discarded>" }

// Discarded is the marker produced by nodes whose match is dropped from the
// parent's child list.
var Discarded Result = discardMarker{}

// flatten merges one level of raw sub-results into a child list: Spliced
// results contribute their children element-wise, Discarded results
// contribute nothing, everything else passes through unchanged.
func flatten(results []Result) []Result {
	children := make([]Result, 0, len(results))

	for _, r := range results {
		switch v := r.(type) {
		case discardMarker:
		case *Spliced:
			children = append(children, v.Children...)
		default:
			children = append(children, r)
		}
	}

	return children
}

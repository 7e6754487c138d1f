package treegram

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestBuildDropsDiscardedChildren(t *testing.T) {
	// A named node wrapping a discarded literal and a kept pattern keeps
	// only the pattern's text.
	kv := Named("kv", Seq(Lit("key="), Pat(`\d+`)))

	matches := parseAll(t, kv, "key=42")

	assert.Equal(t, 1, len(matches))
	assert.Equal(t, []Result{Text("42")}, tree(t, matches[0].result).Children)
}

func TestBuildSplicesInlineChildren(t *testing.T) {
	// The anonymous inner sequence splices its children into the named
	// outer node instead of forming its own subtree.
	inner := Seq(Keep(Lit("a")), Keep(Lit("b")))
	outer := Named("outer", Seq(Keep(Lit("(")), inner, Keep(Lit(")"))))

	matches := parseAll(t, outer, "(ab)")

	assert.Equal(t, []Result{Text("("), Text("a"), Text("b"), Text(")")},
		tree(t, matches[0].result).Children)
}

func TestBuildNamedInnerNodeStaysNested(t *testing.T) {
	inner := Named("inner", Seq(Keep(Lit("a")), Keep(Lit("b"))))
	outer := Named("outer", Seq(inner, Keep(Lit("c"))))

	matches := parseAll(t, outer, "abc")

	children := tree(t, matches[0].result).Children
	assert.Equal(t, 2, len(children))
	in := tree(t, children[0])
	assert.Equal(t, "inner", in.Name)
	assert.Equal(t, []Result{Text("a"), Text("b")}, in.Children)
	assert.Equal(t, Text("c"), children[1].(Text))
}

func TestBuildDiscardWinsOverChildren(t *testing.T) {
	d := Discard(Seq(Keep(Lit("a")), Keep(Lit("b"))))

	matches := parseAll(t, d, "ab")

	assert.Equal(t, 1, len(matches))
	assert.Equal(t, Discarded, matches[0].result)
}

func TestUnnamedNonInlineNodeGetsPlaceholderName(t *testing.T) {
	n := NoInline(Seq(Keep(Lit("a"))))

	matches := parseAll(t, n, "a")

	assert.Equal(t, "<unnamed node>", tree(t, matches[0].result).Name)
}

func TestTreeStringIndentedOutline(t *testing.T) {
	tr := &Tree{Name: "array", Children: []Result{
		Text("1"),
		&Tree{Name: "array", Children: []Result{Text("5"), Text("7")}},
		&Tree{Name: "array", Children: nil},
	}}

	const want = `array:
    1
    array:
        5
        7
    array:`

	assert.Equal(t, want, tr.String())
}

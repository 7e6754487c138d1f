package grammardef

import "github.com/shibukawa/treegram"

// meta is the definition language's own grammar, bootstrapped from the
// combinators it exists to author.
var meta = buildMeta()

func buildMeta() *treegram.Grammar {
	g := treegram.New()

	def := func(name string, alternative treegram.Node) {
		if err := g.Define(name, alternative); err != nil {
			panic(err)
		}
	}
	ref := func(name string) treegram.Node {
		p, err := g.Reference(name)
		if err != nil {
			panic(err)
		}

		return p
	}

	ws := treegram.Discard(treegram.Pat(`(?:[ \t\r\n]+|#[^\n]*)*`))

	// tok appends trailing whitespace/comment eating to a terminal; sym is
	// tok over a discarded punctuation literal.
	tok := func(n treegram.Node) treegram.Node { return treegram.Seq(n, ws) }
	sym := func(s string) treegram.Node { return tok(treegram.Lit(s)) }

	name := treegram.Pat(`[A-Za-z_][A-Za-z0-9_-]*`)
	str := treegram.Pat(`"(?:[^"\\\n]|\\.)*"|'(?:[^'\\\n]|\\.)*'`)
	regex := treegram.Pat(`/(?:[^/\\\n]|\\.)+/`)
	number := treegram.Pat(`[0-9]+`)

	def("grammar", treegram.Seq(ws, treegram.Plus(ref("production"))))
	def("production", treegram.Seq(tok(name), sym("="), ref("alternatives"), sym(";")))
	def("alternatives", treegram.Seq(ref("sequence"),
		treegram.Star(treegram.Seq(sym("|"), ref("sequence")))))
	def("sequence", treegram.Plus(ref("term")))
	def("term", treegram.Seq(
		treegram.Opt(tok(treegram.Pat(`[-^~]`))),
		treegram.Ch(ref("literal"), ref("regex"), ref("reference"), ref("group")),
		treegram.Opt(ref("quantifier")),
	))
	def("literal", tok(str))
	def("regex", tok(regex))
	def("reference", tok(name))
	def("group", treegram.Seq(sym("("), ref("alternatives"), sym(")")))
	def("quantifier", treegram.Ch(
		tok(treegram.Pat(`[*+?]`)),
		treegram.Seq(sym("{"), tok(number),
			treegram.Opt(treegram.Seq(tok(treegram.Keep(treegram.Lit(","))), treegram.Opt(tok(number)))),
			sym("}")),
	))

	g.Prepare()

	return g
}

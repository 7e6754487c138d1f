package treegram

// Panic-on-misuse constructors for authoring grammars in code, following the
// regexp.MustCompile convention: grammar shapes are almost always static, so
// a malformed one is a programming error. Dynamic callers (grammar files,
// generated grammars) use the New* constructors and handle the error.

// Lit returns a literal terminal matching text.
func Lit(text string) *Literal {
	return NewLiteral(text)
}

// Pat returns an anchored pattern terminal. It panics if source is not a
// valid regular expression.
func Pat(source string) *Pattern {
	p, err := NewPattern(source)
	if err != nil {
		panic(err)
	}

	return p
}

// Ch returns an ordered choice over alternatives.
func Ch(alternatives ...Node) *Choice {
	return NewChoice(alternatives...)
}

// Seq returns an ordered concatenation. It panics when called with no
// elements.
func Seq(elements ...Node) *Sequence {
	s, err := NewSequence(elements...)
	if err != nil {
		panic(err)
	}

	return s
}

// Rep returns a bounded repetition of base. It panics on invalid bounds.
func Rep(base Node, min, max int) *Repetition {
	r, err := NewRepetition(base, min, max)
	if err != nil {
		panic(err)
	}

	return r
}

// Star matches base zero or more times.
func Star(base Node) *Repetition {
	return Rep(base, 0, Unbounded)
}

// Plus matches base one or more times.
func Plus(base Node) *Repetition {
	return Rep(base, 1, Unbounded)
}

// Opt matches base zero or one time.
func Opt(base Node) *Repetition {
	return Rep(base, 0, 1)
}

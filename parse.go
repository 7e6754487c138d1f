// Package treegram is a lazy backtracking parser-combinator engine. Grammar
// nodes (literal and pattern terminals, ordered choice, sequence, bounded
// repetition) form a graph that may be recursive through a production
// registry; parsing enumerates every way the input can match, lazily and in
// a deterministic order, building parse trees shaped by per-node
// discard/inline flags.
//
// A grammar is authored with the combinator constructors or the Grammar
// registry, finalized once with Prepare, and then parsed any number of
// times. Ambiguity is free until consumed: results are produced one at a
// time through Go iterators, and alternatives a caller never pulls are never
// computed.
package treegram

import "iter"

// Parse lazily enumerates every (result, remaining text) pair for n against
// input. The engine does not require the remaining text to be empty; callers
// that need a full-input match filter for an empty remainder or use
// ParseComplete. It returns ErrNotPrepared when the node graph was never
// finalized with Prepare.
func Parse(n Node, input string) (iter.Seq2[Result, string], error) {
	if !n.common().prepared {
		return nil, ErrNotPrepared
	}

	return n.parse(input), nil
}

// First returns the highest-priority result and its remaining text. It
// returns ErrNoMatch when the grammar rejects the input entirely.
func First(n Node, input string) (Result, string, error) {
	results, err := Parse(n, input)
	if err != nil {
		return nil, "", err
	}

	for r, rest := range results {
		return r, rest, nil
	}

	return nil, "", ErrNoMatch
}

// ParseComplete returns the highest-priority result that consumes the entire
// input, or ErrNoMatch when no enumeration does.
func ParseComplete(n Node, input string) (Result, error) {
	results, err := Parse(n, input)
	if err != nil {
		return nil, err
	}

	for r, rest := range results {
		if rest == "" {
			return r, nil
		}
	}

	return nil, ErrNoMatch
}

package treegram

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

type match struct {
	result Result
	rest   string
}

// parseAll prepares n and drains its full result stream.
func parseAll(t *testing.T, n Node, input string) []match {
	t.Helper()

	Prepare(n)

	results, err := Parse(n, input)
	assert.NoError(t, err)

	var matches []match
	for r, rest := range results {
		matches = append(matches, match{result: r, rest: rest})
	}

	return matches
}

// rests projects the remaining-text column of a match list.
func rests(matches []match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.rest
	}

	return out
}

// tree asserts that r is a named Tree and returns it.
func tree(t *testing.T, r Result) *Tree {
	t.Helper()

	tr, ok := r.(*Tree)
	assert.True(t, ok, "expected *Tree, got %T", r)

	return tr
}

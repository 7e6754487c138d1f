package treegram

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestLiteralMatchesPrefix(t *testing.T) {
	tests := []struct {
		name    string
		literal string
		input   string
		matched bool
		rest    string
	}{
		{name: "exact", literal: "foo", input: "foo", matched: true, rest: ""},
		{name: "prefix with remainder", literal: "foo", input: "foobar", matched: true, rest: "bar"},
		{name: "no prefix", literal: "foo", input: "barfoo", matched: false},
		{name: "shorter input", literal: "foo", input: "fo", matched: false},
		{name: "empty literal matches anywhere", literal: "", input: "abc", matched: true, rest: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := parseAll(t, NewLiteral(tt.literal), tt.input)

			if !tt.matched {
				assert.Equal(t, 0, len(matches))
				return
			}

			assert.Equal(t, 1, len(matches))
			assert.Equal(t, tt.rest, matches[0].rest)
			// Literal matches are discarded by default.
			assert.Equal(t, Discarded, matches[0].result)
		})
	}
}

func TestKeptLiteralContributesText(t *testing.T) {
	matches := parseAll(t, Named("kw", Keep(Lit("if"))), "if x")

	assert.Equal(t, 1, len(matches))
	tr := tree(t, matches[0].result)
	assert.Equal(t, "kw", tr.Name)
	assert.Equal(t, []Result{Text("if")}, tr.Children)
}

func TestPatternIsAnchored(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		input   string
		matched string
		rest    string
		ok      bool
	}{
		{name: "digits at start", source: `\d+`, input: "123abc", matched: "123", rest: "abc", ok: true},
		{name: "digits not at start", source: `\d+`, input: "a123", ok: false},
		{name: "greedy", source: `a*`, input: "aaab", matched: "aaa", rest: "b", ok: true},
		{name: "empty match", source: `\s*`, input: "x", matched: "", rest: "x", ok: true},
		{name: "alternation stays anchored", source: `b|c`, input: "abc", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPattern(tt.source)
			assert.NoError(t, err)

			matches := parseAll(t, Named("m", p), tt.input)

			if !tt.ok {
				assert.Equal(t, 0, len(matches))
				return
			}

			assert.Equal(t, 1, len(matches))
			assert.Equal(t, tt.rest, matches[0].rest)
			assert.Equal(t, []Result{Text(tt.matched)}, tree(t, matches[0].result).Children)
		})
	}
}

func TestPatternYieldsAtMostOneResult(t *testing.T) {
	// A pattern is never ambiguous on its own, even when the regex could
	// match several lengths.
	matches := parseAll(t, Pat(`a+`), "aaa")
	assert.Equal(t, 1, len(matches))
	assert.Equal(t, "", matches[0].rest)
}

func TestNewPatternRejectsBadRegex(t *testing.T) {
	_, err := NewPattern(`(`)
	assert.IsError(t, err, ErrPatternSyntax)
}

func TestParseRequiresPreparation(t *testing.T) {
	_, err := Parse(NewLiteral("x"), "x")
	assert.IsError(t, err, ErrNotPrepared)
}

package treegram

import (
	"fmt"
	"iter"
	"slices"
)

// Unbounded marks a repetition with no upper bound.
const Unbounded = -1

// Repetition matches its base node between min and max consecutive times.
// Results come in non-decreasing repetition count starting at min; for a
// fixed count every ambiguous decomposition of the base node is exhausted,
// in the base node's own priority order, before the count advances.
type Repetition struct {
	node
	base Node
	min  int
	max  int
}

// NewRepetition returns a bounded-repetition node. max is either Unbounded
// or an upper bound >= min; min must be >= 0. Anything else is a
// construction error.
func NewRepetition(base Node, min, max int) (*Repetition, error) {
	if min < 0 || (max != Unbounded && max < min) {
		return nil, fmt.Errorf("%w: min=%d, max=%d", ErrRepetitionBounds, min, max)
	}

	return &Repetition{base: base, min: min, max: max}, nil
}

// Bounds returns the repetition bounds; max is Unbounded when there is no
// upper bound.
func (r *Repetition) Bounds() (min, max int) { return r.min, r.max }

func (r *Repetition) parse(text string) iter.Seq2[Result, string] {
	return func(yield func(Result, string) bool) {
		if r.min == 0 {
			// The zero-repetition match consumes nothing and always comes
			// first.
			if !yield(r.build(nil), text) {
				return
			}

			if r.max == 0 {
				return
			}
		}

		// Same backtracking search as Sequence, but the stack depth is the
		// number of repetitions committed so far against a single base node.
		stack := pushFrame(nil, nil, r.base.parse(text))
		defer func() { stopFrames(stack) }()

		for len(stack) > 0 {
			top := stack[len(stack)-1]

			res, rest, ok := top.next()
			if !ok {
				top.stop()
				stack = stack[:len(stack)-1]

				continue
			}

			acc := append(slices.Clone(top.acc), res)
			count := len(stack)

			if count < r.min {
				stack = pushFrame(stack, acc, r.base.parse(rest))

				continue
			}

			if !yield(r.build(acc), rest) {
				return
			}

			if r.max == Unbounded || count < r.max {
				stack = pushFrame(stack, acc, r.base.parse(rest))
			}
		}
	}
}

func (r *Repetition) prepare() {
	if !r.resolveFlags(false) {
		return
	}

	r.base.prepare()
}

func (r *Repetition) clone() Node {
	return &Repetition{base: r.base, min: r.min, max: r.max}
}

package treegram

import (
	"iter"
	"slices"
)

// frame is one level of the depth-first backtracking search: the sub-results
// committed at shallower levels plus a resumable enumerator for the node
// being matched at this level. Keeping enumerators on an explicit stack
// instead of the call stack is what keeps the search lazy: pulling one
// result never forces sibling alternatives deeper in the sequence.
type frame struct {
	acc  []Result
	next func() (Result, string, bool)
	stop func()
}

func pushFrame(stack []*frame, acc []Result, seq iter.Seq2[Result, string]) []*frame {
	next, stop := iter.Pull2(seq)

	return append(stack, &frame{acc: acc, next: next, stop: stop})
}

func stopFrames(stack []*frame) {
	for _, f := range stack {
		f.stop()
	}
}

// Sequence matches a fixed ordered list of sub-nodes end to end.
type Sequence struct {
	node
	elements []Node
}

// NewSequence returns an ordered-concatenation node. A sequence must have at
// least one element; an empty sequence is a construction error, not a parse
// failure.
func NewSequence(elements ...Node) (*Sequence, error) {
	if len(elements) == 0 {
		return nil, ErrEmptySequence
	}

	return &Sequence{elements: slices.Clone(elements)}, nil
}

func (s *Sequence) parse(text string) iter.Seq2[Result, string] {
	return func(yield func(Result, string) bool) {
		stack := pushFrame(nil, nil, s.elements[0].parse(text))
		defer func() { stopFrames(stack) }()

		for len(stack) > 0 {
			top := stack[len(stack)-1]

			r, rest, ok := top.next()
			if !ok {
				// Exhausted every alternative at this depth: backtrack.
				top.stop()
				stack = stack[:len(stack)-1]

				continue
			}

			acc := append(slices.Clone(top.acc), r)

			if len(stack) == len(s.elements) {
				// One committed result per element: a full match. The top
				// frame stays live so its remaining alternatives are
				// enumerated on the next pull.
				if !yield(s.build(acc), rest) {
					return
				}

				continue
			}

			stack = pushFrame(stack, acc, s.elements[len(stack)].parse(rest))
		}
	}
}

func (s *Sequence) prepare() {
	if !s.resolveFlags(false) {
		return
	}

	for _, e := range s.elements {
		e.prepare()
	}
}

func (s *Sequence) clone() Node {
	return &Sequence{elements: slices.Clone(s.elements)}
}

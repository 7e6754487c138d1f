package treegram

import (
	"iter"
	"slices"
)

// Choice tries each alternative in declared order. Its ambiguity is the
// union of each alternative's ambiguity, concatenated in that order, which
// is the priority order seen by consumers that only take the first result.
type Choice struct {
	node
	alternatives []Node
}

// NewChoice returns an ordered-choice node over the given alternatives. An
// empty choice is valid: it matches nothing, and is how the production
// registry represents a name that is referenced before it is defined.
func NewChoice(alternatives ...Node) *Choice {
	return &Choice{alternatives: alternatives}
}

// Len returns the number of alternatives defined so far.
func (c *Choice) Len() int { return len(c.alternatives) }

func (c *Choice) add(alternative Node) {
	c.alternatives = append(c.alternatives, alternative)
}

func (c *Choice) parse(text string) iter.Seq2[Result, string] {
	return func(yield func(Result, string) bool) {
		for _, alt := range c.alternatives {
			for r, rest := range alt.parse(text) {
				if !yield(c.build([]Result{r}), rest) {
					return
				}
			}
		}
	}
}

func (c *Choice) prepare() {
	if !c.resolveFlags(false) {
		return
	}

	for _, alt := range c.alternatives {
		alt.prepare()
	}
}

func (c *Choice) clone() Node {
	return NewChoice(slices.Clone(c.alternatives)...)
}

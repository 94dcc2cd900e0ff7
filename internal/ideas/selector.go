package ideas

import (
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/random"
)

// Selector draws reveal ideas uniformly at random, with replacement
type Selector struct {
	rand random.Source
}

// NewSelector creates a selector using src, or the runtime source when src is nil
func NewSelector(src random.Source) *Selector {
	if src == nil {
		src = random.Default()
	}
	return &Selector{rand: src}
}

// Next returns one idea. Consecutive calls are independent, so repeats happen.
func (s *Selector) Next() RevealIdea {
	return catalog[s.rand.IntN(len(catalog))]
}

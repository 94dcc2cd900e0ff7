package random

import (
	"math/rand/v2"
	"sync"
)

// Source is the uniform random source used by the quizzes and the idea generator.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

type runtimeSource struct{}

func (runtimeSource) Float64() float64 { return rand.Float64() }
func (runtimeSource) IntN(n int) int   { return rand.IntN(n) }

// Default returns the process-wide source. It is seeded by the runtime, so
// draws are not reproducible across runs, and it is safe for concurrent use.
func Default() Source {
	return runtimeSource{}
}

// Sequence replays a fixed list of draws. Float64 returns the next float and
// IntN returns the next int modulo n; both lists wrap around when exhausted.
type Sequence struct {
	mu     sync.Mutex
	Floats []float64
	Ints   []int
	fi, ii int
}

// NewSequence creates a Sequence that replays floats and ints.
func NewSequence(floats []float64, ints []int) *Sequence {
	return &Sequence{Floats: floats, Ints: ints}
}

func (s *Sequence) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[s.fi%len(s.Floats)]
	s.fi++
	return v
}

func (s *Sequence) IntN(n int) int {
	if n <= 0 {
		panic("random: invalid argument to IntN")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[s.ii%len(s.Ints)]
	s.ii++
	if v < 0 {
		v = -v
	}
	return v % n
}

package iching

import (
	"math/rand/v2"
	"sync"
)

// Source yields uniform integers in [0, n).
type Source interface {
	Intn(n int) int
}

type systemSource struct{}

func (systemSource) Intn(n int) int { return rand.IntN(n) }

// SystemSource draws from the process-wide generator. Safe for concurrent use.
func SystemSource() Source { return systemSource{} }

type seededSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandSource returns a deterministic source for the given seed.
func NewRandSource(seed uint64) Source {
	return &seededSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

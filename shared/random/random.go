// Package random provides the seedable source used to pick among equally good candidates.
package random

import (
	"hotel/config"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

type Source interface {
	// IntN returns a value in [0, n). n must be positive.
	IntN(n int) int
}

type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New seeds from APP_RANDOM_SEED, or from the clock when the seed is zero.
func New(config *config.Config) Source {
	seed := config.App.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	} else {
		log.Info().Int64("seed", seed).Msg("Using fixed random seed")
	}

	return NewSeeded(uint64(seed)) //nolint:gosec
}

func NewSeeded(seed uint64) Source {
	return &lockedSource{rnd: rand.New(rand.NewPCG(seed, seed))} //nolint:gosec
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rnd.IntN(n)
}

// Fixed always returns the same index, clamped to n-1.
type Fixed int

func (f Fixed) IntN(n int) int {
	return min(max(int(f), 0), n-1)
}

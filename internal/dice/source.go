package dice

import (
	"math/rand"
	"sync"
	"time"
)

// Source is the randomness provider for dice rolls.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// mathSource implements Source with a mutex-guarded math/rand generator.
// Rolls are pseudo-random; a fixed seed gives a reproducible sequence.
type mathSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededSource returns a Source producing the deterministic sequence for
// seed. Intended for tests and replayable rolls.
func NewSeededSource(seed int64) Source {
	return &mathSource{rng: rand.New(rand.NewSource(seed))}
}

// NewRandomSource returns a Source seeded from the current time.
func NewRandomSource() Source {
	return &mathSource{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Intn returns a random int in [0, n).
//
// Precondition: n > 0. Panics with "dice: Intn called with n <= 0" otherwise.
func (m *mathSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rng.Intn(n)
}

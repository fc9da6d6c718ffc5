package trivia

import (
	"math/rand"
	"sync"
	"time"
)

// Selector draws one question uniformly at random from a candidate set.
// A single Selector is shared process-wide; the mutex guards the generator,
// which is not safe for concurrent use.
type Selector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSelector builds a selector from the given source. A nil source gets a
// time-seeded one; tests inject a fixed seed for determinism.
func NewSelector(src rand.Source) *Selector {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Selector{rng: rand.New(src)}
}

// PickNext returns one candidate chosen uniformly at random. The second
// return is false when the candidate set is exhausted.
func (s *Selector) PickNext(candidates []Question) (Question, bool) {
	if len(candidates) == 0 {
		return Question{}, false
	}
	s.mu.Lock()
	i := s.rng.Intn(len(candidates))
	s.mu.Unlock()
	return candidates[i], true
}

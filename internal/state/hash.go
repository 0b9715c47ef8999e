package state

import (
	"math/rand/v2"
	"time"
)

const (
	hexAlphabet = "0123456789abcdef"
	// HashLength is the length of a generated commit hash.
	HashLength = 40
)

// HashGenerator produces cosmetic, git-looking commit hashes.
// Not safe for concurrent use; sessions guard it with their own lock.
type HashGenerator struct {
	rng *rand.Rand
}

// NewHashGenerator returns a generator drawing from src.
func NewHashGenerator(src rand.Source) *HashGenerator {
	return &HashGenerator{rng: rand.New(src)}
}

// Next returns 40 characters, each picked uniformly from the lowercase hex alphabet.
func (g *HashGenerator) Next() string {
	b := make([]byte, HashLength)
	for i := range b {
		b[i] = hexAlphabet[g.rng.IntN(len(hexAlphabet))]
	}
	return string(b)
}

// Sources supplies the non-deterministic inputs a transition needs:
// commit hashes, operation IDs and the teammate feature number.
type Sources struct {
	rng    *rand.Rand
	hashes *HashGenerator
	nextID int64
}

// NewSources builds sources from an explicit random source and first operation ID.
// Tests pass a seeded source to get reproducible hashes.
func NewSources(src rand.Source, firstID int64) *Sources {
	return &Sources{
		rng:    rand.New(src),
		hashes: NewHashGenerator(src),
		nextID: firstID,
	}
}

// DefaultSources seeds from the clock. IDs start at the current Unix millisecond,
// mirroring the timestamp keys the front-end used.
func DefaultSources() *Sources {
	now := time.Now()
	seed := uint64(now.UnixNano())
	return NewSources(rand.NewPCG(seed, seed>>17|1), now.UnixMilli())
}

// Hash returns a fresh commit hash.
func (s *Sources) Hash() string {
	return s.hashes.Next()
}

// NextID returns a new operation ID, strictly greater than the previous one.
func (s *Sources) NextID() int64 {
	id := s.nextID
	s.nextID++
	return id
}

// IntN returns a uniform integer in [0, n).
func (s *Sources) IntN(n int) int {
	return s.rng.IntN(n)
}

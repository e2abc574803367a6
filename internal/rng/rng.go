// Package rng adapts math/rand/v2 to the two primitives the index needs:
// a uniform integer in [0,n) and a uniform big integer in [0,n) for
// decimal-sized domains that don't fit a machine word. It is a thin,
// injectable adapter, not a reimplementation of the generator itself.
package rng

import (
	"math/big"
	"math/rand/v2"
)

// Source is the random source the index draws from.
type Source interface {
	// IntN returns a uniform int in [0,n). n must be > 0.
	IntN(n int) int
	// BigN returns a uniform *big.Int in [0,n). n must be positive.
	BigN(n *big.Int) *big.Int
}

// pcgSource wraps *rand.Rand seeded with a PCG generator for
// reproducible draws across runs.
type pcgSource struct {
	r *rand.Rand
}

// New returns a Source seeded deterministically from the two given seed
// words, for reproducible draws across runs.
func New(seed1, seed2 uint64) Source {
	return &pcgSource{r: rand.New(rand.NewPCG(seed1, seed2))}
}

// NewDefault returns a Source seeded from the process default generator.
func NewDefault() Source {
	return &pcgSource{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

func (s *pcgSource) IntN(n int) int {
	return s.r.IntN(n)
}

// BigN draws a uniform value in [0,n) via rejection sampling: fill a
// byte buffer sized to n's bit length, mask the excess high bits, and
// retry on overshoot. This is the standard technique crypto/rand.Int
// uses for arbitrary-precision uniform sampling, adapted here onto a
// non-cryptographic, seedable source for reproducibility.
func (s *pcgSource) BigN(n *big.Int) *big.Int {
	if n.Sign() <= 0 {
		return new(big.Int)
	}

	bitLen := n.BitLen()
	byteLen := (bitLen + 7) / 8
	excess := uint(byteLen*8 - bitLen)
	buf := make([]byte, byteLen)

	for {
		s.fill(buf)
		if excess > 0 {
			buf[0] &= byte(0xFF >> excess)
		}

		cand := new(big.Int).SetBytes(buf)
		if cand.Cmp(n) < 0 {
			return cand
		}
	}
}

func (s *pcgSource) fill(buf []byte) {
	i := 0
	for i < len(buf) {
		word := s.r.Uint64()
		for b := 0; b < 8 && i < len(buf); b++ {
			buf[i] = byte(word)
			word >>= 8
			i++
		}
	}
}

// Package randsrc adapts math/rand/v2 to the io.Reader uniform random byte
// source gf2mat.Random consumes.
package randsrc

import "math/rand/v2"

// Reader is an io.Reader backed by a math/rand/v2 generator.
type Reader struct {
	rng *rand.Rand
}

// New returns a Reader seeded deterministically from seed, so benchmark
// runs are reproducible given the same --seed flag.
func New(seed int64) *Reader {
	s := uint64(seed)
	return &Reader{rng: rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))}
}

// Read fills p with pseudo-random bytes. It never returns an error and
// always fills p completely, satisfying io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.rng.Uint32())
	}
	return len(p), nil
}

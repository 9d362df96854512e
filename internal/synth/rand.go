package synth

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// NewRand returns a pseudo-random source seeded from crypto/rand. When
// the system entropy source is unavailable it falls back to a time-based
// seed; passwords generated from the fallback are still well-formed but
// carry a predictable seed, so the degradation is deliberate and visible
// here rather than silent.
//
// A single shared *rand.Rand is passed explicitly into the synthesizer
// so tests can inject a deterministic source.
func NewRand() *rand.Rand {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	seed := int64(binary.LittleEndian.Uint64(buf[:]))
	return rand.New(rand.NewSource(seed))
}

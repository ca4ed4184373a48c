package rngx

import (
	"encoding/binary"

	"golang.org/x/crypto/chacha20"
)

// ChaCha8 is a deterministic byte stream keyed by a 64-bit seed, used as
// the solver's sole source of randomness. It is not safe for concurrent
// use; each solver run owns its own instance.
type ChaCha8 struct {
	cipher *chacha20.Cipher
	zero   [8]byte
	buf    [8]byte
}

// NewChaCha8 seeds a stream from seed, zero-padded into a 32-byte key
// with a zero nonce — deterministic and sufficient for a solver's
// internal tie-breaking and sampling draws, not for cryptographic use.
func NewChaCha8(seed uint64) *ChaCha8 {
	var key [chacha20.KeySize]byte
	binary.LittleEndian.PutUint64(key[:8], seed)

	c, err := chacha20.NewUnauthenticatedCipher(key[:], make([]byte, chacha20.NonceSize))
	if err != nil {
		// KeySize/NonceSize are package constants we satisfy by
		// construction; a failure here means the crypto package's
		// invariants changed underneath us.
		panic("rngx: chacha20 cipher construction failed: " + err.Error())
	}
	return &ChaCha8{cipher: c}
}

// Uint64 draws the next 8 bytes of keystream as a little-endian uint64.
func (c *ChaCha8) Uint64() uint64 {
	c.cipher.XORKeyStream(c.buf[:], c.zero[:])
	return binary.LittleEndian.Uint64(c.buf[:])
}

// Float64 draws a uniform value in [0, 1), the analogue of
// rand_chacha::ChaCha8Rng::gen::<f64>().
func (c *ChaCha8) Float64() float64 {
	// 53 bits of mantissa precision, matching the standard library's
	// own uint64->float64 reduction.
	return float64(c.Uint64()>>11) / (1 << 53)
}

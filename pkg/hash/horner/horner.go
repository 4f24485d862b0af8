package horner

import "hash"

// Horner's method over the bytes of the input: the running sum is
// multiplied by the base and the next byte added, reduced by a large
// prime modulus at every step so the intermediate never overflows.
const (
	defaultBase = 31
	modulus     = 1_000_000_009
)

type hornerHash struct {
	base uint64
	sum  uint64
}

// New returns a new hash.Hash32 instance computing a Horner polynomial
// hash with the default base.
func New() hash.Hash32 {
	return NewWithBase(defaultBase)
}

// NewWithBase returns a new hash.Hash32 instance computing a Horner
// polynomial hash with the supplied base.
func NewWithBase(base uint64) hash.Hash32 {
	return &hornerHash{base: base}
}

// Sum32 returns the Horner hash of s using the default base
func Sum32(s string) uint32 {
	var sum uint64
	for i := 0; i < len(s); i++ {
		sum = (sum*defaultBase + uint64(s[i])) % modulus
	}
	return uint32(sum)
}

func (h *hornerHash) Write(p []byte) (int, error) {
	for _, c := range p {
		h.sum = (h.sum*h.base + uint64(c)) % modulus
	}
	return len(p), nil
}

// Sum appends the current hash to b and returns the resulting slice.
// It does not change the underlying hash state.
func (h *hornerHash) Sum(b []byte) []byte {
	h32 := h.Sum32()
	return append(b, byte(h32), byte(h32>>8), byte(h32>>16), byte(h32>>24))
}

func (h *hornerHash) Sum32() uint32 {
	return uint32(h.sum)
}

// Reset resets the hash to its initial state.
func (h *hornerHash) Reset() {
	h.sum = 0
}

func (h *hornerHash) Size() int {
	return 4
}

func (h *hornerHash) BlockSize() int {
	return 1
}

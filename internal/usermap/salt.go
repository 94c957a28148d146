package usermap

import (
	"math/rand/v2"

	"github.com/samber/lo"
)

const (
	// DefaultSaltLength is the number of characters in a generated salt.
	DefaultSaltLength = 5

	// SaltAlphabet lists the characters salts are drawn from.
	SaltAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// RandSource yields uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type RandSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// SaltGenerator produces fixed-length salts from SaltAlphabet.
type SaltGenerator struct {
	src    RandSource
	length int
}

// NewSaltGenerator returns a generator drawing from src. A nil src falls back
// to the process-wide generator; a non-positive length to DefaultSaltLength.
func NewSaltGenerator(src RandSource, length int) *SaltGenerator {
	if src == nil {
		src = globalSource{}
	}
	if length <= 0 {
		length = DefaultSaltLength
	}
	return &SaltGenerator{src: src, length: length}
}

// DefaultSaltGenerator uses the process-wide math/rand/v2 generator.
func DefaultSaltGenerator() *SaltGenerator {
	return NewSaltGenerator(nil, DefaultSaltLength)
}

// Length reports the number of characters in each salt.
func (g *SaltGenerator) Length() int {
	return g.length
}

// Generate returns a fresh salt.
func (g *SaltGenerator) Generate() string {
	b := lo.Times(g.length, func(int) byte {
		return SaltAlphabet[g.src.IntN(len(SaltAlphabet))]
	})
	return string(b)
}

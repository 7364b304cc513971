// Copyright (c) 2026 Avendesora Team
// Avendesora - deterministic password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package engine

import (
	"fmt"
	"math/big"
)

// Pool is the bit pool of a single secret evaluation. It must not be shared
// between requests.
//
// Each draw takes value mod radix and then shifts the pool right by the bit
// length of radix-1. For radixes that are not powers of two this leaves a
// small modulo bias. Secrets generated in the past depend on exactly this
// behaviour, so it must not be changed.
type Pool struct {
	value     *big.Int
	exhausted bool
	draws     int
}

// NewPool builds a pool from raw digest bytes (big-endian).
func NewPool(digest []byte) *Pool {
	return &Pool{value: new(big.Int).SetBytes(digest)}
}

// Draw returns an index in [0, radix). Once the pool holds less than
// radix-1 it is exhausted and every later call fails with
// ErrSecretExhausted.
func (p *Pool) Draw(radix int) (int, error) {
	if radix < 1 {
		return 0, fmt.Errorf("%w: radix %d", ErrInvalidSpec, radix)
	}
	if p.exhausted {
		return 0, ErrSecretExhausted
	}
	maxIndex := big.NewInt(int64(radix - 1))
	bits := maxIndex.BitLen()
	if bits == 0 {
		bits = 1
	}
	if p.value.Cmp(maxIndex) < 0 {
		p.exhausted = true
		return 0, ErrSecretExhausted
	}
	index := new(big.Int).Mod(p.value, big.NewInt(int64(radix)))
	p.value.Rsh(p.value, uint(bits))
	p.draws++
	return int(index.Int64()), nil
}

// Pick draws one symbol from alphabet.
func (p *Pool) Pick(alphabet []string) (string, error) {
	i, err := p.Draw(len(alphabet))
	if err != nil {
		return "", err
	}
	return alphabet[i], nil
}

// Exhausted reports whether a draw has already failed for lack of entropy.
func (p *Pool) Exhausted() bool { return p.exhausted }

// Draws returns the number of successful draws so far.
func (p *Pool) Draws() int { return p.draws }

// BitLen returns the number of significant bits left in the pool.
func (p *Pool) BitLen() int { return p.value.BitLen() }

// Wipe zeroes the remaining pool value and marks the pool exhausted.
func (p *Pool) Wipe() {
	words := p.value.Bits()
	for i := range words {
		words[i] = 0
	}
	p.value.SetInt64(0)
	p.exhausted = true
}

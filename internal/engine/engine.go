// Copyright (c) 2026 Avendesora Team
// Avendesora - deterministic password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package engine

import (
	"fmt"
	"strings"
)

// Engine binds the generators to one hash algorithm. The zero value uses
// DefaultAlgorithm.
type Engine struct {
	Algorithm Algorithm
}

// New returns an Engine that hashes with alg.
func New(alg Algorithm) Engine {
	return Engine{Algorithm: alg}
}

// Pool derives a fresh bit pool for id. An Algorithm outside Algorithms is
// ErrInvalidSpec.
func (e Engine) Pool(id Identity) (*Pool, error) {
	alg := e.Algorithm
	if alg == "" {
		alg = DefaultAlgorithm
	}
	if !alg.Known() {
		return nil, fmt.Errorf("%w: unknown hash algorithm %q", ErrInvalidSpec, alg)
	}
	return NewPool(alg.Sum(id.Key())), nil
}

// Scalar draws length symbols from alphabet and joins them with sep. It
// covers passwords (characters, empty separator), passphrases (words, a
// space) and PINs (digits).
func (e Engine) Scalar(id Identity, length int, alphabet []string, sep string) (string, error) {
	if err := checkLength(length); err != nil {
		return "", err
	}
	if err := checkAlphabet(alphabet); err != nil {
		return "", err
	}
	pool, err := e.Pool(id)
	if err != nil {
		return "", err
	}
	defer pool.Wipe()

	symbols, err := drawSymbols(pool, alphabet, length)
	if err != nil {
		return "", err
	}
	return strings.Join(symbols, sep), nil
}

func drawSymbols(pool *Pool, alphabet []string, count int) ([]string, error) {
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		s, err := pool.Pick(alphabet)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func checkLength(length int) error {
	if length <= 0 {
		return fmt.Errorf("%w: length must be positive, got %d", ErrInvalidSpec, length)
	}
	return nil
}

func checkAlphabet(alphabet []string) error {
	if len(alphabet) < 2 {
		return fmt.Errorf("%w: alphabet needs at least 2 symbols, got %d", ErrInvalidSpec, len(alphabet))
	}
	return nil
}

// Copyright (c) 2026 Avendesora Team
// Avendesora - deterministic password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package engine

import (
	"fmt"
	"strings"
)

// Requirement asks for at least Count symbols taken from Alphabet.
type Requirement struct {
	Alphabet []string
	Count    int
}

// Composite builds a password of length symbols that holds at least the
// requested number of symbols of each class. Required symbols are drawn
// first, in the order given, then the rest comes from def. The list is
// finally shuffled with draws from the same pool.
func (e Engine) Composite(id Identity, length int, def []string, reqs []Requirement) (string, error) {
	if err := checkLength(length); err != nil {
		return "", err
	}
	if err := checkAlphabet(def); err != nil {
		return "", err
	}
	required := 0
	for i, r := range reqs {
		if r.Count < 0 {
			return "", fmt.Errorf("%w: requirement %d has negative count %d", ErrInvalidSpec, i, r.Count)
		}
		if err := checkAlphabet(r.Alphabet); err != nil {
			return "", fmt.Errorf("requirement %d: %w", i, err)
		}
		required += r.Count
	}
	if required > length {
		return "", fmt.Errorf("%w: %d required symbols exceed length %d", ErrInvalidSpec, required, length)
	}

	pool, err := e.Pool(id)
	if err != nil {
		return "", err
	}
	defer pool.Wipe()

	pending := make([]string, 0, length)
	for _, r := range reqs {
		drawn, err := drawSymbols(pool, r.Alphabet, r.Count)
		if err != nil {
			return "", err
		}
		pending = append(pending, drawn...)
	}
	rest, err := drawSymbols(pool, def, length-required)
	if err != nil {
		return "", err
	}
	pending = append(pending, rest...)

	shuffled, err := shuffle(pool, pending)
	if err != nil {
		return "", err
	}
	return strings.Join(shuffled, ""), nil
}

// shuffle moves symbols one at a time from pending to the output, choosing
// each with a draw over the number still pending.
func shuffle(pool *Pool, pending []string) ([]string, error) {
	out := make([]string, 0, len(pending))
	for len(pending) > 0 {
		i, err := pool.Draw(len(pending))
		if err != nil {
			return nil, err
		}
		out = append(out, pending[i])
		pending = append(pending[:i], pending[i+1:]...)
	}
	return out, nil
}

// Copyright (c) 2026 Avendesora Team
// Avendesora - deterministic password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package engine

import (
	"crypto/sha512"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Algorithm names the 512-bit hash used to expand a key into a bit pool.
// Changing it changes every generated secret, so a deployment must pin one.
type Algorithm string

const (
	SHA512     Algorithm = "sha512"
	SHA3_512   Algorithm = "sha3-512"
	BLAKE2b512 Algorithm = "blake2b-512"
)

// DefaultAlgorithm is used when no algorithm is configured.
const DefaultAlgorithm = SHA512

// Algorithms lists the supported hashes in display order.
func Algorithms() []Algorithm {
	return []Algorithm{SHA512, SHA3_512, BLAKE2b512}
}

// ParseAlgorithm maps a configured name onto an Algorithm. The empty string
// selects DefaultAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return DefaultAlgorithm, nil
	}
	for _, a := range Algorithms() {
		if string(a) == n {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown hash algorithm %q", name)
}

// Known reports whether a names a supported hash. The zero Algorithm counts
// as known and means DefaultAlgorithm.
func (a Algorithm) Known() bool {
	if a == "" {
		return true
	}
	for _, k := range Algorithms() {
		if a == k {
			return true
		}
	}
	return false
}

// Sum hashes the UTF-8 bytes of key. The zero Algorithm hashes with
// DefaultAlgorithm. Callers check unknown values with Known first;
// Engine.Pool does.
func (a Algorithm) Sum(key string) []byte {
	data := []byte(key)
	switch a {
	case SHA3_512:
		d := sha3.Sum512(data)
		return d[:]
	case BLAKE2b512:
		d := blake2b.Sum512(data)
		return d[:]
	default:
		d := sha512.Sum512(data)
		return d[:]
	}
}

// Expand hashes key and reads the digest as a big-endian unsigned integer.
func (a Algorithm) Expand(key string) *big.Int {
	return new(big.Int).SetBytes(a.Sum(key))
}
